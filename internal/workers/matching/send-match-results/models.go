// internal/workers/matching/send-match-results/models.go
package sendmatchresults

import "broker-workers/internal/models"

const (
	StatusSent     = "sent"
	StatusDisabled = "disabled"
)

type Input struct {
	ApplicationID  string                 `json:"applicationId"`
	RecipientEmail string                 `json:"recipientEmail"`
	RecipientName  string                 `json:"recipientName,omitempty"`
	PartnerID      string                 `json:"partnerId,omitempty"`
	MatchedLenders []models.MatchedLender `json:"matchedLenders"`
}

type Output struct {
	NotificationID string `json:"notificationId"`
	Status         string `json:"status"`
	SentAt         string `json:"sentAt"`
}
