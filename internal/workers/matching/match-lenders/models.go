// internal/workers/matching/match-lenders/models.go
package matchlenders

import "broker-workers/internal/models"

type Input struct {
	ApplicationID    string                   `json:"applicationId"`
	ApplicantProfile *models.ApplicantProfile `json:"applicantProfile,omitempty"`
}

type Output struct {
	MatchedLenders []models.MatchedLender `json:"matchedLenders"`
	MatchCount     int                    `json:"matchCount"`
	AuditRunID     string                 `json:"auditRunId,omitempty"`
}
