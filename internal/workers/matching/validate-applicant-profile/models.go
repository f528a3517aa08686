// internal/workers/matching/validate-applicant-profile/models.go
package validateapplicantprofile

import "broker-workers/internal/models"

type Input struct {
	ApplicationID string                 `json:"applicationId"`
	ProfileData   map[string]interface{} `json:"profileData"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Output struct {
	Valid            bool                     `json:"valid"`
	Errors           []ValidationError        `json:"errors,omitempty"`
	ApplicantProfile *models.ApplicantProfile `json:"applicantProfile,omitempty"`
}
