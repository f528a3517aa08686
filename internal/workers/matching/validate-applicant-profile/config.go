// internal/workers/matching/validate-applicant-profile/config.go
package validateapplicantprofile

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
