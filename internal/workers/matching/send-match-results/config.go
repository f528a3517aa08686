// internal/workers/matching/send-match-results/config.go
package sendmatchresults

import "time"

type Config struct {
	Enabled         bool
	AWSRegion       string
	FromAddress     string
	PartnerTopicARN string
	Timeout         time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Enabled: true,
		Timeout: 15 * time.Second,
	}
}
