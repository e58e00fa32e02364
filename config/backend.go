package config

import (
	"strings"
	"time"
)

// BackendConfig contains the remote fitness-club API settings.
// The API is the single authority for authentication and all business rules;
// this service only renders and forwards.
type BackendConfig struct {
	// BaseURL is the root of the remote API, including the /api prefix.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080/api"`

	// Timeout bounds every outgoing request to the remote API.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	b.BaseURL = strings.TrimRight(strings.TrimSpace(b.BaseURL), "/")
	if b.Timeout <= 0 {
		b.Timeout = 15 * time.Second
	}
}
