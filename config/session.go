package config

import "time"

// SessionConfig contains session cookie and store settings.
type SessionConfig struct {
	// CookieName is the name of the opaque browser session id cookie.
	CookieName string `env:"COOKIE_NAME" envDefault:"studio_sid"`

	// KeyPrefix namespaces the session keys in Redis.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"studio:session:"`

	// TTL is how long an established session survives without re-login.
	TTL time.Duration `env:"TTL" envDefault:"24h"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.CookieName == "" {
		s.CookieName = "studio_sid"
	}
	if s.KeyPrefix == "" {
		s.KeyPrefix = "studio:session:"
	}
	if s.TTL <= 0 {
		s.TTL = 24 * time.Hour
	}
}

// RedisConfig contains Redis connection settings for the session store.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
