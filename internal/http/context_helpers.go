package httpx

import (
	"context"

	"github.com/fitpulse/studio-ui/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across
// packages. Centralized here so middleware and handlers share one key.
type sessionKey struct{}

// SetSessionInContext returns a child context carrying the restored session.
func SetSessionInContext(ctx context.Context, session auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the restored session and whether one is present.
func SessionFromContext(ctx context.Context) (auth.Session, bool) {
	if s, ok := ctx.Value(sessionKey{}).(auth.Session); ok && s.Valid() {
		return s, true
	}
	return auth.Session{}, false
}
