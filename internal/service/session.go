// Package service orchestrates the dashboard's use cases on top of the
// ports: remote authentication, session persistence, and logout.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fitpulse/studio-ui/internal/domain/auth"
	apperrors "github.com/fitpulse/studio-ui/internal/errors"
	"github.com/fitpulse/studio-ui/internal/ports"
)

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	API      ports.StudioAPI
	Sessions ports.SessionStore
	Logger   *slog.Logger
}

// SessionService coordinates remote login with local session persistence.
type SessionService struct {
	api      ports.StudioAPI
	sessions ports.SessionStore
	logger   *slog.Logger
}

// NewSessionService constructs a new SessionService.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		api:      opts.API,
		sessions: opts.Sessions,
		logger:   logger,
	}
}

// LoginResult contains the established session and its new id.
type LoginResult struct {
	SID     string
	Session auth.Session
}

// Login authenticates against the remote API and persists the resulting
// pair under a fresh opaque sid. A response missing either half of the
// pair is rejected before anything is stored.
func (s *SessionService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, apperrors.Validation("email and password are required")
	}

	sess, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !sess.Valid() {
		return nil, apperrors.InvalidSession("login response missing token or account")
	}

	sid := uuid.NewString()
	if err := s.sessions.Save(ctx, sid, sess); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "persist session")
	}

	s.logger.InfoContext(ctx, "session established",
		slog.Int("user_id", sess.User.ID), slog.String("role", string(sess.User.Role)))
	return &LoginResult{SID: sid, Session: sess}, nil
}

// Current restores the session for sid. Errors pass through from the store,
// so a corrupt pair arrives as a SessionRestore error with the keys already
// cleared.
func (s *SessionService) Current(ctx context.Context, sid string) (auth.Session, error) {
	return s.sessions.Get(ctx, sid)
}

// Logout invalidates the remote token and drops the local pair. The remote
// call is best effort with a short deadline; local state goes away even if
// the API is unreachable.
func (s *SessionService) Logout(ctx context.Context, sid string) error {
	sess, err := s.sessions.Get(ctx, sid)
	if err == nil {
		remoteCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := s.api.Logout(remoteCtx, sess.Token); err != nil {
			s.logger.WarnContext(ctx, "remote logout failed", slog.Any("error", err))
		}
	}
	return s.sessions.Delete(ctx, sid)
}
