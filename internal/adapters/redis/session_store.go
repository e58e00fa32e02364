// Package redis provides the Redis-backed session store. Each browser
// session is a pair of keys under one sid: the raw API token and the JSON
// account snapshot. The browser only ever holds the opaque sid cookie.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fitpulse/studio-ui/config"
	"github.com/fitpulse/studio-ui/internal/domain/auth"
	apperrors "github.com/fitpulse/studio-ui/internal/errors"
	"github.com/fitpulse/studio-ui/internal/ports"
)

var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore persists session pairs in Redis with a TTL.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewSessionStore creates a store using the configured key prefix and TTL.
func NewSessionStore(client redis.UniversalClient, cfg config.SessionConfig) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: cfg.KeyPrefix,
		ttl:    cfg.TTL,
	}
}

func (s *SessionStore) tokenKey(sid string) string { return s.prefix + sid + ":token" }
func (s *SessionStore) userKey(sid string) string  { return s.prefix + sid + ":user" }

// Save writes both halves of the pair in one pipeline so they expire
// together and a crash cannot leave a token without its account.
func (s *SessionStore) Save(ctx context.Context, sid string, sess auth.Session) error {
	if sid == "" {
		return apperrors.Internal("session id cannot be empty")
	}
	if !sess.Valid() {
		return apperrors.InvalidSession("refusing to persist incomplete session pair")
	}

	userData, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("marshal session user: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.tokenKey(sid), sess.Token, s.ttl)
	pipe.Set(ctx, s.userKey(sid), userData, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis save session: %w", err)
	}
	return nil
}

// Get restores the pair. Both keys absent means no session. Anything short
// of a complete, parseable, valid pair is treated as corrupt: both keys are
// cleared and a SessionRestore error is returned, forcing a fresh login.
func (s *SessionStore) Get(ctx context.Context, sid string) (auth.Session, error) {
	if sid == "" {
		return auth.Session{}, apperrors.SessionRestore("session not found")
	}

	vals, err := s.client.MGet(ctx, s.tokenKey(sid), s.userKey(sid)).Result()
	if err != nil {
		return auth.Session{}, fmt.Errorf("redis get session: %w", err)
	}

	token, tokenOK := vals[0].(string)
	userData, userOK := vals[1].(string)
	if !tokenOK && !userOK {
		return auth.Session{}, apperrors.SessionRestore("session not found")
	}
	if !tokenOK || !userOK {
		return auth.Session{}, s.discard(ctx, sid, "incomplete session pair")
	}

	var user auth.User
	if err := json.Unmarshal([]byte(userData), &user); err != nil {
		return auth.Session{}, s.discard(ctx, sid, "unparseable session user")
	}

	sess := auth.Session{Token: token, User: user}
	if !sess.Valid() {
		return auth.Session{}, s.discard(ctx, sid, "invalid session pair")
	}
	return sess, nil
}

// discard clears both keys and returns the restore error for the caller.
func (s *SessionStore) discard(ctx context.Context, sid, reason string) error {
	if err := s.Delete(ctx, sid); err != nil {
		return fmt.Errorf("discard session: %w", err)
	}
	return apperrors.SessionRestore(reason)
}

// Delete removes the pair. Deleting an absent session is not an error.
func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.tokenKey(sid), s.userKey(sid)).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}
