package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/fitpulse/studio-ui/internal/errors"
)

func TestAppError_Error(t *testing.T) {
	e := apperrors.Load("failed to load trainings")
	assert.Equal(t, "failed to load trainings", e.Error())

	wrapped := apperrors.Wrap(stderrors.New("dial tcp: refused"), apperrors.ErrCodeLoad, "failed to load trainings")
	assert.Equal(t, "failed to load trainings: dial tcp: refused", wrapped.Error())
}

func TestWrap_NilErrorReturnsNil(t *testing.T) {
	assert.Nil(t, apperrors.Wrap(nil, apperrors.ErrCodeLoad, "ignored"))
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"session restore", apperrors.SessionRestore("corrupt pair"), apperrors.IsSessionRestore},
		{"invalid session", apperrors.InvalidSession("missing token"), apperrors.IsInvalidSession},
		{"load", apperrors.Load("invalid data format"), apperrors.IsLoad},
		{"mutation", apperrors.Mutation("update rejected"), apperrors.IsMutation},
		{"validation", apperrors.Validation("unknown status"), apperrors.IsValidation},
		{"unauthorized", apperrors.Unauthorized("bad credentials"), apperrors.IsUnauthorized},
		{"forbidden", apperrors.Forbidden("forbidden"), apperrors.IsForbidden},
		{"internal", apperrors.Internal("boom"), apperrors.IsInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, tt.check(stderrors.New("plain")))
		})
	}
}

func TestIsHelpers_SeeThroughWrapping(t *testing.T) {
	inner := apperrors.Load("invalid data format")
	outer := fmt.Errorf("rendering trainings: %w", inner)
	assert.True(t, apperrors.IsLoad(outer))
	assert.Equal(t, apperrors.ErrCodeLoad, apperrors.GetCode(outer))
}

func TestRemote_MapsStatusToCode(t *testing.T) {
	e := apperrors.Remote(401, "invalid credentials")
	assert.True(t, apperrors.IsUnauthorized(e))
	assert.Equal(t, 401, apperrors.GetStatus(e))

	e = apperrors.Remote(403, "forbidden")
	assert.True(t, apperrors.IsForbidden(e))

	e = apperrors.Remote(422, "training is full")
	require.True(t, apperrors.IsMutation(e))
	assert.Equal(t, "training is full", e.Message)
	assert.Equal(t, 422, e.Status)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "training is full", apperrors.UserMessage(apperrors.Mutation("training is full")))
	assert.Equal(t, "something went wrong", apperrors.UserMessage(stderrors.New("pq: column does not exist")))
}
