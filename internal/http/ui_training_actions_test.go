package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitpulse/studio-ui/internal/domain/model"
	apperrors "github.com/fitpulse/studio-ui/internal/errors"
	"github.com/fitpulse/studio-ui/internal/ports"
)

func htmxPost(hs *harness, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Hx-Request", "true")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	hs.handler.ServeHTTP(rec, req)
	return rec
}

func htmxDelete(hs *harness, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	req.Header.Set("Hx-Request", "true")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	hs.handler.ServeHTTP(rec, req)
	return rec
}

func TestRegister_SelfHasNoParticipantID(t *testing.T) {
	hs := newHarness(t)
	var gotParticipant int
	hs.api.RegisterFunc = func(_ context.Context, _ string, trainingID, participantID int) error {
		require.Equal(t, 9, trainingID)
		gotParticipant = participantID
		return nil
	}

	rec := htmxPost(hs, "/trainings/9/register", url.Values{}, hs.signIn(t, plainUser()))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, gotParticipant)
	assert.Contains(t, rec.Header().Get("Hx-Trigger"), "trainings-changed")
}

func TestRegister_AdminMayRegisterSomeoneElse(t *testing.T) {
	hs := newHarness(t)
	var gotParticipant int
	hs.api.RegisterFunc = func(_ context.Context, _ string, _, participantID int) error {
		gotParticipant = participantID
		return nil
	}

	rec := htmxPost(hs, "/trainings/9/register", url.Values{"participant_id": {"42"}}, hs.signIn(t, adminUser()))
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 42, gotParticipant)
}

func TestRegister_NonAdminParticipantIDIgnored(t *testing.T) {
	hs := newHarness(t)
	var gotParticipant int
	hs.api.RegisterFunc = func(_ context.Context, _ string, _, participantID int) error {
		gotParticipant = participantID
		return nil
	}

	htmxPost(hs, "/trainings/9/register", url.Values{"participant_id": {"42"}}, hs.signIn(t, plainUser()))
	assert.Zero(t, gotParticipant, "only admins may substitute the participant")
}

func TestRegister_FailureShowsServerMessage(t *testing.T) {
	hs := newHarness(t)
	hs.api.RegisterFunc = func(context.Context, string, int, int) error {
		return apperrors.Remote(400, "training is full")
	}

	rec := htmxPost(hs, "/trainings/9/register", url.Values{}, hs.signIn(t, plainUser()))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "training is full")
}

func TestCancelRegistration(t *testing.T) {
	hs := newHarness(t)
	hs.api.CancelRegistrationFunc = func(_ context.Context, _ string, trainingID int) error {
		require.Equal(t, 9, trainingID)
		return nil
	}

	rec := htmxPost(hs, "/trainings/9/cancel", url.Values{}, hs.signIn(t, plainUser()))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteTraining_PlainUserForbidden(t *testing.T) {
	hs := newHarness(t)
	rec := htmxDelete(hs, "/trainings/9", hs.signIn(t, plainUser()))
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, hs.api.Calls("DeleteTraining"))
}

func TestDeleteTraining_TrainerAllowed(t *testing.T) {
	hs := newHarness(t)
	rec := htmxDelete(hs, "/trainings/9", hs.signIn(t, trainerUser()))
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, hs.api.Calls("DeleteTraining"))
}

func TestCreateUser_UnknownRoleRejectedLocally(t *testing.T) {
	hs := newHarness(t)
	form := url.Values{
		"name": {"Bea"}, "email": {"bea@studio.dev"},
		"password": {"pw"}, "role": {"owner"},
	}
	rec := htmxPost(hs, "/users", form, hs.signIn(t, adminUser()))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, hs.api.Calls("CreateUser"))
}

func TestCreateUser_AdminSuccess(t *testing.T) {
	hs := newHarness(t)
	var got ports.CreateUserInput
	hs.api.CreateUserFunc = func(_ context.Context, _ string, in ports.CreateUserInput) (model.User, error) {
		got = in
		return model.User{ID: 10, Name: in.Name}, nil
	}

	form := url.Values{
		"name": {"Bea"}, "email": {"bea@studio.dev"},
		"password": {"pw"}, "role": {"trainer"},
	}
	rec := htmxPost(hs, "/users", form, hs.signIn(t, adminUser()))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, ports.CreateUserInput{Name: "Bea", Email: "bea@studio.dev", Password: "pw", Role: "trainer"}, got)
	assert.Contains(t, rec.Header().Get("Hx-Trigger"), "users-changed")
}

func TestDeleteUser_NonAdminBlockedByTabGuard(t *testing.T) {
	hs := newHarness(t)

	rec := htmxDelete(hs, "/users/4", hs.signIn(t, trainerUser()))
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, hs.api.Calls("DeleteUser"))

	rec = htmxDelete(hs, "/users/4", hs.signIn(t, adminUser()))
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, hs.api.Calls("DeleteUser"))
}

func TestCreateUser_EmptyPasswordIsAccepted(t *testing.T) {
	hs := newHarness(t)
	var got ports.CreateUserInput
	hs.api.CreateUserFunc = func(_ context.Context, _ string, in ports.CreateUserInput) (model.User, error) {
		got = in
		return model.User{ID: 11, Name: in.Name}, nil
	}

	form := url.Values{
		"name": {"Cal"}, "email": {"cal@studio.dev"}, "role": {"user"},
	}
	rec := htmxPost(hs, "/users", form, hs.signIn(t, adminUser()))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, hs.api.Calls("CreateUser"))
	assert.Empty(t, got.Password, "remote API generates the password")
}
