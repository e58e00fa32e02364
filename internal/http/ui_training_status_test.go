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
)

func putStatus(hs *harness, cookie *http.Cookie, id, status, previous string) *httptest.ResponseRecorder {
	form := url.Values{"status": {status}, "previous_status": {previous}}
	req := httptest.NewRequest(http.MethodPut, "/trainings/"+id+"/status", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Hx-Request", "true")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	hs.handler.ServeHTTP(rec, req)
	return rec
}

func TestStatusUpdate_SuccessCommitsNewBaseline(t *testing.T) {
	hs := newHarness(t)
	var gotID int
	var gotStatus model.TrainingStatus
	hs.api.UpdateTrainingStatusFunc = func(_ context.Context, _ string, id int, status model.TrainingStatus) error {
		gotID, gotStatus = id, status
		return nil
	}

	rec := putStatus(hs, hs.signIn(t, trainerUser()), "5", "completed", "scheduled")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, gotID)
	assert.Equal(t, model.StatusCompleted, gotStatus)

	body := rec.Body.String()
	assert.Contains(t, body, `value="completed" selected`)
	assert.Contains(t, body, `name="previous_status" value="completed"`, "new value becomes the baseline")
	assert.Contains(t, body, "saved")
	assert.Contains(t, rec.Header().Get("Hx-Trigger"), "training-status-changed")
}

func TestStatusUpdate_UnknownValueNeverLeavesProcess(t *testing.T) {
	hs := newHarness(t)

	rec := putStatus(hs, hs.signIn(t, trainerUser()), "5", "paused", "scheduled")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, hs.api.Calls("UpdateTrainingStatus"), "invalid enum must not reach the API")

	body := rec.Body.String()
	assert.Contains(t, body, `value="scheduled" selected`, "control rolls back to previous value")
	assert.Contains(t, body, "unknown training status")
}

func TestStatusUpdate_RemoteRejectionRollsBackVerbatim(t *testing.T) {
	hs := newHarness(t)
	hs.api.UpdateTrainingStatusFunc = func(context.Context, string, int, model.TrainingStatus) error {
		return apperrors.Remote(403, "forbidden")
	}

	rec := putStatus(hs, hs.signIn(t, trainerUser()), "5", "completed", "scheduled")

	require.Equal(t, http.StatusForbidden, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="scheduled" selected`, "previous value restored")
	assert.Contains(t, body, "forbidden", "server message shown verbatim")
	assert.Empty(t, rec.Header().Get("Hx-Trigger"), "no refresh event on failure")
}

func TestStatusUpdate_TransportFailureRollsBack(t *testing.T) {
	hs := newHarness(t)
	hs.api.UpdateTrainingStatusFunc = func(context.Context, string, int, model.TrainingStatus) error {
		return apperrors.Wrap(assert.AnError, apperrors.ErrCodeLoad, "fitness API unreachable")
	}

	rec := putStatus(hs, hs.signIn(t, adminUser()), "5", "cancelled", "scheduled")

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="scheduled" selected`)
}

func TestStatusUpdate_PlainUserForbiddenLocally(t *testing.T) {
	hs := newHarness(t)

	rec := putStatus(hs, hs.signIn(t, plainUser()), "5", "completed", "scheduled")

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, hs.api.Calls("UpdateTrainingStatus"))
}

func TestStatusUpdate_ReselectingSameValueStillSyncs(t *testing.T) {
	hs := newHarness(t)
	calls := 0
	hs.api.UpdateTrainingStatusFunc = func(context.Context, string, int, model.TrainingStatus) error {
		calls++
		return nil
	}

	rec := putStatus(hs, hs.signIn(t, trainerUser()), "5", "scheduled", "scheduled")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, calls, "idempotent reselect still confirms with the API")
}

func TestStatusUpdate_RequiresSession(t *testing.T) {
	hs := newHarness(t)
	rec := putStatus(hs, nil, "5", "completed", "scheduled")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Hx-Redirect"))
}

func TestStatusControl_DisabledWhileRequestInFlight(t *testing.T) {
	hs := newHarness(t)

	rec := putStatus(hs, hs.signIn(t, trainerUser()), "5", "completed", "scheduled")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hx-disabled-elt="this"`,
		"the fresh fragment must lock itself during the next mutation")
}
