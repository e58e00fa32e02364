package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitpulse/studio-ui/internal/domain/model"
	apperrors "github.com/fitpulse/studio-ui/internal/errors"
	"github.com/fitpulse/studio-ui/internal/ports"
)

func sampleTrainings() []model.Training {
	base := time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)
	return []model.Training{
		{
			ID: 2, Title: "Evening Pilates", Status: model.StatusScheduled,
			HallType: model.HallPilates, Type: model.TypeGroup,
			StartTime: base.Add(8 * time.Hour), MaxParticipants: 10, TrainerID: 2,
		},
		{
			ID: 1, Title: "Morning Yoga", Status: model.StatusScheduled,
			HallType: model.HallYoga, Type: model.TypeGroup,
			StartTime: base, MaxParticipants: 10, TrainerID: 2,
		},
	}
}

func TestTrainingsPage_SortedBySoonestFirst(t *testing.T) {
	hs := newHarness(t)
	hs.api.ListTrainingsFunc = func(context.Context, string, ports.TrainingFilter) ([]model.Training, error) {
		return sampleTrainings(), nil
	}

	rec := hs.get("/trainings", hs.signIn(t, plainUser()))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	yoga := strings.Index(body, "Morning Yoga")
	pilates := strings.Index(body, "Evening Pilates")
	require.GreaterOrEqual(t, yoga, 0)
	require.GreaterOrEqual(t, pilates, 0)
	assert.Less(t, yoga, pilates, "earlier training renders first")
}

func TestTrainingsPage_FilterForwardedToAPI(t *testing.T) {
	hs := newHarness(t)
	var got ports.TrainingFilter
	hs.api.ListTrainingsFunc = func(_ context.Context, _ string, f ports.TrainingFilter) ([]model.Training, error) {
		got = f
		return nil, nil
	}

	rec := hs.get("/trainings?hall_type=yoga&status=scheduled&trainer_id=4", hs.signIn(t, plainUser()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ports.TrainingFilter{HallType: "yoga", Status: "scheduled", TrainerID: 4}, got)
}

func TestTrainingsPage_LoadFailureShowsErrorState(t *testing.T) {
	hs := newHarness(t)
	hs.api.ListTrainingsFunc = func(context.Context, string, ports.TrainingFilter) ([]model.Training, error) {
		return nil, apperrors.Load("invalid data format")
	}

	rec := hs.get("/trainings", hs.signIn(t, plainUser()))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "invalid data format")
	assert.Contains(t, body, "Trainings", "navigation survives the error state")
}

func TestTrainingsPage_TokenForwardedRaw(t *testing.T) {
	hs := newHarness(t)
	var gotToken string
	hs.api.ListTrainingsFunc = func(_ context.Context, token string, _ ports.TrainingFilter) ([]model.Training, error) {
		gotToken = token
		return nil, nil
	}

	cookie := hs.signIn(t, plainUser())
	hs.get("/trainings", cookie)
	assert.Equal(t, "tok-sid-user", gotToken)
}

func TestMyTrainings_OnlyOwnItems(t *testing.T) {
	hs := newHarness(t)
	items := sampleTrainings()
	// Uma (id 3) is registered only on training 1.
	items[1].Participants = []model.TrainingParticipant{{UserID: 3}}
	hs.api.ListTrainingsFunc = func(context.Context, string, ports.TrainingFilter) ([]model.Training, error) {
		return items, nil
	}

	rec := hs.get("/my-trainings", hs.signIn(t, plainUser()))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Morning Yoga")
	assert.NotContains(t, body, "Evening Pilates")
}

func TestForbiddenTab_Returns403(t *testing.T) {
	hs := newHarness(t)
	for _, path := range []string{"/users", "/clients", "/subscriptions", "/employees"} {
		rec := hs.get(path, hs.signIn(t, plainUser()))
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
	}
	assert.Zero(t, hs.api.Calls("ListUsers"), "forbidden tabs never hit the API")
}

func TestAdminSeesAllTabs(t *testing.T) {
	hs := newHarness(t)
	hs.api.ListEmployeesFunc = func(context.Context, string) ([]model.Employee, error) {
		return []model.Employee{{ID: 1, Position: "manager", User: &model.User{Name: "Mia"}}}, nil
	}

	rec := hs.get("/employees", hs.signIn(t, adminUser()))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mia")
}

func TestExpiredToken_ClearsCookieAndReturnsToLogin(t *testing.T) {
	hs := newHarness(t)
	hs.api.ListTrainingsFunc = func(context.Context, string, ports.TrainingFilter) ([]model.Training, error) {
		return nil, apperrors.Remote(http.StatusUnauthorized, "invalid token")
	}

	rec := hs.get("/trainings", hs.signIn(t, plainUser()))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "stale sid cookie must be dropped")
}

func TestExpiredToken_HTMXGetsLoginRedirect(t *testing.T) {
	hs := newHarness(t)
	hs.api.ListUsersFunc = func(context.Context, string) ([]model.User, error) {
		return nil, apperrors.Remote(http.StatusUnauthorized, "invalid token")
	}

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Hx-Request", "true")
	req.AddCookie(hs.signIn(t, adminUser()))
	rec := httptest.NewRecorder()
	hs.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Hx-Redirect"))
}
