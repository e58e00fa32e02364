package httpx_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fitpulse/studio-ui/internal/domain/auth"
	httpx "github.com/fitpulse/studio-ui/internal/http"
	"github.com/fitpulse/studio-ui/internal/mocks"
	"github.com/fitpulse/studio-ui/internal/service"
)

const testCookieName = "studio_sid"

type harness struct {
	handler http.Handler
	api     *mocks.FakeStudioAPI
	store   *mocks.MemorySessionStore
}

// newHarness wires the full router against in-memory fakes and the real
// templates on disk.
func newHarness(t *testing.T) *harness {
	t.Helper()

	renderer, err := httpx.NewTemplateRenderer(httpx.TemplateRendererConfig{
		TemplateFS: os.DirFS("../../frontend/templates"),
		Logger:     slog.New(slog.NewTextHandler(os.Stderr, nil)),
	})
	require.NoError(t, err)

	api := mocks.NewFakeStudioAPI()
	store := mocks.NewMemorySessionStore()
	sessions := service.NewSessionService(service.SessionServiceOptions{API: api, Sessions: store})

	h := &httpx.Handlers{
		Sessions:   sessions,
		API:        api,
		Renderer:   renderer,
		Logger:     slog.New(slog.NewTextHandler(os.Stderr, nil)),
		CookieName: testCookieName,
		Now:        func() time.Time { return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
	return &harness{handler: httpx.NewRouter(h, nil), api: api, store: store}
}

// signIn seeds a session in the store and returns its cookie.
func (hs *harness) signIn(t *testing.T, user auth.User) *http.Cookie {
	t.Helper()
	sid := "sid-" + string(user.Role)
	sess := auth.Session{Token: "tok-" + sid, User: user}
	require.NoError(t, hs.store.Save(context.Background(), sid, sess))
	return &http.Cookie{Name: testCookieName, Value: sid}
}

func (hs *harness) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	hs.handler.ServeHTTP(rec, req)
	return rec
}

func adminUser() auth.User {
	return auth.User{ID: 1, Name: "Ada Admin", Email: "ada@studio.dev", Role: auth.RoleAdmin}
}

func trainerUser() auth.User {
	return auth.User{ID: 2, Name: "Tom Trainer", Email: "tom@studio.dev", Role: auth.RoleTrainer}
}

func plainUser() auth.User {
	return auth.User{ID: 3, Name: "Uma User", Email: "uma@studio.dev", Role: auth.RoleUser}
}
