package httpx

import (
	"io/fs"
	"net/http"

	"github.com/fitpulse/studio-ui/internal/domain/view"
)

// RequireTab wraps a tab handler so only roles with the tab in their
// visible set get through. The remote API enforces its own rules on every
// call; this keeps hidden tabs unreachable by URL too.
func (h *Handlers) RequireTab(tab view.Tab, handler http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok || !view.TabVisible(sess.User.Role, tab) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		handler(w, r)
	})
}

// NewRouter wires every route of the dashboard. StaticFS serves the
// embedded assets; pass nil to skip static file serving in tests.
func NewRouter(h *Handlers, staticFS fs.FS) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	mux.HandleFunc("GET /login", h.LoginPage)
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.Handle("GET /auth/status", h.RequireSession(http.HandlerFunc(h.AuthStatus)))

	mux.Handle("GET /{$}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, view.DefaultTab.Path(), http.StatusSeeOther)
	}))

	// Tab pages. Every one sits behind the session and visibility guards.
	tabs := map[view.Tab]http.HandlerFunc{
		view.TabTrainings:     h.Trainings,
		view.TabMyTrainings:   h.MyTrainings,
		view.TabUsers:         h.Users,
		view.TabClients:       h.Clients,
		view.TabSubscriptions: h.Subscriptions,
		view.TabEmployees:     h.Employees,
	}
	for tab, handler := range tabs {
		mux.Handle("GET "+tab.Path(), h.RequireSession(h.RequireTab(tab, handler)))
	}

	// Training management and per-item actions.
	mux.Handle("GET /trainings/new", h.RequireSession(http.HandlerFunc(h.NewTrainingForm)))
	mux.Handle("POST /trainings", h.RequireSession(http.HandlerFunc(h.CreateTraining)))
	mux.Handle("PUT /trainings/{id}/status", h.RequireSession(http.HandlerFunc(h.UpdateTrainingStatus)))
	mux.Handle("POST /trainings/{id}/register", h.RequireSession(http.HandlerFunc(h.RegisterForTraining)))
	mux.Handle("POST /trainings/{id}/cancel", h.RequireSession(http.HandlerFunc(h.CancelRegistration)))
	mux.Handle("DELETE /trainings/{id}", h.RequireSession(http.HandlerFunc(h.DeleteTraining)))

	// Admin mutations behind the corresponding tab guard.
	mux.Handle("POST /users", h.RequireSession(h.RequireTab(view.TabUsers, h.CreateUser)))
	mux.Handle("DELETE /users/{id}", h.RequireSession(h.RequireTab(view.TabUsers, h.DeleteUser)))
	mux.Handle("DELETE /clients/{id}", h.RequireSession(h.RequireTab(view.TabClients, h.DeleteClient)))
	mux.Handle("POST /subscriptions", h.RequireSession(h.RequireTab(view.TabSubscriptions, h.CreateSubscription)))
	mux.Handle("DELETE /subscriptions/{id}", h.RequireSession(h.RequireTab(view.TabSubscriptions, h.DeleteSubscription)))

	if staticFS != nil {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))
	}

	var handler http.Handler = mux
	handler = Logging(h.Logger)(handler)
	handler = Recover(h.Logger)(handler)
	return handler
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
