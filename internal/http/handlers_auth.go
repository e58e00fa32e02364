package httpx

import (
	"log/slog"
	"net/http"

	"github.com/fitpulse/studio-ui/internal/domain/view"
	apperrors "github.com/fitpulse/studio-ui/internal/errors"
)

// LoginPage serves the login form. An already-authenticated browser is sent
// straight to the default tab.
func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.CookieName); err == nil && cookie.Value != "" {
		if _, err := h.Sessions.Current(r.Context(), cookie.Value); err == nil {
			http.Redirect(w, r, view.DefaultTab.Path(), http.StatusSeeOther)
			return
		}
		h.clearSessionCookie(w)
	}
	h.Renderer.Render(w, http.StatusOK, "login.tmpl", map[string]any{"Title": "Sign in", "Email": "", "Error": ""})
}

// Login handles the credential form post. Success sets the sid cookie and
// navigates to the default tab; failure re-renders the form with the remote
// API's message verbatim.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	res, err := h.Sessions.Login(r.Context(), email, password)
	if err != nil {
		h.Logger.Warn("login failed", slog.String("email", email), slog.Any("error", err))
		h.Renderer.Render(w, loginErrorStatus(err), "login.tmpl", map[string]any{
			"Title": "Sign in",
			"Error": apperrors.UserMessage(err),
			"Email": email,
		})
		return
	}

	h.setSessionCookie(w, res.SID)
	if IsHTMX(r) {
		SetHXRedirect(w, view.DefaultTab.Path())
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, view.DefaultTab.Path(), http.StatusSeeOther)
}

func loginErrorStatus(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsUnauthorized(err):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}

// Logout drops the session and clears the cookie. Always lands on login.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.CookieName); err == nil && cookie.Value != "" {
		if err := h.Sessions.Logout(r.Context(), cookie.Value); err != nil {
			h.Logger.Warn("logout cleanup failed", slog.Any("error", err))
		}
	}
	h.clearSessionCookie(w)
	if IsHTMX(r) {
		SetHXRedirect(w, "/login")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// AuthStatus reports the current account as JSON. Used by probes and by the
// frontend to refresh its idea of who is signed in.
func (h *Handlers) AuthStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, map[string]any{"authenticated": false})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          sess.User,
	})
}
