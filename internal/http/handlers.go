// Package httpx contains the HTTP surface of the dashboard: middleware,
// template rendering, and the handlers behind every tab and action.
package httpx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fitpulse/studio-ui/internal/ports"
	"github.com/fitpulse/studio-ui/internal/service"
)

// Handlers bundles the dependencies shared by all UI handlers.
type Handlers struct {
	Sessions *service.SessionService
	API      ports.StudioAPI
	Renderer *TemplateRenderer
	Logger   *slog.Logger

	CookieName   string
	CookieDomain string
	SecureCookie bool

	// Now is the clock used for subscription activity checks. Tests pin it.
	Now func() time.Time
}

func (h *Handlers) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handlers) setSessionCookie(w http.ResponseWriter, sid string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    sid,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   h.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handlers) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   h.SecureCookie,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
