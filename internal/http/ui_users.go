package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fitpulse/studio-ui/internal/domain/auth"
	"github.com/fitpulse/studio-ui/internal/domain/view"
	apperrors "github.com/fitpulse/studio-ui/internal/errors"
	"github.com/fitpulse/studio-ui/internal/ports"
)

// Users renders the account directory with an optional search term.
func (h *Handlers) Users(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())

	data := basePageData(r, view.TabUsers)
	data["Query"] = r.URL.Query().Get("q")
	data["Roles"] = []auth.Role{auth.RoleUser, auth.RoleTrainer, auth.RoleAdmin}

	users, err := h.API.ListUsers(r.Context(), sess.Token)
	if err != nil {
		h.renderListError(w, r, "users.tmpl", "user_list.tmpl", data, err)
		return
	}

	users = view.FilterUsers(users, r.URL.Query().Get("q"))
	data["Users"] = view.SortUsersByName(users)

	if IsHTMX(r) {
		h.Renderer.Render(w, http.StatusOK, "user_list.tmpl", data)
		return
	}
	h.Renderer.Render(w, http.StatusOK, "users.tmpl", data)
}

// CreateUser handles the new-account form post.
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	in := ports.CreateUserInput{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Role:     r.PostFormValue("role"),
	}
	// Password stays optional. An empty one is omitted from the request and
	// the remote API generates one for the account.
	var err error
	if in.Name == "" || in.Email == "" {
		err = apperrors.Validation("name and email are required")
	} else if !auth.Role(in.Role).Known() {
		err = apperrors.Validation("unknown role")
	} else {
		_, err = h.API.CreateUser(r.Context(), sess.Token, in)
	}
	if err != nil {
		h.actionFailed(w, r, "create-user", 0, err)
		return
	}

	if IsHTMX(r) {
		SetHXTrigger(w, "users-changed", nil)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, view.TabUsers.Path(), http.StatusSeeOther)
}

// DeleteUser removes an account.
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "bad user id", http.StatusBadRequest)
		return
	}

	if err := h.API.DeleteUser(r.Context(), sess.Token, id); err != nil {
		h.actionFailed(w, r, "delete-user", id, err)
		return
	}

	if IsHTMX(r) {
		SetHXTrigger(w, "users-changed", nil)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, view.TabUsers.Path(), http.StatusSeeOther)
}

// renderListError shows a tab in its error state: the message where the
// list would be, filters and navigation intact.
func (h *Handlers) renderListError(w http.ResponseWriter, r *http.Request, page, fragment string, data map[string]any, err error) {
	h.Logger.Error("list load failed", slog.String("page", page), slog.Any("error", err))
	if apperrors.IsUnauthorized(err) {
		// The remote API no longer accepts the stored token. Drop the stale
		// cookie and start over at the login form.
		h.clearSessionCookie(w)
		redirectToLogin(w, r)
		return
	}
	data["Error"] = apperrors.UserMessage(err)
	status := http.StatusBadGateway
	if apperrors.IsForbidden(err) {
		status = http.StatusForbidden
	}
	if IsHTMX(r) {
		h.Renderer.Render(w, status, fragment, data)
		return
	}
	h.Renderer.Render(w, status, page, data)
}
