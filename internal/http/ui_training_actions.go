package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fitpulse/studio-ui/internal/domain/auth"
	"github.com/fitpulse/studio-ui/internal/domain/view"
	apperrors "github.com/fitpulse/studio-ui/internal/errors"
)

// trainingsChangedEvent tells the page to refetch the visible training list.
const trainingsChangedEvent = "trainings-changed"

// RegisterForTraining signs the current user up for a training. Admins may
// register someone else by submitting a participant_id; the remote API only
// honors it for the admin role, so no local gate is needed beyond passing
// it through.
func (h *Handlers) RegisterForTraining(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "bad training id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	participantID := 0
	if raw := r.PostFormValue("participant_id"); raw != "" && sess.IsAdmin() {
		participantID, _ = strconv.Atoi(raw)
	}

	if err := h.API.RegisterForTraining(r.Context(), sess.Token, id, participantID); err != nil {
		h.actionFailed(w, r, "register", id, err)
		return
	}
	h.actionSucceeded(w, r)
}

// CancelRegistration withdraws the current user from a training.
func (h *Handlers) CancelRegistration(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "bad training id", http.StatusBadRequest)
		return
	}

	if err := h.API.CancelRegistration(r.Context(), sess.Token, id); err != nil {
		h.actionFailed(w, r, "cancel", id, err)
		return
	}
	h.actionSucceeded(w, r)
}

// DeleteTraining removes a training. Admins delete anything; a trainer may
// delete their own session. The remote API checks again on its side.
func (h *Handlers) DeleteTraining(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "bad training id", http.StatusBadRequest)
		return
	}
	if !sess.IsAdmin() && sess.User.Role != auth.RoleTrainer {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	if err := h.API.DeleteTraining(r.Context(), sess.Token, id); err != nil {
		h.actionFailed(w, r, "delete", id, err)
		return
	}
	h.actionSucceeded(w, r)
}

// actionSucceeded answers an htmx action post: no body, just the event that
// makes the page refetch its list. Plain form posts bounce back to the tab.
func (h *Handlers) actionSucceeded(w http.ResponseWriter, r *http.Request) {
	if IsHTMX(r) {
		SetHXTrigger(w, trainingsChangedEvent, nil)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, view.TabTrainings.Path(), http.StatusSeeOther)
}

// actionFailed renders the inline error fragment with the server's message.
func (h *Handlers) actionFailed(w http.ResponseWriter, r *http.Request, action string, id int, err error) {
	h.Logger.Warn("training action failed",
		slog.String("action", action), slog.Int("training_id", id), slog.Any("error", err))
	status := apperrors.GetStatus(err)
	if status == 0 {
		if apperrors.IsValidation(err) {
			status = http.StatusUnprocessableEntity
		} else {
			status = http.StatusBadGateway
		}
	}
	if IsHTMX(r) {
		h.Renderer.Render(w, status, "action_error.tmpl", map[string]any{
			"Error": apperrors.UserMessage(err),
		})
		return
	}
	http.Error(w, apperrors.UserMessage(err), status)
}
