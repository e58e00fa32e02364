package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fitpulse/studio-ui/internal/domain/model"
	"github.com/fitpulse/studio-ui/internal/domain/view"
	apperrors "github.com/fitpulse/studio-ui/internal/errors"
)

// statusControlData feeds the status select fragment. Value is the select's
// committed baseline; the control always comes back enabled, whatever
// happened to the request.
type statusControlData struct {
	TrainingID int
	Value      model.TrainingStatus
	Statuses   []model.TrainingStatus
	Saved      bool
	Error      string
}

// UpdateTrainingStatus drives the status select on a training card. The
// browser swaps in whatever fragment comes back: on success the new value
// is the baseline, on any failure the previous value is restored and the
// server's message shown next to the control. Values outside the fixed
// enumeration are rejected before any network call.
func (h *Handlers) UpdateTrainingStatus(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())
	if !view.CanMutate(sess.User.Role, view.ActionChangeTrainingStatus) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "bad training id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	next := model.TrainingStatus(r.PostFormValue("status"))
	prev := model.TrainingStatus(r.PostFormValue("previous_status"))

	data := statusControlData{
		TrainingID: id,
		Statuses:   model.TrainingStatuses(),
	}

	if !next.Known() {
		data.Value = prev
		data.Error = "unknown training status"
		h.Renderer.Render(w, http.StatusUnprocessableEntity, "status_control.tmpl", data)
		return
	}

	if err := h.API.UpdateTrainingStatus(r.Context(), sess.Token, id, next); err != nil {
		h.Logger.Warn("status update rejected",
			slog.Int("training_id", id), slog.String("status", string(next)), slog.Any("error", err))
		data.Value = prev
		data.Error = apperrors.UserMessage(err)
		h.Renderer.Render(w, statusUpdateErrorCode(err), "status_control.tmpl", data)
		return
	}

	data.Value = next
	data.Saved = true
	SetHXTrigger(w, "training-status-changed", map[string]any{"id": id, "status": next})
	h.Renderer.Render(w, http.StatusOK, "status_control.tmpl", data)
}

func statusUpdateErrorCode(err error) int {
	if status := apperrors.GetStatus(err); status != 0 {
		return status
	}
	return http.StatusBadGateway
}
