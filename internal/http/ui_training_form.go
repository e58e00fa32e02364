package httpx

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fitpulse/studio-ui/internal/domain/model"
	"github.com/fitpulse/studio-ui/internal/domain/view"
	apperrors "github.com/fitpulse/studio-ui/internal/errors"
	"github.com/fitpulse/studio-ui/internal/ports"
)

// NewTrainingForm serves the creation form. Admins pick any trainer from
// the dropdown; a trainer creates sessions for themselves.
func (h *Handlers) NewTrainingForm(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())
	if !view.CanMutate(sess.User.Role, view.ActionCreateTraining) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	data := basePageData(r, view.TabTrainings)
	data["Title"] = "New Training"
	data["Halls"] = model.HallTypes()
	data["Types"] = []model.TrainingType{model.TypePersonal, model.TypeGroup}

	if sess.IsAdmin() {
		users, err := h.API.ListUsers(r.Context(), sess.Token)
		if err != nil {
			h.Logger.Warn("trainer list unavailable", slog.Any("error", err))
		} else {
			data["Trainers"] = view.Trainers(users)
		}
	}
	h.Renderer.Render(w, http.StatusOK, "training_form.tmpl", data)
}

// CreateTraining handles the form post. Enum fields are checked locally
// before the request leaves; everything else is the remote API's call and
// its rejection message comes back verbatim on the form.
func (h *Handlers) CreateTraining(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())
	if !view.CanMutate(sess.User.Role, view.ActionCreateTraining) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	in, err := trainingInputFromForm(r, sess.User.ID, sess.IsAdmin())
	var created model.Training
	if err == nil {
		created, err = h.API.CreateTraining(r.Context(), sess.Token, in)
	}
	if err == nil && sess.IsAdmin() {
		// An admin may sign a participant up in the same submission.
		if raw := r.PostFormValue("participant_id"); raw != "" {
			if participantID, convErr := strconv.Atoi(raw); convErr == nil && participantID != 0 {
				if regErr := h.API.RegisterForTraining(r.Context(), sess.Token, created.ID, participantID); regErr != nil {
					h.Logger.Warn("participant signup after create failed",
						slog.Int("training_id", created.ID), slog.Any("error", regErr))
				}
			}
		}
	}
	if err != nil {
		h.Logger.Warn("training create failed", slog.Any("error", err))
		data := basePageData(r, view.TabTrainings)
		data["Title"] = "New Training"
		data["Halls"] = model.HallTypes()
		data["Types"] = []model.TrainingType{model.TypePersonal, model.TypeGroup}
		data["Error"] = apperrors.UserMessage(err)
		data["Form"] = r.PostForm
		status := http.StatusUnprocessableEntity
		if s := apperrors.GetStatus(err); s != 0 {
			status = s
		}
		h.Renderer.Render(w, status, "training_form.tmpl", data)
		return
	}

	if IsHTMX(r) {
		SetHXRedirect(w, view.TabTrainings.Path())
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, view.TabTrainings.Path(), http.StatusSeeOther)
}

// trainingInputFromForm builds the create payload, validating the closed
// enumerations and the timestamp before any network traffic.
func trainingInputFromForm(r *http.Request, selfID int, isAdmin bool) (ports.CreateTrainingInput, error) {
	in := ports.CreateTrainingInput{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Type:        r.PostFormValue("type"),
		HallType:    r.PostFormValue("hall_type"),
	}
	if in.Title == "" {
		return in, apperrors.Validation("title is required")
	}
	if model.TrainingType(in.Type) != model.TypePersonal && model.TrainingType(in.Type) != model.TypeGroup {
		return in, apperrors.Validation("unknown training type")
	}
	hallKnown := false
	for _, hall := range model.HallTypes() {
		if model.HallType(in.HallType) == hall {
			hallKnown = true
			break
		}
	}
	if !hallKnown {
		return in, apperrors.Validation("unknown hall type")
	}

	in.TrainerID = selfID
	if isAdmin {
		if raw := r.PostFormValue("trainer_id"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				return in, apperrors.Validation("invalid trainer")
			}
			in.TrainerID = id
		}
	}

	// datetime-local inputs come in without a zone; treat them as local time.
	start, err := time.ParseInLocation("2006-01-02T15:04", r.PostFormValue("start_time"), time.Local)
	if err != nil {
		return in, apperrors.Validation("invalid start time")
	}
	in.StartTime = start.Format(time.RFC3339)

	in.DurationMinutes, err = strconv.Atoi(r.PostFormValue("duration_minutes"))
	if err != nil || in.DurationMinutes <= 0 {
		return in, apperrors.Validation("invalid duration")
	}
	in.MaxParticipants, err = strconv.Atoi(r.PostFormValue("max_participants"))
	if err != nil || in.MaxParticipants <= 0 {
		return in, apperrors.Validation("invalid capacity")
	}
	// Personal sessions take exactly one participant.
	if model.TrainingType(in.Type) == model.TypePersonal {
		in.MaxParticipants = 1
	}
	return in, nil
}
