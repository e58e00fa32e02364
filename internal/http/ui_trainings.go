package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/fitpulse/studio-ui/internal/domain/model"
	"github.com/fitpulse/studio-ui/internal/domain/view"
	apperrors "github.com/fitpulse/studio-ui/internal/errors"
	"github.com/fitpulse/studio-ui/internal/ports"
)

// trainingCard pairs a training with the affordances the current user gets
// on it. Templates render straight from this.
type trainingCard struct {
	model.Training
	Actions view.TrainingActions
}

// trainingFilterFromQuery reads the filter controls off the query string.
// Unparseable trainer ids collapse to "any trainer".
func trainingFilterFromQuery(r *http.Request) ports.TrainingFilter {
	f := ports.TrainingFilter{
		HallType: r.URL.Query().Get("hall_type"),
		Status:   r.URL.Query().Get("status"),
	}
	if raw := r.URL.Query().Get("trainer_id"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			f.TrainerID = id
		}
	}
	return f
}

// Trainings renders the schedule tab: all trainings matching the filters,
// soonest first, plus the filter dropdown data. htmx filter changes get
// just the list fragment back.
func (h *Handlers) Trainings(w http.ResponseWriter, r *http.Request) {
	h.renderTrainings(w, r, view.TabTrainings)
}

// MyTrainings renders the personal schedule: trainings the user leads or is
// registered on.
func (h *Handlers) MyTrainings(w http.ResponseWriter, r *http.Request) {
	h.renderTrainings(w, r, view.TabMyTrainings)
}

func (h *Handlers) renderTrainings(w http.ResponseWriter, r *http.Request, tab view.Tab) {
	sess, _ := SessionFromContext(r.Context())
	filter := trainingFilterFromQuery(r)

	var (
		trainings []model.Training
		trainers  []model.User
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		items, err := h.API.ListTrainings(ctx, sess.Token, filter)
		if err != nil {
			return err
		}
		trainings = items
		return nil
	})
	g.Go(func() error {
		// Dropdown data only; a failure here must not take down the tab.
		users, err := h.API.ListUsers(ctx, sess.Token)
		if err != nil {
			h.Logger.Warn("trainer dropdown unavailable", slog.Any("error", err))
			return nil
		}
		trainers = view.Trainers(users)
		return nil
	})

	data := basePageData(r, tab)
	data["Statuses"] = model.TrainingStatuses()
	data["Halls"] = model.HallTypes()
	data["Filter"] = filter

	if err := g.Wait(); err != nil {
		h.renderTrainingsError(w, r, data, err)
		return
	}

	trainings = view.SortTrainings(trainings)
	if tab == view.TabMyTrainings {
		trainings = view.MyTrainings(trainings, sess.User.ID)
	}

	cards := make([]trainingCard, 0, len(trainings))
	for _, t := range trainings {
		cards = append(cards, trainingCard{Training: t, Actions: view.ActionsFor(sess.User, t)})
	}
	data["Trainings"] = cards
	data["Trainers"] = trainers
	data["CanCreate"] = view.CanMutate(sess.User.Role, view.ActionCreateTraining)

	if IsHTMX(r) {
		h.Renderer.Render(w, http.StatusOK, "training_list.tmpl", data)
		return
	}
	h.Renderer.Render(w, http.StatusOK, "trainings.tmpl", data)
}

// renderTrainingsError shows the tab in its error state: the message where
// the list would be, nothing else lost.
func (h *Handlers) renderTrainingsError(w http.ResponseWriter, r *http.Request, data map[string]any, err error) {
	h.Logger.Error("trainings load failed", slog.Any("error", err))
	if apperrors.IsUnauthorized(err) {
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
		h.Renderer.Render(w, status, "training_list.tmpl", data)
		return
	}
	h.Renderer.Render(w, status, "trainings.tmpl", data)
}
