package httpx

import (
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fitpulse/studio-ui/internal/domain/model"
	"github.com/fitpulse/studio-ui/internal/domain/view"
	apperrors "github.com/fitpulse/studio-ui/internal/errors"
	"github.com/fitpulse/studio-ui/internal/ports"
)

// Subscriptions renders the membership tab: all subscriptions plus the
// member accounts the creation form needs. The remote API keys new
// subscriptions on a user id, so the dropdown lists plain-role accounts.
func (h *Handlers) Subscriptions(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())

	var (
		subs  []model.Subscription
		users []model.User
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		items, err := h.API.ListSubscriptions(ctx, sess.Token)
		if err != nil {
			return err
		}
		subs = items
		return nil
	})
	g.Go(func() error {
		items, err := h.API.ListUsers(ctx, sess.Token)
		if err != nil {
			return err
		}
		users = items
		return nil
	})

	data := basePageData(r, view.TabSubscriptions)
	data["Types"] = model.SubscriptionTypes()
	if err := g.Wait(); err != nil {
		h.renderListError(w, r, "subscriptions.tmpl", "subscription_list.tmpl", data, err)
		return
	}

	data["Subscriptions"] = subs
	data["Members"] = view.SortUsersByName(view.PlainUsers(users))

	if IsHTMX(r) {
		h.Renderer.Render(w, http.StatusOK, "subscription_list.tmpl", data)
		return
	}
	h.Renderer.Render(w, http.StatusOK, "subscriptions.tmpl", data)
}

// CreateSubscription handles the new-membership form post. The remote API
// computes end date, price and status from the type.
func (h *Handlers) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	userID, convErr := strconv.Atoi(r.PostFormValue("user_id"))
	subType := r.PostFormValue("type")

	var err error
	switch {
	case convErr != nil || userID == 0:
		err = apperrors.Validation("member is required")
	case !model.SubscriptionType(subType).Known():
		err = apperrors.Validation("unknown subscription type")
	default:
		start := r.PostFormValue("start_date")
		if start == "" {
			start = h.now().Format(time.DateOnly)
		}
		in := ports.CreateSubscriptionInput{UserID: userID, Type: subType, StartDate: start}
		_, err = h.API.CreateSubscription(r.Context(), sess.Token, in)
	}
	if err != nil {
		h.actionFailed(w, r, "create-subscription", userID, err)
		return
	}

	if IsHTMX(r) {
		SetHXTrigger(w, "subscriptions-changed", nil)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, view.TabSubscriptions.Path(), http.StatusSeeOther)
}

// DeleteSubscription removes a membership.
func (h *Handlers) DeleteSubscription(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "bad subscription id", http.StatusBadRequest)
		return
	}

	if err := h.API.DeleteSubscription(r.Context(), sess.Token, id); err != nil {
		h.actionFailed(w, r, "delete-subscription", id, err)
		return
	}

	if IsHTMX(r) {
		SetHXTrigger(w, "subscriptions-changed", nil)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, view.TabSubscriptions.Path(), http.StatusSeeOther)
}
