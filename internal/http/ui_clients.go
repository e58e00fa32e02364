package httpx

import (
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fitpulse/studio-ui/internal/domain/model"
	"github.com/fitpulse/studio-ui/internal/domain/view"
)

// clientRow pairs a client with their currently active subscriptions.
type clientRow struct {
	model.Client
	ActiveSubscriptions []model.Subscription
}

// Clients renders the client roster with each client's active memberships.
// Both collections load concurrently.
func (h *Handlers) Clients(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())

	var (
		clients []model.Client
		subs    []model.Subscription
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		items, err := h.API.ListClients(ctx, sess.Token)
		if err != nil {
			return err
		}
		clients = items
		return nil
	})
	g.Go(func() error {
		items, err := h.API.ListSubscriptions(ctx, sess.Token)
		if err != nil {
			return err
		}
		subs = items
		return nil
	})

	data := basePageData(r, view.TabClients)
	if err := g.Wait(); err != nil {
		h.renderListError(w, r, "clients.tmpl", "client_list.tmpl", data, err)
		return
	}

	now := h.now()
	rows := make([]clientRow, 0, len(clients))
	for _, c := range view.SortClientsByName(clients) {
		rows = append(rows, clientRow{
			Client:              c,
			ActiveSubscriptions: view.ActiveSubscriptionsFor(subs, c.ID, now),
		})
	}
	data["Clients"] = rows
	data["Now"] = now.Format(time.RFC3339)

	if IsHTMX(r) {
		h.Renderer.Render(w, http.StatusOK, "client_list.tmpl", data)
		return
	}
	h.Renderer.Render(w, http.StatusOK, "clients.tmpl", data)
}

// DeleteClient removes a client record.
func (h *Handlers) DeleteClient(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "bad client id", http.StatusBadRequest)
		return
	}

	if err := h.API.DeleteClient(r.Context(), sess.Token, id); err != nil {
		h.actionFailed(w, r, "delete-client", id, err)
		return
	}

	if IsHTMX(r) {
		SetHXTrigger(w, "clients-changed", nil)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, view.TabClients.Path(), http.StatusSeeOther)
}
