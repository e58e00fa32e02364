package httpx

import (
	"net/http"

	"github.com/fitpulse/studio-ui/internal/domain/view"
)

// basePageData assembles the data every full page needs: the signed-in
// account, the tabs its role may see, and which one is active. Handlers add
// their own keys on top.
func basePageData(r *http.Request, active view.Tab) map[string]any {
	data := map[string]any{
		"ActiveTab": active,
		"Title":     active.Title(),
	}
	if sess, ok := SessionFromContext(r.Context()); ok {
		data["User"] = sess.User
		data["Tabs"] = view.VisibleTabs(sess.User.Role)
		data["IsAdmin"] = sess.IsAdmin()
	}
	return data
}
