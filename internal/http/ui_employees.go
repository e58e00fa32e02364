package httpx

import (
	"net/http"

	"github.com/fitpulse/studio-ui/internal/domain/view"
)

// Employees renders the staff roster.
func (h *Handlers) Employees(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())

	data := basePageData(r, view.TabEmployees)
	employees, err := h.API.ListEmployees(r.Context(), sess.Token)
	if err != nil {
		h.renderListError(w, r, "employees.tmpl", "employee_list.tmpl", data, err)
		return
	}
	data["Employees"] = view.SortEmployeesByName(employees)

	if IsHTMX(r) {
		h.Renderer.Render(w, http.StatusOK, "employee_list.tmpl", data)
		return
	}
	h.Renderer.Render(w, http.StatusOK, "employees.tmpl", data)
}
