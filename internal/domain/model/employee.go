package model

import "time"

// Employee is a staff record from GET /employees.
type Employee struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Position  string    `json:"position"`
	Salary    *float64  `json:"salary,omitempty"`
	HireDate  time.Time `json:"hire_date"`
	CreatedAt time.Time `json:"created_at"`
	User      *User     `json:"user,omitempty"`
}

// DisplayName returns the linked user's name, or a placeholder when the
// remote API did not embed the user.
func (e Employee) DisplayName() string {
	if e.User != nil && e.User.Name != "" {
		return e.User.Name
	}
	return "N/A"
}
