// Package model holds the wire-level resource types served by the remote
// fitness-club API. Field names and JSON tags mirror the remote payloads
// exactly; the API remains the authority for all of them.
package model

import (
	"time"

	"github.com/fitpulse/studio-ui/internal/domain/auth"
)

// User is a directory entry from GET /users.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      auth.Role `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsTrainerRole reports whether the user can lead trainings.
// Admins may be assigned as trainers, matching the remote API's rules.
func (u User) IsTrainerRole() bool {
	return u.Role == auth.RoleTrainer || u.Role == auth.RoleAdmin
}
