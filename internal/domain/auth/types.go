package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

// Role represents an application's authorization role.
// Keep string form for easy persistence and JSON round-trips.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTrainer Role = "trainer"
	RoleUser    Role = "user"
)

// Known reports whether the role is one of the fixed role set.
// Anything else is treated as absent and fails closed everywhere.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleTrainer, RoleUser:
		return true
	default:
		return false
	}
}

// User is the authenticated identity returned by the remote API on login.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role"`
}

// Session pairs the opaque API credential with the identity it belongs to.
// Token and User are either both set or both absent; a half-set pair is
// never constructed and never persisted.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Valid reports whether the session forms a complete, well-formed pair.
func (s Session) Valid() bool {
	return s.Token != "" && s.User.ID != 0 && s.User.Role.Known()
}

// IsAdmin reports whether the session belongs to an administrator.
func (s Session) IsAdmin() bool { return s.User.Role == RoleAdmin }
