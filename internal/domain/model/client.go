package model

import "time"

// Client is a fitness-club client record from GET /clients.
type Client struct {
	ID        int        `json:"id"`
	UserID    int        `json:"user_id"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	User      *User      `json:"user,omitempty"`
}

// DisplayName returns the linked user's name, or a placeholder when the
// remote API did not embed the user.
func (c Client) DisplayName() string {
	if c.User != nil && c.User.Name != "" {
		return c.User.Name
	}
	return "N/A"
}
