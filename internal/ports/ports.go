// Package ports defines interfaces (hexagonal ports) between the dashboard
// and its backing systems. Implementations live in internal/adapters;
// orchestration in internal/service.
package ports

import (
	"context"

	"github.com/fitpulse/studio-ui/internal/domain/auth"
	"github.com/fitpulse/studio-ui/internal/domain/model"
)

// SessionStore persists and retrieves browser sessions by their opaque id.
type SessionStore interface {
	// Save stores the session pair under sid. Token and user land together
	// or not at all.
	Save(ctx context.Context, sid string, sess auth.Session) error

	// Get restores the session pair for sid. A missing session yields
	// ErrCodeSessionRestore; a half-written or unparseable pair is cleared
	// before the same error is returned.
	Get(ctx context.Context, sid string) (auth.Session, error)

	// Delete removes the pair. Deleting an absent session is not an error.
	Delete(ctx context.Context, sid string) error
}

// TrainingFilter narrows a training listing. Zero values mean "any".
type TrainingFilter struct {
	HallType  string
	Status    string
	TrainerID int
}

// CreateTrainingInput carries the fields of a new training. StartTime is
// RFC 3339 because the remote API decodes it into a timestamp directly.
type CreateTrainingInput struct {
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Type            string `json:"type"`
	HallType        string `json:"hall_type"`
	TrainerID       int    `json:"trainer_id"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	MaxParticipants int    `json:"max_participants"`
}

// CreateUserInput carries the fields of a new account.
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	// Password is optional. When empty it is left out of the request body
	// and the remote API generates one.
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

// CreateSubscriptionInput carries the fields of a new membership. The remote
// API keys the subscription on the member's user id and resolves the client
// record itself.
type CreateSubscriptionInput struct {
	UserID    int    `json:"user_id"`
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
}

// StudioAPI is the remote scheduling platform. Every call carries the raw
// session token; non-2xx responses surface as *AppError with the server's
// message verbatim.
type StudioAPI interface {
	// Login exchanges credentials for a token and the account it belongs to.
	Login(ctx context.Context, email, password string) (auth.Session, error)

	// Logout invalidates the token server-side. Best effort.
	Logout(ctx context.Context, token string) error

	ListUsers(ctx context.Context, token string) ([]model.User, error)
	CreateUser(ctx context.Context, token string, in CreateUserInput) (model.User, error)
	DeleteUser(ctx context.Context, token string, id int) error

	ListClients(ctx context.Context, token string) ([]model.Client, error)
	DeleteClient(ctx context.Context, token string, id int) error

	ListTrainings(ctx context.Context, token string, f TrainingFilter) ([]model.Training, error)
	CreateTraining(ctx context.Context, token string, in CreateTrainingInput) (model.Training, error)
	UpdateTrainingStatus(ctx context.Context, token string, id int, status model.TrainingStatus) error
	DeleteTraining(ctx context.Context, token string, id int) error

	// RegisterForTraining signs up a participant. A zero participantID means
	// the token's own account; otherwise the id travels in a header so
	// admins can register clients.
	RegisterForTraining(ctx context.Context, token string, trainingID, participantID int) error
	CancelRegistration(ctx context.Context, token string, trainingID int) error

	ListSubscriptions(ctx context.Context, token string) ([]model.Subscription, error)
	CreateSubscription(ctx context.Context, token string, in CreateSubscriptionInput) (model.Subscription, error)
	DeleteSubscription(ctx context.Context, token string, id int) error

	ListEmployees(ctx context.Context, token string) ([]model.Employee, error)
}
