package model

import "time"

// TrainingStatus is the lifecycle state of a training.
type TrainingStatus string

const (
	StatusScheduled TrainingStatus = "scheduled"
	StatusCompleted TrainingStatus = "completed"
	StatusCancelled TrainingStatus = "cancelled"
)

// TrainingStatuses returns the fixed status enumeration in display order.
func TrainingStatuses() []TrainingStatus {
	return []TrainingStatus{StatusScheduled, StatusCompleted, StatusCancelled}
}

// Known reports whether the status belongs to the fixed enumeration.
// An out-of-enumeration value must be rejected before any network call.
func (s TrainingStatus) Known() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// TrainingType distinguishes personal from group sessions.
type TrainingType string

const (
	TypePersonal TrainingType = "personal"
	TypeGroup    TrainingType = "group"
)

// HallType identifies the hall a training takes place in.
type HallType string

const (
	HallPilates HallType = "pilates"
	HallYoga    HallType = "yoga"
	HallGym     HallType = "gym"
	HallDance   HallType = "dance"
	HallCardio  HallType = "cardio"
)

// HallTypes returns the fixed hall enumeration in display order.
func HallTypes() []HallType {
	return []HallType{HallPilates, HallYoga, HallGym, HallDance, HallCardio}
}

// Training is a scheduled class from GET /trainings.
type Training struct {
	ID                  int                   `json:"id"`
	TrainerID           int                   `json:"trainer_id"`
	Title               string                `json:"title"`
	Description         string                `json:"description"`
	Type                TrainingType          `json:"type"`
	HallType            HallType              `json:"hall_type"`
	StartTime           time.Time             `json:"start_time"`
	DurationMinutes     int                   `json:"duration_minutes"`
	MaxParticipants     int                   `json:"max_participants"`
	CurrentParticipants int                   `json:"current_participants"`
	Status              TrainingStatus        `json:"status"`
	CreatedAt           time.Time             `json:"created_at"`
	Trainer             *User                 `json:"trainer,omitempty"`
	Participants        []TrainingParticipant `json:"participants,omitempty"`
}

// EndTime derives the end of the session from start time and duration.
func (t Training) EndTime() time.Time {
	return t.StartTime.Add(time.Duration(t.DurationMinutes) * time.Minute)
}

// HasParticipant reports whether the given user is registered.
func (t Training) HasParticipant(userID int) bool {
	for _, p := range t.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// TrainingParticipant is one registration row on a training.
type TrainingParticipant struct {
	ID           int       `json:"id"`
	TrainingID   int       `json:"training_id"`
	UserID       int       `json:"user_id"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registered_at"`
	User         *User     `json:"user,omitempty"`
}
