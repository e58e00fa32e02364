package view

import (
	"github.com/fitpulse/studio-ui/internal/domain/auth"
	"github.com/fitpulse/studio-ui/internal/domain/model"
)

// Action names a mutating operation an affordance may trigger.
type Action string

const (
	ActionCreateUser           Action = "create-user"
	ActionDeleteUser           Action = "delete-user"
	ActionDeleteClient         Action = "delete-client"
	ActionCreateTraining       Action = "create-training"
	ActionChangeTrainingStatus Action = "change-training-status"
	ActionCreateSubscription   Action = "create-subscription"
	ActionDeleteSubscription   Action = "delete-subscription"
	ActionDeleteEmployee       Action = "delete-employee"
)

// CanMutate reports whether a role may attempt the given action.
// It mirrors the remote API's route guards: trainer-or-admin for training
// management, admin for everything touching other people's records. Unknown
// roles and unknown actions are denied.
func CanMutate(role auth.Role, action Action) bool {
	if !role.Known() {
		return false
	}
	switch action {
	case ActionCreateTraining, ActionChangeTrainingStatus:
		return role == auth.RoleAdmin || role == auth.RoleTrainer
	case ActionCreateUser, ActionDeleteUser, ActionDeleteClient,
		ActionCreateSubscription, ActionDeleteSubscription, ActionDeleteEmployee:
		return role == auth.RoleAdmin
	default:
		return false
	}
}

// TrainingActions is the per-item affordance set for one training card,
// computed from the current user and the item itself.
type TrainingActions struct {
	IsTrainer       bool // current user leads this training
	IsParticipant   bool // current user is registered on it
	CanRegister     bool
	CanCancel       bool
	CanDelete       bool
	CanChangeStatus bool
}

// ActionsFor computes the affordances the current user gets on a training.
// Registration requires a scheduled training with free capacity; a trainer
// cannot register on their own session. Whether a plain user actually holds
// a valid subscription is the remote API's call, not ours.
func ActionsFor(user auth.User, t model.Training) TrainingActions {
	a := TrainingActions{
		IsTrainer:     t.TrainerID == user.ID,
		IsParticipant: t.HasParticipant(user.ID),
	}
	a.CanRegister = t.Status == model.StatusScheduled &&
		t.CurrentParticipants < t.MaxParticipants &&
		!a.IsParticipant &&
		!a.IsTrainer &&
		user.Role.Known()
	a.CanCancel = a.IsParticipant
	a.CanDelete = user.Role == auth.RoleAdmin || a.IsTrainer
	a.CanChangeStatus = CanMutate(user.Role, ActionChangeTrainingStatus)
	return a
}
