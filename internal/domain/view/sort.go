package view

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fitpulse/studio-ui/internal/domain/auth"
	"github.com/fitpulse/studio-ui/internal/domain/model"
)

// collator orders names the way a person would, not byte-wise.
// language.Und keeps the ordering locale-neutral.
var collator = collate.New(language.Und, collate.IgnoreCase)

// SortTrainings orders trainings chronologically ascending by start time.
// The sort is stable: items with equal start times keep server order.
func SortTrainings(items []model.Training) []model.Training {
	out := make([]model.Training, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

// SortUsersByName orders users alphabetically; ties keep server order.
func SortUsersByName(items []model.User) []model.User {
	out := make([]model.User, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return collator.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// SortClientsByName orders clients by their linked user's name.
func SortClientsByName(items []model.Client) []model.Client {
	out := make([]model.Client, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return collator.CompareString(out[i].DisplayName(), out[j].DisplayName()) < 0
	})
	return out
}

// SortEmployeesByName orders employees by their linked user's name.
func SortEmployeesByName(items []model.Employee) []model.Employee {
	out := make([]model.Employee, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return collator.CompareString(out[i].DisplayName(), out[j].DisplayName()) < 0
	})
	return out
}

// MyTrainings keeps the trainings where the user is the trainer or a
// registered participant, preserving input order.
func MyTrainings(items []model.Training, userID int) []model.Training {
	out := make([]model.Training, 0, len(items))
	for _, t := range items {
		if t.TrainerID == userID || t.HasParticipant(userID) {
			out = append(out, t)
		}
	}
	return out
}

// Trainers keeps the users eligible to lead a training (trainer or admin),
// preserving input order. Used to populate trainer dropdowns and filters.
func Trainers(items []model.User) []model.User {
	out := make([]model.User, 0, len(items))
	for _, u := range items {
		if u.IsTrainerRole() {
			out = append(out, u)
		}
	}
	return out
}

// PlainUsers keeps the users with the plain member role, preserving input
// order. Populates the member dropdown on the membership form.
func PlainUsers(items []model.User) []model.User {
	out := make([]model.User, 0, len(items))
	for _, u := range items {
		if u.Role == auth.RoleUser {
			out = append(out, u)
		}
	}
	return out
}

// FilterUsers keeps the users whose name or email contains the term,
// case-insensitively. An empty term keeps everything.
func FilterUsers(items []model.User, term string) []model.User {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := make([]model.User, 0, len(items))
	for _, u := range items {
		if strings.Contains(strings.ToLower(u.Name), term) ||
			strings.Contains(strings.ToLower(u.Email), term) {
			out = append(out, u)
		}
	}
	return out
}

// ActiveSubscriptionsFor keeps the client's subscriptions that are active
// at the given instant, preserving input order.
func ActiveSubscriptionsFor(items []model.Subscription, clientID int, now time.Time) []model.Subscription {
	out := make([]model.Subscription, 0, 1)
	for _, s := range items {
		if s.ClientID == clientID && s.ActiveAt(now) {
			out = append(out, s)
		}
	}
	return out
}
