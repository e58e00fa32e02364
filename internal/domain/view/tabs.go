// Package view holds the pure decision functions behind the dashboard:
// which tabs a role may see, which mutations a role may attempt, which
// actions apply to an individual item, and how fetched collections are
// filtered and sorted. Nothing in this package touches HTTP or templates,
// so every rule is unit-testable on its own.
//
// The functions here decide rendering only. The remote API independently
// enforces authorization on every mutation; this gate is advisory.
package view

import "github.com/fitpulse/studio-ui/internal/domain/auth"

// Tab identifies one dashboard panel. The set is closed: ParseTab rejects
// anything outside it, so adding a tab means touching this file and the
// exhaustive switches below.
type Tab string

const (
	TabTrainings     Tab = "trainings"
	TabMyTrainings   Tab = "my-trainings"
	TabUsers         Tab = "users"
	TabClients       Tab = "clients"
	TabSubscriptions Tab = "subscriptions"
	TabEmployees     Tab = "employees"
)

// DefaultTab is the panel activated right after login.
const DefaultTab = TabTrainings

// ParseTab maps a path segment to a Tab, reporting whether it is known.
func ParseTab(s string) (Tab, bool) {
	switch Tab(s) {
	case TabTrainings, TabMyTrainings, TabUsers, TabClients, TabSubscriptions, TabEmployees:
		return Tab(s), true
	default:
		return "", false
	}
}

// Title returns the human-readable panel heading.
func (t Tab) Title() string {
	switch t {
	case TabTrainings:
		return "Trainings"
	case TabMyTrainings:
		return "My Trainings"
	case TabUsers:
		return "Users"
	case TabClients:
		return "Clients"
	case TabSubscriptions:
		return "Subscriptions"
	case TabEmployees:
		return "Employees"
	default:
		return string(t)
	}
}

// Path returns the route serving the tab.
func (t Tab) Path() string { return "/" + string(t) }

// VisibleTabs returns the tabs a role may open, in display order.
// An unknown or absent role yields no tabs at all (fail closed).
func VisibleTabs(role auth.Role) []Tab {
	switch role {
	case auth.RoleAdmin:
		return []Tab{TabTrainings, TabMyTrainings, TabUsers, TabClients, TabSubscriptions, TabEmployees}
	case auth.RoleTrainer, auth.RoleUser:
		return []Tab{TabTrainings, TabMyTrainings}
	default:
		return nil
	}
}

// TabVisible reports whether a single tab is in the role's visible set.
func TabVisible(role auth.Role, tab Tab) bool {
	for _, t := range VisibleTabs(role) {
		if t == tab {
			return true
		}
	}
	return false
}
