package model

import "time"

// SubscriptionType is the billing period of a subscription.
type SubscriptionType string

const (
	SubMonthly   SubscriptionType = "monthly"
	SubQuarterly SubscriptionType = "quarterly"
	SubYearly    SubscriptionType = "yearly"
)

// SubscriptionTypes returns the fixed type enumeration in display order.
func SubscriptionTypes() []SubscriptionType {
	return []SubscriptionType{SubMonthly, SubQuarterly, SubYearly}
}

// Known reports whether the type belongs to the fixed enumeration.
func (s SubscriptionType) Known() bool {
	switch s {
	case SubMonthly, SubQuarterly, SubYearly:
		return true
	default:
		return false
	}
}

// Subscription is a membership record from GET /subscriptions.
// End date, price and status are computed by the remote API.
type Subscription struct {
	ID        int              `json:"id"`
	ClientID  int              `json:"client_id"`
	Type      SubscriptionType `json:"type"`
	StartDate time.Time        `json:"start_date"`
	EndDate   time.Time        `json:"end_date"`
	Price     float64          `json:"price"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	Client    *Client          `json:"client,omitempty"`
}

// ActiveAt reports whether the subscription is usable at the given instant.
func (s Subscription) ActiveAt(now time.Time) bool {
	return s.Status == "active" && !s.EndDate.Before(now)
}
