package group

import "time"

// Group represents a circle of people who share expenses. Trip-style groups
// may carry a date range; archived groups are read-only in the UI but their
// transactions keep counting toward balances.
type Group struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CurrencyCode string    `json:"currencyCode"`        // ISO-4217 style, no conversion logic
	Tag          *string   `json:"tag,omitempty"`       // e.g. "trip", "household"
	StartDate    *string   `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate      *string   `json:"endDate,omitempty"`
	Archived     bool      `json:"archived"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Member represents a person's membership in a group. Removing a member
// never cascades to transactions: past entries keep referencing whoever was
// a member when they were created.
type Member struct {
	GroupID  string    `json:"groupId"`
	PersonID string    `json:"personId"`
	AddedAt  time.Time `json:"addedAt"`

	// Populated via JOIN
	Name      string  `json:"name,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}
