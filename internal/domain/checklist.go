package domain

import "time"

// ChecklistItem is one entry of the personal compliance checklist, grouped
// into sections and ticked off by the user over time.
type ChecklistItem struct {
	ID        string
	Section   string
	Title     string
	Done      bool
	UpdatedAt time.Time
}
