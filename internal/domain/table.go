package domain

import "time"

// TableKind represents the kind of game played on a table
type TableKind string

const (
	TableKindPool    TableKind = "pool"
	TableKindRussian TableKind = "russian"
	TableKindSnooker TableKind = "snooker"
)

// Table represents a billiard table of the hall.
// Each table is one row (track) of the booking timeline.
type Table struct {
	ID          int64
	Name        string
	Kind        TableKind
	HourlyPrice float64
	IsActive    bool
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanBeBooked returns true if new bookings may be drafted for the table
func (t *Table) CanBeBooked() bool {
	return t.IsActive
}
