package schedule

import "time"

// Entry is one employee's daily schedule slot.
type Entry struct {
	ID         string
	UnitID     string
	EmployeeID string
	Date       time.Time
	Shift      string
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
