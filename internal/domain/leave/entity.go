package leave

import "time"

// Kind covers both time-off and overtime requests; they share the same
// review flow.
type Kind string

const (
	KindLeave    Kind = "leave"
	KindOvertime Kind = "overtime"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Request struct {
	ID         string
	UnitID     string
	EmployeeID string
	Kind       Kind
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	ReviewedBy *string
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
