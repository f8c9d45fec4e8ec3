package ticket

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

type Ticket struct {
	ID          string
	UnitID      string
	CustomerID  string
	AssigneeIDs []string
	Subject     string
	Description string
	Priority    Priority
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AuthorKind distinguishes who wrote a comment.
type AuthorKind string

const (
	AuthorAdmin    AuthorKind = "admin"
	AuthorEmployee AuthorKind = "employee"
	AuthorCustomer AuthorKind = "customer"
)

// Comment attaches to a ticket. Internal comments are never returned to
// customers.
type Comment struct {
	ID         string
	TicketID   string
	AuthorKind AuthorKind
	AuthorID   string
	Body       string
	Internal   bool
	CreatedAt  time.Time
}

func ValidPriority(p string) bool {
	switch Priority(p) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}
