package employee

import "time"

type Employee struct {
	ID            string
	UnitID        string
	Name          string
	Email         string
	PhoneNumber   *string
	PasswordHash  string
	Status        Status
	FeatureAccess []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Status tracks dispatch availability. An employee is flipped to
// unavailable while assigned to a work order and released on submission
// or unassignment.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
)

// Feature access grants. An employee whose FeatureAccess contains one of
// these names may reach the matching admin-surface screens; admins are
// never gated.
const (
	FeatureCustomers = "customers"
	FeatureTickets   = "tickets"
)
