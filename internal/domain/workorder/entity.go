package workorder

import "time"

// Status is the work order state machine: draft until an employee is
// assigned, assigned while one is, submitted once the employee has
// completed and signed. Submitted is terminal.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusAssigned  Status = "assigned"
	StatusSubmitted Status = "submitted"
)

type WorkOrder struct {
	ID                   string
	UnitID               string
	CustomerID           string
	AssignedEmployeeID   *string
	Description          string
	Status               Status
	BeforePhotoURL       *string
	AfterPhotoURL        *string
	CompletionDate       *time.Time
	EmployeeSignatureURL *string
	CustomerSignatureURL *string
	CreatedBy            string
	UpdatedBy            string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// DeriveStatus computes the pre-submission status from the assignment.
func DeriveStatus(assignedEmployeeID *string) Status {
	if assignedEmployeeID != nil && *assignedEmployeeID != "" {
		return StatusAssigned
	}
	return StatusDraft
}
