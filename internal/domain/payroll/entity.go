package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status progression: generated → pending_signature → signed/rejected →
// completed.
type Status string

const (
	StatusGenerated        Status = "generated"
	StatusPendingSignature Status = "pending_signature"
	StatusSigned           Status = "signed"
	StatusRejected         Status = "rejected"
	StatusCompleted        Status = "completed"
)

// Record is one payroll entry. (employee, period) is unique.
type Record struct {
	ID           string
	UnitID       string
	EmployeeID   string
	Period       string // YYYY-MM
	BaseSalary   decimal.Decimal
	OvertimePay  decimal.Decimal
	Deductions   decimal.Decimal
	NetPay       decimal.Decimal
	Status       Status
	SignatureURL *string
	SignedAt     *time.Time
	SignedIP     *string
	SignedUA     *string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanTransition reports whether the status progression allows from → to.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusGenerated:
		return to == StatusPendingSignature
	case StatusPendingSignature:
		return to == StatusSigned || to == StatusRejected
	case StatusSigned:
		return to == StatusCompleted
	}
	return false
}
