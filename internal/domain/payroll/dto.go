package payroll

import (
	"time"

	"github.com/serviceportals/ops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateRequest struct {
	EmployeeID  string `json:"employee_id"`
	Period      string `json:"period"`
	BaseSalary  string `json:"base_salary"`
	OvertimePay string `json:"overtime_pay"`
	Deductions  string `json:"deductions"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "period must be YYYY-MM"})
	}
	if validator.IsEmpty(r.BaseSalary) {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base_salary is required"})
	} else if amt, err := decimal.NewFromString(r.BaseSalary); err != nil || amt.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base_salary must be a non-negative number"})
	}
	for field, value := range map[string]string{"overtime_pay": r.OvertimePay, "deductions": r.Deductions} {
		if value == "" {
			continue
		}
		if amt, err := decimal.NewFromString(value); err != nil || amt.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be a non-negative number"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SignRequest carries the employee's signature; IP and user agent are
// captured from the request at the handler.
type SignRequest struct {
	ID        string `json:"-"`
	Signature string `json:"signature"`
	Accept    bool   `json:"accept"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

func (r *SignRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Accept && validator.IsEmpty(r.Signature) {
		errs = append(errs, validator.ValidationError{Field: "signature", Message: "signature is required to sign"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID           string          `json:"id"`
	UnitID       string          `json:"unit_id"`
	EmployeeID   string          `json:"employee_id"`
	Period       string          `json:"period"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	OvertimePay  decimal.Decimal `json:"overtime_pay"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetPay       decimal.Decimal `json:"net_pay"`
	Status       Status          `json:"status"`
	SignatureURL *string         `json:"signature_url,omitempty"`
	SignedAt     *time.Time      `json:"signed_at,omitempty"`
	CreatedBy    string          `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:           rec.ID,
		UnitID:       rec.UnitID,
		EmployeeID:   rec.EmployeeID,
		Period:       rec.Period,
		BaseSalary:   rec.BaseSalary,
		OvertimePay:  rec.OvertimePay,
		Deductions:   rec.Deductions,
		NetPay:       rec.NetPay,
		Status:       rec.Status,
		SignatureURL: rec.SignatureURL,
		SignedAt:     rec.SignedAt,
		CreatedBy:    rec.CreatedBy,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
