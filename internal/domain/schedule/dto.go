package schedule

import (
	"time"

	"github.com/serviceportals/ops-backend-go/internal/pkg/validator"
)

type CreateEntryRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Shift      string  `json:"shift"`
	Notes      *string `json:"notes"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Shift) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "shift is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEntryRequest struct {
	ID    string  `json:"-"`
	Date  *string `json:"date"`
	Shift *string `json:"shift"`
	Notes *string `json:"notes"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
		}
	}
	if r.Shift != nil && validator.IsEmpty(*r.Shift) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "shift must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID         string    `json:"id"`
	UnitID     string    `json:"unit_id"`
	EmployeeID string    `json:"employee_id"`
	Date       time.Time `json:"date"`
	Shift      string    `json:"shift"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:         e.ID,
		UnitID:     e.UnitID,
		EmployeeID: e.EmployeeID,
		Date:       e.Date,
		Shift:      e.Shift,
		Notes:      e.Notes,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
