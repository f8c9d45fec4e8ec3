package asset

import (
	"time"

	"github.com/serviceportals/ops-backend-go/internal/pkg/validator"
)

type TrackedDateInput struct {
	Kind   string  `json:"kind"`
	Due    *string `json:"due"`
	Status string  `json:"status"`
}

type CreateAssetRequest struct {
	Name         string             `json:"name"`
	Category     string             `json:"category"`
	DocumentURL  *string            `json:"document_url"`
	TrackedDates []TrackedDateInput `json:"tracked_dates"`
}

func validKind(k string) bool {
	for _, kind := range AllDateKinds() {
		if string(kind) == k {
			return true
		}
	}
	return false
}

func validDateStatus(s string) bool {
	switch DateStatus(s) {
	case DateStatusUpcoming, DateStatusOverdue, DateStatusCleared:
		return true
	}
	return false
}

func validateTrackedDates(dates []TrackedDateInput, errs validator.ValidationErrors) validator.ValidationErrors {
	for _, td := range dates {
		if !validKind(td.Kind) {
			errs = append(errs, validator.ValidationError{Field: "tracked_dates", Message: "unknown date kind: " + td.Kind})
		}
		if td.Status != "" && !validDateStatus(td.Status) {
			errs = append(errs, validator.ValidationError{Field: "tracked_dates", Message: "status must be upcoming, overdue, or cleared"})
		}
		if td.Due != nil {
			if _, ok := validator.IsValidDate(*td.Due); !ok {
				errs = append(errs, validator.ValidationError{Field: "tracked_dates", Message: "due must be YYYY-MM-DD"})
			}
		}
	}
	return errs
}

func (r *CreateAssetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	errs = validateTrackedDates(r.TrackedDates, errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAssetRequest struct {
	ID           string              `json:"-"`
	Name         *string             `json:"name"`
	Category     *string             `json:"category"`
	DocumentURL  *string             `json:"document_url"`
	TrackedDates *[]TrackedDateInput `json:"tracked_dates"`
}

func (r *UpdateAssetRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.TrackedDates != nil {
		errs = validateTrackedDates(*r.TrackedDates, errs)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssetResponse struct {
	ID           string        `json:"id"`
	UnitID       string        `json:"unit_id"`
	Name         string        `json:"name"`
	Category     string        `json:"category"`
	DocumentURL  *string       `json:"document_url,omitempty"`
	TrackedDates []TrackedDate `json:"tracked_dates"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func ToResponse(a Asset) AssetResponse {
	return AssetResponse{
		ID:           a.ID,
		UnitID:       a.UnitID,
		Name:         a.Name,
		Category:     a.Category,
		DocumentURL:  a.DocumentURL,
		TrackedDates: a.TrackedDates,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
