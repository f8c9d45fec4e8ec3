package workorder

import (
	"time"

	"github.com/serviceportals/ops-backend-go/internal/pkg/validator"
)

type CreateWorkOrderRequest struct {
	CustomerID  string  `json:"customer_id"`
	EmployeeID  *string `json:"employee_id"`
	Description string  `json:"description"`
}

func (r *CreateWorkOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CustomerID) {
		errs = append(errs, validator.ValidationError{Field: "customer_id", Message: "customer_id is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkOrderRequest struct {
	ID          string  `json:"-"`
	CustomerID  *string `json:"customer_id"`
	EmployeeID  *string `json:"employee_id"`
	Description *string `json:"description"`
	// ClearEmployee unassigns the order; it wins over EmployeeID.
	ClearEmployee bool `json:"clear_employee"`
}

func (r *UpdateWorkOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CustomerID != nil && validator.IsEmpty(*r.CustomerID) {
		errs = append(errs, validator.ValidationError{Field: "customer_id", Message: "customer_id must not be empty"})
	}
	if r.Description != nil && validator.IsEmpty(*r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SubmitWorkOrderRequest carries the completion evidence. Signature and
// photo fields accept data URLs which are decoded and stored; anything
// else is treated as an already-uploaded URL.
type SubmitWorkOrderRequest struct {
	ID                string `json:"-"`
	CompletionDate    string `json:"completion_date"`
	EmployeeSignature string `json:"employee_signature"`
	CustomerSignature string `json:"customer_signature"`
	BeforePhoto       string `json:"before_photo"`
	AfterPhoto        string `json:"after_photo"`
}

func (r *SubmitWorkOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompletionDate) {
		errs = append(errs, validator.ValidationError{Field: "completion_date", Message: "completion_date is required"})
	} else if _, ok := validator.IsValidDate(r.CompletionDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "completion_date", Message: "completion_date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.EmployeeSignature) {
		errs = append(errs, validator.ValidationError{Field: "employee_signature", Message: "employee_signature is required"})
	}
	if validator.IsEmpty(r.CustomerSignature) {
		errs = append(errs, validator.ValidationError{Field: "customer_signature", Message: "customer_signature is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkOrderResponse struct {
	ID                   string     `json:"id"`
	UnitID               string     `json:"unit_id"`
	CustomerID           string     `json:"customer_id"`
	AssignedEmployeeID   *string    `json:"assigned_employee_id,omitempty"`
	Description          string     `json:"description"`
	Status               Status     `json:"status"`
	BeforePhotoURL       *string    `json:"before_photo_url,omitempty"`
	AfterPhotoURL        *string    `json:"after_photo_url,omitempty"`
	CompletionDate       *time.Time `json:"completion_date,omitempty"`
	EmployeeSignatureURL *string    `json:"employee_signature_url,omitempty"`
	CustomerSignatureURL *string    `json:"customer_signature_url,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func ToResponse(wo WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:                   wo.ID,
		UnitID:               wo.UnitID,
		CustomerID:           wo.CustomerID,
		AssignedEmployeeID:   wo.AssignedEmployeeID,
		Description:          wo.Description,
		Status:               wo.Status,
		BeforePhotoURL:       wo.BeforePhotoURL,
		AfterPhotoURL:        wo.AfterPhotoURL,
		CompletionDate:       wo.CompletionDate,
		EmployeeSignatureURL: wo.EmployeeSignatureURL,
		CustomerSignatureURL: wo.CustomerSignatureURL,
		CreatedAt:            wo.CreatedAt,
		UpdatedAt:            wo.UpdatedAt,
	}
}
