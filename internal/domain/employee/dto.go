package employee

import "github.com/serviceportals/ops-backend-go/internal/pkg/validator"

type CreateEmployeeRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	PhoneNumber   *string  `json:"phone_number"`
	Password      string   `json:"password"`
	FeatureAccess []string `json:"feature_access"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 255 characters"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters long"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string    `json:"-"`
	Name          *string   `json:"name"`
	Email         *string   `json:"email"`
	PhoneNumber   *string   `json:"phone_number"`
	FeatureAccess *[]string `json:"feature_access"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusAvailable) && r.Status != string(StatusUnavailable) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be available or unavailable"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string   `json:"id"`
	UnitID        string   `json:"unit_id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	PhoneNumber   *string  `json:"phone_number,omitempty"`
	Status        Status   `json:"status"`
	FeatureAccess []string `json:"feature_access"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		UnitID:        e.UnitID,
		Name:          e.Name,
		Email:         e.Email,
		PhoneNumber:   e.PhoneNumber,
		Status:        e.Status,
		FeatureAccess: e.FeatureAccess,
	}
}
