package auth

import (
	"github.com/serviceportals/ops-backend-go/internal/domain/customer"
	"github.com/serviceportals/ops-backend-go/internal/domain/employee"
	"github.com/serviceportals/ops-backend-go/internal/pkg/validator"
)

type AdminLoginRequest struct {
	BusinessUnit string `json:"business_unit"`
	Password     string `json:"password"`
}

func (r *AdminLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BusinessUnit) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_unit",
			Message: "business_unit is required",
		})
	} else if !validator.IsValidUnitCode(r.BusinessUnit) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_unit",
			Message: "business_unit may only contain letters, numbers, underscores, and hyphens",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeLoginRequest struct {
	Name         string `json:"name"`
	Password     string `json:"password"`
	BusinessUnit string `json:"business_unit"`
}

func (r *EmployeeLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}
	// business_unit is optional: an empty value falls back to a
	// cross-unit name search.
	if !validator.IsEmpty(r.BusinessUnit) && !validator.IsValidUnitCode(r.BusinessUnit) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_unit",
			Message: "business_unit may only contain letters, numbers, underscores, and hyphens",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CustomerLoginRequest struct {
	Identifier   string `json:"identifier"`
	Password     string `json:"password"`
	BusinessUnit string `json:"business_unit"`
}

func (r *CustomerLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Identifier) {
		errs = append(errs, validator.ValidationError{
			Field:   "identifier",
			Message: "identifier is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}
	if validator.IsEmpty(r.BusinessUnit) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_unit",
			Message: "business_unit is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r *ForgotPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if !validator.IsValidOTP(r.OTP) {
		errs = append(errs, validator.ValidationError{
			Field:   "otp",
			Message: "otp must be a six-digit code",
		})
	}
	if validator.IsEmpty(r.NewPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password is required",
		})
	} else if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be at least 8 characters long",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdminLoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt int64         `json:"expires_at"`
	Admin     AdminResponse `json:"admin"`
}

type AdminResponse struct {
	ID           string `json:"id"`
	BusinessUnit string `json:"business_unit"`
	Name         string `json:"name"`
	Email        string `json:"email"`
}

type EmployeeLoginResponse struct {
	Token     string                    `json:"token"`
	ExpiresAt int64                     `json:"expires_at"`
	Employee  employee.EmployeeResponse `json:"employee"`
}

type CustomerLoginResponse struct {
	Token     string                    `json:"token"`
	ExpiresAt int64                     `json:"expires_at"`
	Customer  customer.CustomerResponse `json:"customer"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
