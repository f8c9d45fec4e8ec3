package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered in this business unit")
	ErrInvalidStatus    = errors.New("status must be available or unavailable")
	ErrStatusForbidden  = errors.New("availability can only be changed by an admin or the employee themself")
)
