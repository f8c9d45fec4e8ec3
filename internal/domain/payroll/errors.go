package payroll

import "errors"

var (
	ErrRecordNotFound    = errors.New("payroll record not found")
	ErrPeriodExists      = errors.New("payroll already generated for this employee and period")
	ErrInvalidTransition = errors.New("payroll status transition not allowed")
	ErrNotYourPayroll    = errors.New("payroll record does not belong to you")
)
