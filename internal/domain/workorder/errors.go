package workorder

import "errors"

var (
	ErrWorkOrderNotFound  = errors.New("work order not found")
	ErrWorkOrderSubmitted = errors.New("work order has already been submitted")
	ErrNotAssignedToYou   = errors.New("work order is not assigned to you")
)
