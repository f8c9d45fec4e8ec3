package servicetype

import "errors"

var (
	ErrServiceTypeNotFound = errors.New("service type not found")
	ErrNameExists          = errors.New("service type name already exists in this business unit")
)
