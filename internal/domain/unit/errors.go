package unit

import "errors"

var (
	ErrUnitNotFound   = errors.New("business unit not found")
	ErrUnitCodeExists = errors.New("business unit code already exists")
)
