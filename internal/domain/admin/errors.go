package admin

import "errors"

var (
	ErrAdminNotFound = errors.New("admin not found")
)
