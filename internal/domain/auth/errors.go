package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnitNotFound       = errors.New("business unit not found")
	ErrInvalidOTP         = errors.New("invalid or expired reset code")
	ErrSMTPNotConfigured  = errors.New("outbound email is not configured")
)
