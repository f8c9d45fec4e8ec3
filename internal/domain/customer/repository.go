package customer

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, c Customer) (Customer, error)
	GetByID(ctx context.Context, id string, unitID string) (Customer, error)
	GetByEmail(ctx context.Context, email string, unitID string) (Customer, error)
	// GetByEmailAnyUnit backs the password-reset flow, which carries no
	// unit context.
	GetByEmailAnyUnit(ctx context.Context, email string) (Customer, error)
	GetByUnitID(ctx context.Context, unitID string) ([]Customer, error)
	Update(ctx context.Context, c Customer) error
	SetResetOTP(ctx context.Context, id string, otp string, expiresAt time.Time) error
	// ResetPassword replaces the hash and clears any stored OTP.
	ResetPassword(ctx context.Context, id string, passwordHash string) error
	Delete(ctx context.Context, id string, unitID string) error
}
