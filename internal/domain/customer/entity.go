package customer

import "time"

type Customer struct {
	ID           string
	UnitID       string
	Name         string
	Email        string
	PhoneNumber  *string
	Address      *string
	PasswordHash string
	ResetOTP     *string
	ResetOTPExp  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
