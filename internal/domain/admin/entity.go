package admin

import "time"

type Admin struct {
	ID           string
	UnitID       string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
