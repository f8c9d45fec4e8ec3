package servicetype

import "time"

type ServiceType struct {
	ID          string
	UnitID      string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
