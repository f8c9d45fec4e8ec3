package unit

import "time"

// BusinessUnit is the tenant partition. Every principal and every domain
// record belongs to exactly one.
type BusinessUnit struct {
	ID        string
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
