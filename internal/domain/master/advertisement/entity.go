package advertisement

import "time"

type Advertisement struct {
	ID        string
	UnitID    string
	Title     string
	Body      string
	ImageURL  *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
