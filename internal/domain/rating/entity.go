package rating

import "time"

// RatingLink is a one-per-work-order shareable link that lets a customer
// rate a completed job without logging in. The token is the public handle.
type RatingLink struct {
	ID          string
	UnitID      string
	WorkOrderID string
	Token       string
	Score       *int
	Comment     *string
	SubmittedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (l RatingLink) Submitted() bool {
	return l.SubmittedAt != nil
}
