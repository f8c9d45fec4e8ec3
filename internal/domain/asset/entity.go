package asset

import "time"

// DateKind enumerates the tracked dates on an asset.
type DateKind string

const (
	DateRegistration DateKind = "registration"
	DateInsurance    DateKind = "insurance"
	DateWarranty     DateKind = "warranty"
	DateService      DateKind = "service"
	DatePayment      DateKind = "payment"
	DateContract     DateKind = "contract"
)

func AllDateKinds() []DateKind {
	return []DateKind{
		DateRegistration,
		DateInsurance,
		DateWarranty,
		DateService,
		DatePayment,
		DateContract,
	}
}

// DateStatus tracks whether a tracked date still needs attention.
type DateStatus string

const (
	DateStatusUpcoming DateStatus = "upcoming"
	DateStatusOverdue  DateStatus = "overdue"
	DateStatusCleared  DateStatus = "cleared"
)

// TrackedDate is one dated obligation on an asset.
type TrackedDate struct {
	Kind   DateKind   `json:"kind"`
	Due    *time.Time `json:"due"`
	Status DateStatus `json:"status"`
}

type Asset struct {
	ID           string
	UnitID       string
	Name         string
	Category     string
	DocumentURL  *string
	TrackedDates []TrackedDate
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ApproachingWindow is how far ahead a tracked date counts as
// "approaching".
const ApproachingWindow = 3 * 24 * time.Hour

// Approaching returns the tracked dates falling within [today, today+3d]
// whose status is upcoming or overdue.
func (a Asset) Approaching(now time.Time) []TrackedDate {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	windowEnd := dayStart.Add(ApproachingWindow + 24*time.Hour)

	var out []TrackedDate
	for _, td := range a.TrackedDates {
		if td.Due == nil {
			continue
		}
		if td.Status != DateStatusUpcoming && td.Status != DateStatusOverdue {
			continue
		}
		if td.Due.Before(dayStart) || !td.Due.Before(windowEnd) {
			continue
		}
		out = append(out, td)
	}
	return out
}
