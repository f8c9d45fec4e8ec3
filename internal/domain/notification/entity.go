package notification

import "time"

type Kind string

const (
	KindAssetDate     Kind = "asset_date"
	KindLeave         Kind = "leave"
	KindTicket        Kind = "ticket"
	KindAdvanceSalary Kind = "advance_salary"
	KindWorkOrder     Kind = "work_order"
)

func ValidKind(k Kind) bool {
	switch k {
	case KindAssetDate, KindLeave, KindTicket, KindAdvanceSalary, KindWorkOrder:
		return true
	}
	return false
}

// Notification is a single row in the polymorphic notification table.
// Kind discriminates which source record RefID points at, and Payload
// carries a kind-specific snapshot so the feed can render without joins.
type Notification struct {
	ID        string
	UnitID    string
	Kind      Kind
	RefID     string
	Title     string
	Body      string
	Payload   map[string]interface{}
	Read      bool
	CreatedAt time.Time
	ReadAt    *time.Time
}
