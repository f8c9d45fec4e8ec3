package workorder

import "context"

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	Status             Status
	CustomerID         string
	AssignedEmployeeID string
	Limit              int
	Offset             int
}

type Repository interface {
	Create(ctx context.Context, wo WorkOrder) (WorkOrder, error)
	GetByID(ctx context.Context, id string, unitID string) (WorkOrder, error)
	List(ctx context.Context, unitID string, filter ListFilter) ([]WorkOrder, error)
	Update(ctx context.Context, wo WorkOrder) error
	Delete(ctx context.Context, id string, unitID string) error
}
