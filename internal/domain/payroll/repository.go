package payroll

import "context"

type Repository interface {
	// Create returns ErrPeriodExists when the (employee, period) pair is
	// already present.
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string, unitID string) (Record, error)
	List(ctx context.Context, unitID string, employeeID string, period string) ([]Record, error)
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string, unitID string) error
}
