package leave

import "context"

type Repository interface {
	Create(ctx context.Context, r Request) (Request, error)
	GetByID(ctx context.Context, id string, unitID string) (Request, error)
	List(ctx context.Context, unitID string, employeeID string) ([]Request, error)
	UpdateStatus(ctx context.Context, id string, unitID string, status Status, reviewerID string) error
	Delete(ctx context.Context, id string, unitID string) error
}
