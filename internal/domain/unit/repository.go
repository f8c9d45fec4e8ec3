package unit

import "context"

type Repository interface {
	Create(ctx context.Context, u BusinessUnit) (BusinessUnit, error)
	GetByID(ctx context.Context, id string) (BusinessUnit, error)
	GetByCode(ctx context.Context, code string) (BusinessUnit, error)
	List(ctx context.Context) ([]BusinessUnit, error)
}
