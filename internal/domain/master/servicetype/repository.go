package servicetype

import "context"

type Repository interface {
	Create(ctx context.Context, st ServiceType) (ServiceType, error)
	GetByID(ctx context.Context, id string, unitID string) (ServiceType, error)
	GetByUnitID(ctx context.Context, unitID string) ([]ServiceType, error)
	Update(ctx context.Context, st ServiceType) error
	Delete(ctx context.Context, id string, unitID string) error
}
