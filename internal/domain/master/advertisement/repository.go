package advertisement

import "context"

type Repository interface {
	Create(ctx context.Context, ad Advertisement) (Advertisement, error)
	GetByID(ctx context.Context, id string, unitID string) (Advertisement, error)
	GetByUnitID(ctx context.Context, unitID string, activeOnly bool) ([]Advertisement, error)
	Update(ctx context.Context, ad Advertisement) error
	Delete(ctx context.Context, id string, unitID string) error
}
