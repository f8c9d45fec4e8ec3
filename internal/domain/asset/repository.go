package asset

import "context"

type ListFilter struct {
	Category string
	Limit    int
	Offset   int
}

type Repository interface {
	Create(ctx context.Context, a Asset) (Asset, error)
	GetByID(ctx context.Context, id string, unitID string) (Asset, error)
	List(ctx context.Context, unitID string, filter ListFilter) ([]Asset, error)
	// ListAll spans units; the asset-date reminder job uses it.
	ListAll(ctx context.Context) ([]Asset, error)
	Update(ctx context.Context, a Asset) error
	Delete(ctx context.Context, id string, unitID string) error
}
