package asset

import "context"

type Service interface {
	Create(ctx context.Context, unitID string, req CreateAssetRequest) (Asset, error)
	Get(ctx context.Context, id string, unitID string) (Asset, error)
	List(ctx context.Context, unitID string, filter ListFilter) ([]Asset, error)
	Update(ctx context.Context, unitID string, req UpdateAssetRequest) (Asset, error)
	Delete(ctx context.Context, id string, unitID string) error
}
