package advertisement

import "context"

type Service interface {
	Create(ctx context.Context, unitID string, req CreateAdvertisementRequest) (Advertisement, error)
	List(ctx context.Context, unitID string, activeOnly bool) ([]Advertisement, error)
	Update(ctx context.Context, unitID string, req UpdateAdvertisementRequest) (Advertisement, error)
	Delete(ctx context.Context, id string, unitID string) error
}
