package servicetype

import "context"

type Service interface {
	Create(ctx context.Context, unitID string, req CreateServiceTypeRequest) (ServiceType, error)
	List(ctx context.Context, unitID string) ([]ServiceType, error)
	Update(ctx context.Context, unitID string, req UpdateServiceTypeRequest) (ServiceType, error)
	Delete(ctx context.Context, id string, unitID string) error
}
