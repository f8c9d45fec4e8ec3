package customer

import "context"

type Service interface {
	Create(ctx context.Context, unitID string, req CreateCustomerRequest) (Customer, error)
	Get(ctx context.Context, id string, unitID string) (Customer, error)
	List(ctx context.Context, unitID string) ([]Customer, error)
	Update(ctx context.Context, unitID string, req UpdateCustomerRequest) (Customer, error)
	Delete(ctx context.Context, id string, unitID string) error
}
