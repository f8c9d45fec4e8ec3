package workorder

import (
	"context"

	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type Service interface {
	Create(ctx context.Context, p jwt.Principal, req CreateWorkOrderRequest) (WorkOrder, error)
	Get(ctx context.Context, p jwt.Principal, id string) (WorkOrder, error)
	List(ctx context.Context, p jwt.Principal, filter ListFilter) ([]WorkOrder, error)
	Update(ctx context.Context, p jwt.Principal, req UpdateWorkOrderRequest) (WorkOrder, error)
	Submit(ctx context.Context, p jwt.Principal, req SubmitWorkOrderRequest) (WorkOrder, error)
	Delete(ctx context.Context, p jwt.Principal, id string) error
}
