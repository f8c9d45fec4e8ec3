package advance

import (
	"context"

	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type Service interface {
	Create(ctx context.Context, p jwt.Principal, req CreateRequest) (Request, error)
	Get(ctx context.Context, p jwt.Principal, id string) (Request, error)
	List(ctx context.Context, p jwt.Principal) ([]Request, error)
	Review(ctx context.Context, p jwt.Principal, req ReviewRequest) (Request, error)
}
