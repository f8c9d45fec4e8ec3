package employee

import (
	"context"

	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type Service interface {
	Create(ctx context.Context, unitID string, req CreateEmployeeRequest) (Employee, error)
	Get(ctx context.Context, id string, unitID string) (Employee, error)
	List(ctx context.Context, unitID string) ([]Employee, error)
	// ListPublic backs the unauthenticated login selection listing.
	ListPublic(ctx context.Context) ([]PublicListing, error)
	Update(ctx context.Context, unitID string, req UpdateEmployeeRequest) (Employee, error)
	// UpdateStatus flips availability. Admins may flip anyone in their
	// unit; employees only themselves.
	UpdateStatus(ctx context.Context, p jwt.Principal, id string, status string) error
	Delete(ctx context.Context, id string, unitID string) error
}
