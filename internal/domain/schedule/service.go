package schedule

import (
	"context"
	"time"

	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type Service interface {
	Create(ctx context.Context, p jwt.Principal, req CreateEntryRequest) (Entry, error)
	ListByDate(ctx context.Context, p jwt.Principal, date time.Time) ([]Entry, error)
	ListByEmployee(ctx context.Context, p jwt.Principal, employeeID string, from, to time.Time) ([]Entry, error)
	Update(ctx context.Context, p jwt.Principal, req UpdateEntryRequest) (Entry, error)
	Delete(ctx context.Context, p jwt.Principal, id string) error
}
