package schedule

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	GetByID(ctx context.Context, id string, unitID string) (Entry, error)
	ListByDate(ctx context.Context, unitID string, date time.Time) ([]Entry, error)
	ListByEmployee(ctx context.Context, unitID string, employeeID string, from, to time.Time) ([]Entry, error)
	Update(ctx context.Context, e Entry) error
	Delete(ctx context.Context, id string, unitID string) error
}
