package admin

import "context"

type Repository interface {
	Create(ctx context.Context, a Admin) (Admin, error)
	GetByID(ctx context.Context, id string) (Admin, error)
	GetByUnitID(ctx context.Context, unitID string) (Admin, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
