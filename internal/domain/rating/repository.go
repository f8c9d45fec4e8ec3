package rating

import "context"

type Repository interface {
	Create(ctx context.Context, link RatingLink) (RatingLink, error)
	GetByID(ctx context.Context, id string, unitID string) (RatingLink, error)
	GetByToken(ctx context.Context, token string) (RatingLink, error)
	GetByWorkOrderID(ctx context.Context, workOrderID string, unitID string) (RatingLink, error)
	GetByUnitID(ctx context.Context, unitID string) ([]RatingLink, error)
	SaveSubmission(ctx context.Context, id string, score int, comment *string) error
}
