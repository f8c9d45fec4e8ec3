package rating

import (
	"context"

	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type Service interface {
	// CreateLink issues the shareable rating link for a work order.
	// One link per order; a duplicate is a conflict.
	CreateLink(ctx context.Context, p jwt.Principal, req CreateRatingLinkRequest) (RatingLink, error)
	List(ctx context.Context, p jwt.Principal) ([]RatingLink, error)
	// Submit records the customer's score via the public token.
	Submit(ctx context.Context, req SubmitRatingRequest) (RatingLink, error)
}
