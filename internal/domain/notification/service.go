package notification

import "context"

type Service interface {
	Feed(ctx context.Context, unitID string, kinds []Kind, limit int) (FeedResponse, error)
	MarkRead(ctx context.Context, id string, unitID string) error
	MarkAllRead(ctx context.Context, unitID string, kind *Kind) error
}
