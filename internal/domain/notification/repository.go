package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	GetByID(ctx context.Context, id string, unitID string) (Notification, error)
	ListUnread(ctx context.Context, unitID string, kinds []Kind, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, unitID string) (map[Kind]int, error)
	MarkRead(ctx context.Context, id string, unitID string) error
	MarkAllRead(ctx context.Context, unitID string, kind *Kind) error
}
