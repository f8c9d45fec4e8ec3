package notification

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/serviceportals/ops-backend-go/internal/domain/asset"
	"github.com/serviceportals/ops-backend-go/internal/domain/notification"
)

const defaultFeedLimit = 50

type NotificationServiceImpl struct {
	notifications notification.Repository
	assets        asset.Repository
	now           func() time.Time
}

func NewNotificationService(notifications notification.Repository, assets asset.Repository) notification.Service {
	return &NotificationServiceImpl{
		notifications: notifications,
		assets:        assets,
		now:           time.Now,
	}
}

// Feed implements notification.Service. Unread rows and computed asset
// date reminders are merged into one list, newest first. Reminders are
// recomputed on every call and are not gated on read state.
func (s *NotificationServiceImpl) Feed(ctx context.Context, unitID string, kinds []notification.Kind, limit int) (notification.FeedResponse, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}

	unread, err := s.notifications.ListUnread(ctx, unitID, kinds, limit)
	if err != nil {
		return notification.FeedResponse{}, fmt.Errorf("failed to list notifications: %w", err)
	}

	items := make([]notification.FeedItem, 0, len(unread))
	for _, n := range unread {
		resp := notification.ToResponse(n)
		items = append(items, notification.FeedItem{
			Source:       notification.SourceNotification,
			Timestamp:    n.CreatedAt,
			Notification: &resp,
		})
	}

	reminders, err := s.approachingReminders(ctx, unitID, kinds)
	if err != nil {
		return notification.FeedResponse{}, err
	}
	items = append(items, reminders...)

	// Newest first; a missing timestamp is the zero time, which sorts
	// oldest. Stable so equal timestamps keep insertion order.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})

	if len(items) > limit {
		items = items[:limit]
	}

	counts, err := s.notifications.CountUnread(ctx, unitID)
	if err != nil {
		return notification.FeedResponse{}, fmt.Errorf("failed to count notifications: %w", err)
	}

	return notification.FeedResponse{Items: items, UnreadCounts: counts}, nil
}

func (s *NotificationServiceImpl) approachingReminders(ctx context.Context, unitID string, kinds []notification.Kind) ([]notification.FeedItem, error) {
	if len(kinds) > 0 && !containsKind(kinds, notification.KindAssetDate) {
		return nil, nil
	}

	assets, err := s.assets.List(ctx, unitID, asset.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	now := s.now()
	var items []notification.FeedItem
	for _, a := range assets {
		for _, td := range a.Approaching(now) {
			var ts time.Time
			if td.Due != nil {
				ts = *td.Due
			}
			items = append(items, notification.FeedItem{
				Source:    notification.SourceAssetReminder,
				Timestamp: ts,
				AssetReminder: &notification.AssetReminderResponse{
					AssetID:   a.ID,
					AssetName: a.Name,
					DateKind:  td.Kind,
					Due:       td.Due,
					Status:    td.Status,
				},
			})
		}
	}

	return items, nil
}

func containsKind(kinds []notification.Kind, k notification.Kind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// MarkRead implements notification.Service.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id string, unitID string) error {
	return s.notifications.MarkRead(ctx, id, unitID)
}

// MarkAllRead implements notification.Service.
func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, unitID string, kind *notification.Kind) error {
	if kind != nil && !notification.ValidKind(*kind) {
		return notification.ErrInvalidKind
	}
	return s.notifications.MarkAllRead(ctx, unitID, kind)
}
