package notification

import (
	"time"

	"github.com/serviceportals/ops-backend-go/internal/domain/asset"
)

// FeedItem is one entry in the aggregated notification feed. Exactly one
// of Notification or AssetReminder is set, discriminated by Source.
type FeedItem struct {
	Source        string                 `json:"source"`
	Timestamp     time.Time              `json:"timestamp"`
	Notification  *NotificationResponse  `json:"notification,omitempty"`
	AssetReminder *AssetReminderResponse `json:"asset_reminder,omitempty"`
}

const (
	SourceNotification  = "notification"
	SourceAssetReminder = "asset_reminder"
)

type NotificationResponse struct {
	ID        string                 `json:"id"`
	Kind      Kind                   `json:"kind"`
	RefID     string                 `json:"ref_id"`
	Title     string                 `json:"title"`
	Body      string                 `json:"body"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Read      bool                   `json:"read"`
	CreatedAt time.Time              `json:"created_at"`
}

// AssetReminderResponse is computed from asset tracked dates on every feed
// request. It has no row of its own and is never marked read.
type AssetReminderResponse struct {
	AssetID   string           `json:"asset_id"`
	AssetName string           `json:"asset_name"`
	DateKind  asset.DateKind   `json:"date_kind"`
	Due       *time.Time       `json:"due"`
	Status    asset.DateStatus `json:"status"`
}

func ToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Kind:      n.Kind,
		RefID:     n.RefID,
		Title:     n.Title,
		Body:      n.Body,
		Payload:   n.Payload,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

type FeedResponse struct {
	Items        []FeedItem   `json:"items"`
	UnreadCounts map[Kind]int `json:"unread_counts"`
}
