package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/serviceportals/ops-backend-go/internal/domain/asset"
	"github.com/serviceportals/ops-backend-go/internal/domain/notification"
)

// AssetDateJob runs daily. It flips tracked dates from upcoming to
// overdue once their due date has passed, and fans out an asset_date
// notification for each date entering the reminder window today.
type AssetDateJob struct {
	assets        asset.Repository
	notifications notification.Repository
}

func NewAssetDateJob(assets asset.Repository, notifications notification.Repository) *AssetDateJob {
	return &AssetDateJob{assets: assets, notifications: notifications}
}

func (j *AssetDateJob) Run(ctx context.Context) error {
	allAssets, err := j.assets.ListAll(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	windowEntry := dayStart.Add(asset.ApproachingWindow)

	var updated, notified int
	for _, a := range allAssets {
		changed := false
		for i, td := range a.TrackedDates {
			if td.Due == nil {
				continue
			}
			due := td.Due.Truncate(24 * time.Hour)

			if td.Status == asset.DateStatusUpcoming && td.Due.Before(dayStart) {
				a.TrackedDates[i].Status = asset.DateStatusOverdue
				changed = true
			}

			// Notify once, on the day the date enters the window.
			if td.Status != asset.DateStatusCleared && due.Equal(windowEntry.Truncate(24*time.Hour)) {
				_, err := j.notifications.Create(ctx, notification.Notification{
					UnitID: a.UnitID,
					Kind:   notification.KindAssetDate,
					RefID:  a.ID,
					Title:  "Asset date approaching",
					Body:   a.Name + ": " + string(td.Kind) + " due " + td.Due.Format("2006-01-02"),
					Payload: map[string]interface{}{
						"asset_id":  a.ID,
						"date_kind": string(td.Kind),
						"due":       td.Due.Format(time.RFC3339),
					},
				})
				if err != nil {
					slog.Error("Failed to insert asset date notification", "asset_id", a.ID, "error", err)
					continue
				}
				notified++
			}
		}
		if !changed {
			continue
		}
		if err := j.assets.Update(ctx, a); err != nil {
			slog.Error("Failed to update asset tracked dates", "asset_id", a.ID, "error", err)
			continue
		}
		updated++
	}

	if updated > 0 || notified > 0 {
		slog.Info("Asset date job completed", "assets_updated", updated, "notifications_inserted", notified)
	}
	return nil
}
