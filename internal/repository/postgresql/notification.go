package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/notification"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepositoryImpl{db: db}
}

var notificationColumns = []string{
	"id", "unit_id", "kind", "ref_id", "title", "body", "payload",
	"read", "created_at", "read_at",
}

func scanNotification(row pgx.Row) (notification.Notification, error) {
	var n notification.Notification
	err := row.Scan(
		&n.ID, &n.UnitID, &n.Kind, &n.RefID, &n.Title, &n.Body, &n.Payload,
		&n.Read, &n.CreatedAt, &n.ReadAt,
	)
	return n, err
}

func (r *notificationRepositoryImpl) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (
			id, unit_id, kind, ref_id, title, body, payload, read, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, FALSE, NOW()
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		n.UnitID, n.Kind, n.RefID, n.Title, n.Body, n.Payload,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return notification.Notification{}, err
	}
	n.Read = false

	return n, nil
}

func (r *notificationRepositoryImpl) GetByID(ctx context.Context, id string, unitID string) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, kind, ref_id, title, body, payload, read, created_at, read_at
		FROM notifications
		WHERE id = $1 AND unit_id = $2
	`

	n, err := scanNotification(q.QueryRow(ctx, query, id, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notification.Notification{}, notification.ErrNotificationNotFound
		}
		return notification.Notification{}, err
	}
	return n, nil
}

func (r *notificationRepositoryImpl) ListUnread(ctx context.Context, unitID string, kinds []notification.Kind, limit int) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	builder := psql.Select(notificationColumns...).
		From("notifications").
		Where(sq.Eq{"unit_id": unitID, "read": false}).
		OrderBy("created_at DESC")

	if len(kinds) > 0 {
		builder = builder.Where(sq.Eq{"kind": kinds})
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func (r *notificationRepositoryImpl) CountUnread(ctx context.Context, unitID string) (map[notification.Kind]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT kind, COUNT(*)
		FROM notifications
		WHERE unit_id = $1 AND NOT read
		GROUP BY kind
	`

	rows, err := q.Query(ctx, query, unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[notification.Kind]int)
	for rows.Next() {
		var kind notification.Kind
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, err
		}
		counts[kind] = count
	}

	return counts, rows.Err()
}

func (r *notificationRepositoryImpl) MarkRead(ctx context.Context, id string, unitID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET read = TRUE, read_at = NOW()
		WHERE id = $1 AND unit_id = $2
	`

	tag, err := q.Exec(ctx, query, id, unitID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepositoryImpl) MarkAllRead(ctx context.Context, unitID string, kind *notification.Kind) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET read = TRUE, read_at = NOW()
		WHERE unit_id = $1 AND NOT read AND ($2::text IS NULL OR kind = $2)
	`

	_, err := q.Exec(ctx, query, unitID, kind)
	return err
}
