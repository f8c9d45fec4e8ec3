package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/serviceportals/ops-backend-go/internal/domain/rating"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
)

type ratingRepositoryImpl struct {
	db *database.DB
}

func NewRatingRepository(db *database.DB) rating.Repository {
	return &ratingRepositoryImpl{db: db}
}

const ratingColumns = `
	id, unit_id, work_order_id, token, score, comment, submitted_at,
	created_at, updated_at
`

func scanRatingLink(row pgx.Row) (rating.RatingLink, error) {
	var l rating.RatingLink
	err := row.Scan(
		&l.ID, &l.UnitID, &l.WorkOrderID, &l.Token, &l.Score, &l.Comment, &l.SubmittedAt,
		&l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *ratingRepositoryImpl) Create(ctx context.Context, link rating.RatingLink) (rating.RatingLink, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rating_links (id, unit_id, work_order_id, token, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, link.UnitID, link.WorkOrderID, link.Token).
		Scan(&link.ID, &link.CreatedAt, &link.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return rating.RatingLink{}, rating.ErrLinkExists
		}
		return rating.RatingLink{}, err
	}

	return link, nil
}

func (r *ratingRepositoryImpl) GetByID(ctx context.Context, id string, unitID string) (rating.RatingLink, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + ratingColumns + ` FROM rating_links WHERE id = $1 AND unit_id = $2`

	l, err := scanRatingLink(q.QueryRow(ctx, query, id, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rating.RatingLink{}, rating.ErrRatingLinkNotFound
		}
		return rating.RatingLink{}, err
	}
	return l, nil
}

func (r *ratingRepositoryImpl) GetByToken(ctx context.Context, token string) (rating.RatingLink, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + ratingColumns + ` FROM rating_links WHERE token = $1`

	l, err := scanRatingLink(q.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rating.RatingLink{}, rating.ErrRatingLinkNotFound
		}
		return rating.RatingLink{}, err
	}
	return l, nil
}

func (r *ratingRepositoryImpl) GetByWorkOrderID(ctx context.Context, workOrderID string, unitID string) (rating.RatingLink, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + ratingColumns + ` FROM rating_links WHERE work_order_id = $1 AND unit_id = $2`

	l, err := scanRatingLink(q.QueryRow(ctx, query, workOrderID, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rating.RatingLink{}, rating.ErrRatingLinkNotFound
		}
		return rating.RatingLink{}, err
	}
	return l, nil
}

func (r *ratingRepositoryImpl) GetByUnitID(ctx context.Context, unitID string) ([]rating.RatingLink, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + ratingColumns + ` FROM rating_links WHERE unit_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []rating.RatingLink
	for rows.Next() {
		l, err := scanRatingLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}

	return links, rows.Err()
}

func (r *ratingRepositoryImpl) SaveSubmission(ctx context.Context, id string, score int, comment *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE rating_links
		SET score = $2, comment = $3, submitted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND submitted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id, score, comment)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return rating.ErrAlreadySubmitted
	}
	return nil
}
