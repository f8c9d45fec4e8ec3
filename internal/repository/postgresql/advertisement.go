package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/master/advertisement"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
)

type advertisementRepositoryImpl struct {
	db *database.DB
}

func NewAdvertisementRepository(db *database.DB) advertisement.Repository {
	return &advertisementRepositoryImpl{db: db}
}

func (r *advertisementRepositoryImpl) Create(ctx context.Context, ad advertisement.Advertisement) (advertisement.Advertisement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advertisements (id, unit_id, title, body, image_url, active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, ad.UnitID, ad.Title, ad.Body, ad.ImageURL, ad.Active).
		Scan(&ad.ID, &ad.CreatedAt, &ad.UpdatedAt)
	if err != nil {
		return advertisement.Advertisement{}, err
	}

	return ad, nil
}

func (r *advertisementRepositoryImpl) GetByID(ctx context.Context, id string, unitID string) (advertisement.Advertisement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, title, body, image_url, active, created_at, updated_at
		FROM advertisements
		WHERE id = $1 AND unit_id = $2
	`

	var ad advertisement.Advertisement
	err := q.QueryRow(ctx, query, id, unitID).Scan(
		&ad.ID, &ad.UnitID, &ad.Title, &ad.Body, &ad.ImageURL, &ad.Active, &ad.CreatedAt, &ad.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advertisement.Advertisement{}, advertisement.ErrAdvertisementNotFound
		}
		return advertisement.Advertisement{}, err
	}

	return ad, nil
}

func (r *advertisementRepositoryImpl) GetByUnitID(ctx context.Context, unitID string, activeOnly bool) ([]advertisement.Advertisement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, title, body, image_url, active, created_at, updated_at
		FROM advertisements
		WHERE unit_id = $1 AND ($2 = FALSE OR active)
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, unitID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ads []advertisement.Advertisement
	for rows.Next() {
		var ad advertisement.Advertisement
		err := rows.Scan(&ad.ID, &ad.UnitID, &ad.Title, &ad.Body, &ad.ImageURL, &ad.Active, &ad.CreatedAt, &ad.UpdatedAt)
		if err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}

	return ads, rows.Err()
}

func (r *advertisementRepositoryImpl) Update(ctx context.Context, ad advertisement.Advertisement) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advertisements
		SET title = $3, body = $4, image_url = $5, active = $6, updated_at = NOW()
		WHERE id = $1 AND unit_id = $2
	`

	tag, err := q.Exec(ctx, query, ad.ID, ad.UnitID, ad.Title, ad.Body, ad.ImageURL, ad.Active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return advertisement.ErrAdvertisementNotFound
	}
	return nil
}

func (r *advertisementRepositoryImpl) Delete(ctx context.Context, id string, unitID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM advertisements WHERE id = $1 AND unit_id = $2`

	tag, err := q.Exec(ctx, query, id, unitID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return advertisement.ErrAdvertisementNotFound
	}
	return nil
}
