package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/asset"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
)

type assetRepositoryImpl struct {
	db *database.DB
}

func NewAssetRepository(db *database.DB) asset.Repository {
	return &assetRepositoryImpl{db: db}
}

var assetColumns = []string{
	"id", "unit_id", "name", "category", "document_url", "tracked_dates",
	"created_at", "updated_at",
}

func scanAsset(row pgx.Row) (asset.Asset, error) {
	var a asset.Asset
	err := row.Scan(
		&a.ID, &a.UnitID, &a.Name, &a.Category, &a.DocumentURL, &a.TrackedDates,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *assetRepositoryImpl) Create(ctx context.Context, a asset.Asset) (asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO assets (
			id, unit_id, name, category, document_url, tracked_dates,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.UnitID, a.Name, a.Category, a.DocumentURL, a.TrackedDates,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return asset.Asset{}, err
	}

	return a, nil
}

func (r *assetRepositoryImpl) GetByID(ctx context.Context, id string, unitID string) (asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, name, category, document_url, tracked_dates,
			   created_at, updated_at
		FROM assets
		WHERE id = $1 AND unit_id = $2
	`

	a, err := scanAsset(q.QueryRow(ctx, query, id, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return asset.Asset{}, asset.ErrAssetNotFound
		}
		return asset.Asset{}, err
	}
	return a, nil
}

func (r *assetRepositoryImpl) List(ctx context.Context, unitID string, filter asset.ListFilter) ([]asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	builder := psql.Select(assetColumns...).
		From("assets").
		Where(sq.Eq{"unit_id": unitID}).
		OrderBy("name")

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
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

	var assets []asset.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}

	return assets, rows.Err()
}

func (r *assetRepositoryImpl) ListAll(ctx context.Context) ([]asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, name, category, document_url, tracked_dates,
			   created_at, updated_at
		FROM assets
		ORDER BY unit_id, name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []asset.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}

	return assets, rows.Err()
}

func (r *assetRepositoryImpl) Update(ctx context.Context, a asset.Asset) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE assets
		SET name = $3, category = $4, document_url = $5, tracked_dates = $6, updated_at = NOW()
		WHERE id = $1 AND unit_id = $2
	`

	tag, err := q.Exec(ctx, query, a.ID, a.UnitID, a.Name, a.Category, a.DocumentURL, a.TrackedDates)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return asset.ErrAssetNotFound
	}
	return nil
}

func (r *assetRepositoryImpl) Delete(ctx context.Context, id string, unitID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM assets WHERE id = $1 AND unit_id = $2`

	tag, err := q.Exec(ctx, query, id, unitID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return asset.ErrAssetNotFound
	}
	return nil
}
