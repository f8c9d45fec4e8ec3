package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/serviceportals/ops-backend-go/internal/domain/unit"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
)

type unitRepositoryImpl struct {
	db *database.DB
}

func NewUnitRepository(db *database.DB) unit.Repository {
	return &unitRepositoryImpl{db: db}
}

func (r *unitRepositoryImpl) Create(ctx context.Context, u unit.BusinessUnit) (unit.BusinessUnit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO business_units (id, code, name, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, u.Code, u.Name).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return unit.BusinessUnit{}, unit.ErrUnitCodeExists
		}
		return unit.BusinessUnit{}, err
	}

	return u, nil
}

func (r *unitRepositoryImpl) GetByID(ctx context.Context, id string) (unit.BusinessUnit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, created_at, updated_at
		FROM business_units
		WHERE id = $1
	`

	var u unit.BusinessUnit
	err := q.QueryRow(ctx, query, id).Scan(&u.ID, &u.Code, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return unit.BusinessUnit{}, unit.ErrUnitNotFound
		}
		return unit.BusinessUnit{}, err
	}

	return u, nil
}

func (r *unitRepositoryImpl) GetByCode(ctx context.Context, code string) (unit.BusinessUnit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, created_at, updated_at
		FROM business_units
		WHERE UPPER(code) = UPPER($1)
	`

	var u unit.BusinessUnit
	err := q.QueryRow(ctx, query, code).Scan(&u.ID, &u.Code, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return unit.BusinessUnit{}, unit.ErrUnitNotFound
		}
		return unit.BusinessUnit{}, err
	}

	return u, nil
}

func (r *unitRepositoryImpl) List(ctx context.Context) ([]unit.BusinessUnit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, created_at, updated_at
		FROM business_units
		ORDER BY code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []unit.BusinessUnit
	for rows.Next() {
		var u unit.BusinessUnit
		if err := rows.Scan(&u.ID, &u.Code, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	return units, rows.Err()
}
