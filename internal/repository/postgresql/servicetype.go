package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/serviceportals/ops-backend-go/internal/domain/master/servicetype"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
)

type serviceTypeRepositoryImpl struct {
	db *database.DB
}

func NewServiceTypeRepository(db *database.DB) servicetype.Repository {
	return &serviceTypeRepositoryImpl{db: db}
}

func (r *serviceTypeRepositoryImpl) Create(ctx context.Context, st servicetype.ServiceType) (servicetype.ServiceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO service_types (id, unit_id, name, description, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, st.UnitID, st.Name, st.Description).
		Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return servicetype.ServiceType{}, servicetype.ErrNameExists
		}
		return servicetype.ServiceType{}, err
	}

	return st, nil
}

func (r *serviceTypeRepositoryImpl) GetByID(ctx context.Context, id string, unitID string) (servicetype.ServiceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, name, description, created_at, updated_at
		FROM service_types
		WHERE id = $1 AND unit_id = $2
	`

	var st servicetype.ServiceType
	err := q.QueryRow(ctx, query, id, unitID).Scan(
		&st.ID, &st.UnitID, &st.Name, &st.Description, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return servicetype.ServiceType{}, servicetype.ErrServiceTypeNotFound
		}
		return servicetype.ServiceType{}, err
	}

	return st, nil
}

func (r *serviceTypeRepositoryImpl) GetByUnitID(ctx context.Context, unitID string) ([]servicetype.ServiceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, name, description, created_at, updated_at
		FROM service_types
		WHERE unit_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []servicetype.ServiceType
	for rows.Next() {
		var st servicetype.ServiceType
		err := rows.Scan(&st.ID, &st.UnitID, &st.Name, &st.Description, &st.CreatedAt, &st.UpdatedAt)
		if err != nil {
			return nil, err
		}
		types = append(types, st)
	}

	return types, rows.Err()
}

func (r *serviceTypeRepositoryImpl) Update(ctx context.Context, st servicetype.ServiceType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE service_types
		SET name = $3, description = $4, updated_at = NOW()
		WHERE id = $1 AND unit_id = $2
	`

	tag, err := q.Exec(ctx, query, st.ID, st.UnitID, st.Name, st.Description)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return servicetype.ErrNameExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return servicetype.ErrServiceTypeNotFound
	}
	return nil
}

func (r *serviceTypeRepositoryImpl) Delete(ctx context.Context, id string, unitID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM service_types WHERE id = $1 AND unit_id = $2`

	tag, err := q.Exec(ctx, query, id, unitID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return servicetype.ErrServiceTypeNotFound
	}
	return nil
}
