package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/admin"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
)

type adminRepositoryImpl struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) admin.Repository {
	return &adminRepositoryImpl{db: db}
}

func (r *adminRepositoryImpl) Create(ctx context.Context, a admin.Admin) (admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO admins (id, unit_id, name, email, password_hash, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.UnitID, a.Name, a.Email, a.PasswordHash).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return admin.Admin{}, err
	}

	return a, nil
}

func (r *adminRepositoryImpl) GetByID(ctx context.Context, id string) (admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, name, email, password_hash, created_at, updated_at
		FROM admins
		WHERE id = $1
	`

	var a admin.Admin
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.UnitID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.Admin{}, admin.ErrAdminNotFound
		}
		return admin.Admin{}, err
	}

	return a, nil
}

func (r *adminRepositoryImpl) GetByUnitID(ctx context.Context, unitID string) (admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, name, email, password_hash, created_at, updated_at
		FROM admins
		WHERE unit_id = $1
	`

	var a admin.Admin
	err := q.QueryRow(ctx, query, unitID).Scan(
		&a.ID, &a.UnitID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.Admin{}, admin.ErrAdminNotFound
		}
		return admin.Admin{}, err
	}

	return a, nil
}

func (r *adminRepositoryImpl) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE admins
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return admin.ErrAdminNotFound
	}
	return nil
}
