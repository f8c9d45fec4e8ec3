package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/advance"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
)

type advanceRepositoryImpl struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.Repository {
	return &advanceRepositoryImpl{db: db}
}

func (r *advanceRepositoryImpl) Create(ctx context.Context, req advance.Request) (advance.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advance_salary_requests (
			id, unit_id, employee_id, amount, reason, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.UnitID, req.EmployeeID, req.Amount, req.Reason, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return advance.Request{}, err
	}

	return req, nil
}

func (r *advanceRepositoryImpl) GetByID(ctx context.Context, id string, unitID string) (advance.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, employee_id, amount, reason, status,
			   reviewed_by, reviewed_at, created_at, updated_at
		FROM advance_salary_requests
		WHERE id = $1 AND unit_id = $2
	`

	var req advance.Request
	err := q.QueryRow(ctx, query, id, unitID).Scan(
		&req.ID, &req.UnitID, &req.EmployeeID, &req.Amount, &req.Reason, &req.Status,
		&req.ReviewedBy, &req.ReviewedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.Request{}, advance.ErrRequestNotFound
		}
		return advance.Request{}, err
	}

	return req, nil
}

func (r *advanceRepositoryImpl) List(ctx context.Context, unitID string, employeeID string) ([]advance.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, employee_id, amount, reason, status,
			   reviewed_by, reviewed_at, created_at, updated_at
		FROM advance_salary_requests
		WHERE unit_id = $1 AND ($2 = '' OR employee_id = $2)
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, unitID, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []advance.Request
	for rows.Next() {
		var req advance.Request
		err := rows.Scan(
			&req.ID, &req.UnitID, &req.EmployeeID, &req.Amount, &req.Reason, &req.Status,
			&req.ReviewedBy, &req.ReviewedAt, &req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *advanceRepositoryImpl) UpdateStatus(ctx context.Context, id string, unitID string, status advance.Status, reviewerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advance_salary_requests
		SET status = $3, reviewed_by = $4, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND unit_id = $2
	`

	tag, err := q.Exec(ctx, query, id, unitID, status, reviewerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrRequestNotFound
	}
	return nil
}
