package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/leave"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepositoryImpl{db: db}
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, unit_id, employee_id, kind, start_date, end_date, reason, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.UnitID, req.EmployeeID, req.Kind, req.StartDate, req.EndDate, req.Reason, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.Request{}, err
	}

	return req, nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string, unitID string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, employee_id, kind, start_date, end_date, reason, status,
			   reviewed_by, reviewed_at, created_at, updated_at
		FROM leave_requests
		WHERE id = $1 AND unit_id = $2
	`

	var req leave.Request
	err := q.QueryRow(ctx, query, id, unitID).Scan(
		&req.ID, &req.UnitID, &req.EmployeeID, &req.Kind, &req.StartDate, &req.EndDate,
		&req.Reason, &req.Status, &req.ReviewedBy, &req.ReviewedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, err
	}

	return req, nil
}

func (r *leaveRepositoryImpl) List(ctx context.Context, unitID string, employeeID string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, employee_id, kind, start_date, end_date, reason, status,
			   reviewed_by, reviewed_at, created_at, updated_at
		FROM leave_requests
		WHERE unit_id = $1 AND ($2 = '' OR employee_id = $2)
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, unitID, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		err := rows.Scan(
			&req.ID, &req.UnitID, &req.EmployeeID, &req.Kind, &req.StartDate, &req.EndDate,
			&req.Reason, &req.Status, &req.ReviewedBy, &req.ReviewedAt, &req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, unitID string, status leave.Status, reviewerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $3, reviewed_by = $4, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND unit_id = $2
	`

	tag, err := q.Exec(ctx, query, id, unitID, status, reviewerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}
	return nil
}

func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string, unitID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM leave_requests WHERE id = $1 AND unit_id = $2`

	tag, err := q.Exec(ctx, query, id, unitID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}
	return nil
}
