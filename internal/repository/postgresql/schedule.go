package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/schedule"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.Repository {
	return &scheduleRepositoryImpl{db: db}
}

func scanScheduleEntry(row pgx.Row) (schedule.Entry, error) {
	var e schedule.Entry
	err := row.Scan(
		&e.ID, &e.UnitID, &e.EmployeeID, &e.Date, &e.Shift, &e.Notes,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *scheduleRepositoryImpl) Create(ctx context.Context, e schedule.Entry) (schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_entries (
			id, unit_id, employee_id, date, shift, notes,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.UnitID, e.EmployeeID, e.Date, e.Shift, e.Notes,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return schedule.Entry{}, err
	}

	return e, nil
}

func (r *scheduleRepositoryImpl) GetByID(ctx context.Context, id string, unitID string) (schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, employee_id, date, shift, notes, created_at, updated_at
		FROM schedule_entries
		WHERE id = $1 AND unit_id = $2
	`

	e, err := scanScheduleEntry(q.QueryRow(ctx, query, id, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Entry{}, schedule.ErrEntryNotFound
		}
		return schedule.Entry{}, err
	}
	return e, nil
}

func (r *scheduleRepositoryImpl) ListByDate(ctx context.Context, unitID string, date time.Time) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, employee_id, date, shift, notes, created_at, updated_at
		FROM schedule_entries
		WHERE unit_id = $1 AND date = $2
		ORDER BY shift, employee_id
	`

	rows, err := q.Query(ctx, query, unitID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []schedule.Entry
	for rows.Next() {
		e, err := scanScheduleEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *scheduleRepositoryImpl) ListByEmployee(ctx context.Context, unitID string, employeeID string, from, to time.Time) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, employee_id, date, shift, notes, created_at, updated_at
		FROM schedule_entries
		WHERE unit_id = $1 AND employee_id = $2 AND date >= $3 AND date <= $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, unitID, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []schedule.Entry
	for rows.Next() {
		e, err := scanScheduleEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *scheduleRepositoryImpl) Update(ctx context.Context, e schedule.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedule_entries
		SET date = $3, shift = $4, notes = $5, updated_at = NOW()
		WHERE id = $1 AND unit_id = $2
	`

	tag, err := q.Exec(ctx, query, e.ID, e.UnitID, e.Date, e.Shift, e.Notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrEntryNotFound
	}
	return nil
}

func (r *scheduleRepositoryImpl) Delete(ctx context.Context, id string, unitID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM schedule_entries WHERE id = $1 AND unit_id = $2`

	tag, err := q.Exec(ctx, query, id, unitID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrEntryNotFound
	}
	return nil
}
