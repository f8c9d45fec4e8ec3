package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/serviceportals/ops-backend-go/internal/domain/employee"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, unit_id, name, email, phone_number, password_hash,
	status, feature_access, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UnitID, &e.Name, &e.Email, &e.PhoneNumber, &e.PasswordHash,
		&e.Status, &e.FeatureAccess, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, unit_id, name, email, phone_number, password_hash,
			status, feature_access, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.UnitID, e.Name, e.Email, e.PhoneNumber, e.PasswordHash,
		e.Status, e.FeatureAccess,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, err
	}

	return e, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, unitID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND unit_id = $2`

	e, err := scanEmployee(q.QueryRow(ctx, query, id, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetByName(ctx context.Context, name string, unitID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	var row pgx.Row
	if unitID == "" {
		query := `
			SELECT ` + employeeColumns + `
			FROM employees
			WHERE LOWER(name) = LOWER($1)
			ORDER BY created_at
			LIMIT 1
		`
		row = q.QueryRow(ctx, query, name)
	} else {
		query := `
			SELECT ` + employeeColumns + `
			FROM employees
			WHERE LOWER(name) = LOWER($1) AND unit_id = $2
			LIMIT 1
		`
		row = q.QueryRow(ctx, query, name, unitID)
	}

	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetByUnitID(ctx context.Context, unitID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE unit_id = $1 ORDER BY name`

	rows, err := q.Query(ctx, query, unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) ListNames(ctx context.Context) ([]employee.PublicListing, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.name, bu.code
		FROM employees e
		INNER JOIN business_units bu ON e.unit_id = bu.id
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []employee.PublicListing
	for rows.Next() {
		var l employee.PublicListing
		if err := rows.Scan(&l.ID, &l.Name, &l.UnitCode); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $3, email = $4, phone_number = $5, password_hash = $6, updated_at = NOW()
		WHERE id = $1 AND unit_id = $2
	`

	tag, err := q.Exec(ctx, query, e.ID, e.UnitID, e.Name, e.Email, e.PhoneNumber, e.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrEmailExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) UpdateFeatureAccess(ctx context.Context, id string, features []string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET feature_access = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, features)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string, unitID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE id = $1 AND unit_id = $2`

	tag, err := q.Exec(ctx, query, id, unitID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
