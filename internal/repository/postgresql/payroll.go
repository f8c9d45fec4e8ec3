package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/serviceportals/ops-backend-go/internal/domain/payroll"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `
	id, unit_id, employee_id, period,
	base_salary, overtime_pay, deductions, net_pay,
	status, signature_url, signed_at, signed_ip, signed_ua,
	created_by, created_at, updated_at
`

func scanPayroll(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.UnitID, &rec.EmployeeID, &rec.Period,
		&rec.BaseSalary, &rec.OvertimePay, &rec.Deductions, &rec.NetPay,
		&rec.Status, &rec.SignatureURL, &rec.SignedAt, &rec.SignedIP, &rec.SignedUA,
		&rec.CreatedBy, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func (r *payrollRepositoryImpl) Create(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			id, unit_id, employee_id, period,
			base_salary, overtime_pay, deductions, net_pay,
			status, created_by, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6, $7,
			$8, $9, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.UnitID, rec.EmployeeID, rec.Period,
		rec.BaseSalary, rec.OvertimePay, rec.Deductions, rec.NetPay,
		rec.Status, rec.CreatedBy,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.Record{}, payroll.ErrPeriodExists
		}
		return payroll.Record{}, err
	}

	return rec, nil
}

func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string, unitID string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE id = $1 AND unit_id = $2`

	rec, err := scanPayroll(q.QueryRow(ctx, query, id, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, err
	}
	return rec, nil
}

func (r *payrollRepositoryImpl) List(ctx context.Context, unitID string, employeeID string, period string) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records
		WHERE unit_id = $1
		  AND ($2 = '' OR employee_id = $2)
		  AND ($3 = '' OR period = $3)
		ORDER BY period DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, unitID, employeeID, period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *payrollRepositoryImpl) Update(ctx context.Context, rec payroll.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET base_salary = $3, overtime_pay = $4, deductions = $5, net_pay = $6,
			status = $7, signature_url = $8, signed_at = $9, signed_ip = $10, signed_ua = $11,
			updated_at = NOW()
		WHERE id = $1 AND unit_id = $2
	`

	tag, err := q.Exec(ctx, query,
		rec.ID, rec.UnitID,
		rec.BaseSalary, rec.OvertimePay, rec.Deductions, rec.NetPay,
		rec.Status, rec.SignatureURL, rec.SignedAt, rec.SignedIP, rec.SignedUA,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}
	return nil
}

func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string, unitID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payroll_records WHERE id = $1 AND unit_id = $2`

	tag, err := q.Exec(ctx, query, id, unitID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}
	return nil
}
