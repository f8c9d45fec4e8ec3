package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/serviceportals/ops-backend-go/internal/domain/customer"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
)

type customerRepositoryImpl struct {
	db *database.DB
}

func NewCustomerRepository(db *database.DB) customer.Repository {
	return &customerRepositoryImpl{db: db}
}

const customerColumns = `
	id, unit_id, name, email, phone_number, address, password_hash,
	reset_otp, reset_otp_expires_at, created_at, updated_at
`

func scanCustomer(row pgx.Row) (customer.Customer, error) {
	var c customer.Customer
	err := row.Scan(
		&c.ID, &c.UnitID, &c.Name, &c.Email, &c.PhoneNumber, &c.Address, &c.PasswordHash,
		&c.ResetOTP, &c.ResetOTPExp, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *customerRepositoryImpl) Create(ctx context.Context, c customer.Customer) (customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO customers (
			id, unit_id, name, email, phone_number, address, password_hash,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.UnitID, c.Name, c.Email, c.PhoneNumber, c.Address, c.PasswordHash,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return customer.Customer{}, customer.ErrEmailExists
		}
		return customer.Customer{}, err
	}

	return c, nil
}

func (r *customerRepositoryImpl) GetByID(ctx context.Context, id string, unitID string) (customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 AND unit_id = $2`

	c, err := scanCustomer(q.QueryRow(ctx, query, id, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return customer.Customer{}, customer.ErrCustomerNotFound
		}
		return customer.Customer{}, err
	}
	return c, nil
}

func (r *customerRepositoryImpl) GetByEmail(ctx context.Context, email string, unitID string) (customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE LOWER(email) = LOWER($1) AND unit_id = $2
	`

	c, err := scanCustomer(q.QueryRow(ctx, query, email, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return customer.Customer{}, customer.ErrCustomerNotFound
		}
		return customer.Customer{}, err
	}
	return c, nil
}

func (r *customerRepositoryImpl) GetByEmailAnyUnit(ctx context.Context, email string) (customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE LOWER(email) = LOWER($1)
		ORDER BY created_at
		LIMIT 1
	`

	c, err := scanCustomer(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return customer.Customer{}, customer.ErrCustomerNotFound
		}
		return customer.Customer{}, err
	}
	return c, nil
}

func (r *customerRepositoryImpl) GetByUnitID(ctx context.Context, unitID string) ([]customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + customerColumns + ` FROM customers WHERE unit_id = $1 ORDER BY name`

	rows, err := q.Query(ctx, query, unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []customer.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

func (r *customerRepositoryImpl) Update(ctx context.Context, c customer.Customer) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE customers
		SET name = $3, email = $4, phone_number = $5, address = $6, password_hash = $7, updated_at = NOW()
		WHERE id = $1 AND unit_id = $2
	`

	tag, err := q.Exec(ctx, query, c.ID, c.UnitID, c.Name, c.Email, c.PhoneNumber, c.Address, c.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return customer.ErrEmailExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return customer.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepositoryImpl) SetResetOTP(ctx context.Context, id string, otp string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE customers
		SET reset_otp = $2, reset_otp_expires_at = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, otp, expiresAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return customer.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepositoryImpl) ResetPassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE customers
		SET password_hash = $2, reset_otp = NULL, reset_otp_expires_at = NULL, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return customer.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepositoryImpl) Delete(ctx context.Context, id string, unitID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM customers WHERE id = $1 AND unit_id = $2`

	tag, err := q.Exec(ctx, query, id, unitID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return customer.ErrCustomerNotFound
	}
	return nil
}
