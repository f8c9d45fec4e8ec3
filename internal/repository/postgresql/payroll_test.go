package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviceportals/ops-backend-go/internal/domain/payroll"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
)

// newPayrollMock routes repository queries through a pgxmock transaction
// placed on the context, the same way WithTransaction does.
func newPayrollMock(t *testing.T) (payroll.Repository, pgxmock.PgxPoolIface, context.Context) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	ctx := ContextWithTx(context.Background(), tx)
	return NewPayrollRepository(&database.DB{}), mock, ctx
}

func TestPayrollRepository_Create_DuplicatePeriod(t *testing.T) {
	repo, mock, ctx := newPayrollMock(t)

	mock.ExpectQuery("INSERT INTO payroll_records").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "payroll_records_employee_id_period_key"})

	_, err := repo.Create(ctx, payroll.Record{
		UnitID:     "unit-a",
		EmployeeID: "emp-1",
		Period:     "2026-08",
		BaseSalary: decimal.NewFromInt(5000),
		NetPay:     decimal.NewFromInt(5000),
		Status:     payroll.StatusGenerated,
		CreatedBy:  "admin-1",
	})
	assert.ErrorIs(t, err, payroll.ErrPeriodExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollRepository_Create_ReturnsGeneratedFields(t *testing.T) {
	repo, mock, ctx := newPayrollMock(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO payroll_records").
		WithArgs("unit-a", "emp-1", "2026-08",
			decimal.NewFromInt(5000), decimal.NewFromInt(250), decimal.NewFromInt(100), decimal.NewFromInt(5150),
			payroll.StatusGenerated, "admin-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("pay-1", now, now))

	rec, err := repo.Create(ctx, payroll.Record{
		UnitID:      "unit-a",
		EmployeeID:  "emp-1",
		Period:      "2026-08",
		BaseSalary:  decimal.NewFromInt(5000),
		OvertimePay: decimal.NewFromInt(250),
		Deductions:  decimal.NewFromInt(100),
		NetPay:      decimal.NewFromInt(5150),
		Status:      payroll.StatusGenerated,
		CreatedBy:   "admin-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "pay-1", rec.ID)
	assert.Equal(t, now, rec.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, ctx := newPayrollMock(t)

	mock.ExpectQuery("FROM payroll_records WHERE id =").
		WithArgs("pay-missing", "unit-a").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(ctx, "pay-missing", "unit-a")
	assert.ErrorIs(t, err, payroll.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollRepository_List_FiltersPassedThrough(t *testing.T) {
	repo, mock, ctx := newPayrollMock(t)

	now := time.Now()
	columns := []string{
		"id", "unit_id", "employee_id", "period",
		"base_salary", "overtime_pay", "deductions", "net_pay",
		"status", "signature_url", "signed_at", "signed_ip", "signed_ua",
		"created_by", "created_at", "updated_at",
	}
	mock.ExpectQuery("FROM payroll_records").
		WithArgs("unit-a", "emp-1", "2026-08").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("pay-1", "unit-a", "emp-1", "2026-08",
				decimal.NewFromInt(5000), decimal.Zero, decimal.Zero, decimal.NewFromInt(5000),
				payroll.StatusGenerated, nil, nil, nil, nil,
				"admin-1", now, now))

	records, err := repo.List(ctx, "unit-a", "emp-1", "2026-08")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "pay-1", records[0].ID)
	assert.True(t, records[0].NetPay.Equal(decimal.NewFromInt(5000)))
	assert.Nil(t, records[0].SignatureURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollRepository_Update_NotFound(t *testing.T) {
	repo, mock, ctx := newPayrollMock(t)

	mock.ExpectExec("UPDATE payroll_records").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(ctx, payroll.Record{ID: "pay-missing", UnitID: "unit-a", Status: payroll.StatusGenerated})
	assert.ErrorIs(t, err, payroll.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollRepository_Delete_NotFound(t *testing.T) {
	repo, mock, ctx := newPayrollMock(t)

	mock.ExpectExec("DELETE FROM payroll_records").
		WithArgs("pay-missing", "unit-a").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(ctx, "pay-missing", "unit-a")
	assert.ErrorIs(t, err, payroll.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
