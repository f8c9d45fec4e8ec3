package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/workorder"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type workOrderRepositoryImpl struct {
	db *database.DB
}

func NewWorkOrderRepository(db *database.DB) workorder.Repository {
	return &workOrderRepositoryImpl{db: db}
}

var workOrderColumns = []string{
	"id", "unit_id", "customer_id", "assigned_employee_id", "description", "status",
	"before_photo_url", "after_photo_url", "completion_date",
	"employee_signature_url", "customer_signature_url",
	"created_by", "updated_by", "created_at", "updated_at",
}

func scanWorkOrder(row pgx.Row) (workorder.WorkOrder, error) {
	var wo workorder.WorkOrder
	err := row.Scan(
		&wo.ID, &wo.UnitID, &wo.CustomerID, &wo.AssignedEmployeeID, &wo.Description, &wo.Status,
		&wo.BeforePhotoURL, &wo.AfterPhotoURL, &wo.CompletionDate,
		&wo.EmployeeSignatureURL, &wo.CustomerSignatureURL,
		&wo.CreatedBy, &wo.UpdatedBy, &wo.CreatedAt, &wo.UpdatedAt,
	)
	return wo, err
}

func (r *workOrderRepositoryImpl) Create(ctx context.Context, wo workorder.WorkOrder) (workorder.WorkOrder, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_orders (
			id, unit_id, customer_id, assigned_employee_id, description, status,
			before_photo_url, after_photo_url,
			created_by, updated_by, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7,
			$8, $8, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		wo.UnitID, wo.CustomerID, wo.AssignedEmployeeID, wo.Description, wo.Status,
		wo.BeforePhotoURL, wo.AfterPhotoURL,
		wo.CreatedBy,
	).Scan(&wo.ID, &wo.CreatedAt, &wo.UpdatedAt)
	if err != nil {
		return workorder.WorkOrder{}, err
	}
	wo.UpdatedBy = wo.CreatedBy

	return wo, nil
}

func (r *workOrderRepositoryImpl) GetByID(ctx context.Context, id string, unitID string) (workorder.WorkOrder, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, customer_id, assigned_employee_id, description, status,
			   before_photo_url, after_photo_url, completion_date,
			   employee_signature_url, customer_signature_url,
			   created_by, updated_by, created_at, updated_at
		FROM work_orders
		WHERE id = $1 AND unit_id = $2
	`

	wo, err := scanWorkOrder(q.QueryRow(ctx, query, id, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workorder.WorkOrder{}, workorder.ErrWorkOrderNotFound
		}
		return workorder.WorkOrder{}, err
	}
	return wo, nil
}

func (r *workOrderRepositoryImpl) List(ctx context.Context, unitID string, filter workorder.ListFilter) ([]workorder.WorkOrder, error) {
	q := GetQuerier(ctx, r.db)

	builder := psql.Select(workOrderColumns...).
		From("work_orders").
		Where(sq.Eq{"unit_id": unitID}).
		OrderBy("created_at DESC")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.CustomerID != "" {
		builder = builder.Where(sq.Eq{"customer_id": filter.CustomerID})
	}
	if filter.AssignedEmployeeID != "" {
		builder = builder.Where(sq.Eq{"assigned_employee_id": filter.AssignedEmployeeID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []workorder.WorkOrder
	for rows.Next() {
		wo, err := scanWorkOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, wo)
	}

	return orders, rows.Err()
}

func (r *workOrderRepositoryImpl) Update(ctx context.Context, wo workorder.WorkOrder) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_orders
		SET customer_id = $3, assigned_employee_id = $4, description = $5, status = $6,
			before_photo_url = $7, after_photo_url = $8, completion_date = $9,
			employee_signature_url = $10, customer_signature_url = $11,
			updated_by = $12, updated_at = NOW()
		WHERE id = $1 AND unit_id = $2
	`

	tag, err := q.Exec(ctx, query,
		wo.ID, wo.UnitID,
		wo.CustomerID, wo.AssignedEmployeeID, wo.Description, wo.Status,
		wo.BeforePhotoURL, wo.AfterPhotoURL, wo.CompletionDate,
		wo.EmployeeSignatureURL, wo.CustomerSignatureURL,
		wo.UpdatedBy,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return workorder.ErrWorkOrderNotFound
	}
	return nil
}

func (r *workOrderRepositoryImpl) Delete(ctx context.Context, id string, unitID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM work_orders WHERE id = $1 AND unit_id = $2`

	tag, err := q.Exec(ctx, query, id, unitID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return workorder.ErrWorkOrderNotFound
	}
	return nil
}
