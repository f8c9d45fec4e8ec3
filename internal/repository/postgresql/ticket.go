package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/ticket"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
)

type ticketRepositoryImpl struct {
	db *database.DB
}

func NewTicketRepository(db *database.DB) ticket.Repository {
	return &ticketRepositoryImpl{db: db}
}

var ticketColumns = []string{
	"id", "unit_id", "customer_id", "assignee_ids", "subject", "description",
	"priority", "status", "created_at", "updated_at",
}

func scanTicket(row pgx.Row) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := row.Scan(
		&t.ID, &t.UnitID, &t.CustomerID, &t.AssigneeIDs, &t.Subject, &t.Description,
		&t.Priority, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *ticketRepositoryImpl) Create(ctx context.Context, t ticket.Ticket) (ticket.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tickets (
			id, unit_id, customer_id, assignee_ids, subject, description,
			priority, status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.UnitID, t.CustomerID, t.AssigneeIDs, t.Subject, t.Description,
		t.Priority, t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return ticket.Ticket{}, err
	}

	return t, nil
}

func (r *ticketRepositoryImpl) GetByID(ctx context.Context, id string, unitID string) (ticket.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, unit_id, customer_id, assignee_ids, subject, description,
			   priority, status, created_at, updated_at
		FROM tickets
		WHERE id = $1 AND unit_id = $2
	`

	t, err := scanTicket(q.QueryRow(ctx, query, id, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ticket.Ticket{}, ticket.ErrTicketNotFound
		}
		return ticket.Ticket{}, err
	}
	return t, nil
}

func (r *ticketRepositoryImpl) List(ctx context.Context, unitID string, filter ticket.ListFilter) ([]ticket.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	builder := psql.Select(ticketColumns...).
		From("tickets").
		Where(sq.Eq{"unit_id": unitID}).
		OrderBy("created_at DESC")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Priority != "" {
		builder = builder.Where(sq.Eq{"priority": filter.Priority})
	}
	if filter.CustomerID != "" {
		builder = builder.Where(sq.Eq{"customer_id": filter.CustomerID})
	}
	if filter.AssigneeID != "" {
		builder = builder.Where(sq.Expr("assignee_ids @> ARRAY[?]::text[]", filter.AssigneeID))
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

	var tickets []ticket.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}

	return tickets, rows.Err()
}

func (r *ticketRepositoryImpl) Update(ctx context.Context, t ticket.Ticket) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tickets
		SET assignee_ids = $3, subject = $4, description = $5,
			priority = $6, status = $7, updated_at = NOW()
		WHERE id = $1 AND unit_id = $2
	`

	tag, err := q.Exec(ctx, query,
		t.ID, t.UnitID,
		t.AssigneeIDs, t.Subject, t.Description,
		t.Priority, t.Status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ticket.ErrTicketNotFound
	}
	return nil
}

func (r *ticketRepositoryImpl) Delete(ctx context.Context, id string, unitID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM tickets WHERE id = $1 AND unit_id = $2`

	tag, err := q.Exec(ctx, query, id, unitID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ticket.ErrTicketNotFound
	}
	return nil
}

func (r *ticketRepositoryImpl) CreateComment(ctx context.Context, c ticket.Comment) (ticket.Comment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO ticket_comments (
			id, ticket_id, author_kind, author_id, body, internal, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, NOW()
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		c.TicketID, c.AuthorKind, c.AuthorID, c.Body, c.Internal,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return ticket.Comment{}, err
	}

	return c, nil
}

func (r *ticketRepositoryImpl) ListComments(ctx context.Context, ticketID string, includeInternal bool) ([]ticket.Comment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, ticket_id, author_kind, author_id, body, internal, created_at
		FROM ticket_comments
		WHERE ticket_id = $1 AND ($2 OR NOT internal)
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, ticketID, includeInternal)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []ticket.Comment
	for rows.Next() {
		var c ticket.Comment
		err := rows.Scan(&c.ID, &c.TicketID, &c.AuthorKind, &c.AuthorID, &c.Body, &c.Internal, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}
