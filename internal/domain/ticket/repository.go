package ticket

import "context"

type ListFilter struct {
	Status     Status
	Priority   Priority
	CustomerID string
	AssigneeID string
	Limit      int
	Offset     int
}

type Repository interface {
	Create(ctx context.Context, t Ticket) (Ticket, error)
	GetByID(ctx context.Context, id string, unitID string) (Ticket, error)
	List(ctx context.Context, unitID string, filter ListFilter) ([]Ticket, error)
	Update(ctx context.Context, t Ticket) error
	Delete(ctx context.Context, id string, unitID string) error

	CreateComment(ctx context.Context, c Comment) (Comment, error)
	// ListComments excludes internal comments when includeInternal is
	// false.
	ListComments(ctx context.Context, ticketID string, includeInternal bool) ([]Comment, error)
}
