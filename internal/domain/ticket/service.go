package ticket

import (
	"context"

	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type Service interface {
	Create(ctx context.Context, p jwt.Principal, req CreateTicketRequest) (Ticket, error)
	Get(ctx context.Context, p jwt.Principal, id string) (Ticket, error)
	List(ctx context.Context, p jwt.Principal, filter ListFilter) ([]Ticket, error)
	Update(ctx context.Context, p jwt.Principal, req UpdateTicketRequest) (Ticket, error)
	Delete(ctx context.Context, p jwt.Principal, id string) error

	AddComment(ctx context.Context, p jwt.Principal, req CreateCommentRequest) (Comment, error)
	// ListComments hides internal comments from customers.
	ListComments(ctx context.Context, p jwt.Principal, ticketID string) ([]Comment, error)
}
