package ticket

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/serviceportals/ops-backend-go/internal/domain/notification"
	"github.com/serviceportals/ops-backend-go/internal/domain/ticket"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type TicketServiceImpl struct {
	tickets       ticket.Repository
	notifications notification.Repository
}

func NewTicketService(tickets ticket.Repository, notifications notification.Repository) ticket.Service {
	return &TicketServiceImpl{tickets: tickets, notifications: notifications}
}

// Create implements ticket.Service. A customer can only open tickets
// for themselves; priority defaults to medium.
func (s *TicketServiceImpl) Create(ctx context.Context, p jwt.Principal, req ticket.CreateTicketRequest) (ticket.Ticket, error) {
	customerID := req.CustomerID
	if p.Role == jwt.RoleCustomer {
		customerID = p.ID
	}

	priority := ticket.Priority(req.Priority)
	if req.Priority == "" {
		priority = ticket.PriorityMedium
	}

	t := ticket.Ticket{
		UnitID:      p.UnitID,
		CustomerID:  customerID,
		AssigneeIDs: req.AssigneeIDs,
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    priority,
		Status:      ticket.StatusOpen,
	}
	if t.AssigneeIDs == nil {
		t.AssigneeIDs = []string{}
	}

	created, err := s.tickets.Create(ctx, t)
	if err != nil {
		return ticket.Ticket{}, fmt.Errorf("failed to create ticket: %w", err)
	}

	_, err = s.notifications.Create(ctx, notification.Notification{
		UnitID: created.UnitID,
		Kind:   notification.KindTicket,
		RefID:  created.ID,
		Title:  "Ticket opened",
		Body:   created.Subject,
		Payload: map[string]interface{}{
			"ticket_id": created.ID,
			"priority":  string(created.Priority),
		},
	})
	if err != nil {
		slog.Error("Failed to insert ticket notification", "ticket_id", created.ID, "error", err)
	}

	return created, nil
}

func (s *TicketServiceImpl) Get(ctx context.Context, p jwt.Principal, id string) (ticket.Ticket, error) {
	t, err := s.tickets.GetByID(ctx, id, p.UnitID)
	if err != nil {
		return ticket.Ticket{}, err
	}
	if p.Role == jwt.RoleCustomer && t.CustomerID != p.ID {
		return ticket.Ticket{}, ticket.ErrNotYourTicket
	}
	return t, nil
}

func (s *TicketServiceImpl) List(ctx context.Context, p jwt.Principal, filter ticket.ListFilter) ([]ticket.Ticket, error) {
	switch p.Role {
	case jwt.RoleCustomer:
		filter.CustomerID = p.ID
	case jwt.RoleEmployee:
		filter.AssigneeID = p.ID
	}
	return s.tickets.List(ctx, p.UnitID, filter)
}

func (s *TicketServiceImpl) Update(ctx context.Context, p jwt.Principal, req ticket.UpdateTicketRequest) (ticket.Ticket, error) {
	t, err := s.tickets.GetByID(ctx, req.ID, p.UnitID)
	if err != nil {
		return ticket.Ticket{}, err
	}

	if req.AssigneeIDs != nil {
		t.AssigneeIDs = *req.AssigneeIDs
	}
	if req.Subject != nil {
		t.Subject = *req.Subject
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Priority != nil {
		t.Priority = ticket.Priority(*req.Priority)
	}
	if req.Status != nil {
		t.Status = ticket.Status(*req.Status)
	}

	if err := s.tickets.Update(ctx, t); err != nil {
		return ticket.Ticket{}, fmt.Errorf("failed to update ticket: %w", err)
	}

	return t, nil
}

func (s *TicketServiceImpl) Delete(ctx context.Context, p jwt.Principal, id string) error {
	return s.tickets.Delete(ctx, id, p.UnitID)
}

// AddComment implements ticket.Service. Customers cannot write internal
// comments on their own tickets.
func (s *TicketServiceImpl) AddComment(ctx context.Context, p jwt.Principal, req ticket.CreateCommentRequest) (ticket.Comment, error) {
	t, err := s.tickets.GetByID(ctx, req.TicketID, p.UnitID)
	if err != nil {
		return ticket.Comment{}, err
	}

	authorKind := ticket.AuthorAdmin
	internal := req.Internal
	switch p.Role {
	case jwt.RoleEmployee:
		authorKind = ticket.AuthorEmployee
	case jwt.RoleCustomer:
		if t.CustomerID != p.ID {
			return ticket.Comment{}, ticket.ErrNotYourTicket
		}
		authorKind = ticket.AuthorCustomer
		internal = false
	}

	c := ticket.Comment{
		TicketID:   t.ID,
		AuthorKind: authorKind,
		AuthorID:   p.ID,
		Body:       req.Body,
		Internal:   internal,
	}

	return s.tickets.CreateComment(ctx, c)
}

// ListComments implements ticket.Service.
func (s *TicketServiceImpl) ListComments(ctx context.Context, p jwt.Principal, ticketID string) ([]ticket.Comment, error) {
	t, err := s.tickets.GetByID(ctx, ticketID, p.UnitID)
	if err != nil {
		return nil, err
	}

	includeInternal := true
	if p.Role == jwt.RoleCustomer {
		if t.CustomerID != p.ID {
			return nil, ticket.ErrNotYourTicket
		}
		includeInternal = false
	}

	return s.tickets.ListComments(ctx, ticketID, includeInternal)
}
