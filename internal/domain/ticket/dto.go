package ticket

import (
	"time"

	"github.com/serviceportals/ops-backend-go/internal/pkg/validator"
)

type CreateTicketRequest struct {
	CustomerID  string   `json:"customer_id"`
	AssigneeIDs []string `json:"assignee_ids"`
	Subject     string   `json:"subject"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
}

func (r *CreateTicketRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CustomerID) {
		errs = append(errs, validator.ValidationError{Field: "customer_id", Message: "customer_id is required"})
	}
	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{Field: "subject", Message: "subject is required"})
	}
	if r.Priority != "" && !ValidPriority(r.Priority) {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "priority must be low, medium, high, or urgent"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTicketRequest struct {
	ID          string    `json:"-"`
	AssigneeIDs *[]string `json:"assignee_ids"`
	Subject     *string   `json:"subject"`
	Description *string   `json:"description"`
	Priority    *string   `json:"priority"`
	Status      *string   `json:"status"`
}

func (r *UpdateTicketRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Subject != nil && validator.IsEmpty(*r.Subject) {
		errs = append(errs, validator.ValidationError{Field: "subject", Message: "subject must not be empty"})
	}
	if r.Priority != nil && !ValidPriority(*r.Priority) {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "priority must be low, medium, high, or urgent"})
	}
	if r.Status != nil && !ValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be open, in_progress, resolved, or closed"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateCommentRequest struct {
	TicketID string `json:"-"`
	Body     string `json:"body"`
	Internal bool   `json:"internal"`
}

func (r *CreateCommentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "body is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TicketResponse struct {
	ID          string    `json:"id"`
	UnitID      string    `json:"unit_id"`
	CustomerID  string    `json:"customer_id"`
	AssigneeIDs []string  `json:"assignee_ids"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToResponse(t Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID,
		UnitID:      t.UnitID,
		CustomerID:  t.CustomerID,
		AssigneeIDs: t.AssigneeIDs,
		Subject:     t.Subject,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type CommentResponse struct {
	ID         string     `json:"id"`
	TicketID   string     `json:"ticket_id"`
	AuthorKind AuthorKind `json:"author_kind"`
	AuthorID   string     `json:"author_id"`
	Body       string     `json:"body"`
	Internal   bool       `json:"internal"`
	CreatedAt  time.Time  `json:"created_at"`
}

func ToCommentResponse(c Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		TicketID:   c.TicketID,
		AuthorKind: c.AuthorKind,
		AuthorID:   c.AuthorID,
		Body:       c.Body,
		Internal:   c.Internal,
		CreatedAt:  c.CreatedAt,
	}
}
