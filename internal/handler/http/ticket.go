package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/ticket"
	"github.com/serviceportals/ops-backend-go/internal/handler/http/response"
)

type TicketHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddComment(w http.ResponseWriter, r *http.Request)
	ListComments(w http.ResponseWriter, r *http.Request)
}

type TicketHandlerImpl struct {
	ticketService ticket.Service
}

func NewTicketHandler(ticketService ticket.Service) TicketHandler {
	return &TicketHandlerImpl{ticketService: ticketService}
}

// Create implements TicketHandler.
func (h *TicketHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var createReq ticket.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Ticket create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	t, err := h.ticketService.Create(r.Context(), p, createReq)
	if err != nil {
		slog.Error("Ticket create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Ticket created", ticket.ToResponse(t))
}

// Get implements TicketHandler.
func (h *TicketHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	t, err := h.ticketService.Get(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, ticket.ToResponse(t))
}

// List implements TicketHandler.
func (h *TicketHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	filter := ticket.ListFilter{
		Status:     ticket.Status(r.URL.Query().Get("status")),
		Priority:   ticket.Priority(r.URL.Query().Get("priority")),
		CustomerID: r.URL.Query().Get("customer_id"),
		AssigneeID: r.URL.Query().Get("assignee_id"),
		Limit:      queryInt(r, "limit"),
		Offset:     queryInt(r, "offset"),
	}

	tickets, err := h.ticketService.List(r.Context(), p, filter)
	if err != nil {
		slog.Error("Ticket list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]ticket.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, ticket.ToResponse(t))
	}
	response.Success(w, items)
}

// Update implements TicketHandler.
func (h *TicketHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var updateReq ticket.UpdateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Ticket update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	t, err := h.ticketService.Update(r.Context(), p, updateReq)
	if err != nil {
		slog.Error("Ticket update service error", "error", err, "ticket_id", updateReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ticket updated", ticket.ToResponse(t))
}

// Delete implements TicketHandler.
func (h *TicketHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	if err := h.ticketService.Delete(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ticket deleted", nil)
}

// AddComment implements TicketHandler.
func (h *TicketHandlerImpl) AddComment(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var commentReq ticket.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&commentReq); err != nil {
		slog.Error("Ticket comment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	commentReq.TicketID = chi.URLParam(r, "id")

	if err := commentReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	c, err := h.ticketService.AddComment(r.Context(), p, commentReq)
	if err != nil {
		slog.Error("Ticket comment service error", "error", err, "ticket_id", commentReq.TicketID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Comment added", ticket.ToCommentResponse(c))
}

// ListComments implements TicketHandler.
func (h *TicketHandlerImpl) ListComments(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	comments, err := h.ticketService.ListComments(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]ticket.CommentResponse, 0, len(comments))
	for _, c := range comments {
		items = append(items, ticket.ToCommentResponse(c))
	}
	response.Success(w, items)
}
