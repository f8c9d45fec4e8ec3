package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/advance"
	"github.com/serviceportals/ops-backend-go/internal/handler/http/response"
)

type AdvanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type AdvanceHandlerImpl struct {
	advanceService advance.Service
}

func NewAdvanceHandler(advanceService advance.Service) AdvanceHandler {
	return &AdvanceHandlerImpl{advanceService: advanceService}
}

// Create implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var createReq advance.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Advance create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	req, err := h.advanceService.Create(r.Context(), p, createReq)
	if err != nil {
		slog.Error("Advance create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Request submitted", advance.ToResponse(req))
}

// Get implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	req, err := h.advanceService.Get(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, advance.ToResponse(req))
}

// List implements AdvanceHandler.
func (h *AdvanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	requests, err := h.advanceService.List(r.Context(), p)
	if err != nil {
		slog.Error("Advance list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]advance.RequestResponse, 0, len(requests))
	for _, req := range requests {
		items = append(items, advance.ToResponse(req))
	}
	response.Success(w, items)
}

// Review implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var reviewReq advance.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&reviewReq); err != nil {
		slog.Error("Advance review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	reviewReq.ID = chi.URLParam(r, "id")

	if err := reviewReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	req, err := h.advanceService.Review(r.Context(), p, reviewReq)
	if err != nil {
		slog.Error("Advance review service error", "error", err, "request_id", reviewReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request reviewed", advance.ToResponse(req))
}
