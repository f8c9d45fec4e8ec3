package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/customer"
	"github.com/serviceportals/ops-backend-go/internal/handler/http/response"
)

type CustomerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CustomerHandlerImpl struct {
	customerService customer.Service
}

func NewCustomerHandler(customerService customer.Service) CustomerHandler {
	return &CustomerHandlerImpl{customerService: customerService}
}

// Create implements CustomerHandler.
func (h *CustomerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var createReq customer.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Customer create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	c, err := h.customerService.Create(r.Context(), p.UnitID, createReq)
	if err != nil {
		slog.Error("Customer create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Customer created", customer.ToResponse(c))
}

// Get implements CustomerHandler.
func (h *CustomerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	c, err := h.customerService.Get(r.Context(), chi.URLParam(r, "id"), p.UnitID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, customer.ToResponse(c))
}

// List implements CustomerHandler.
func (h *CustomerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	customers, err := h.customerService.List(r.Context(), p.UnitID)
	if err != nil {
		slog.Error("Customer list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]customer.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, customer.ToResponse(c))
	}
	response.Success(w, items)
}

// Update implements CustomerHandler.
func (h *CustomerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var updateReq customer.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Customer update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	c, err := h.customerService.Update(r.Context(), p.UnitID, updateReq)
	if err != nil {
		slog.Error("Customer update service error", "error", err, "customer_id", updateReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Customer updated", customer.ToResponse(c))
}

// Delete implements CustomerHandler.
func (h *CustomerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	if err := h.customerService.Delete(r.Context(), chi.URLParam(r, "id"), p.UnitID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Customer deleted", nil)
}
