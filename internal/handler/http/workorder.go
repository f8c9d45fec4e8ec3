package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/workorder"
	"github.com/serviceportals/ops-backend-go/internal/handler/http/middleware"
	"github.com/serviceportals/ops-backend-go/internal/handler/http/response"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type WorkOrderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type WorkOrderHandlerImpl struct {
	workOrderService workorder.Service
}

func NewWorkOrderHandler(workOrderService workorder.Service) WorkOrderHandler {
	return &WorkOrderHandlerImpl{workOrderService: workOrderService}
}

// mustPrincipal pulls the authenticated principal out of the request
// context, answering 401 when the middleware did not run.
func mustPrincipal(w http.ResponseWriter, r *http.Request) (jwt.Principal, bool) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing authentication token")
	}
	return p, ok
}

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed.
func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}

// Create implements WorkOrderHandler.
func (h *WorkOrderHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var createReq workorder.CreateWorkOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("WorkOrder create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	wo, err := h.workOrderService.Create(r.Context(), p, createReq)
	if err != nil {
		slog.Error("WorkOrder create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work order created", workorder.ToResponse(wo))
}

// Get implements WorkOrderHandler.
func (h *WorkOrderHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	wo, err := h.workOrderService.Get(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, workorder.ToResponse(wo))
}

// List implements WorkOrderHandler.
func (h *WorkOrderHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	filter := workorder.ListFilter{
		Status:             workorder.Status(r.URL.Query().Get("status")),
		CustomerID:         r.URL.Query().Get("customer_id"),
		AssignedEmployeeID: r.URL.Query().Get("employee_id"),
		Limit:              queryInt(r, "limit"),
		Offset:             queryInt(r, "offset"),
	}

	orders, err := h.workOrderService.List(r.Context(), p, filter)
	if err != nil {
		slog.Error("WorkOrder list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]workorder.WorkOrderResponse, 0, len(orders))
	for _, wo := range orders {
		items = append(items, workorder.ToResponse(wo))
	}
	response.Success(w, items)
}

// Update implements WorkOrderHandler.
func (h *WorkOrderHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var updateReq workorder.UpdateWorkOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("WorkOrder update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	wo, err := h.workOrderService.Update(r.Context(), p, updateReq)
	if err != nil {
		slog.Error("WorkOrder update service error", "error", err, "work_order_id", updateReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work order updated", workorder.ToResponse(wo))
}

// Submit implements WorkOrderHandler.
func (h *WorkOrderHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var submitReq workorder.SubmitWorkOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("WorkOrder submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	submitReq.ID = chi.URLParam(r, "id")

	if err := submitReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	wo, err := h.workOrderService.Submit(r.Context(), p, submitReq)
	if err != nil {
		slog.Error("WorkOrder submit service error", "error", err, "work_order_id", submitReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work order submitted", workorder.ToResponse(wo))
}

// Delete implements WorkOrderHandler.
func (h *WorkOrderHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	if err := h.workOrderService.Delete(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work order deleted", nil)
}
