package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/schedule"
	"github.com/serviceportals/ops-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// Create implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var createReq schedule.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Schedule create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.scheduleService.Create(r.Context(), p, createReq)
	if err != nil {
		slog.Error("Schedule create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule entry created", schedule.ToResponse(entry))
}

// ListByDate implements ScheduleHandler. The date query parameter
// defaults to today.
func (h *ScheduleHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "date must be YYYY-MM-DD", nil)
			return
		}
		date = parsed
	}

	entries, err := h.scheduleService.ListByDate(r.Context(), p, date)
	if err != nil {
		slog.Error("Schedule list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]schedule.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, schedule.ToResponse(entry))
	}
	response.Success(w, items)
}

// ListByEmployee implements ScheduleHandler. The from and to query
// parameters default to the current week.
func (h *ScheduleHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	now := time.Now()
	from := now.AddDate(0, 0, -int(now.Weekday()))
	to := from.AddDate(0, 0, 7)

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "from must be YYYY-MM-DD", nil)
			return
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "to must be YYYY-MM-DD", nil)
			return
		}
		to = parsed
	}

	entries, err := h.scheduleService.ListByEmployee(r.Context(), p, chi.URLParam(r, "employeeID"), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]schedule.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, schedule.ToResponse(entry))
	}
	response.Success(w, items)
}

// Update implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var updateReq schedule.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Schedule update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.scheduleService.Update(r.Context(), p, updateReq)
	if err != nil {
		slog.Error("Schedule update service error", "error", err, "entry_id", updateReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule entry updated", schedule.ToResponse(entry))
}

// Delete implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	if err := h.scheduleService.Delete(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule entry deleted", nil)
}
