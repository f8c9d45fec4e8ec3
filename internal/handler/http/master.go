package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/master/advertisement"
	"github.com/serviceportals/ops-backend-go/internal/domain/master/servicetype"
	"github.com/serviceportals/ops-backend-go/internal/handler/http/response"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type MasterHandler interface {
	CreateServiceType(w http.ResponseWriter, r *http.Request)
	ListServiceTypes(w http.ResponseWriter, r *http.Request)
	UpdateServiceType(w http.ResponseWriter, r *http.Request)
	DeleteServiceType(w http.ResponseWriter, r *http.Request)

	CreateAdvertisement(w http.ResponseWriter, r *http.Request)
	ListAdvertisements(w http.ResponseWriter, r *http.Request)
	UpdateAdvertisement(w http.ResponseWriter, r *http.Request)
	DeleteAdvertisement(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	serviceTypeService   servicetype.Service
	advertisementService advertisement.Service
}

func NewMasterHandler(serviceTypeService servicetype.Service, advertisementService advertisement.Service) MasterHandler {
	return &MasterHandlerImpl{
		serviceTypeService:   serviceTypeService,
		advertisementService: advertisementService,
	}
}

// CreateServiceType implements MasterHandler.
func (h *MasterHandlerImpl) CreateServiceType(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var createReq servicetype.CreateServiceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("ServiceType create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	st, err := h.serviceTypeService.Create(r.Context(), p.UnitID, createReq)
	if err != nil {
		slog.Error("ServiceType create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Service type created", servicetype.ToResponse(st))
}

// ListServiceTypes implements MasterHandler.
func (h *MasterHandlerImpl) ListServiceTypes(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	types, err := h.serviceTypeService.List(r.Context(), p.UnitID)
	if err != nil {
		slog.Error("ServiceType list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]servicetype.ServiceTypeResponse, 0, len(types))
	for _, st := range types {
		items = append(items, servicetype.ToResponse(st))
	}
	response.Success(w, items)
}

// UpdateServiceType implements MasterHandler.
func (h *MasterHandlerImpl) UpdateServiceType(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var updateReq servicetype.UpdateServiceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("ServiceType update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	st, err := h.serviceTypeService.Update(r.Context(), p.UnitID, updateReq)
	if err != nil {
		slog.Error("ServiceType update service error", "error", err, "service_type_id", updateReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Service type updated", servicetype.ToResponse(st))
}

// DeleteServiceType implements MasterHandler.
func (h *MasterHandlerImpl) DeleteServiceType(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	if err := h.serviceTypeService.Delete(r.Context(), chi.URLParam(r, "id"), p.UnitID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Service type deleted", nil)
}

// CreateAdvertisement implements MasterHandler.
func (h *MasterHandlerImpl) CreateAdvertisement(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var createReq advertisement.CreateAdvertisementRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Advertisement create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	ad, err := h.advertisementService.Create(r.Context(), p.UnitID, createReq)
	if err != nil {
		slog.Error("Advertisement create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advertisement created", advertisement.ToResponse(ad))
}

// ListAdvertisements implements MasterHandler. Non-admin callers only
// ever see active advertisements.
func (h *MasterHandlerImpl) ListAdvertisements(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	activeOnly := p.Role != jwt.RoleAdmin || r.URL.Query().Get("active") == "true"

	ads, err := h.advertisementService.List(r.Context(), p.UnitID, activeOnly)
	if err != nil {
		slog.Error("Advertisement list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]advertisement.AdvertisementResponse, 0, len(ads))
	for _, ad := range ads {
		items = append(items, advertisement.ToResponse(ad))
	}
	response.Success(w, items)
}

// UpdateAdvertisement implements MasterHandler.
func (h *MasterHandlerImpl) UpdateAdvertisement(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var updateReq advertisement.UpdateAdvertisementRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Advertisement update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	ad, err := h.advertisementService.Update(r.Context(), p.UnitID, updateReq)
	if err != nil {
		slog.Error("Advertisement update service error", "error", err, "advertisement_id", updateReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advertisement updated", advertisement.ToResponse(ad))
}

// DeleteAdvertisement implements MasterHandler.
func (h *MasterHandlerImpl) DeleteAdvertisement(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	if err := h.advertisementService.Delete(r.Context(), chi.URLParam(r, "id"), p.UnitID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advertisement deleted", nil)
}
