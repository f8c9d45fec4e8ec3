package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/asset"
	"github.com/serviceportals/ops-backend-go/internal/handler/http/response"
)

type AssetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AssetHandlerImpl struct {
	assetService asset.Service
}

func NewAssetHandler(assetService asset.Service) AssetHandler {
	return &AssetHandlerImpl{assetService: assetService}
}

// Create implements AssetHandler.
func (h *AssetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var createReq asset.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Asset create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	a, err := h.assetService.Create(r.Context(), p.UnitID, createReq)
	if err != nil {
		slog.Error("Asset create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Asset created", asset.ToResponse(a))
}

// Get implements AssetHandler.
func (h *AssetHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	a, err := h.assetService.Get(r.Context(), chi.URLParam(r, "id"), p.UnitID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, asset.ToResponse(a))
}

// List implements AssetHandler.
func (h *AssetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	filter := asset.ListFilter{
		Category: r.URL.Query().Get("category"),
		Limit:    queryInt(r, "limit"),
		Offset:   queryInt(r, "offset"),
	}

	assets, err := h.assetService.List(r.Context(), p.UnitID, filter)
	if err != nil {
		slog.Error("Asset list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]asset.AssetResponse, 0, len(assets))
	for _, a := range assets {
		items = append(items, asset.ToResponse(a))
	}
	response.Success(w, items)
}

// Update implements AssetHandler.
func (h *AssetHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var updateReq asset.UpdateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Asset update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	a, err := h.assetService.Update(r.Context(), p.UnitID, updateReq)
	if err != nil {
		slog.Error("Asset update service error", "error", err, "asset_id", updateReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset updated", asset.ToResponse(a))
}

// Delete implements AssetHandler.
func (h *AssetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	if err := h.assetService.Delete(r.Context(), chi.URLParam(r, "id"), p.UnitID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset deleted", nil)
}
