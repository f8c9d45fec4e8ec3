package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/rating"
	"github.com/serviceportals/ops-backend-go/internal/handler/http/response"
)

type RatingHandler interface {
	CreateLink(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
}

type RatingHandlerImpl struct {
	ratingService rating.Service
}

func NewRatingHandler(ratingService rating.Service) RatingHandler {
	return &RatingHandlerImpl{ratingService: ratingService}
}

// CreateLink implements RatingHandler.
func (h *RatingHandlerImpl) CreateLink(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var createReq rating.CreateRatingLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Rating link decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	link, err := h.ratingService.CreateLink(r.Context(), p, createReq)
	if err != nil {
		slog.Error("Rating link service error", "error", err, "work_order_id", createReq.WorkOrderID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Rating link created", rating.ToResponse(link))
}

// List implements RatingHandler.
func (h *RatingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	links, err := h.ratingService.List(r.Context(), p)
	if err != nil {
		slog.Error("Rating list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]rating.RatingLinkResponse, 0, len(links))
	for _, link := range links {
		items = append(items, rating.ToResponse(link))
	}
	response.Success(w, items)
}

// Submit implements RatingHandler. It is mounted without authentication;
// the link token is the only credential.
func (h *RatingHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var submitReq rating.SubmitRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("Rating submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	submitReq.Token = chi.URLParam(r, "token")

	if err := submitReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	link, err := h.ratingService.Submit(r.Context(), submitReq)
	if err != nil {
		slog.Error("Rating submit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rating submitted", rating.ToResponse(link))
}
