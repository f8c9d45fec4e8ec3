package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/notification"
	"github.com/serviceportals/ops-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	Feed(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: notificationService}
}

// Feed implements NotificationHandler. The kinds query parameter is a
// comma-separated kind filter; unknown kinds are rejected.
func (h *NotificationHandlerImpl) Feed(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var kinds []notification.Kind
	if raw := r.URL.Query().Get("kinds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			kind := notification.Kind(strings.TrimSpace(part))
			if !notification.ValidKind(kind) {
				response.BadRequest(w, "Unknown notification kind: "+string(kind), nil)
				return
			}
			kinds = append(kinds, kind)
		}
	}

	feed, err := h.notificationService.Feed(r.Context(), p.UnitID, kinds, queryInt(r, "limit"))
	if err != nil {
		slog.Error("Notification feed service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, feed)
}

// MarkRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(r.Context(), chi.URLParam(r, "id"), p.UnitID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", nil)
}

// MarkAllRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var kind *notification.Kind
	if raw := r.URL.Query().Get("kind"); raw != "" {
		k := notification.Kind(raw)
		if !notification.ValidKind(k) {
			response.BadRequest(w, "Unknown notification kind: "+raw, nil)
			return
		}
		kind = &k
	}

	if err := h.notificationService.MarkAllRead(r.Context(), p.UnitID, kind); err != nil {
		slog.Error("Notification mark-all-read service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notifications marked as read", nil)
}
