package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/middleware"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/notify"
)

// NotificationHandler serves the visitor's pending notifications
type NotificationHandler struct {
	center *notify.Center
	log    *slog.Logger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(center *notify.Center, log *slog.Logger) *NotificationHandler {
	return &NotificationHandler{center: center, log: log}
}

// List handles GET /api/notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.center.Active(middleware.SessionID(r.Context())), h.log)
}
