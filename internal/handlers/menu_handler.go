package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/menu"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/middleware"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/render"
)

// MenuResponse is the body of GET /api/menu
type MenuResponse struct {
	Categories []string        `json:"categories"`
	Category   string          `json:"category,omitempty"`
	Items      []menu.ItemView `json:"items"`
}

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	service *menu.Service
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service *menu.Service, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger,
	}
}

// GetMenu handles GET /api/menu?category=
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := r.URL.Query().Get("category")

	items, err := h.service.Render(ctx, middleware.SessionID(ctx), category)
	if err != nil {
		h.logger.Error("failed to render menu", "category", category, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	categories, err := h.service.Categories(ctx)
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, MenuResponse{
		Categories: categories,
		Category:   category,
		Items:      items,
	}, h.logger)
}

// MenuFragment handles GET /partials/menu?category=
func (h *MenuHandler) MenuFragment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := r.URL.Query().Get("category")

	items, err := h.service.Render(ctx, middleware.SessionID(ctx), category)
	if err != nil {
		h.logger.Error("failed to render menu", "category", category, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	html, err := render.MenuHTML(items)
	if err != nil {
		h.logger.Error("failed to render menu HTML", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}
	WriteHTML(w, http.StatusOK, html, h.logger)
}
