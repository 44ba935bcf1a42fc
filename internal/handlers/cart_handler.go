package handlers

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/cart"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/middleware"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/render"
)

// AddToCartRequest is the body of POST /api/cart/items
type AddToCartRequest struct {
	ItemID int64   `json:"itemId"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// maxQtyDelta bounds a single quantity change
const maxQtyDelta = 1000

// UpdateQtyRequest is the body of PATCH /api/cart/items/{itemId}
type UpdateQtyRequest struct {
	Delta int `json:"delta"`
}

// CountResponse is the cart badge
type CountResponse struct {
	Count int    `json:"count"`
	Badge string `json:"badge"`
}

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	service *cart.Service
	log     *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *cart.Service, log *slog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	store := h.service.Store(middleware.SessionID(r.Context()))

	view, err := store.View(r.Context())
	if err != nil {
		h.log.Error("failed to load cart", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, view, h.log)
}

// CartFragment handles GET /partials/cart
func (h *CartHandler) CartFragment(w http.ResponseWriter, r *http.Request) {
	store := h.service.Store(middleware.SessionID(r.Context()))

	view, err := store.View(r.Context())
	if err != nil {
		h.log.Error("failed to load cart", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	html, err := render.CartHTML(view)
	if err != nil {
		h.log.Error("failed to render cart", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteHTML(w, http.StatusOK, html, h.log)
}

// GetCount handles GET /api/cart/count
func (h *CartHandler) GetCount(w http.ResponseWriter, r *http.Request) {
	store := h.service.Store(middleware.SessionID(r.Context()))

	view, err := store.View(r.Context())
	if err != nil {
		h.log.Error("failed to count cart", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, CountResponse{Count: view.Count, Badge: view.Badge}, h.log)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	err := decodeBody(w, r, &req, func(get func(string) string) error {
		var err error
		if req.ItemID, err = strconv.ParseInt(strings.TrimSpace(get("itemId")), 10, 64); err != nil {
			return err
		}
		req.Name = get("name")
		if p := strings.TrimSpace(get("price")); p != "" {
			req.Price, err = strconv.ParseFloat(p, 64)
		}
		return err
	})
	if err != nil {
		h.log.Warn("failed to decode add-to-cart request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if req.ItemID <= 0 || req.Price < 0 || math.IsNaN(req.Price) || math.IsInf(req.Price, 0) {
		WriteError(w, http.StatusBadRequest, "Invalid item", h.log)
		return
	}

	store := h.service.Store(middleware.SessionID(r.Context()))
	line, err := store.Add(r.Context(), req.ItemID, req.Name, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrItemNotFound):
			WriteResult(w, http.StatusNotFound, Result{Message: cart.MsgOutOfStock}, h.log)
		case errors.Is(err, cart.ErrOutOfStock):
			WriteResult(w, http.StatusConflict, Result{Message: cart.MsgOutOfStock}, h.log)
		default:
			h.log.Error("failed to add to cart", "item_id", req.ItemID, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteResult(w, http.StatusOK, Result{
		Success: true,
		Message: cart.AddedMessage(req.Name),
		Data:    line,
	}, h.log)
}

// UpdateQty handles PATCH /api/cart/items/{itemId}. A line that is not in
// the cart is ignored and the cart is returned unchanged.
func (h *CartHandler) UpdateQty(w http.ResponseWriter, r *http.Request) {
	itemID, err := itemIDParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	var req UpdateQtyRequest
	err = decodeBody(w, r, &req, func(get func(string) string) error {
		var err error
		req.Delta, err = strconv.Atoi(strings.TrimSpace(get("delta")))
		return err
	})
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if req.Delta < -maxQtyDelta || req.Delta > maxQtyDelta {
		WriteError(w, http.StatusBadRequest, "Invalid quantity change", h.log)
		return
	}

	store := h.service.Store(middleware.SessionID(r.Context()))
	if _, err := store.UpdateQty(r.Context(), itemID, req.Delta); err != nil && !errors.Is(err, cart.ErrLineNotFound) {
		h.log.Error("failed to update cart quantity", "item_id", itemID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.GetCart(w, r)
}

// RemoveItem handles DELETE /api/cart/items/{itemId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := itemIDParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	store := h.service.Store(middleware.SessionID(r.Context()))
	if err := store.Remove(r.Context(), itemID); err != nil {
		h.log.Error("failed to remove from cart", "item_id", itemID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.GetCart(w, r)
}
