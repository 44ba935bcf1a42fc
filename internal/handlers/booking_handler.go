package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/booking"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/middleware"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/models"
	"github.com/go-chi/chi/v5"
)

// SweepResponse reports how many reservations a sweep removed
type SweepResponse struct {
	Removed int `json:"removed"`
}

// BookingHandler handles reservation and pre-order HTTP requests
type BookingHandler struct {
	service *booking.Service
	log     *slog.Logger
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(service *booking.Service, log *slog.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// CreateReservation handles POST /api/reservations
func (h *BookingHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req models.ReservationRequest
	err := decodeBody(w, r, &req, func(get func(string) string) error {
		req = models.ReservationRequest{
			Name:    get("fullname"),
			Email:   get("email"),
			Date:    get("date"),
			Time:    get("time"),
			Message: get("message"),
		}
		return nil
	})
	if err != nil {
		h.log.Warn("failed to decode reservation request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	entry, err := h.service.Reserve(r.Context(), middleware.SessionID(r.Context()), req)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	WriteResult(w, http.StatusCreated, Result{
		Success: true,
		Message: booking.ReservedMessage(entry.Time, h.service.Policy().ReservationTTL),
		Data:    entry,
	}, h.log)
}

// ListReservations handles GET /api/reservations
func (h *BookingHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	h.listReservations(w, r, middleware.SessionID(r.Context()))
}

// SweepReservations handles POST /api/reservations/sweep
func (h *BookingHandler) SweepReservations(w http.ResponseWriter, r *http.Request) {
	removed, err := h.service.Sweep(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		h.log.Error("failed to sweep reservations", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, SweepResponse{Removed: removed}, h.log)
}

// CreatePreorder handles POST /api/preorders
func (h *BookingHandler) CreatePreorder(w http.ResponseWriter, r *http.Request) {
	var req models.PreorderRequest
	err := decodeBody(w, r, &req, func(get func(string) string) error {
		req = models.PreorderRequest{
			Name:  get("fullname"),
			Email: get("email"),
			Date:  get("date"),
			Time:  get("time"),
			Item:  get("item"),
		}
		return nil
	})
	if err != nil {
		h.log.Warn("failed to decode pre-order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	entry, err := h.service.Preorder(r.Context(), middleware.SessionID(r.Context()), req)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	WriteResult(w, http.StatusCreated, Result{
		Success: true,
		Message: booking.PreorderedMessage(entry.Item, entry.Time),
		Data:    entry,
	}, h.log)
}

// ListPreorders handles GET /api/preorders
func (h *BookingHandler) ListPreorders(w http.ResponseWriter, r *http.Request) {
	h.listPreorders(w, r, middleware.SessionID(r.Context()))
}

// SessionReservations handles GET /api/admin/sessions/{sessionId}/reservations
func (h *BookingHandler) SessionReservations(w http.ResponseWriter, r *http.Request) {
	h.listReservations(w, r, chi.URLParam(r, "sessionId"))
}

// SessionPreorders handles GET /api/admin/sessions/{sessionId}/preorders
func (h *BookingHandler) SessionPreorders(w http.ResponseWriter, r *http.Request) {
	h.listPreorders(w, r, chi.URLParam(r, "sessionId"))
}

func (h *BookingHandler) listReservations(w http.ResponseWriter, r *http.Request, session string) {
	entries, err := h.service.Reservations(r.Context(), session)
	if err != nil {
		h.log.Error("failed to list reservations", "session", session, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, entries, h.log)
}

func (h *BookingHandler) listPreorders(w http.ResponseWriter, r *http.Request, session string) {
	entries, err := h.service.Preorders(r.Context(), session)
	if err != nil {
		h.log.Error("failed to list pre-orders", "session", session, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, entries, h.log)
}

func (h *BookingHandler) writeBookingError(w http.ResponseWriter, err error) {
	var message string
	switch {
	case errors.Is(err, booking.ErrMissingFields):
		message = booking.MsgMissingFields
	case errors.Is(err, booking.ErrOutsideOpeningHours):
		message = booking.MsgOutsideOpeningHours
	case errors.Is(err, booking.ErrTooLateToday):
		message = booking.MsgTooLateToday
	default:
		h.log.Error("failed to record booking", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteResult(w, http.StatusUnprocessableEntity, Result{Message: message}, h.log)
}
