package handlers

import (
	"log/slog"
	"time"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/booking"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/cart"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/config"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/menu"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/middleware"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/notify"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Dependencies are the services the router dispatches to
type Dependencies struct {
	Config  *config.Config
	Log     *slog.Logger
	Menu    *menu.Service
	Cart    *cart.Service
	Booking *booking.Service
	Notify  *notify.Center
}

// NewRouter builds the storefront's HTTP routes
func NewRouter(d Dependencies) chi.Router {
	healthHandler := NewHealthHandler(d.Config.Storage.Driver, d.Log)
	menuHandler := NewMenuHandler(d.Menu, d.Log)
	cartHandler := NewCartHandler(d.Cart, d.Log)
	bookingHandler := NewBookingHandler(d.Booking, d.Log)
	notificationHandler := NewNotificationHandler(d.Notify, d.Log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Session(d.Config.Session))
	r.Use(middleware.Logger(d.Log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.Config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/partials", func(r chi.Router) {
		r.Get("/menu", menuHandler.MenuFragment)
		r.Get("/cart", cartHandler.CartFragment)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", menuHandler.GetMenu)

		r.Get("/cart", cartHandler.GetCart)
		r.Get("/cart/count", cartHandler.GetCount)
		r.Post("/cart/items", cartHandler.AddItem)
		r.Patch("/cart/items/{itemId}", cartHandler.UpdateQty)
		r.Delete("/cart/items/{itemId}", cartHandler.RemoveItem)

		r.Get("/reservations", bookingHandler.ListReservations)
		r.Post("/reservations", bookingHandler.CreateReservation)
		r.Post("/reservations/sweep", bookingHandler.SweepReservations)

		r.Get("/preorders", bookingHandler.ListPreorders)
		r.Post("/preorders", bookingHandler.CreatePreorder)

		r.Get("/notifications", notificationHandler.List)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(d.Config.Auth))
			r.Get("/sessions/{sessionId}/reservations", bookingHandler.SessionReservations)
			r.Get("/sessions/{sessionId}/preorders", bookingHandler.SessionPreorders)
		})
	})

	return r
}
