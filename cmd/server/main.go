package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/booking"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/cart"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/config"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/handlers"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/menu"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/notify"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/repository"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/storage"
	"github.com/Lixing-Zhang/suswaad-cafe/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting suswaad storefront server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"storage", cfg.Storage.Driver,
	)

	ctx := context.Background()

	catalog, err := loadCatalog(ctx, cfg.Catalog)
	if err != nil {
		log.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	categories, _ := catalog.Categories(ctx)
	items, _ := catalog.All(ctx)
	log.Info("catalog loaded", "categories", len(categories), "items", len(items))

	backend, closeBackend, err := openStorage(cfg.Storage)
	if err != nil {
		log.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer closeBackend()

	// Initialize services
	center := notify.NewCenter(cfg.Notify.TTL)
	bookingService := booking.NewService(backend, booking.Policy{
		Location:          cfg.Booking.Location,
		OpenHour:          cfg.Booking.OpenHour,
		CloseHour:         cfg.Booking.CloseHour,
		SameDayCutoffHour: cfg.Booking.SameDayCutoffHour,
		ReservationTTL:    cfg.Booking.ReservationTTL,
	}, center, log)
	cartService := cart.NewService(backend, catalog, center, log)
	menuService := menu.NewService(catalog, bookingService, log)

	r := handlers.NewRouter(handlers.Dependencies{
		Config:  cfg,
		Log:     log,
		Menu:    menuService,
		Cart:    cartService,
		Booking: bookingService,
		Notify:  center,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

func loadCatalog(ctx context.Context, cfg config.CatalogConfig) (repository.CatalogRepository, error) {
	if len(cfg.Files) == 0 {
		return repository.NewInMemoryCatalogRepository(), nil
	}
	return repository.LoadCatalogFiles(ctx, cfg.Files)
}

func openStorage(cfg config.StorageConfig) (storage.Store, func(), error) {
	if cfg.Driver == "memory" {
		return storage.NewMemoryStore(), func() {}, nil
	}

	store, err := storage.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close storage", "error", err)
		}
	}, nil
}
