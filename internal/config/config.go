package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIKey is the admin key used when API_KEYS is unset. It is only
// accepted with memory storage.
const DefaultAPIKey = "apitest"

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Catalog  CatalogConfig
	Session  SessionConfig
	Booking  BookingConfig
	Notify   NotifyConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	AllowedOrigins  []string
}

type AuthConfig struct {
	APIKeys []string // Valid API keys for the admin endpoints
}

type StorageConfig struct {
	Driver string // memory, sqlite or postgres
	DSN    string
}

type CatalogConfig struct {
	Files []string // YAML catalog files; empty means the built-in menu
}

type SessionConfig struct {
	CookieName string
	Secure     bool
}

// BookingConfig carries the café's reservation policy.
type BookingConfig struct {
	Location          *time.Location
	OpenHour          int
	CloseHour         int
	SameDayCutoffHour int
	ReservationTTL    time.Duration
}

type NotifyConfig struct {
	TTL time.Duration
}

// Load reads configuration from environment variables.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
			AllowedOrigins:  getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
		},
		Auth: AuthConfig{
			APIKeys: getEnvAsSlice("API_KEYS", []string{DefaultAPIKey}),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getEnv("STORAGE_DRIVER", "sqlite")),
			DSN:    getEnv("STORAGE_DSN", "suswaad.db"),
		},
		Catalog: CatalogConfig{
			Files: getEnvAsSlice("CATALOG_FILE", nil),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE", "suswaad_session"),
			Secure:     getEnvAsBool("SESSION_SECURE", false),
		},
		Booking: BookingConfig{
			Location:          loc,
			OpenHour:          getEnvAsInt("OPEN_HOUR", 8),
			CloseHour:         getEnvAsInt("CLOSE_HOUR", 17),
			SameDayCutoffHour: getEnvAsInt("SAME_DAY_CUTOFF_HOUR", 16),
			ReservationTTL:    time.Duration(getEnvAsInt("RESERVATION_TTL_MINUTES", 10)) * time.Minute,
		},
		Notify: NotifyConfig{
			TTL: time.Duration(getEnvAsInt("NOTIFICATION_TTL_MS", 3500)) * time.Millisecond,
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if len(c.Auth.APIKeys) == 0 {
		return fmt.Errorf("at least one API key must be configured")
	}

	switch c.Storage.Driver {
	case "memory":
	case "sqlite", "postgres":
		if c.Storage.DSN == "" {
			return fmt.Errorf("STORAGE_DSN is required for driver %s", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("invalid storage driver: %s (must be memory, sqlite, or postgres)", c.Storage.Driver)
	}

	if c.Storage.Driver != "memory" {
		for _, k := range c.Auth.APIKeys {
			if k == DefaultAPIKey {
				return fmt.Errorf("API_KEYS must be set to non-default keys for driver %s", c.Storage.Driver)
			}
		}
	}

	b := c.Booking
	if b.OpenHour < 0 || b.CloseHour > 24 || b.OpenHour >= b.CloseHour {
		return fmt.Errorf("invalid opening hours: %d-%d", b.OpenHour, b.CloseHour)
	}
	if b.ReservationTTL <= 0 {
		return fmt.Errorf("RESERVATION_TTL_MINUTES must be positive")
	}
	if c.Notify.TTL <= 0 {
		return fmt.Errorf("NOTIFICATION_TTL_MS must be positive")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
