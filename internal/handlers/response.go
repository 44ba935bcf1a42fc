package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Result is the body returned by every mutating endpoint. Message carries
// the notification shown to the visitor.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, logger)
}

// WriteResult writes a Result with the given status
func WriteResult(w http.ResponseWriter, status int, result Result, logger *slog.Logger) {
	WriteJSON(w, status, result, logger)
}

// WriteHTML writes an HTML fragment
func WriteHTML(w http.ResponseWriter, status int, fragment string, logger *slog.Logger) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if _, err := w.Write([]byte(fragment)); err != nil {
		logger.Error("failed to write HTML response", "error", err)
	}
}
