// Package api provides HTTP handlers for the health assistant service.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/triagelabs/healthbot/internal/assistant"
	"github.com/triagelabs/healthbot/internal/store"
)

// Handler provides common handler utilities.
type Handler struct {
	assistant *assistant.Assistant
	history   store.Store
}

// NewHandler creates a new Handler with common dependencies.
func NewHandler(a *assistant.Assistant, history store.Store) *Handler {
	return &Handler{
		assistant: a,
		history:   history,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
