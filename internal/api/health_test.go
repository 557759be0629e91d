package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestHealthEndpointHealthy(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	NewHealthHandler(&memStore{}).RegisterHealth(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var status map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatalf("decode health response: %v", err)
	}
	if status["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", status["status"])
	}
}

func TestHealthEndpointDegradedWhenStorageUnreachable(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	NewHealthHandler(&memStore{pingErr: errors.New("gone")}).RegisterHealth(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	var status map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatalf("decode health response: %v", err)
	}
	if status["status"] != "degraded" {
		t.Errorf("status = %v, want degraded", status["status"])
	}
	checks, ok := status["checks"].(map[string]interface{})
	if !ok {
		t.Fatalf("checks missing from health payload: %v", status)
	}
	if checks["history"] != "unreachable" {
		t.Errorf("history check = %v, want unreachable", checks["history"])
	}
}
