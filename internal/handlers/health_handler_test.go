package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/health"
)

type stubDB struct{ err error }

func (s stubDB) Ping(ctx context.Context) error { return s.err }

func TestHealthReady(t *testing.T) {
	handler := NewHealthHandler(health.NewHealthChecker(stubDB{}))

	rec := httptest.NewRecorder()
	handler.Ready(rec, httptest.NewRequest("GET", "/health/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "ready" {
		t.Errorf("status = %q, want ready", body["status"])
	}
}

func TestHealthReadyDatabaseDown(t *testing.T) {
	handler := NewHealthHandler(health.NewHealthChecker(stubDB{err: errors.New("connection refused")}))

	rec := httptest.NewRecorder()
	handler.Ready(rec, httptest.NewRequest("GET", "/health/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestHealthDetailedReportsCacheStatus(t *testing.T) {
	handler := NewHealthHandler(health.NewHealthChecker(stubDB{}))

	rec := httptest.NewRecorder()
	handler.Detailed(rec, httptest.NewRequest("GET", "/health/detailed", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body health.DetailedHealth
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	// Redis is never initialized under test.
	if body.Cache != "unavailable" {
		t.Errorf("cache = %q, want unavailable", body.Cache)
	}
}
