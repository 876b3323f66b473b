package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHealthHandler_Liveness(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "ok" || resp["uptime"] == "" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestHealthDependenciesHandler_Readiness(t *testing.T) {
	okCheck := func(_ context.Context) error { return nil }
	downCheck := func(_ context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     []dependencyCheck
		wantCode   int
		wantStatus string
	}{
		{
			name: "all dependencies up",
			checks: []dependencyCheck{
				{name: "mongodb", ping: okCheck},
				{name: "redis", ping: okCheck},
			},
			wantCode:   http.StatusOK,
			wantStatus: "ok",
		},
		{
			name: "one dependency down",
			checks: []dependencyCheck{
				{name: "mongodb", ping: okCheck},
				{name: "redis", ping: downCheck},
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := &HealthDependenciesHandler{checks: tt.checks}
			if err := h.Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}

			var resp readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Status != tt.wantStatus {
				t.Fatalf("expected status %q, got %q", tt.wantStatus, resp.Status)
			}
			if len(resp.Dependencies) != len(tt.checks) {
				t.Fatalf("expected %d dependencies, got %d", len(tt.checks), len(resp.Dependencies))
			}
		})
	}
}
