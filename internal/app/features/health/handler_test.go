package health_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/features/health"
	"github.com/dalemusser/cohorthub/internal/testutil"
)

func TestServe_BackendReachable(t *testing.T) {
	env := testutil.NewEnv(t)
	handler := health.NewHandler(env.Client, zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", contentType, "application/json")
	}

	var response struct {
		Status      string `json:"status"`
		Spreadsheet string `json:"spreadsheet"`
	}
	testutil.DecodeJSON(t, rec, &response)

	if response.Status != "ok" {
		t.Errorf("status: got %q, want %q", response.Status, "ok")
	}
	if response.Spreadsheet != "reachable" {
		t.Errorf("spreadsheet: got %q, want %q", response.Spreadsheet, "reachable")
	}
}

func TestServe_BackendDown(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Backend.FailWith(errors.New("connection refused"))
	handler := health.NewHandler(env.Client, zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler.Serve(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}

	var response struct {
		Status string `json:"status"`
	}
	testutil.DecodeJSON(t, rec, &response)

	if response.Status != "error" {
		t.Errorf("status: got %q, want %q", response.Status, "error")
	}
}
