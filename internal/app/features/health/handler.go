package health

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/sheets"
	"github.com/dalemusser/cohorthub/internal/app/system/timeouts"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client *sheets.Client
	Log    *zap.Logger
}

// NewHandler constructs a health Handler with the sheets client and logger.
func NewHandler(client *sheets.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status      string `json:"status"`
	Spreadsheet string `json:"spreadsheet"`
	Message     string `json:"message,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "spreadsheet":"reachable" }
//
// On backend failure: 503 and
//
//	{ "status":"error", "spreadsheet":"unreachable", "message":"…", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:      "ok",
		Spreadsheet: "reachable",
	}

	if err := h.Client.Ping(ctx); err != nil {
		h.Log.Error("health-check: spreadsheet ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Spreadsheet = "unreachable"
		resp.Message = "Spreadsheet backend unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
