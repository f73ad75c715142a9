// internal/app/features/shared/httpapi/httpapi.go

// Package httpapi holds the JSON request/response helpers shared by every
// feature handler, including the single place where service and store
// errors are mapped to HTTP status codes.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/cohort"
	"github.com/dalemusser/cohorthub/internal/app/sheets"
	participantstore "github.com/dalemusser/cohorthub/internal/app/store/participants"
	projectstore "github.com/dalemusser/cohorthub/internal/app/store/projects"
	teamstore "github.com/dalemusser/cohorthub/internal/app/store/teams"
	updatestore "github.com/dalemusser/cohorthub/internal/app/store/updates"
)

const maxBodyBytes = 1 << 20

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a JSON error body: {"error": msg}.
func Error(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, map[string]string{"error": msg})
}

// Decode reads a JSON request body into dst, capped at 1 MiB.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// ServiceError maps an error from the cohort service or a store to the
// right status code and writes the JSON error response. Unexpected errors
// are logged and masked as a generic 500.
func ServiceError(w http.ResponseWriter, log *zap.Logger, err error) {
	var ve *cohort.ValidationError
	switch {
	case errors.As(err, &ve):
		Error(w, http.StatusBadRequest, ve.Reason)
	case errors.Is(err, cohort.ErrReferentialIntegrity):
		Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, teamstore.ErrDuplicateTeamName),
		errors.Is(err, projectstore.ErrDuplicateProjectName),
		errors.Is(err, participantstore.ErrDuplicateEmail):
		Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, teamstore.ErrNotFound),
		errors.Is(err, participantstore.ErrNotFound),
		errors.Is(err, projectstore.ErrNotFound),
		errors.Is(err, updatestore.ErrNotFound),
		errors.Is(err, sheets.ErrRowNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, sheets.ErrBackendUnavailable):
		log.Error("spreadsheet backend unavailable", zap.Error(err))
		Error(w, http.StatusServiceUnavailable, "the data backend is temporarily unavailable; try again shortly")
	default:
		log.Error("request failed", zap.Error(err))
		Error(w, http.StatusInternalServerError, "a server error occurred")
	}
}
