// internal/app/features/signup/handler.go
package signup

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/cohort"
	"github.com/dalemusser/cohorthub/internal/app/features/shared/httpapi"
	"github.com/dalemusser/cohorthub/internal/app/system/timeouts"
)

type Handler struct {
	Service *cohort.Service
	Log     *zap.Logger
}

func NewHandler(service *cohort.Service, logger *zap.Logger) *Handler {
	return &Handler{Service: service, Log: logger}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleSignup sets the initial password for a roster participant.
// Participants cannot self-register; the admin adds them to the roster
// first and signup claims that row.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Service.SignUp(ctx, req.Email, req.Password); err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	h.Log.Info("participant signed up", zap.String("email", req.Email))
	httpapi.WriteJSON(w, http.StatusCreated, map[string]string{"status": "account created"})
}
