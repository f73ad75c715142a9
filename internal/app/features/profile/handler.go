// internal/app/features/profile/handler.go
package profile

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/cohort"
	"github.com/dalemusser/cohorthub/internal/app/features/shared/httpapi"
	participantstore "github.com/dalemusser/cohorthub/internal/app/store/participants"
	"github.com/dalemusser/cohorthub/internal/app/system/auth"
	"github.com/dalemusser/cohorthub/internal/app/system/authz"
	"github.com/dalemusser/cohorthub/internal/app/system/timeouts"
)

type Handler struct {
	Service      *cohort.Service
	Participants *participantstore.Store
	Log          *zap.Logger
}

func NewHandler(service *cohort.Service, participants *participantstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Service: service, Participants: participants, Log: logger}
}

type profileResponse struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Team   string `json:"team,omitempty"`
	Status string `json:"status,omitempty"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /profile                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleGet returns the signed-in user's profile. Participants get their
// roster row (team, status); the admin only has session data.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.Error(w, http.StatusUnauthorized, "sign in required")
		return
	}

	resp := profileResponse{Name: u.Name, Email: u.Email, Role: u.Role}

	if authz.IsParticipant(r) {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		p, err := h.Participants.GetByEmail(ctx, u.Email)
		if err != nil && !errors.Is(err, participantstore.ErrNotFound) {
			httpapi.ServiceError(w, h.Log, err)
			return
		}
		if err == nil {
			resp.Name = p.DisplayName()
			resp.Team = p.Team
			resp.Status = p.Status
		}
	}

	httpapi.WriteJSON(w, http.StatusOK, resp)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /profile/password                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// HandleChangePassword verifies the current password and stores the new
// one. Admin credentials live in config, not the sheet, so this is
// participants only.
func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.Error(w, http.StatusUnauthorized, "sign in required")
		return
	}
	if !authz.IsParticipant(r) {
		httpapi.Error(w, http.StatusForbidden, "admin credentials are managed in configuration")
		return
	}

	var req changePasswordRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Service.ChangePassword(ctx, u.Email, req.CurrentPassword, req.NewPassword); err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	h.Log.Info("password changed", zap.String("email", u.Email))
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "password changed"})
}
