// internal/app/features/participants/handler.go
package participants

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/cohort"
	"github.com/dalemusser/cohorthub/internal/app/features/shared/httpapi"
	participantstore "github.com/dalemusser/cohorthub/internal/app/store/participants"
	"github.com/dalemusser/cohorthub/internal/app/system/timeouts"
	"github.com/dalemusser/cohorthub/internal/domain/models"
)

// Handler serves the admin roster endpoints.
type Handler struct {
	Service      *cohort.Service
	Participants *participantstore.Store
	Log          *zap.Logger
}

func NewHandler(service *cohort.Service, participants *participantstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Service: service, Participants: participants, Log: logger}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /participants                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleList returns the full roster.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	roster, err := h.Participants.List(ctx)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	if roster == nil {
		roster = []models.Participant{}
	}
	httpapi.WriteJSON(w, http.StatusOK, roster)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /participants                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

type addRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Team  string `json:"team"`
}

// HandleAdd puts a new participant on the roster. They claim the row
// later through signup. Team placement goes through the service so a
// roster row can never point at a team that does not exist.
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := h.Service.AddParticipant(ctx, req.Name, req.Email, req.Team)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	h.Log.Info("participant added", zap.String("email", p.Email))
	httpapi.WriteJSON(w, http.StatusCreated, p)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /participants/{email}/reset-password                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleResetPassword issues a temporary password and emails it to the
// participant. The temp password is echoed in the response so the admin
// can relay it when email delivery is disabled.
func (h *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	temp, err := h.Service.ResetPassword(ctx, email)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	h.Log.Info("password reset", zap.String("email", email))
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{
		"status":        "password reset",
		"temp_password": temp,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /participants/{email}/deactivate                                       |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleDeactivate marks the participant inactive. The row stays so
// their posts remain attributable.
func (h *Handler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Service.DeactivateParticipant(ctx, email); err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	h.Log.Info("participant deactivated", zap.String("email", email))
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "participant deactivated"})
}
