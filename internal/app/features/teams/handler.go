// internal/app/features/teams/handler.go
package teams

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/cohort"
	"github.com/dalemusser/cohorthub/internal/app/features/shared/httpapi"
	"github.com/dalemusser/cohorthub/internal/app/policy/teampolicy"
	participantstore "github.com/dalemusser/cohorthub/internal/app/store/participants"
	teamstore "github.com/dalemusser/cohorthub/internal/app/store/teams"
	"github.com/dalemusser/cohorthub/internal/app/system/timeouts"
	"github.com/dalemusser/cohorthub/internal/domain/models"
)

type Handler struct {
	Service      *cohort.Service
	Teams        *teamstore.Store
	Participants *participantstore.Store
	Log          *zap.Logger
}

func NewHandler(service *cohort.Service, teams *teamstore.Store, participants *participantstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Service: service, Teams: teams, Participants: participants, Log: logger}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /teams                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleList returns every team. Any signed-in user can see the list.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	teams, err := h.Teams.List(ctx)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	if teams == nil {
		teams = []models.Team{}
	}
	httpapi.WriteJSON(w, http.StatusOK, teams)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /teams                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

type createTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HandleCreate creates a team. Admin only (enforced by routes).
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createTeamRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	team, err := h.Service.CreateTeam(ctx, req.Name, req.Description)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	h.Log.Info("team created", zap.String("team", team.Name))
	httpapi.WriteJSON(w, http.StatusCreated, team)
}

/*─────────────────────────────────────────────────────────────────────────────*
| DELETE /teams/{team}                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleDelete removes a team. Fails with 409 while projects still
// reference it; members are unassigned as part of the delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "team")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Service.DeleteTeam(ctx, name); err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	h.Log.Info("team deleted", zap.String("team", name))
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "team deleted"})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /teams/{team}/members                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleMembers returns a team's roster. Admins see any team;
// participants only their own.
func (h *Handler) HandleMembers(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "team")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	allowed, err := teampolicy.CanViewTeam(ctx, h.Participants, r, name)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	if !allowed {
		httpapi.Error(w, http.StatusForbidden, "you can only view your own team")
		return
	}

	members, err := h.Participants.ListByTeam(ctx, name)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	if members == nil {
		members = []models.Participant{}
	}
	httpapi.WriteJSON(w, http.StatusOK, members)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /teams/{team}/members                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

type assignRequest struct {
	Email string `json:"email"`
}

// HandleAssign puts a participant on the team and triggers the
// assignment notification. Admin only.
func (h *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "team")

	var req assignRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Service.AssignParticipant(ctx, req.Email, name); err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	h.Log.Info("participant assigned",
		zap.String("email", req.Email), zap.String("team", name))
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "participant assigned"})
}
