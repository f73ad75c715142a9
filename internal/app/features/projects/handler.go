// internal/app/features/projects/handler.go
package projects

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/cohort"
	"github.com/dalemusser/cohorthub/internal/app/features/shared/httpapi"
	"github.com/dalemusser/cohorthub/internal/app/policy/teampolicy"
	participantstore "github.com/dalemusser/cohorthub/internal/app/store/participants"
	progressstore "github.com/dalemusser/cohorthub/internal/app/store/progress"
	projectstore "github.com/dalemusser/cohorthub/internal/app/store/projects"
	"github.com/dalemusser/cohorthub/internal/app/system/authz"
	"github.com/dalemusser/cohorthub/internal/app/system/timeouts"
	"github.com/dalemusser/cohorthub/internal/domain/models"
)

type Handler struct {
	Service      *cohort.Service
	Projects     *projectstore.Store
	Progress     *progressstore.Store
	Participants *participantstore.Store
	Log          *zap.Logger
}

func NewHandler(service *cohort.Service, projects *projectstore.Store, progress *progressstore.Store,
	participants *participantstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Service:      service,
		Projects:     projects,
		Progress:     progress,
		Participants: participants,
		Log:          logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /projects                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleList returns projects. Admins see all; participants only their
// team's.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if authz.IsAdmin(r) {
		all, err := h.Projects.List(ctx)
		if err != nil {
			httpapi.ServiceError(w, h.Log, err)
			return
		}
		if all == nil {
			all = []models.Project{}
		}
		httpapi.WriteJSON(w, http.StatusOK, all)
		return
	}

	_, _, email, _ := authz.UserCtx(r)
	p, err := h.Participants.GetByEmail(ctx, email)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	if p.Team == "" {
		httpapi.WriteJSON(w, http.StatusOK, []models.Project{})
		return
	}
	mine, err := h.Projects.ListByTeam(ctx, p.Team)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	if mine == nil {
		mine = []models.Project{}
	}
	httpapi.WriteJSON(w, http.StatusOK, mine)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /projects                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

type createProjectRequest struct {
	Name string `json:"name"`
	Info string `json:"info"`
	Team string `json:"team"`
}

// HandleCreate creates a project and notifies the assigned team's
// members. Admin only.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := h.Service.CreateProject(ctx, req.Name, req.Info, req.Team)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	h.Log.Info("project created",
		zap.String("project", p.Name), zap.String("team", p.AssignedTeam))
	httpapi.WriteJSON(w, http.StatusCreated, p)
}

/*─────────────────────────────────────────────────────────────────────────────*
| DELETE /projects/{project}                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleDelete removes a project and its phase-tracking rows. Admin only.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "project")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Service.DeleteProject(ctx, name); err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	h.Log.Info("project deleted", zap.String("project", name))
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "project deleted"})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /projects/{project}/progress                                            |
*─────────────────────────────────────────────────────────────────────────────*/

type progressResponse struct {
	Project models.Project         `json:"project"`
	Phases  []models.PhaseProgress `json:"phases"`
}

// HandleProgress returns the project with its per-phase history.
// Admins see any project; participants only their team's.
func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "project")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	proj, err := h.Projects.GetByName(ctx, name)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}

	allowed, err := teampolicy.CanViewTeam(ctx, h.Participants, r, proj.AssignedTeam)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	if !allowed {
		httpapi.Error(w, http.StatusForbidden, "you can only view your own team's projects")
		return
	}

	phases, err := h.Progress.ListByProject(ctx, proj.Name)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	if phases == nil {
		phases = []models.PhaseProgress{}
	}
	httpapi.WriteJSON(w, http.StatusOK, progressResponse{Project: proj, Phases: phases})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /projects/{project}/progress                                           |
*─────────────────────────────────────────────────────────────────────────────*/

type advanceRequest struct {
	Phase     string `json:"phase"`
	Status    string `json:"status"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Comments  string `json:"comments"`
	Overall   int    `json:"overall_progress"`
}

// HandleAdvance records phase progress, moving the project forward at
// most one phase. Admins can record for any project; participants only
// for their own team's.
func (h *Handler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "project")

	var req advanceRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	proj, err := h.Projects.GetByName(ctx, name)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}

	allowed, err := teampolicy.CanViewTeam(ctx, h.Participants, r, proj.AssignedTeam)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	if !allowed {
		httpapi.Error(w, http.StatusForbidden, "you can only record progress for your own team's projects")
		return
	}

	updated, err := h.Service.AdvancePhase(ctx, proj.Name, models.PhaseProgress{
		Phase:     req.Phase,
		Status:    req.Status,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Comments:  req.Comments,
	}, req.Overall)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	h.Log.Info("phase progress recorded",
		zap.String("project", updated.Name),
		zap.String("phase", updated.CurrentPhase),
		zap.Int("overall", updated.Progress))
	httpapi.WriteJSON(w, http.StatusOK, updated)
}
