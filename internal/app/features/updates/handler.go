// internal/app/features/updates/handler.go
package updates

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/cohort"
	"github.com/dalemusser/cohorthub/internal/app/features/shared/httpapi"
	"github.com/dalemusser/cohorthub/internal/app/policy/updatepolicy"
	commentstore "github.com/dalemusser/cohorthub/internal/app/store/comments"
	likestore "github.com/dalemusser/cohorthub/internal/app/store/likes"
	participantstore "github.com/dalemusser/cohorthub/internal/app/store/participants"
	updatestore "github.com/dalemusser/cohorthub/internal/app/store/updates"
	"github.com/dalemusser/cohorthub/internal/app/system/authz"
	"github.com/dalemusser/cohorthub/internal/app/system/timeouts"
	"github.com/dalemusser/cohorthub/internal/domain/models"
)

type Handler struct {
	Service      *cohort.Service
	Updates      *updatestore.Store
	Comments     *commentstore.Store
	Likes        *likestore.Store
	Participants *participantstore.Store
	Log          *zap.Logger
}

func NewHandler(service *cohort.Service, updates *updatestore.Store, comments *commentstore.Store,
	likes *likestore.Store, participants *participantstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Service:      service,
		Updates:      updates,
		Comments:     comments,
		Likes:        likes,
		Participants: participants,
		Log:          logger,
	}
}

// updateView is an update enriched with reaction counts for the feed.
type updateView struct {
	models.Update
	LikeCount    int `json:"like_count"`
	CommentCount int `json:"comment_count"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /updates                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleList returns the update feed. Admins see every team's updates;
// participants see their own team's. A participant without a team gets
// an empty feed.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	team, ok, err := updatepolicy.VisibleTeam(ctx, h.Participants, r)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	if !ok {
		httpapi.WriteJSON(w, http.StatusOK, []updateView{})
		return
	}

	list, err := h.Updates.List(ctx, team)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}

	feed := make([]updateView, 0, len(list))
	for _, u := range list {
		likes, err := h.Likes.CountByUpdate(ctx, u.ID)
		if err != nil {
			httpapi.ServiceError(w, h.Log, err)
			return
		}
		comments, err := h.Comments.ListByUpdate(ctx, u.ID)
		if err != nil {
			httpapi.ServiceError(w, h.Log, err)
			return
		}
		feed = append(feed, updateView{Update: u, LikeCount: likes, CommentCount: len(comments)})
	}
	httpapi.WriteJSON(w, http.StatusOK, feed)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /updates                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type postRequest struct {
	Text  string `json:"text"`
	Phase string `json:"phase"`
}

// HandlePost publishes a progress update from the signed-in participant.
func (h *Handler) HandlePost(w http.ResponseWriter, r *http.Request) {
	if !updatepolicy.CanPost(r) {
		httpapi.Error(w, http.StatusForbidden, "only participants can post updates")
		return
	}

	var req postRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	_, _, email, _ := authz.UserCtx(r)
	u, err := h.Service.PostUpdate(ctx, email, req.Text, req.Phase)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	h.Log.Info("update posted",
		zap.String("update_id", u.ID), zap.String("team", u.Team))
	httpapi.WriteJSON(w, http.StatusCreated, u)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /updates/{update}/like                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleLike toggles the signed-in user's like on an update.
func (h *Handler) HandleLike(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "update")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if ok, err := h.canSee(ctx, r, id); err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	} else if !ok {
		httpapi.Error(w, http.StatusForbidden, "you can only react to your own team's updates")
		return
	}

	_, _, email, _ := authz.UserCtx(r)
	liked, err := h.Service.ToggleLike(ctx, id, email)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	count, err := h.Likes.CountByUpdate(ctx, id)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"liked":      liked,
		"like_count": count,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /updates/{update}/comments                                              |
| POST /updates/{update}/comments                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleComments returns the comments on an update, oldest first.
func (h *Handler) HandleComments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "update")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if ok, err := h.canSee(ctx, r, id); err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	} else if !ok {
		httpapi.Error(w, http.StatusForbidden, "you can only view your own team's updates")
		return
	}

	list, err := h.Comments.ListByUpdate(ctx, id)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	if list == nil {
		list = []models.Comment{}
	}
	httpapi.WriteJSON(w, http.StatusOK, list)
}

type commentRequest struct {
	Text string `json:"text"`
}

// HandleAddComment appends a comment from the signed-in user.
func (h *Handler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "update")

	var req commentRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if ok, err := h.canSee(ctx, r, id); err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	} else if !ok {
		httpapi.Error(w, http.StatusForbidden, "you can only comment on your own team's updates")
		return
	}

	_, _, email, _ := authz.UserCtx(r)
	c, err := h.Service.AddComment(ctx, id, email, req.Text)
	if err != nil {
		httpapi.ServiceError(w, h.Log, err)
		return
	}
	h.Log.Info("comment added", zap.String("update_id", id))
	httpapi.WriteJSON(w, http.StatusCreated, c)
}

// canSee reports whether the request user may see the update. The update
// must belong to the user's visible team; admins see everything.
func (h *Handler) canSee(ctx context.Context, r *http.Request, updateID string) (bool, error) {
	team, ok, err := updatepolicy.VisibleTeam(ctx, h.Participants, r)
	if err != nil || !ok {
		return false, err
	}
	if team == "" {
		return true, nil
	}
	u, err := h.Updates.GetByID(ctx, updateID)
	if err != nil {
		return false, err
	}
	// Team names come from sheet text; compare case-folded like the
	// stores do.
	return text.Fold(u.Team) == text.Fold(team), nil
}
