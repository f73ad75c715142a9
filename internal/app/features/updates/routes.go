// internal/app/features/updates/routes.go
package updates

import (
	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/cohorthub/internal/app/system/auth"
)

// Routes returns a subrouter that serves the update feed endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Get("/", h.HandleList)
	r.Post("/", h.HandlePost)
	r.Post("/{update}/like", h.HandleLike)
	r.Get("/{update}/comments", h.HandleComments)
	r.Post("/{update}/comments", h.HandleAddComment)

	return r
}
