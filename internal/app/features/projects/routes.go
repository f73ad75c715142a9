// internal/app/features/projects/routes.go
package projects

import (
	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/cohorthub/internal/app/system/auth"
	"github.com/dalemusser/cohorthub/internal/app/system/authz"
)

// Routes returns a subrouter that serves the project endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Get("/", h.HandleList)
	r.Get("/{project}/progress", h.HandleProgress)
	r.Post("/{project}/progress", h.HandleAdvance)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(authz.RoleAdmin))
		r.Post("/", h.HandleCreate)
		r.Delete("/{project}", h.HandleDelete)
	})

	return r
}
