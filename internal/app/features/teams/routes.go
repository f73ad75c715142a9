// internal/app/features/teams/routes.go
package teams

import (
	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/cohorthub/internal/app/system/auth"
	"github.com/dalemusser/cohorthub/internal/app/system/authz"
)

// Routes returns a subrouter that serves the team endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Get("/", h.HandleList)
	r.Get("/{team}/members", h.HandleMembers)

	// Mutations are admin only.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(authz.RoleAdmin))
		r.Post("/", h.HandleCreate)
		r.Delete("/{team}", h.HandleDelete)
		r.Post("/{team}/members", h.HandleAssign)
	})

	return r
}
