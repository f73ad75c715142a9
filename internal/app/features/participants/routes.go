// internal/app/features/participants/routes.go
package participants

import (
	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/cohorthub/internal/app/system/auth"
	"github.com/dalemusser/cohorthub/internal/app/system/authz"
)

// Routes returns a subrouter that serves the roster endpoints.
// The whole feature is admin only.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireRole(authz.RoleAdmin))

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleAdd)
	r.Post("/{email}/reset-password", h.HandleResetPassword)
	r.Post("/{email}/deactivate", h.HandleDeactivate)

	return r
}
