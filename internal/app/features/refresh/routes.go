// internal/app/features/refresh/routes.go
package refresh

import (
	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/cohorthub/internal/app/system/auth"
	"github.com/dalemusser/cohorthub/internal/app/system/authz"
)

// Routes returns a subrouter that serves the cache refresh endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireRole(authz.RoleAdmin))

	r.Post("/", h.HandleRefresh)

	return r
}
