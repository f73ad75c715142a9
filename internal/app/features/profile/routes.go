// internal/app/features/profile/routes.go
package profile

import (
	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/cohorthub/internal/app/system/auth"
)

// Routes returns a subrouter that serves the profile endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)
	r.Get("/", h.HandleGet)                       // mounted under /profile
	r.Post("/password", h.HandleChangePassword)
	return r
}
