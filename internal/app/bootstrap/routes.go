// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	healthfeature "github.com/dalemusser/cohorthub/internal/app/features/health"
	loginfeature "github.com/dalemusser/cohorthub/internal/app/features/login"
	logoutfeature "github.com/dalemusser/cohorthub/internal/app/features/logout"
	participantsfeature "github.com/dalemusser/cohorthub/internal/app/features/participants"
	profilefeature "github.com/dalemusser/cohorthub/internal/app/features/profile"
	projectsfeature "github.com/dalemusser/cohorthub/internal/app/features/projects"
	refreshfeature "github.com/dalemusser/cohorthub/internal/app/features/refresh"
	signupfeature "github.com/dalemusser/cohorthub/internal/app/features/signup"
	teamsfeature "github.com/dalemusser/cohorthub/internal/app/features/teams"
	updatesfeature "github.com/dalemusser/cohorthub/internal/app/features/updates"
	"github.com/dalemusser/cohorthub/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, the spreadsheet connection,
// schema checks, and the Startup hook have completed. Every feature
// router is a plain JSON API mounted under its own path prefix; session
// loading is global so auth.CurrentUser works everywhere.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Global auth middleware: loads the session user into context if
	// signed in.
	r.Use(auth.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.Client, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(deps.Participants,
		appCfg.AdminEmail, appCfg.AdminPassword, appCfg.AdminName, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))
	r.Get("/me", loginHandler.HandleMe)

	logoutHandler := logoutfeature.NewHandler(logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	signupHandler := signupfeature.NewHandler(deps.Service, logger)
	r.Mount("/signup", signupfeature.Routes(signupHandler))

	profileHandler := profilefeature.NewHandler(deps.Service, deps.Participants, logger)
	r.Mount("/profile", profilefeature.Routes(profileHandler))

	// Cohort management
	teamsHandler := teamsfeature.NewHandler(deps.Service, deps.Teams, deps.Participants, logger)
	r.Mount("/teams", teamsfeature.Routes(teamsHandler))

	participantsHandler := participantsfeature.NewHandler(deps.Service, deps.Participants, logger)
	r.Mount("/participants", participantsfeature.Routes(participantsHandler))

	projectsHandler := projectsfeature.NewHandler(deps.Service, deps.Projects,
		deps.Progress, deps.Participants, logger)
	r.Mount("/projects", projectsfeature.Routes(projectsHandler))

	updatesHandler := updatesfeature.NewHandler(deps.Service, deps.Updates,
		deps.Comments, deps.Likes, deps.Participants, logger)
	r.Mount("/updates", updatesfeature.Routes(updatesHandler))

	// Manual cache invalidation for admins who edit the sheet directly.
	refreshHandler := refreshfeature.NewHandler(deps.Cache, logger)
	r.Mount("/refresh", refreshfeature.Routes(refreshHandler))

	return r, nil
}
