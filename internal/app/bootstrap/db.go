// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/cohort"
	"github.com/dalemusser/cohorthub/internal/app/sheetcache"
	"github.com/dalemusser/cohorthub/internal/app/sheets"
	commentstore "github.com/dalemusser/cohorthub/internal/app/store/comments"
	likestore "github.com/dalemusser/cohorthub/internal/app/store/likes"
	participantstore "github.com/dalemusser/cohorthub/internal/app/store/participants"
	progressstore "github.com/dalemusser/cohorthub/internal/app/store/progress"
	projectstore "github.com/dalemusser/cohorthub/internal/app/store/projects"
	teamstore "github.com/dalemusser/cohorthub/internal/app/store/teams"
	updatestore "github.com/dalemusser/cohorthub/internal/app/store/updates"
	"github.com/dalemusser/cohorthub/internal/app/system/mailer"
	"github.com/dalemusser/cohorthub/internal/app/system/timeouts"
)

// ConnectDB builds the spreadsheet-backed storage stack. The spreadsheet
// plays the role a database would in other WAFFLE apps.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	creds, err := os.ReadFile(appCfg.CredentialsFile)
	if err != nil {
		return DBDeps{}, fmt.Errorf("read google credentials: %w", err)
	}

	backend, err := sheets.NewGoogleBackend(ctx, creds, appCfg.SpreadsheetID, logger)
	if err != nil {
		return DBDeps{}, fmt.Errorf("connect sheets backend: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := backend.Ping(pingCtx); err != nil {
		return DBDeps{}, fmt.Errorf("spreadsheet unreachable: %w", err)
	}
	logger.Info("connected to spreadsheet", zap.String("spreadsheet_id", appCfg.SpreadsheetID))

	client := sheets.NewClient(backend, logger)
	cache := sheetcache.New(client, appCfg.CacheTTL, logger)

	deps := DBDeps{
		Backend:      backend,
		Client:       client,
		Cache:        cache,
		Teams:        teamstore.New(cache),
		Participants: participantstore.New(cache),
		Projects:     projectstore.New(cache),
		Progress:     progressstore.New(cache),
		Updates:      updatestore.New(cache),
		Comments:     commentstore.New(cache),
		Likes:        likestore.New(cache),
	}

	deps.Mailer = mailer.New(mailer.Config{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		Username: appCfg.MailSMTPUser,
		Password: appCfg.MailSMTPPass,
		FromName: appCfg.MailFromName,
		FromAddr: appCfg.MailFrom,
	}, logger)
	deps.Dispatcher = mailer.NewDispatcher(deps.Mailer, appCfg.SiteName, appCfg.BaseURL, logger)

	deps.Service = cohort.New(deps.Teams, deps.Participants, deps.Projects, deps.Progress,
		deps.Updates, deps.Comments, deps.Likes, deps.Dispatcher, logger)

	return deps, nil
}

// EnsureSchema verifies every worksheet exists with the expected header
// row, creating missing sheets. The header row is the only schema a
// spreadsheet has, so drift is caught here instead of on the first
// malformed read.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	ensureCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()
	return deps.Client.EnsureSchemas(ensureCtx)
}
