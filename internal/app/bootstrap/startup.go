// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/system/auth"
)

// Startup runs one-time application initialization after the spreadsheet
// connection and schema checks are complete, but before the HTTP handler
// is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionDomain, secure, logger); err != nil {
		return err
	}

	if !deps.Mailer.Enabled() {
		logger.Info("outbound mail disabled; notification emails will be skipped")
	}
	return nil
}
