// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown cleanly tears down background resources. The Sheets API is
// stateless HTTP, so only the cache janitor needs stopping.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Cache != nil {
		logger.Info("stopping sheet cache")
		deps.Cache.Stop()
	}
	return nil
}
