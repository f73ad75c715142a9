// internal/app/features/refresh/handler.go
package refresh

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/features/shared/httpapi"
	"github.com/dalemusser/cohorthub/internal/app/sheetcache"
	"github.com/dalemusser/cohorthub/internal/app/system/authz"
)

// Handler drops every cached sheet snapshot so the next reads hit the
// spreadsheet. Admins use this after editing the sheet directly.
type Handler struct {
	Cache *sheetcache.Cache
	Log   *zap.Logger
}

func NewHandler(cache *sheetcache.Cache, logger *zap.Logger) *Handler {
	return &Handler{Cache: cache, Log: logger}
}

func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	h.Cache.InvalidateAll()
	_, name, _, _ := authz.UserCtx(r)
	h.Log.Info("cache invalidated", zap.String("by", name))
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "cache refreshed"})
}
