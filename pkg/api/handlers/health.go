package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/replyflow/replyflow-api/pkg/cache"
	"github.com/replyflow/replyflow-api/pkg/database"
)

// HealthHandler reports service health
type HealthHandler struct {
	db      *database.Client
	cache   *cache.Client
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.Client, cacheClient *cache.Client, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		cache:   cacheClient,
		version: version,
	}
}

// Health returns 200 when the service and its dependencies are up,
// 503 when the database is unreachable.
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			checks["database"] = "down"
			healthy = false
		} else {
			checks["database"] = "ok"
		}
	}

	if h.cache != nil {
		if err := h.cache.Redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = "down"
		} else {
			checks["redis"] = "ok"
		}
	}

	status := "ok"
	code := http.StatusOK
	if !healthy {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, map[string]interface{}{
		"status":  status,
		"version": h.version,
		"checks":  checks,
	})
}
