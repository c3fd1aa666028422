package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Houeta/staff-api/internal/lib/logger/sl"
	"github.com/gin-gonic/gin"
)

type DBPinger interface {
	Ping(ctx context.Context) error
}

type HealthChecker struct {
	db  DBPinger
	log *slog.Logger
}

func NewHealthChecker(db DBPinger, log *slog.Logger) *HealthChecker {
	return &HealthChecker{db: db, log: log}
}

// Handle performs a fresh liveness ping on every call, single attempt, no
// retry. The outer status stays "ok" even when the database is down: a 503
// with db "down" means the dependency failed while the process itself is alive.
func (h *HealthChecker) Handle(c *gin.Context) {
	ctx := c.Request.Context()
	h.log.DebugContext(ctx, "Performing health check...")

	if err := h.db.Ping(ctx); err != nil {
		h.log.WarnContext(ctx, "Health check failed: DB ping", sl.Err(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "ok", "db": "down"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
}
