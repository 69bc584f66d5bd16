package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/topoclimb/topoclimb-gateway/ent"
	"github.com/topoclimb/topoclimb-gateway/federation"
)

// SystemHandler serves gateway-level introspection: health probes and
// per-backend fetch statuses.
type SystemHandler struct {
	db     *ent.Client
	engine *federation.Engine
}

func NewSystemHandler(db *ent.Client, engine *federation.Engine) *SystemHandler {
	return &SystemHandler{db: db, engine: engine}
}

// BackendStatuses handles GET /gateway/backends/status.
// Reports the outcome of each backend's most recent fetches, including
// failures that broadcast queries absorbed.
func (h *SystemHandler) BackendStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Statuses())
}

// HealthLive handles GET /health — always returns 200.
// Used as a liveness probe by container orchestrators.
func (h *SystemHandler) HealthLive(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HealthReady handles GET /ready — checks DB connectivity.
// Used as a readiness probe: returns 503 if the DB is unreachable.
func (h *SystemHandler) HealthReady(c *gin.Context) {
	if h.db != nil {
		if _, err := h.db.Endpoint.Query().Limit(1).Count(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": "database unreachable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
