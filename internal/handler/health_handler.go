package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ggpradas-dev/blog-project/internal/infrastructure/storage"
)

// Pinger reports database connectivity. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// healthProbeBlob is the blob name used to exercise the object store; the
// probe only needs the HEAD call to succeed, not the blob to exist.
const healthProbeBlob = "healthcheck"

// HealthHandler handles health check requests. Articles live in the
// database and their images in the object store, so both backends are
// probed.
type HealthHandler struct {
	db     Pinger
	images storage.ImageStorage
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger, images storage.ImageStorage) *HealthHandler {
	return &HealthHandler{db: db, images: images}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

// Health handles GET /health - comprehensive health check.
func (h *HealthHandler) Health(c *gin.Context) {
	services := map[string]string{
		"database": "healthy",
		"storage":  "healthy",
	}
	healthy := true

	if err := h.db.Ping(c.Request.Context()); err != nil {
		services["database"] = "unhealthy"
		healthy = false
	}
	if _, err := h.images.Exists(c.Request.Context(), healthProbeBlob); err != nil {
		services["storage"] = "unhealthy"
		healthy = false
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Services: services,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Version:  "1.0.0",
		Services: services,
	})
}

// Ready handles GET /ready - readiness probe for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	if _, err := h.images.Exists(c.Request.Context(), healthProbeBlob); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
