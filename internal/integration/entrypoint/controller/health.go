// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/adapter"
)

// HealthChecker reports whether a backing store is reachable.
type HealthChecker func(ctx context.Context) bool

// HealthController handles health check endpoints.
type HealthController struct {
	storeBackend string
	storeHealthy HealthChecker
	clock        adapter.Clock
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Backend   string `json:"backend"`
	Storage   string `json:"storage"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(storeBackend string, storeHealthy HealthChecker, clock adapter.Clock) *HealthController {
	return &HealthController{
		storeBackend: storeBackend,
		storeHealthy: storeHealthy,
		clock:        clock,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its state store.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	storage := "connected"
	if h.storeHealthy != nil && !h.storeHealthy(ctx) {
		status = "degraded"
		storage = "disconnected"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Backend:   h.storeBackend,
		Storage:   storage,
		Timestamp: h.clock.Now().UTC().Format(time.RFC3339),
	})
}
