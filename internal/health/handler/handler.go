// Package handler provides the health check endpoint.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger checks the backing store's availability. Satisfied by the
// postgres and redis backends alike.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// PingerFunc adapts a function to the Pinger interface.
type PingerFunc func(ctx context.Context) error

// HealthCheck calls the wrapped function.
func (f PingerFunc) HealthCheck(ctx context.Context) error {
	return f(ctx)
}

// Handler handles the health endpoint.
type Handler struct {
	store  Pinger
	logger *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(store Pinger, logger *zap.SugaredLogger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	if err := h.store.HealthCheck(c.Request.Context()); err != nil {
		h.logger.Errorw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
