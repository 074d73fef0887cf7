// Package router provides health route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/health/handler"
)

// RegisterRoutes registers the health route on a public route group.
func RegisterRoutes(rg *gin.RouterGroup, store handler.Pinger, logger *zap.SugaredLogger) {
	h := handler.New(store, logger)
	rg.GET("/health", h.Health)
}
