// Package router provides auth module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/auth/handler"
	"github.com/tbrandt27/football-pick-em-sub003/internal/auth/service"
)

// RegisterRoutes registers auth routes on a public (unauthenticated) route group.
func RegisterRoutes(rg *gin.RouterGroup, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
}
