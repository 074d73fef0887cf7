// Package router provides schedule module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/middleware"
	"github.com/tbrandt27/football-pick-em-sub003/internal/schedule/handler"
	"github.com/tbrandt27/football-pick-em-sub003/internal/schedule/service"
)

// RegisterRoutes registers schedule module routes on an authenticated route group.
func RegisterRoutes(rg *gin.RouterGroup, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	rg.GET("/games", h.ListGames)
	rg.GET("/games/:id", h.GetGame)

	admin := rg.Group("/")
	admin.Use(middleware.AdminOnly())
	admin.POST("/admin/sync", h.Sync)
}
