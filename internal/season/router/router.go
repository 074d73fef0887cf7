// Package router provides season module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/middleware"
	"github.com/tbrandt27/football-pick-em-sub003/internal/season/handler"
	"github.com/tbrandt27/football-pick-em-sub003/internal/season/service"
)

// RegisterRoutes registers season module routes on an authenticated route group.
func RegisterRoutes(rg *gin.RouterGroup, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	rg.GET("/seasons", h.ListSeasons)
	rg.GET("/seasons/current", h.GetCurrentSeason)

	admin := rg.Group("/")
	admin.Use(middleware.AdminOnly())
	admin.POST("/seasons", h.CreateSeason)
	admin.PUT("/seasons/:id/current", h.SetCurrentSeason)
}
