// Package router provides pick module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/pick/handler"
	"github.com/tbrandt27/football-pick-em-sub003/internal/pick/service"
)

// RegisterRoutes registers pick module routes on an authenticated route group.
func RegisterRoutes(rg *gin.RouterGroup, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	rg.POST("/picks", h.Submit)
	rg.DELETE("/picks/:id", h.Delete)
	rg.GET("/pools/:id/picks", h.List)
	rg.GET("/pools/:id/used-teams", h.UsedTeams)
}
