// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/team/handler"
	"github.com/tbrandt27/football-pick-em-sub003/internal/team/service"
)

// RegisterRoutes registers team module routes on an authenticated route group.
func RegisterRoutes(rg *gin.RouterGroup, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	rg.GET("/teams", h.ListTeams)
	rg.GET("/teams/:id", h.GetTeam)
}
