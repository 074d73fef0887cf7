// Package router provides standings module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/standings/handler"
	"github.com/tbrandt27/football-pick-em-sub003/internal/standings/service"
)

// RegisterRoutes registers standings routes on an authenticated route group.
func RegisterRoutes(rg *gin.RouterGroup, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	rg.GET("/pools/:id/standings", h.Standings)
	rg.GET("/pools/:id/team-picks", h.TeamPickShares)
}
