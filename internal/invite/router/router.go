// Package router provides invite module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/invite/handler"
	"github.com/tbrandt27/football-pick-em-sub003/internal/invite/service"
)

// RegisterRoutes registers invite module routes on an authenticated route group.
func RegisterRoutes(rg *gin.RouterGroup, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	rg.POST("/pools/:id/invitations", h.CreateInvitation)
	rg.GET("/pools/:id/invitations", h.ListInvitations)
	rg.DELETE("/pools/:id/invitations/:inviteId", h.CancelInvitation)
}
