// Package router provides pool module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/pool/handler"
	"github.com/tbrandt27/football-pick-em-sub003/internal/pool/service"
)

// RegisterRoutes registers pool module routes on an authenticated route group.
func RegisterRoutes(rg *gin.RouterGroup, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	rg.POST("/pools", h.CreatePool)
	rg.GET("/pools", h.ListPools)
	rg.GET("/pools/:id", h.GetPool)
	rg.PUT("/pools/:id", h.UpdatePool)
	rg.DELETE("/pools/:id", h.DeletePool)

	rg.POST("/pools/:id/participants", h.AddParticipant)
	rg.GET("/pools/:id/participants", h.ListParticipants)
	rg.DELETE("/pools/:id/participants/:userId", h.RemoveParticipant)
}
