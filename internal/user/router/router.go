// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/middleware"
	"github.com/tbrandt27/football-pick-em-sub003/internal/user/handler"
	"github.com/tbrandt27/football-pick-em-sub003/internal/user/service"
)

// RegisterRoutes registers user module routes on an authenticated route group.
func RegisterRoutes(rg *gin.RouterGroup, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	rg.GET("/users/me", h.GetProfile)
	rg.PUT("/users/me", h.UpdateProfile)

	admin := rg.Group("/")
	admin.Use(middleware.AdminOnly())
	admin.GET("/users", h.ListUsers)
	admin.PUT("/users/:id/admin", h.SetAdmin)
}
