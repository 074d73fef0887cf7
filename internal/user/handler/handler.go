// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/httpapi"
	"github.com/tbrandt27/football-pick-em-sub003/internal/middleware"
	teamModel "github.com/tbrandt27/football-pick-em-sub003/internal/team/model"
	userModel "github.com/tbrandt27/football-pick-em-sub003/internal/user/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/user/service"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetProfile handles GET /users/me.
func (h *Handler) GetProfile(c *gin.Context) {
	userID := middleware.CallerID(c)

	user, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			httpapi.NotFound(c, "user not found")
			return
		}
		h.logger.Errorw("error getting profile", "user_id", userID, "error", err)
		httpapi.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /users/me.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := middleware.CallerID(c)

	var req userModel.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			httpapi.NotFound(c, "user not found")
			return
		}
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			httpapi.Error(c, "INVALID_REQUEST", "favorite team not found", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error updating profile", "user_id", userID, "error", err)
		httpapi.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /users (admin only).
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing users", "error", err)
		httpapi.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// SetAdmin handles PUT /users/:id/admin (admin only).
func (h *Handler) SetAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "user id must be a number", http.StatusBadRequest)
		return
	}

	var req userModel.SetAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.service.SetAdmin(c.Request.Context(), uint(id), req.IsAdmin)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			httpapi.NotFound(c, "user not found")
			return
		}
		h.logger.Errorw("error setting admin flag", "user_id", id, "error", err)
		httpapi.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, user)
}
