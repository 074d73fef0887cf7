// Package handler provides HTTP handlers for authentication endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authModel "github.com/tbrandt27/football-pick-em-sub003/internal/auth/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/auth/service"
	"github.com/tbrandt27/football-pick-em-sub003/internal/httpapi"
	userModel "github.com/tbrandt27/football-pick-em-sub003/internal/user/model"
)

// Handler handles HTTP requests for authentication endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register handles POST /auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req authModel.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "email and password (min 8 chars) are required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, userModel.ErrEmailTaken) {
			httpapi.Error(c, "EMAIL_TAKEN", "email already registered", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error registering user", "error", err)
		httpapi.InternalError(c)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req authModel.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "email and password are required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, authModel.ErrInvalidCredentials) {
			httpapi.Error(c, "INVALID_CREDENTIALS", "invalid email or password", http.StatusUnauthorized)
			return
		}
		h.logger.Errorw("error logging in", "error", err)
		httpapi.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, resp)
}
