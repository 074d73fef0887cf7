// Package handler provides HTTP handlers for season endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/httpapi"
	seasonModel "github.com/tbrandt27/football-pick-em-sub003/internal/season/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/season/service"
)

// Handler handles HTTP requests for season endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new season handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateSeason handles POST /seasons (admin only).
func (h *Handler) CreateSeason(c *gin.Context) {
	var req seasonModel.CreateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	season, err := h.service.CreateSeason(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, seasonModel.ErrSeasonExists) {
			httpapi.Error(c, "SEASON_EXISTS", "season label already exists", http.StatusBadRequest)
			return
		}
		if errors.Is(err, seasonModel.ErrInvalidLabel) {
			httpapi.Error(c, "INVALID_REQUEST", "label is required", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error creating season", "error", err)
		httpapi.InternalError(c)
		return
	}

	c.JSON(http.StatusCreated, season)
}

// ListSeasons handles GET /seasons.
func (h *Handler) ListSeasons(c *gin.Context) {
	seasons, err := h.service.ListSeasons(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing seasons", "error", err)
		httpapi.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"seasons": seasons})
}

// GetCurrentSeason handles GET /seasons/current.
func (h *Handler) GetCurrentSeason(c *gin.Context) {
	season, err := h.service.GetCurrentSeason(c.Request.Context())
	if err != nil {
		if errors.Is(err, seasonModel.ErrNoCurrentSeason) {
			httpapi.NotFound(c, "no current season")
			return
		}
		h.logger.Errorw("error getting current season", "error", err)
		httpapi.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, season)
}

// SetCurrentSeason handles PUT /seasons/:id/current (admin only).
func (h *Handler) SetCurrentSeason(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "season id must be a number", http.StatusBadRequest)
		return
	}

	season, err := h.service.SetCurrentSeason(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, seasonModel.ErrSeasonNotFound) {
			httpapi.NotFound(c, "season not found")
			return
		}
		h.logger.Errorw("error setting current season", "season_id", id, "error", err)
		httpapi.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, season)
}
