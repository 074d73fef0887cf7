// Package handler provides HTTP handlers for schedule endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/httpapi"
	scheduleModel "github.com/tbrandt27/football-pick-em-sub003/internal/schedule/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/schedule/service"
	seasonModel "github.com/tbrandt27/football-pick-em-sub003/internal/season/model"
)

// Handler handles HTTP requests for schedule endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new schedule handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListGames handles GET /games?season_id=&week=.
func (h *Handler) ListGames(c *gin.Context) {
	seasonID, err := strconv.ParseUint(c.Query("season_id"), 10, 64)
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "season_id is required", http.StatusBadRequest)
		return
	}

	var week *int
	if raw := c.Query("week"); raw != "" {
		v, parseErr := strconv.Atoi(raw)
		if parseErr != nil {
			httpapi.Error(c, "INVALID_REQUEST", "week must be a number", http.StatusBadRequest)
			return
		}
		week = &v
	}

	games, err := h.service.ListGames(c.Request.Context(), uint(seasonID), week)
	if err != nil {
		h.logger.Errorw("error listing games", "season_id", seasonID, "error", err)
		httpapi.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"games": games})
}

// GetGame handles GET /games/:id.
func (h *Handler) GetGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "game id must be a number", http.StatusBadRequest)
		return
	}

	game, err := h.service.GetGame(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, scheduleModel.ErrGameNotFound) {
			httpapi.NotFound(c, "game not found")
			return
		}
		h.logger.Errorw("error getting game", "game_id", id, "error", err)
		httpapi.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, game)
}

// Sync handles POST /admin/sync?season_id=&week= (admin only).
func (h *Handler) Sync(c *gin.Context) {
	seasonID, err := strconv.ParseUint(c.Query("season_id"), 10, 64)
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "season_id is required", http.StatusBadRequest)
		return
	}
	week, err := strconv.Atoi(c.Query("week"))
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "week is required", http.StatusBadRequest)
		return
	}

	result, err := h.service.Sync(c.Request.Context(), uint(seasonID), week)
	if err != nil {
		if errors.Is(err, seasonModel.ErrSeasonNotFound) {
			httpapi.NotFound(c, "season not found")
			return
		}
		h.logger.Errorw("error syncing schedule", "season_id", seasonID, "week", week, "error", err)
		httpapi.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, result)
}
