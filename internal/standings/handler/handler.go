// Package handler provides HTTP handlers for standings endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/httpapi"
	"github.com/tbrandt27/football-pick-em-sub003/internal/middleware"
	poolModel "github.com/tbrandt27/football-pick-em-sub003/internal/pool/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/standings/service"
)

// Handler handles HTTP requests for standings endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new standings handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

func caller(c *gin.Context) service.Caller {
	return service.Caller{
		UserID:  middleware.CallerID(c),
		IsAdmin: middleware.CallerIsAdmin(c),
	}
}

func (h *Handler) mapError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, poolModel.ErrPoolNotFound):
		httpapi.NotFound(c, "pool not found")
	case errors.Is(err, poolModel.ErrNotParticipant):
		httpapi.Forbidden(c, "not a pool participant")
	default:
		return false
	}
	return true
}

// Standings handles GET /pools/:id/standings?week=.
func (h *Handler) Standings(c *gin.Context) {
	poolID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "pool id must be a number", http.StatusBadRequest)
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

	rows, err := h.service.Standings(c.Request.Context(), caller(c), uint(poolID), week)
	if err != nil {
		if !h.mapError(c, err) {
			h.logger.Errorw("error computing standings", "pool_id", poolID, "error", err)
			httpapi.InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"standings": rows})
}

// TeamPickShares handles GET /pools/:id/team-picks?week=.
func (h *Handler) TeamPickShares(c *gin.Context) {
	poolID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "pool id must be a number", http.StatusBadRequest)
		return
	}
	week, err := strconv.Atoi(c.Query("week"))
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "week is required", http.StatusBadRequest)
		return
	}

	shares, err := h.service.TeamPickShares(c.Request.Context(), caller(c), uint(poolID), week)
	if err != nil {
		if !h.mapError(c, err) {
			h.logger.Errorw("error computing team pick shares", "pool_id", poolID, "error", err)
			httpapi.InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": shares})
}
