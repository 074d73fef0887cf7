// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/httpapi"
	teamModel "github.com/tbrandt27/football-pick-em-sub003/internal/team/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListTeams handles GET /teams.
func (h *Handler) ListTeams(c *gin.Context) {
	teams, err := h.service.ListTeams(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing teams", "error", err)
		httpapi.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// GetTeam handles GET /teams/:id.
func (h *Handler) GetTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "team id must be a number", http.StatusBadRequest)
		return
	}

	team, err := h.service.GetTeam(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			httpapi.NotFound(c, "team not found")
			return
		}
		h.logger.Errorw("error getting team", "team_id", id, "error", err)
		httpapi.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, team)
}
