// Package handler provides HTTP handlers for pick endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/httpapi"
	"github.com/tbrandt27/football-pick-em-sub003/internal/middleware"
	pickModel "github.com/tbrandt27/football-pick-em-sub003/internal/pick/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/pick/service"
	poolModel "github.com/tbrandt27/football-pick-em-sub003/internal/pool/model"
	scheduleModel "github.com/tbrandt27/football-pick-em-sub003/internal/schedule/model"
)

// Handler handles HTTP requests for pick endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new pick handler instance.
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
	case errors.Is(err, poolModel.ErrNotOwner):
		httpapi.Forbidden(c, "pick owner or admin required")
	case errors.Is(err, scheduleModel.ErrGameNotFound):
		httpapi.NotFound(c, "game not found")
	case errors.Is(err, pickModel.ErrPickNotFound):
		httpapi.NotFound(c, "pick not found")
	case errors.Is(err, pickModel.ErrGameAlreadyStarted):
		httpapi.Error(c, "GAME_ALREADY_STARTED", "game has already started", http.StatusBadRequest)
	case errors.Is(err, pickModel.ErrTeamNotInGame):
		httpapi.Error(c, "TEAM_NOT_IN_GAME", "team is not playing in this game", http.StatusBadRequest)
	case errors.Is(err, pickModel.ErrDuplicateSurvivorTeam):
		httpapi.Error(c, "DUPLICATE_SURVIVOR_TEAM", "team already used in this survivor pool", http.StatusBadRequest)
	default:
		return false
	}
	return true
}

// Submit handles POST /picks.
func (h *Handler) Submit(c *gin.Context) {
	var req pickModel.SubmitPickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "pool_id, game_id and team_id are required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), caller(c), &req)
	if err != nil {
		if !h.mapError(c, err) {
			h.logger.Errorw("error submitting pick", "error", err)
			httpapi.InternalError(c)
		}
		return
	}

	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

// Delete handles DELETE /picks/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "pick id must be a number", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(c.Request.Context(), caller(c), uint(id)); err != nil {
		if !h.mapError(c, err) {
			h.logger.Errorw("error deleting pick", "pick_id", id, "error", err)
			httpapi.InternalError(c)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// List handles GET /pools/:id/picks with optional season/week/user filters.
func (h *Handler) List(c *gin.Context) {
	poolID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "pool id must be a number", http.StatusBadRequest)
		return
	}

	filter := pickModel.ListFilter{PoolID: uint(poolID)}
	if raw := c.Query("season_id"); raw != "" {
		v, parseErr := strconv.ParseUint(raw, 10, 64)
		if parseErr != nil {
			httpapi.Error(c, "INVALID_REQUEST", "season_id must be a number", http.StatusBadRequest)
			return
		}
		seasonID := uint(v)
		filter.SeasonID = &seasonID
	}
	if raw := c.Query("week"); raw != "" {
		v, parseErr := strconv.Atoi(raw)
		if parseErr != nil {
			httpapi.Error(c, "INVALID_REQUEST", "week must be a number", http.StatusBadRequest)
			return
		}
		filter.Week = &v
	}
	if raw := c.Query("user_id"); raw != "" {
		v, parseErr := strconv.ParseUint(raw, 10, 64)
		if parseErr != nil {
			httpapi.Error(c, "INVALID_REQUEST", "user_id must be a number", http.StatusBadRequest)
			return
		}
		userID := uint(v)
		filter.UserID = &userID
	}

	picks, err := h.service.List(c.Request.Context(), caller(c), filter)
	if err != nil {
		if !h.mapError(c, err) {
			h.logger.Errorw("error listing picks", "pool_id", poolID, "error", err)
			httpapi.InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"picks": picks})
}

// UsedTeams handles GET /pools/:id/used-teams?season_id=&week=.
func (h *Handler) UsedTeams(c *gin.Context) {
	poolID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "pool id must be a number", http.StatusBadRequest)
		return
	}
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

	teams, err := h.service.UsedTeams(c.Request.Context(), caller(c), uint(poolID), uint(seasonID), week)
	if err != nil {
		if !h.mapError(c, err) {
			h.logger.Errorw("error listing used teams", "pool_id", poolID, "error", err)
			httpapi.InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"team_ids": teams})
}
