// Package handler provides HTTP handlers for pool endpoints.
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
	"github.com/tbrandt27/football-pick-em-sub003/internal/pool/service"
	seasonModel "github.com/tbrandt27/football-pick-em-sub003/internal/season/model"
	userModel "github.com/tbrandt27/football-pick-em-sub003/internal/user/model"
)

// Handler handles HTTP requests for pool endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new pool handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

func caller(c *gin.Context) service.Caller {
	return service.Caller{
		UserID:  middleware.CallerID(c),
		IsAdmin: middleware.CallerIsAdmin(c),
	}
}

func poolID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "pool id must be a number", http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}

// mapPoolError writes the HTTP response for a known pool error and
// reports whether it handled the error.
func (h *Handler) mapPoolError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, poolModel.ErrPoolNotFound):
		httpapi.NotFound(c, "pool not found")
	case errors.Is(err, poolModel.ErrNotParticipant):
		httpapi.Forbidden(c, "not a pool participant")
	case errors.Is(err, poolModel.ErrNotOwner):
		httpapi.Forbidden(c, "pool owner or admin required")
	case errors.Is(err, poolModel.ErrAlreadyParticipant):
		httpapi.Error(c, "ALREADY_PARTICIPANT", "user is already a participant", http.StatusConflict)
	case errors.Is(err, poolModel.ErrParticipantNotFound):
		httpapi.NotFound(c, "participant not found")
	case errors.Is(err, poolModel.ErrOwnerIrremovable):
		httpapi.Error(c, "OWNER_IRREMOVABLE", "pool owner cannot be removed", http.StatusBadRequest)
	case errors.Is(err, seasonModel.ErrSeasonNotFound):
		httpapi.Error(c, "INVALID_REQUEST", "season not found", http.StatusBadRequest)
	case errors.Is(err, userModel.ErrUserNotFound):
		httpapi.NotFound(c, "user not found")
	default:
		return false
	}
	return true
}

// CreatePool handles POST /pools.
func (h *Handler) CreatePool(c *gin.Context) {
	var req poolModel.CreatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "name, mode (weekly|survivor) and season_id are required", http.StatusBadRequest)
		return
	}

	pool, err := h.service.CreatePool(c.Request.Context(), caller(c), &req)
	if err != nil {
		if !h.mapPoolError(c, err) {
			h.logger.Errorw("error creating pool", "error", err)
			httpapi.InternalError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, pool)
}

// GetPool handles GET /pools/:id.
func (h *Handler) GetPool(c *gin.Context) {
	id, ok := poolID(c)
	if !ok {
		return
	}

	pool, err := h.service.GetPool(c.Request.Context(), caller(c), id)
	if err != nil {
		if !h.mapPoolError(c, err) {
			h.logger.Errorw("error getting pool", "pool_id", id, "error", err)
			httpapi.InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, pool)
}

// ListPools handles GET /pools.
func (h *Handler) ListPools(c *gin.Context) {
	pools, err := h.service.ListPools(c.Request.Context(), caller(c))
	if err != nil {
		h.logger.Errorw("error listing pools", "error", err)
		httpapi.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pools": pools})
}

// UpdatePool handles PUT /pools/:id.
func (h *Handler) UpdatePool(c *gin.Context) {
	id, ok := poolID(c)
	if !ok {
		return
	}

	var req poolModel.UpdatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	pool, err := h.service.UpdatePool(c.Request.Context(), caller(c), id, &req)
	if err != nil {
		if !h.mapPoolError(c, err) {
			h.logger.Errorw("error updating pool", "pool_id", id, "error", err)
			httpapi.InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, pool)
}

// DeletePool handles DELETE /pools/:id.
func (h *Handler) DeletePool(c *gin.Context) {
	id, ok := poolID(c)
	if !ok {
		return
	}

	if err := h.service.DeletePool(c.Request.Context(), caller(c), id); err != nil {
		if !h.mapPoolError(c, err) {
			h.logger.Errorw("error deleting pool", "pool_id", id, "error", err)
			httpapi.InternalError(c)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// AddParticipant handles POST /pools/:id/participants.
func (h *Handler) AddParticipant(c *gin.Context) {
	id, ok := poolID(c)
	if !ok {
		return
	}

	var req poolModel.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "user_id is required", http.StatusBadRequest)
		return
	}

	participant, err := h.service.AddParticipant(c.Request.Context(), caller(c), id, req.UserID)
	if err != nil {
		if !h.mapPoolError(c, err) {
			h.logger.Errorw("error adding participant", "pool_id", id, "error", err)
			httpapi.InternalError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, participant)
}

// RemoveParticipant handles DELETE /pools/:id/participants/:userId.
func (h *Handler) RemoveParticipant(c *gin.Context) {
	id, ok := poolID(c)
	if !ok {
		return
	}

	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "user id must be a number", http.StatusBadRequest)
		return
	}

	if err := h.service.RemoveParticipant(c.Request.Context(), caller(c), id, uint(userID)); err != nil {
		if !h.mapPoolError(c, err) {
			h.logger.Errorw("error removing participant", "pool_id", id, "user_id", userID, "error", err)
			httpapi.InternalError(c)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListParticipants handles GET /pools/:id/participants.
func (h *Handler) ListParticipants(c *gin.Context) {
	id, ok := poolID(c)
	if !ok {
		return
	}

	participants, err := h.service.ListParticipants(c.Request.Context(), caller(c), id)
	if err != nil {
		if !h.mapPoolError(c, err) {
			h.logger.Errorw("error listing participants", "pool_id", id, "error", err)
			httpapi.InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"participants": participants})
}
