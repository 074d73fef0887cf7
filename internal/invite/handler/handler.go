// Package handler provides HTTP handlers for invitation endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/httpapi"
	inviteModel "github.com/tbrandt27/football-pick-em-sub003/internal/invite/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/invite/service"
	"github.com/tbrandt27/football-pick-em-sub003/internal/middleware"
	poolModel "github.com/tbrandt27/football-pick-em-sub003/internal/pool/model"
)

// Handler handles HTTP requests for invitation endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new invite handler instance.
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
	case errors.Is(err, poolModel.ErrNotOwner):
		httpapi.Forbidden(c, "pool owner or admin required")
	case errors.Is(err, inviteModel.ErrInvitationNotFound):
		httpapi.NotFound(c, "invitation not found")
	case errors.Is(err, inviteModel.ErrInvitationNotUsable):
		httpapi.Error(c, "INVITATION_NOT_USABLE", "invitation is expired or no longer pending", http.StatusBadRequest)
	default:
		return false
	}
	return true
}

// CreateInvitation handles POST /pools/:id/invitations.
func (h *Handler) CreateInvitation(c *gin.Context) {
	poolID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "pool id must be a number", http.StatusBadRequest)
		return
	}

	var req inviteModel.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "a valid email is required", http.StatusBadRequest)
		return
	}

	invitation, err := h.service.CreateInvitation(c.Request.Context(), caller(c), uint(poolID), &req)
	if err != nil {
		if !h.mapError(c, err) {
			h.logger.Errorw("error creating invitation", "pool_id", poolID, "error", err)
			httpapi.InternalError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, invitation)
}

// ListInvitations handles GET /pools/:id/invitations.
func (h *Handler) ListInvitations(c *gin.Context) {
	poolID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "pool id must be a number", http.StatusBadRequest)
		return
	}

	invitations, err := h.service.ListInvitations(c.Request.Context(), caller(c), uint(poolID))
	if err != nil {
		if !h.mapError(c, err) {
			h.logger.Errorw("error listing invitations", "pool_id", poolID, "error", err)
			httpapi.InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"invitations": invitations})
}

// CancelInvitation handles DELETE /pools/:id/invitations/:inviteId.
func (h *Handler) CancelInvitation(c *gin.Context) {
	poolID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "pool id must be a number", http.StatusBadRequest)
		return
	}
	invitationID, err := strconv.ParseUint(c.Param("inviteId"), 10, 64)
	if err != nil {
		httpapi.Error(c, "INVALID_REQUEST", "invitation id must be a number", http.StatusBadRequest)
		return
	}

	if err := h.service.CancelInvitation(c.Request.Context(), caller(c), uint(poolID), uint(invitationID)); err != nil {
		if !h.mapError(c, err) {
			h.logger.Errorw("error cancelling invitation", "invitation_id", invitationID, "error", err)
			httpapi.InternalError(c)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
