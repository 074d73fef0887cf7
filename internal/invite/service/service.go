// Package service provides business logic layer for the invite module.
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"go.uber.org/zap"

	inviteModel "github.com/tbrandt27/football-pick-em-sub003/internal/invite/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/invite/repository"
	poolModel "github.com/tbrandt27/football-pick-em-sub003/internal/pool/model"
	poolRepository "github.com/tbrandt27/football-pick-em-sub003/internal/pool/repository"
)

const invitationTTL = 14 * 24 * time.Hour

// Caller identifies the acting user for authorization decisions.
type Caller struct {
	UserID  uint
	IsAdmin bool
}

// Service defines the interface for invitation business logic operations.
type Service interface {
	// CreateInvitation issues an invitation to a pool; owner or admin only.
	CreateInvitation(ctx context.Context, caller Caller, poolID uint, req *inviteModel.CreateInvitationRequest) (*inviteModel.Invitation, error)

	// CancelInvitation marks a pending invitation cancelled; owner or admin only.
	CancelInvitation(ctx context.Context, caller Caller, poolID, invitationID uint) error

	// ListInvitations returns a pool's invitations; owner or admin only.
	ListInvitations(ctx context.Context, caller Caller, poolID uint) ([]inviteModel.Invitation, error)

	// AcceptForUser consumes a pending invitation for a freshly registered
	// user, creating the participant row.
	AcceptForUser(ctx context.Context, token string, userID uint) error
}

type service struct {
	repo   repository.Repository
	pools  poolRepository.Repository
	logger *zap.SugaredLogger
}

// New creates a new invite service instance.
func New(repo repository.Repository, pools poolRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, pools: pools, logger: logger}
}

func newToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// CreateInvitation issues an invitation to a pool; owner or admin only.
func (s *service) CreateInvitation(ctx context.Context, caller Caller, poolID uint, req *inviteModel.CreateInvitationRequest) (*inviteModel.Invitation, error) {
	pool, err := s.pools.GetByID(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin && pool.OwnerID != caller.UserID {
		return nil, poolModel.ErrNotOwner
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	invitation := &inviteModel.Invitation{
		PoolID:    poolID,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		InviterID: caller.UserID,
		Token:     token,
		Status:    inviteModel.StatusPending,
		ExpiresAt: time.Now().Add(invitationTTL),
	}
	if err := s.repo.Create(ctx, invitation); err != nil {
		return nil, err
	}

	s.logger.Infow("invitation created", "pool_id", poolID, "invitation_id", invitation.ID)
	return invitation, nil
}

// CancelInvitation marks a pending invitation cancelled; owner or admin only.
func (s *service) CancelInvitation(ctx context.Context, caller Caller, poolID, invitationID uint) error {
	pool, err := s.pools.GetByID(ctx, poolID)
	if err != nil {
		return err
	}
	if !caller.IsAdmin && pool.OwnerID != caller.UserID {
		return poolModel.ErrNotOwner
	}

	invitation, err := s.repo.GetByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if invitation.PoolID != poolID {
		return inviteModel.ErrInvitationNotFound
	}
	if invitation.Status != inviteModel.StatusPending {
		return inviteModel.ErrInvitationNotUsable
	}

	invitation.Status = inviteModel.StatusCancelled
	return s.repo.Update(ctx, invitation)
}

// ListInvitations returns a pool's invitations; owner or admin only.
func (s *service) ListInvitations(ctx context.Context, caller Caller, poolID uint) ([]inviteModel.Invitation, error) {
	pool, err := s.pools.GetByID(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin && pool.OwnerID != caller.UserID {
		return nil, poolModel.ErrNotOwner
	}
	return s.repo.ListByPool(ctx, poolID)
}

// AcceptForUser consumes a pending invitation for a freshly registered user.
func (s *service) AcceptForUser(ctx context.Context, token string, userID uint) error {
	invitation, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	if !invitation.IsUsable(time.Now()) {
		return inviteModel.ErrInvitationNotUsable
	}

	participant := &poolModel.Participant{
		PoolID: invitation.PoolID,
		UserID: userID,
		Role:   poolModel.RolePlayer,
	}
	if err := s.pools.AddParticipant(ctx, participant); err != nil {
		return err
	}

	invitation.Status = inviteModel.StatusAccepted
	if err := s.repo.Update(ctx, invitation); err != nil {
		return err
	}

	s.logger.Infow("invitation accepted", "invitation_id", invitation.ID, "user_id", userID)
	return nil
}
