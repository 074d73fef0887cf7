// Package service provides business logic layer for the pool module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	poolModel "github.com/tbrandt27/football-pick-em-sub003/internal/pool/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/pool/repository"
	seasonRepository "github.com/tbrandt27/football-pick-em-sub003/internal/season/repository"
	userRepository "github.com/tbrandt27/football-pick-em-sub003/internal/user/repository"
)

// PickPurger removes a pool's picks when the pool is deleted. Implemented
// by the pick repository.
type PickPurger interface {
	DeleteByPool(ctx context.Context, poolID uint) error
}

// Caller identifies the acting user for authorization decisions.
type Caller struct {
	UserID  uint
	IsAdmin bool
}

// Service defines the interface for pool business logic operations.
type Service interface {
	// CreatePool creates a pool; the creator becomes the owner participant.
	CreatePool(ctx context.Context, caller Caller, req *poolModel.CreatePoolRequest) (*poolModel.Pool, error)

	// GetPool returns a pool; caller must be a participant or admin.
	GetPool(ctx context.Context, caller Caller, poolID uint) (*poolModel.Pool, error)

	// ListPools returns the caller's pools.
	ListPools(ctx context.Context, caller Caller) ([]poolModel.Pool, error)

	// UpdatePool applies partial updates; owner or admin only.
	UpdatePool(ctx context.Context, caller Caller, poolID uint, req *poolModel.UpdatePoolRequest) (*poolModel.Pool, error)

	// DeletePool removes a pool and its memberships and picks; owner or admin only.
	DeletePool(ctx context.Context, caller Caller, poolID uint) error

	// AddParticipant adds a member; owner or admin only.
	AddParticipant(ctx context.Context, caller Caller, poolID, userID uint) (*poolModel.Participant, error)

	// RemoveParticipant removes a member; owner or admin only. The owner's
	// own row cannot be removed.
	RemoveParticipant(ctx context.Context, caller Caller, poolID, userID uint) error

	// ListParticipants returns a pool's members; participant or admin only.
	ListParticipants(ctx context.Context, caller Caller, poolID uint) ([]poolModel.Participant, error)
}

type service struct {
	repo    repository.Repository
	seasons seasonRepository.Repository
	users   userRepository.Repository
	picks   PickPurger
	logger  *zap.SugaredLogger
}

// New creates a new pool service instance. picks may be nil when pick
// cleanup is not wired (tests).
func New(repo repository.Repository, seasons seasonRepository.Repository, users userRepository.Repository, picks PickPurger, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, seasons: seasons, users: users, picks: picks, logger: logger}
}

// CreatePool creates a pool; the creator becomes the owner participant.
func (s *service) CreatePool(ctx context.Context, caller Caller, req *poolModel.CreatePoolRequest) (*poolModel.Pool, error) {
	if _, err := s.seasons.GetByID(ctx, req.SeasonID); err != nil {
		return nil, err
	}

	pool := &poolModel.Pool{
		Name:     req.Name,
		Mode:     req.Mode,
		OwnerID:  caller.UserID,
		SeasonID: req.SeasonID,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, pool); err != nil {
		return nil, err
	}

	owner := &poolModel.Participant{
		PoolID: pool.ID,
		UserID: caller.UserID,
		Role:   poolModel.RoleOwner,
	}
	if err := s.repo.AddParticipant(ctx, owner); err != nil {
		return nil, err
	}

	s.logger.Infow("pool created", "pool_id", pool.ID, "owner_id", caller.UserID, "mode", pool.Mode)
	return pool, nil
}

// GetPool returns a pool; caller must be a participant or admin.
func (s *service) GetPool(ctx context.Context, caller Caller, poolID uint) (*poolModel.Pool, error) {
	pool, err := s.repo.GetByID(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureParticipant(ctx, caller, poolID); err != nil {
		return nil, err
	}
	return pool, nil
}

// ListPools returns the caller's pools.
func (s *service) ListPools(ctx context.Context, caller Caller) ([]poolModel.Pool, error) {
	return s.repo.ListForUser(ctx, caller.UserID)
}

// UpdatePool applies partial updates; owner or admin only.
func (s *service) UpdatePool(ctx context.Context, caller Caller, poolID uint, req *poolModel.UpdatePoolRequest) (*poolModel.Pool, error) {
	pool, err := s.repo.GetByID(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(pool, caller); err != nil {
		return nil, err
	}

	if req.Name != nil {
		pool.Name = *req.Name
	}
	if req.IsActive != nil {
		pool.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, pool); err != nil {
		return nil, err
	}
	return pool, nil
}

// DeletePool removes a pool and its memberships and picks; owner or admin only.
func (s *service) DeletePool(ctx context.Context, caller Caller, poolID uint) error {
	pool, err := s.repo.GetByID(ctx, poolID)
	if err != nil {
		return err
	}
	if err := ensureOwner(pool, caller); err != nil {
		return err
	}

	if s.picks != nil {
		if err := s.picks.DeleteByPool(ctx, poolID); err != nil {
			return err
		}
	}
	if err := s.repo.Delete(ctx, poolID); err != nil {
		return err
	}

	s.logger.Infow("pool deleted", "pool_id", poolID, "by", caller.UserID)
	return nil
}

// AddParticipant adds a member; owner or admin only.
func (s *service) AddParticipant(ctx context.Context, caller Caller, poolID, userID uint) (*poolModel.Participant, error) {
	pool, err := s.repo.GetByID(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(pool, caller); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	participant := &poolModel.Participant{
		PoolID: poolID,
		UserID: userID,
		Role:   poolModel.RolePlayer,
	}
	if err := s.repo.AddParticipant(ctx, participant); err != nil {
		return nil, err
	}
	participant.FirstName = user.FirstName
	participant.LastName = user.LastName
	return participant, nil
}

// RemoveParticipant removes a member; owner or admin only.
func (s *service) RemoveParticipant(ctx context.Context, caller Caller, poolID, userID uint) error {
	pool, err := s.repo.GetByID(ctx, poolID)
	if err != nil {
		return err
	}
	if err := ensureOwner(pool, caller); err != nil {
		return err
	}
	if userID == pool.OwnerID {
		return poolModel.ErrOwnerIrremovable
	}
	return s.repo.RemoveParticipant(ctx, poolID, userID)
}

// ListParticipants returns a pool's members; participant or admin only.
func (s *service) ListParticipants(ctx context.Context, caller Caller, poolID uint) ([]poolModel.Participant, error) {
	if _, err := s.repo.GetByID(ctx, poolID); err != nil {
		return nil, err
	}
	if err := s.ensureParticipant(ctx, caller, poolID); err != nil {
		return nil, err
	}
	return s.repo.ListParticipants(ctx, poolID)
}

func (s *service) ensureParticipant(ctx context.Context, caller Caller, poolID uint) error {
	if caller.IsAdmin {
		return nil
	}
	_, err := s.repo.GetParticipant(ctx, poolID, caller.UserID)
	if err != nil {
		if errors.Is(err, poolModel.ErrParticipantNotFound) {
			return poolModel.ErrNotParticipant
		}
		return err
	}
	return nil
}

func ensureOwner(pool *poolModel.Pool, caller Caller) error {
	if caller.IsAdmin || pool.OwnerID == caller.UserID {
		return nil
	}
	return poolModel.ErrNotOwner
}
