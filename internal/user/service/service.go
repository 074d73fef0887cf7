// Package service provides business logic layer for the user module.
package service

import (
	"context"

	"go.uber.org/zap"

	teamRepository "github.com/tbrandt27/football-pick-em-sub003/internal/team/repository"
	userModel "github.com/tbrandt27/football-pick-em-sub003/internal/user/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/user/repository"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// GetProfile returns the user's profile.
	GetProfile(ctx context.Context, userID uint) (*userModel.User, error)

	// UpdateProfile applies partial updates to the user's profile.
	UpdateProfile(ctx context.Context, userID uint, req *userModel.UpdateProfileRequest) (*userModel.User, error)

	// ListUsers returns all users. Admin only, enforced at the router.
	ListUsers(ctx context.Context) ([]userModel.User, error)

	// SetAdmin grants or revokes admin rights.
	SetAdmin(ctx context.Context, userID uint, isAdmin bool) (*userModel.User, error)
}

type service struct {
	repo     repository.Repository
	teamRepo teamRepository.Repository
	logger   *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, teamRepo teamRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, teamRepo: teamRepo, logger: logger}
}

// GetProfile returns the user's profile.
func (s *service) GetProfile(ctx context.Context, userID uint) (*userModel.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// UpdateProfile applies partial updates to the user's profile.
func (s *service) UpdateProfile(ctx context.Context, userID uint, req *userModel.UpdateProfileRequest) (*userModel.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.FavoriteTeamID != nil {
		// Favorite team must exist before it is recorded.
		if _, err := s.teamRepo.GetByID(ctx, *req.FavoriteTeamID); err != nil {
			return nil, err
		}
		user.FavoriteTeamID = req.FavoriteTeamID
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns all users.
func (s *service) ListUsers(ctx context.Context) ([]userModel.User, error) {
	return s.repo.List(ctx)
}

// SetAdmin grants or revokes admin rights.
func (s *service) SetAdmin(ctx context.Context, userID uint, isAdmin bool) (*userModel.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.IsAdmin = isAdmin
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("admin flag changed", "user_id", userID, "is_admin", isAdmin)
	return user, nil
}
