// Package service provides business logic layer for the team module.
package service

import (
	"context"

	"go.uber.org/zap"

	teamModel "github.com/tbrandt27/football-pick-em-sub003/internal/team/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// ListTeams returns all teams.
	ListTeams(ctx context.Context) ([]teamModel.Team, error)

	// GetTeam returns a team by id.
	GetTeam(ctx context.Context, id uint) (*teamModel.Team, error)

	// EnsureSeeded loads the canonical league table into the backend.
	EnsureSeeded(ctx context.Context) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// ListTeams returns all teams.
func (s *service) ListTeams(ctx context.Context) ([]teamModel.Team, error) {
	return s.repo.List(ctx)
}

// GetTeam returns a team by id.
func (s *service) GetTeam(ctx context.Context, id uint) (*teamModel.Team, error) {
	return s.repo.GetByID(ctx, id)
}

// EnsureSeeded loads the canonical league table into the backend.
// Idempotent: existing codes are left untouched.
func (s *service) EnsureSeeded(ctx context.Context) error {
	if err := s.repo.Seed(ctx, teamModel.NFLTeams()); err != nil {
		s.logger.Errorw("failed to seed teams", "error", err)
		return err
	}
	return nil
}
