// Package service provides business logic layer for the season module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	seasonModel "github.com/tbrandt27/football-pick-em-sub003/internal/season/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/season/repository"
)

// Service defines the interface for season business logic operations.
type Service interface {
	// CreateSeason creates a new season, optionally making it current.
	CreateSeason(ctx context.Context, req *seasonModel.CreateSeasonRequest) (*seasonModel.Season, error)

	// ListSeasons returns all seasons.
	ListSeasons(ctx context.Context) ([]seasonModel.Season, error)

	// GetCurrentSeason returns the season marked current.
	GetCurrentSeason(ctx context.Context) (*seasonModel.Season, error)

	// SetCurrentSeason makes the given season the single current one.
	SetCurrentSeason(ctx context.Context, id uint) (*seasonModel.Season, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new season service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// CreateSeason creates a new season, optionally making it current.
func (s *service) CreateSeason(ctx context.Context, req *seasonModel.CreateSeasonRequest) (*seasonModel.Season, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, seasonModel.ErrInvalidLabel
	}

	season, err := s.repo.Create(ctx, label)
	if err != nil {
		return nil, err
	}

	if req.MakeCurrent {
		if err := s.repo.SetCurrent(ctx, season.ID); err != nil {
			return nil, err
		}
		season.IsCurrent = true
	}

	s.logger.Infow("season created", "season_id", season.ID, "label", season.Label)
	return season, nil
}

// ListSeasons returns all seasons.
func (s *service) ListSeasons(ctx context.Context) ([]seasonModel.Season, error) {
	return s.repo.List(ctx)
}

// GetCurrentSeason returns the season marked current.
func (s *service) GetCurrentSeason(ctx context.Context) (*seasonModel.Season, error) {
	return s.repo.GetCurrent(ctx)
}

// SetCurrentSeason makes the given season the single current one.
func (s *service) SetCurrentSeason(ctx context.Context, id uint) (*seasonModel.Season, error) {
	if err := s.repo.SetCurrent(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
