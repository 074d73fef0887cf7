// Package repository provides data access layer for the schedule module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	scheduleModel "github.com/tbrandt27/football-pick-em-sub003/internal/schedule/model"
)

// Repository defines the interface for scheduled game data access operations.
type Repository interface {
	// GetByID finds a game by id.
	GetByID(ctx context.Context, id uint) (*scheduleModel.ScheduledGame, error)

	// GetByExternalID finds a game by the provider's id.
	GetByExternalID(ctx context.Context, externalID string) (*scheduleModel.ScheduledGame, error)

	// ListBySeason returns all games of a season ordered by week, start time.
	ListBySeason(ctx context.Context, seasonID uint) ([]scheduleModel.ScheduledGame, error)

	// ListBySeasonWeek returns the games of one season week ordered by start time.
	ListBySeasonWeek(ctx context.Context, seasonID uint, week int) ([]scheduleModel.ScheduledGame, error)

	// Upsert inserts the game or, when a game with the same external id
	// exists, refreshes its scores, status, start time and refresh time.
	// On update the existing row's id is written back into game.
	Upsert(ctx context.Context, game *scheduleModel.ScheduledGame) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new PostgreSQL-backed schedule repository.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByID finds a game by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*scheduleModel.ScheduledGame, error) {
	var game scheduleModel.ScheduledGame
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduleModel.ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

// GetByExternalID finds a game by the provider's id.
func (r *repository) GetByExternalID(ctx context.Context, externalID string) (*scheduleModel.ScheduledGame, error) {
	var game scheduleModel.ScheduledGame
	err := r.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduleModel.ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

// ListBySeason returns all games of a season ordered by week, start time.
func (r *repository) ListBySeason(ctx context.Context, seasonID uint) ([]scheduleModel.ScheduledGame, error) {
	var games []scheduleModel.ScheduledGame
	err := r.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		Order("week, start_time").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	if games == nil {
		games = []scheduleModel.ScheduledGame{}
	}
	return games, nil
}

// ListBySeasonWeek returns the games of one season week ordered by start time.
func (r *repository) ListBySeasonWeek(ctx context.Context, seasonID uint, week int) ([]scheduleModel.ScheduledGame, error) {
	var games []scheduleModel.ScheduledGame
	err := r.db.WithContext(ctx).
		Where("season_id = ? AND week = ?", seasonID, week).
		Order("start_time").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	if games == nil {
		games = []scheduleModel.ScheduledGame{}
	}
	return games, nil
}

// Upsert inserts the game or refreshes the existing row matched by external id.
func (r *repository) Upsert(ctx context.Context, game *scheduleModel.ScheduledGame) error {
	existing, err := r.GetByExternalID(ctx, game.ExternalID)
	if err != nil {
		if errors.Is(err, scheduleModel.ErrGameNotFound) {
			return r.db.WithContext(ctx).Create(game).Error
		}
		return err
	}

	existing.HomeScore = game.HomeScore
	existing.AwayScore = game.AwayScore
	existing.Status = game.Status
	existing.StartTime = game.StartTime
	existing.ScoreRefreshedAt = game.ScoreRefreshedAt
	if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
		return err
	}
	*game = *existing
	return nil
}
