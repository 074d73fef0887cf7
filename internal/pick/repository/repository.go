// Package repository provides data access layer for the pick module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	pickModel "github.com/tbrandt27/football-pick-em-sub003/internal/pick/model"
)

// Repository defines the interface for pick data access operations.
type Repository interface {
	// Create persists a new pick.
	Create(ctx context.Context, pick *pickModel.Pick) error

	// Update persists changes to an existing pick.
	Update(ctx context.Context, pick *pickModel.Pick) error

	// GetByID finds a pick by id.
	GetByID(ctx context.Context, id uint) (*pickModel.Pick, error)

	// GetByUserPoolGame finds the pick keyed (user, pool, game).
	GetByUserPoolGame(ctx context.Context, userID, poolID, gameID uint) (*pickModel.Pick, error)

	// GetByUserPoolWeek finds the user's pick for one week of a pool season.
	GetByUserPoolWeek(ctx context.Context, userID, poolID, seasonID uint, week int) (*pickModel.Pick, error)

	// List returns picks matching the filter ordered by id.
	List(ctx context.Context, filter pickModel.ListFilter) ([]pickModel.Pick, error)

	// ListByGame returns all picks referencing a game.
	ListByGame(ctx context.Context, gameID uint) ([]pickModel.Pick, error)

	// ListByUserPoolSeason returns a user's picks across a pool season.
	ListByUserPoolSeason(ctx context.Context, userID, poolID, seasonID uint) ([]pickModel.Pick, error)

	// Delete removes a pick by id.
	Delete(ctx context.Context, id uint) error

	// DeleteByPool removes all picks of a pool.
	DeleteByPool(ctx context.Context, poolID uint) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new PostgreSQL-backed pick repository.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new pick.
func (r *repository) Create(ctx context.Context, pick *pickModel.Pick) error {
	return r.db.WithContext(ctx).Create(pick).Error
}

// Update persists changes to an existing pick.
func (r *repository) Update(ctx context.Context, pick *pickModel.Pick) error {
	return r.db.WithContext(ctx).Save(pick).Error
}

// GetByID finds a pick by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*pickModel.Pick, error) {
	var pick pickModel.Pick
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pick).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pickModel.ErrPickNotFound
		}
		return nil, err
	}
	return &pick, nil
}

// GetByUserPoolGame finds the pick keyed (user, pool, game).
func (r *repository) GetByUserPoolGame(ctx context.Context, userID, poolID, gameID uint) (*pickModel.Pick, error) {
	var pick pickModel.Pick
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND pool_id = ? AND game_id = ?", userID, poolID, gameID).
		First(&pick).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pickModel.ErrPickNotFound
		}
		return nil, err
	}
	return &pick, nil
}

// GetByUserPoolWeek finds the user's pick for one week of a pool season.
func (r *repository) GetByUserPoolWeek(ctx context.Context, userID, poolID, seasonID uint, week int) (*pickModel.Pick, error) {
	var pick pickModel.Pick
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND pool_id = ? AND season_id = ? AND week = ?", userID, poolID, seasonID, week).
		First(&pick).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pickModel.ErrPickNotFound
		}
		return nil, err
	}
	return &pick, nil
}

// List returns picks matching the filter ordered by id.
func (r *repository) List(ctx context.Context, filter pickModel.ListFilter) ([]pickModel.Pick, error) {
	query := r.db.WithContext(ctx).Where("pool_id = ?", filter.PoolID)
	if filter.SeasonID != nil {
		query = query.Where("season_id = ?", *filter.SeasonID)
	}
	if filter.Week != nil {
		query = query.Where("week = ?", *filter.Week)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var picks []pickModel.Pick
	if err := query.Order("id").Find(&picks).Error; err != nil {
		return nil, err
	}
	if picks == nil {
		picks = []pickModel.Pick{}
	}
	return picks, nil
}

// ListByGame returns all picks referencing a game.
func (r *repository) ListByGame(ctx context.Context, gameID uint) ([]pickModel.Pick, error) {
	var picks []pickModel.Pick
	err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("id").
		Find(&picks).Error
	if err != nil {
		return nil, err
	}
	if picks == nil {
		picks = []pickModel.Pick{}
	}
	return picks, nil
}

// ListByUserPoolSeason returns a user's picks across a pool season.
func (r *repository) ListByUserPoolSeason(ctx context.Context, userID, poolID, seasonID uint) ([]pickModel.Pick, error) {
	var picks []pickModel.Pick
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND pool_id = ? AND season_id = ?", userID, poolID, seasonID).
		Order("week").
		Find(&picks).Error
	if err != nil {
		return nil, err
	}
	if picks == nil {
		picks = []pickModel.Pick{}
	}
	return picks, nil
}

// Delete removes a pick by id.
func (r *repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&pickModel.Pick{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pickModel.ErrPickNotFound
	}
	return nil
}

// DeleteByPool removes all picks of a pool.
func (r *repository) DeleteByPool(ctx context.Context, poolID uint) error {
	return r.db.WithContext(ctx).
		Where("pool_id = ?", poolID).
		Delete(&pickModel.Pick{}).Error
}
