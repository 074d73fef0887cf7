// Package repository provides data access layer for the season module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	seasonModel "github.com/tbrandt27/football-pick-em-sub003/internal/season/model"
)

// Repository defines the interface for season data access operations.
type Repository interface {
	// Create creates a new season.
	Create(ctx context.Context, label string) (*seasonModel.Season, error)

	// GetByID finds a season by id.
	GetByID(ctx context.Context, id uint) (*seasonModel.Season, error)

	// GetByLabel finds a season by its label.
	GetByLabel(ctx context.Context, label string) (*seasonModel.Season, error)

	// List returns all seasons ordered by label descending.
	List(ctx context.Context) ([]seasonModel.Season, error)

	// GetCurrent returns the season marked current.
	GetCurrent(ctx context.Context) (*seasonModel.Season, error)

	// SetCurrent marks a season current and clears the previous current
	// season.
	SetCurrent(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new PostgreSQL-backed season repository.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates a new season.
func (r *repository) Create(ctx context.Context, label string) (*seasonModel.Season, error) {
	season := &seasonModel.Season{Label: label}
	err := r.db.WithContext(ctx).Create(season).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateError(err) {
			return nil, seasonModel.ErrSeasonExists
		}
		return nil, err
	}
	return season, nil
}

// isDuplicateError checks if error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// GetByID finds a season by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*seasonModel.Season, error) {
	var season seasonModel.Season
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&season).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, seasonModel.ErrSeasonNotFound
		}
		return nil, err
	}
	return &season, nil
}

// GetByLabel finds a season by its label.
func (r *repository) GetByLabel(ctx context.Context, label string) (*seasonModel.Season, error) {
	var season seasonModel.Season
	err := r.db.WithContext(ctx).
		Where("label = ?", label).
		First(&season).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, seasonModel.ErrSeasonNotFound
		}
		return nil, err
	}
	return &season, nil
}

// List returns all seasons ordered by label descending.
func (r *repository) List(ctx context.Context) ([]seasonModel.Season, error) {
	var seasons []seasonModel.Season
	err := r.db.WithContext(ctx).
		Order("label DESC").
		Find(&seasons).Error
	if err != nil {
		return nil, err
	}
	if seasons == nil {
		seasons = []seasonModel.Season{}
	}
	return seasons, nil
}

// GetCurrent returns the season marked current.
func (r *repository) GetCurrent(ctx context.Context) (*seasonModel.Season, error) {
	var season seasonModel.Season
	err := r.db.WithContext(ctx).
		Where("is_current = ?", true).
		First(&season).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, seasonModel.ErrNoCurrentSeason
		}
		return nil, err
	}
	return &season, nil
}

// SetCurrent marks a season current inside a transaction so the
// single-current invariant holds even if a caller forgets the unset step.
func (r *repository) SetCurrent(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var season seasonModel.Season
		if err := tx.Where("id = ?", id).First(&season).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return seasonModel.ErrSeasonNotFound
			}
			return err
		}

		if err := tx.Model(&seasonModel.Season{}).
			Where("is_current = ?", true).
			Update("is_current", false).Error; err != nil {
			return err
		}

		return tx.Model(&seasonModel.Season{}).
			Where("id = ?", id).
			Update("is_current", true).Error
	})
}
