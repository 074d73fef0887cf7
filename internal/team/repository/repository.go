// Package repository provides data access layer for the team module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	teamModel "github.com/tbrandt27/football-pick-em-sub003/internal/team/model"
)

// Repository defines the interface for team data access operations.
// Implemented once for PostgreSQL and once for the key-value backend.
type Repository interface {
	// List returns all teams ordered by code.
	List(ctx context.Context) ([]teamModel.Team, error)

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id uint) (*teamModel.Team, error)

	// GetByCode finds a team by its short code (e.g. "SEA").
	GetByCode(ctx context.Context, code string) (*teamModel.Team, error)

	// Seed inserts the canonical league table, skipping codes that already exist.
	Seed(ctx context.Context, teams []teamModel.Team) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new PostgreSQL-backed team repository.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// List returns all teams ordered by code.
func (r *repository) List(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Order("code ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []teamModel.Team{}
	}
	return teams, nil
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// GetByCode finds a team by its short code.
func (r *repository) GetByCode(ctx context.Context, code string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// Seed inserts the canonical league table, skipping codes that already exist.
func (r *repository) Seed(ctx context.Context, teams []teamModel.Team) error {
	if len(teams) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).
		Create(&teams).Error
}
