// Package repository provides data access layer for the invite module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	inviteModel "github.com/tbrandt27/football-pick-em-sub003/internal/invite/model"
)

// Repository defines the interface for invitation data access operations.
type Repository interface {
	// Create persists a new invitation.
	Create(ctx context.Context, invitation *inviteModel.Invitation) error

	// GetByID finds an invitation by id.
	GetByID(ctx context.Context, id uint) (*inviteModel.Invitation, error)

	// GetByToken finds an invitation by its token.
	GetByToken(ctx context.Context, token string) (*inviteModel.Invitation, error)

	// ListByPool returns a pool's invitations ordered by id.
	ListByPool(ctx context.Context, poolID uint) ([]inviteModel.Invitation, error)

	// Update persists changes to an existing invitation.
	Update(ctx context.Context, invitation *inviteModel.Invitation) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new PostgreSQL-backed invitation repository.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new invitation.
func (r *repository) Create(ctx context.Context, invitation *inviteModel.Invitation) error {
	return r.db.WithContext(ctx).Create(invitation).Error
}

// GetByID finds an invitation by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*inviteModel.Invitation, error) {
	var invitation inviteModel.Invitation
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inviteModel.ErrInvitationNotFound
		}
		return nil, err
	}
	return &invitation, nil
}

// GetByToken finds an invitation by its token.
func (r *repository) GetByToken(ctx context.Context, token string) (*inviteModel.Invitation, error) {
	var invitation inviteModel.Invitation
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inviteModel.ErrInvitationNotFound
		}
		return nil, err
	}
	return &invitation, nil
}

// ListByPool returns a pool's invitations ordered by id.
func (r *repository) ListByPool(ctx context.Context, poolID uint) ([]inviteModel.Invitation, error) {
	var invitations []inviteModel.Invitation
	err := r.db.WithContext(ctx).
		Where("pool_id = ?", poolID).
		Order("id").
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	if invitations == nil {
		invitations = []inviteModel.Invitation{}
	}
	return invitations, nil
}

// Update persists changes to an existing invitation.
func (r *repository) Update(ctx context.Context, invitation *inviteModel.Invitation) error {
	return r.db.WithContext(ctx).Save(invitation).Error
}
