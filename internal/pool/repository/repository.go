// Package repository provides data access layer for the pool module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	poolModel "github.com/tbrandt27/football-pick-em-sub003/internal/pool/model"
)

// Repository defines the interface for pool data access operations.
type Repository interface {
	// Create persists a new pool.
	Create(ctx context.Context, pool *poolModel.Pool) error

	// GetByID finds a pool by id.
	GetByID(ctx context.Context, id uint) (*poolModel.Pool, error)

	// ListForUser returns pools where the user is a participant.
	ListForUser(ctx context.Context, userID uint) ([]poolModel.Pool, error)

	// Update persists changes to an existing pool.
	Update(ctx context.Context, pool *poolModel.Pool) error

	// Delete removes a pool; participants and picks cascade.
	Delete(ctx context.Context, id uint) error

	// AddParticipant adds a member to a pool.
	AddParticipant(ctx context.Context, participant *poolModel.Participant) error

	// GetParticipant finds a user's membership row in a pool.
	GetParticipant(ctx context.Context, poolID, userID uint) (*poolModel.Participant, error)

	// ListParticipants returns a pool's members with user names attached.
	ListParticipants(ctx context.Context, poolID uint) ([]poolModel.Participant, error)

	// RemoveParticipant deletes a membership row.
	RemoveParticipant(ctx context.Context, poolID, userID uint) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new PostgreSQL-backed pool repository.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new pool.
func (r *repository) Create(ctx context.Context, pool *poolModel.Pool) error {
	return r.db.WithContext(ctx).Create(pool).Error
}

// GetByID finds a pool by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*poolModel.Pool, error) {
	var pool poolModel.Pool
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pool).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, poolModel.ErrPoolNotFound
		}
		return nil, err
	}
	return &pool, nil
}

// ListForUser returns pools where the user is a participant.
func (r *repository) ListForUser(ctx context.Context, userID uint) ([]poolModel.Pool, error) {
	var pools []poolModel.Pool
	err := r.db.WithContext(ctx).
		Joins("JOIN participants ON participants.pool_id = pools.id").
		Where("participants.user_id = ?", userID).
		Order("pools.id").
		Find(&pools).Error
	if err != nil {
		return nil, err
	}
	if pools == nil {
		pools = []poolModel.Pool{}
	}
	return pools, nil
}

// Update persists changes to an existing pool.
func (r *repository) Update(ctx context.Context, pool *poolModel.Pool) error {
	return r.db.WithContext(ctx).Save(pool).Error
}

// Delete removes a pool; participants and picks cascade.
func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&poolModel.Pool{}, id).Error
}

// AddParticipant adds a member to a pool.
func (r *repository) AddParticipant(ctx context.Context, participant *poolModel.Participant) error {
	err := r.db.WithContext(ctx).Create(participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateError(err) {
			return poolModel.ErrAlreadyParticipant
		}
		return err
	}
	return nil
}

func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// GetParticipant finds a user's membership row in a pool.
func (r *repository) GetParticipant(ctx context.Context, poolID, userID uint) (*poolModel.Participant, error) {
	var participant poolModel.Participant
	err := r.db.WithContext(ctx).
		Where("pool_id = ? AND user_id = ?", poolID, userID).
		First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, poolModel.ErrParticipantNotFound
		}
		return nil, err
	}
	return &participant, nil
}

// participantRow carries the join columns that the Participant model
// does not map itself.
type participantRow struct {
	ID        uint
	PoolID    uint
	UserID    uint
	Role      string
	FirstName string
	LastName  string
}

// ListParticipants returns a pool's members with user names attached.
func (r *repository) ListParticipants(ctx context.Context, poolID uint) ([]poolModel.Participant, error) {
	var rows []participantRow
	err := r.db.WithContext(ctx).
		Table("participants").
		Select("participants.id, participants.pool_id, participants.user_id, participants.role, users.first_name, users.last_name").
		Joins("JOIN users ON users.id = participants.user_id").
		Where("participants.pool_id = ?", poolID).
		Order("participants.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	participants := make([]poolModel.Participant, 0, len(rows))
	for _, row := range rows {
		participants = append(participants, poolModel.Participant{
			ID:        row.ID,
			PoolID:    row.PoolID,
			UserID:    row.UserID,
			Role:      row.Role,
			FirstName: row.FirstName,
			LastName:  row.LastName,
		})
	}
	return participants, nil
}

// RemoveParticipant deletes a membership row.
func (r *repository) RemoveParticipant(ctx context.Context, poolID, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("pool_id = ? AND user_id = ?", poolID, userID).
		Delete(&poolModel.Participant{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return poolModel.ErrParticipantNotFound
	}
	return nil
}
