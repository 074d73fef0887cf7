// Package repository provides data access layer for the user module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	userModel "github.com/tbrandt27/football-pick-em-sub003/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *userModel.User) error

	// GetByID finds a user by id.
	GetByID(ctx context.Context, id uint) (*userModel.User, error)

	// GetByEmail finds a user by email.
	GetByEmail(ctx context.Context, email string) (*userModel.User, error)

	// List returns all users ordered by id.
	List(ctx context.Context) ([]userModel.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *userModel.User) error

	// TouchLastLogin records a successful login time.
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new PostgreSQL-backed user repository.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new user.
func (r *repository) Create(ctx context.Context, user *userModel.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateError(err) {
			return userModel.ErrEmailTaken
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

// GetByID finds a user by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*userModel.User, error) {
	var user userModel.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userModel.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail finds a user by email.
func (r *repository) GetByEmail(ctx context.Context, email string) (*userModel.User, error) {
	var user userModel.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userModel.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns all users ordered by id.
func (r *repository) List(ctx context.Context) ([]userModel.User, error) {
	var users []userModel.User
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []userModel.User{}
	}
	return users, nil
}

// Update persists changes to an existing user.
func (r *repository) Update(ctx context.Context, user *userModel.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// TouchLastLogin records a successful login time.
func (r *repository) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&userModel.User{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}
