package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/tbrandt27/football-pick-em-sub003/internal/kvstore"
	userModel "github.com/tbrandt27/football-pick-em-sub003/internal/user/model"
)

const userCollection = "users"

type kvRepository struct {
	store *kvstore.Store
}

// NewKV creates a new key-value-backed user repository.
func NewKV(store *kvstore.Store) Repository {
	return &kvRepository{store: store}
}

func userAttrs(user *userModel.User) map[string]string {
	return map[string]string{
		"email": strings.ToLower(user.Email),
	}
}

// Create persists a new user.
func (r *kvRepository) Create(ctx context.Context, user *userModel.User) error {
	existing, err := r.GetByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, userModel.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return userModel.ErrEmailTaken
	}

	id, err := r.store.NextID(ctx, userCollection)
	if err != nil {
		return err
	}
	user.ID = id
	user.CreatedAt = time.Now()
	return r.store.Put(ctx, userCollection, id, user, userAttrs(user))
}

// GetByID finds a user by id.
func (r *kvRepository) GetByID(ctx context.Context, id uint) (*userModel.User, error) {
	var user userModel.User
	if err := r.store.Get(ctx, userCollection, id, &user); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, userModel.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail finds a user by email via the email index.
func (r *kvRepository) GetByEmail(ctx context.Context, email string) (*userModel.User, error) {
	ids, err := r.store.IDsBy(ctx, userCollection, "email", strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, userModel.ErrUserNotFound
	}
	return r.GetByID(ctx, ids[0])
}

// List returns all users ordered by id.
func (r *kvRepository) List(ctx context.Context) ([]userModel.User, error) {
	docs, err := r.store.All(ctx, userCollection)
	if err != nil {
		return nil, err
	}
	users, err := kvstore.DecodeAll[userModel.User](docs)
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Update persists changes to an existing user.
func (r *kvRepository) Update(ctx context.Context, user *userModel.User) error {
	user.UpdatedAt = time.Now()
	return r.store.Put(ctx, userCollection, user.ID, user, userAttrs(user))
}

// TouchLastLogin records a successful login time.
func (r *kvRepository) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.LastLoginAt = &at
	return r.store.Put(ctx, userCollection, id, user, userAttrs(user))
}
