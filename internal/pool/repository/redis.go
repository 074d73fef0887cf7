package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/tbrandt27/football-pick-em-sub003/internal/kvstore"
	poolModel "github.com/tbrandt27/football-pick-em-sub003/internal/pool/model"
	userRepository "github.com/tbrandt27/football-pick-em-sub003/internal/user/repository"
)

const (
	poolCollection        = "pools"
	participantCollection = "participants"
)

type kvRepository struct {
	store *kvstore.Store
	users userRepository.Repository
}

// NewKV creates a new key-value-backed pool repository. The user
// repository fills participant names on listing.
func NewKV(store *kvstore.Store, users userRepository.Repository) Repository {
	return &kvRepository{store: store, users: users}
}

func poolAttrs(pool *poolModel.Pool) map[string]string {
	return map[string]string{
		"season": strconv.FormatUint(uint64(pool.SeasonID), 10),
	}
}

func participantAttrs(p *poolModel.Participant) map[string]string {
	return map[string]string{
		"pool":      strconv.FormatUint(uint64(p.PoolID), 10),
		"user":      strconv.FormatUint(uint64(p.UserID), 10),
		"pool_user": strconv.FormatUint(uint64(p.PoolID), 10) + ":" + strconv.FormatUint(uint64(p.UserID), 10),
	}
}

// Create persists a new pool.
func (r *kvRepository) Create(ctx context.Context, pool *poolModel.Pool) error {
	id, err := r.store.NextID(ctx, poolCollection)
	if err != nil {
		return err
	}
	pool.ID = id
	pool.CreatedAt = time.Now()
	return r.store.Put(ctx, poolCollection, id, pool, poolAttrs(pool))
}

// GetByID finds a pool by id.
func (r *kvRepository) GetByID(ctx context.Context, id uint) (*poolModel.Pool, error) {
	var pool poolModel.Pool
	if err := r.store.Get(ctx, poolCollection, id, &pool); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, poolModel.ErrPoolNotFound
		}
		return nil, err
	}
	return &pool, nil
}

// ListForUser returns pools where the user is a participant.
func (r *kvRepository) ListForUser(ctx context.Context, userID uint) ([]poolModel.Pool, error) {
	docs, err := r.store.By(ctx, participantCollection, "user", strconv.FormatUint(uint64(userID), 10))
	if err != nil {
		return nil, err
	}
	memberships, err := kvstore.DecodeAll[poolModel.Participant](docs)
	if err != nil {
		return nil, err
	}

	pools := make([]poolModel.Pool, 0, len(memberships))
	for _, m := range memberships {
		pool, getErr := r.GetByID(ctx, m.PoolID)
		if getErr != nil {
			if errors.Is(getErr, poolModel.ErrPoolNotFound) {
				continue
			}
			return nil, getErr
		}
		pools = append(pools, *pool)
	}
	sort.Slice(pools, func(i, j int) bool { return pools[i].ID < pools[j].ID })
	return pools, nil
}

// Update persists changes to an existing pool.
func (r *kvRepository) Update(ctx context.Context, pool *poolModel.Pool) error {
	pool.UpdatedAt = time.Now()
	return r.store.Put(ctx, poolCollection, pool.ID, pool, poolAttrs(pool))
}

// Delete removes a pool and its participant rows.
func (r *kvRepository) Delete(ctx context.Context, id uint) error {
	ids, err := r.store.IDsBy(ctx, participantCollection, "pool", strconv.FormatUint(uint64(id), 10))
	if err != nil {
		return err
	}
	for _, pid := range ids {
		if err := r.store.Delete(ctx, participantCollection, pid); err != nil {
			return err
		}
	}
	return r.store.Delete(ctx, poolCollection, id)
}

// AddParticipant adds a member to a pool.
func (r *kvRepository) AddParticipant(ctx context.Context, participant *poolModel.Participant) error {
	existing, err := r.GetParticipant(ctx, participant.PoolID, participant.UserID)
	if err != nil && !errors.Is(err, poolModel.ErrParticipantNotFound) {
		return err
	}
	if existing != nil {
		return poolModel.ErrAlreadyParticipant
	}

	id, err := r.store.NextID(ctx, participantCollection)
	if err != nil {
		return err
	}
	participant.ID = id
	participant.CreatedAt = time.Now()
	return r.store.Put(ctx, participantCollection, id, participant, participantAttrs(participant))
}

// GetParticipant finds a user's membership row in a pool.
func (r *kvRepository) GetParticipant(ctx context.Context, poolID, userID uint) (*poolModel.Participant, error) {
	key := strconv.FormatUint(uint64(poolID), 10) + ":" + strconv.FormatUint(uint64(userID), 10)
	ids, err := r.store.IDsBy(ctx, participantCollection, "pool_user", key)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, poolModel.ErrParticipantNotFound
	}

	var participant poolModel.Participant
	if err := r.store.Get(ctx, participantCollection, ids[0], &participant); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, poolModel.ErrParticipantNotFound
		}
		return nil, err
	}
	return &participant, nil
}

// ListParticipants returns a pool's members with user names attached.
func (r *kvRepository) ListParticipants(ctx context.Context, poolID uint) ([]poolModel.Participant, error) {
	docs, err := r.store.By(ctx, participantCollection, "pool", strconv.FormatUint(uint64(poolID), 10))
	if err != nil {
		return nil, err
	}
	participants, err := kvstore.DecodeAll[poolModel.Participant](docs)
	if err != nil {
		return nil, err
	}
	sort.Slice(participants, func(i, j int) bool { return participants[i].ID < participants[j].ID })

	for i := range participants {
		user, getErr := r.users.GetByID(ctx, participants[i].UserID)
		if getErr != nil {
			continue
		}
		participants[i].FirstName = user.FirstName
		participants[i].LastName = user.LastName
	}
	return participants, nil
}

// RemoveParticipant deletes a membership row.
func (r *kvRepository) RemoveParticipant(ctx context.Context, poolID, userID uint) error {
	key := strconv.FormatUint(uint64(poolID), 10) + ":" + strconv.FormatUint(uint64(userID), 10)
	ids, err := r.store.IDsBy(ctx, participantCollection, "pool_user", key)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return poolModel.ErrParticipantNotFound
	}
	return r.store.Delete(ctx, participantCollection, ids[0])
}
