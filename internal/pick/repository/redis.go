package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/tbrandt27/football-pick-em-sub003/internal/kvstore"
	pickModel "github.com/tbrandt27/football-pick-em-sub003/internal/pick/model"
)

const pickCollection = "picks"

type kvRepository struct {
	store *kvstore.Store
}

// NewKV creates a new key-value-backed pick repository.
func NewKV(store *kvstore.Store) Repository {
	return &kvRepository{store: store}
}

func u(v uint) string { return strconv.FormatUint(uint64(v), 10) }

func pickAttrs(pick *pickModel.Pick) map[string]string {
	return map[string]string{
		"pool":             u(pick.PoolID),
		"game":             u(pick.GameID),
		"user_pool_game":   u(pick.UserID) + ":" + u(pick.PoolID) + ":" + u(pick.GameID),
		"user_pool_week":   u(pick.UserID) + ":" + u(pick.PoolID) + ":" + u(pick.SeasonID) + ":" + strconv.Itoa(pick.Week),
		"user_pool_season": u(pick.UserID) + ":" + u(pick.PoolID) + ":" + u(pick.SeasonID),
	}
}

// Create persists a new pick.
func (r *kvRepository) Create(ctx context.Context, pick *pickModel.Pick) error {
	id, err := r.store.NextID(ctx, pickCollection)
	if err != nil {
		return err
	}
	pick.ID = id
	pick.CreatedAt = time.Now()
	return r.store.Put(ctx, pickCollection, id, pick, pickAttrs(pick))
}

// Update persists changes to an existing pick.
func (r *kvRepository) Update(ctx context.Context, pick *pickModel.Pick) error {
	pick.UpdatedAt = time.Now()
	return r.store.Put(ctx, pickCollection, pick.ID, pick, pickAttrs(pick))
}

// GetByID finds a pick by id.
func (r *kvRepository) GetByID(ctx context.Context, id uint) (*pickModel.Pick, error) {
	var pick pickModel.Pick
	if err := r.store.Get(ctx, pickCollection, id, &pick); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, pickModel.ErrPickNotFound
		}
		return nil, err
	}
	return &pick, nil
}

func (r *kvRepository) firstBy(ctx context.Context, attr, value string) (*pickModel.Pick, error) {
	ids, err := r.store.IDsBy(ctx, pickCollection, attr, value)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, pickModel.ErrPickNotFound
	}
	return r.GetByID(ctx, ids[0])
}

// GetByUserPoolGame finds the pick keyed (user, pool, game).
func (r *kvRepository) GetByUserPoolGame(ctx context.Context, userID, poolID, gameID uint) (*pickModel.Pick, error) {
	return r.firstBy(ctx, "user_pool_game", u(userID)+":"+u(poolID)+":"+u(gameID))
}

// GetByUserPoolWeek finds the user's pick for one week of a pool season.
func (r *kvRepository) GetByUserPoolWeek(ctx context.Context, userID, poolID, seasonID uint, week int) (*pickModel.Pick, error) {
	return r.firstBy(ctx, "user_pool_week", u(userID)+":"+u(poolID)+":"+u(seasonID)+":"+strconv.Itoa(week))
}

// List returns picks matching the filter ordered by id.
func (r *kvRepository) List(ctx context.Context, filter pickModel.ListFilter) ([]pickModel.Pick, error) {
	docs, err := r.store.By(ctx, pickCollection, "pool", u(filter.PoolID))
	if err != nil {
		return nil, err
	}
	all, err := kvstore.DecodeAll[pickModel.Pick](docs)
	if err != nil {
		return nil, err
	}

	picks := make([]pickModel.Pick, 0, len(all))
	for _, pick := range all {
		if filter.SeasonID != nil && pick.SeasonID != *filter.SeasonID {
			continue
		}
		if filter.Week != nil && pick.Week != *filter.Week {
			continue
		}
		if filter.UserID != nil && pick.UserID != *filter.UserID {
			continue
		}
		picks = append(picks, pick)
	}
	sort.Slice(picks, func(i, j int) bool { return picks[i].ID < picks[j].ID })
	return picks, nil
}

// ListByGame returns all picks referencing a game.
func (r *kvRepository) ListByGame(ctx context.Context, gameID uint) ([]pickModel.Pick, error) {
	docs, err := r.store.By(ctx, pickCollection, "game", u(gameID))
	if err != nil {
		return nil, err
	}
	picks, err := kvstore.DecodeAll[pickModel.Pick](docs)
	if err != nil {
		return nil, err
	}
	sort.Slice(picks, func(i, j int) bool { return picks[i].ID < picks[j].ID })
	return picks, nil
}

// ListByUserPoolSeason returns a user's picks across a pool season.
func (r *kvRepository) ListByUserPoolSeason(ctx context.Context, userID, poolID, seasonID uint) ([]pickModel.Pick, error) {
	docs, err := r.store.By(ctx, pickCollection, "user_pool_season", u(userID)+":"+u(poolID)+":"+u(seasonID))
	if err != nil {
		return nil, err
	}
	picks, err := kvstore.DecodeAll[pickModel.Pick](docs)
	if err != nil {
		return nil, err
	}
	sort.Slice(picks, func(i, j int) bool { return picks[i].Week < picks[j].Week })
	return picks, nil
}

// Delete removes a pick by id.
func (r *kvRepository) Delete(ctx context.Context, id uint) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return r.store.Delete(ctx, pickCollection, id)
}

// DeleteByPool removes all picks of a pool.
func (r *kvRepository) DeleteByPool(ctx context.Context, poolID uint) error {
	ids, err := r.store.IDsBy(ctx, pickCollection, "pool", u(poolID))
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := r.store.Delete(ctx, pickCollection, id); err != nil {
			return err
		}
	}
	return nil
}
