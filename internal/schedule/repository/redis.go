package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/tbrandt27/football-pick-em-sub003/internal/kvstore"
	scheduleModel "github.com/tbrandt27/football-pick-em-sub003/internal/schedule/model"
)

const gameCollection = "scheduled_games"

type kvRepository struct {
	store *kvstore.Store
}

// NewKV creates a new key-value-backed schedule repository.
func NewKV(store *kvstore.Store) Repository {
	return &kvRepository{store: store}
}

func gameAttrs(game *scheduleModel.ScheduledGame) map[string]string {
	return map[string]string{
		"external_id": game.ExternalID,
		"season":      strconv.FormatUint(uint64(game.SeasonID), 10),
		"season_week": strconv.FormatUint(uint64(game.SeasonID), 10) + ":" + strconv.Itoa(game.Week),
	}
}

// GetByID finds a game by id.
func (r *kvRepository) GetByID(ctx context.Context, id uint) (*scheduleModel.ScheduledGame, error) {
	var game scheduleModel.ScheduledGame
	if err := r.store.Get(ctx, gameCollection, id, &game); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, scheduleModel.ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

// GetByExternalID finds a game by the provider's id.
func (r *kvRepository) GetByExternalID(ctx context.Context, externalID string) (*scheduleModel.ScheduledGame, error) {
	ids, err := r.store.IDsBy(ctx, gameCollection, "external_id", externalID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, scheduleModel.ErrGameNotFound
	}
	return r.GetByID(ctx, ids[0])
}

// ListBySeason returns all games of a season ordered by week, start time.
func (r *kvRepository) ListBySeason(ctx context.Context, seasonID uint) ([]scheduleModel.ScheduledGame, error) {
	docs, err := r.store.By(ctx, gameCollection, "season", strconv.FormatUint(uint64(seasonID), 10))
	if err != nil {
		return nil, err
	}
	games, err := kvstore.DecodeAll[scheduleModel.ScheduledGame](docs)
	if err != nil {
		return nil, err
	}
	sort.Slice(games, func(i, j int) bool {
		if games[i].Week != games[j].Week {
			return games[i].Week < games[j].Week
		}
		return games[i].StartTime.Before(games[j].StartTime)
	})
	return games, nil
}

// ListBySeasonWeek returns the games of one season week ordered by start time.
func (r *kvRepository) ListBySeasonWeek(ctx context.Context, seasonID uint, week int) ([]scheduleModel.ScheduledGame, error) {
	key := strconv.FormatUint(uint64(seasonID), 10) + ":" + strconv.Itoa(week)
	docs, err := r.store.By(ctx, gameCollection, "season_week", key)
	if err != nil {
		return nil, err
	}
	games, err := kvstore.DecodeAll[scheduleModel.ScheduledGame](docs)
	if err != nil {
		return nil, err
	}
	sort.Slice(games, func(i, j int) bool { return games[i].StartTime.Before(games[j].StartTime) })
	return games, nil
}

// Upsert inserts the game or refreshes the existing document matched by external id.
func (r *kvRepository) Upsert(ctx context.Context, game *scheduleModel.ScheduledGame) error {
	existing, err := r.GetByExternalID(ctx, game.ExternalID)
	if err != nil && !errors.Is(err, scheduleModel.ErrGameNotFound) {
		return err
	}

	if existing == nil {
		id, idErr := r.store.NextID(ctx, gameCollection)
		if idErr != nil {
			return idErr
		}
		game.ID = id
		game.CreatedAt = time.Now()
		return r.store.Put(ctx, gameCollection, id, game, gameAttrs(game))
	}

	existing.HomeScore = game.HomeScore
	existing.AwayScore = game.AwayScore
	existing.Status = game.Status
	existing.StartTime = game.StartTime
	existing.ScoreRefreshedAt = game.ScoreRefreshedAt
	existing.UpdatedAt = time.Now()
	if err := r.store.Put(ctx, gameCollection, existing.ID, existing, gameAttrs(existing)); err != nil {
		return err
	}
	*game = *existing
	return nil
}
