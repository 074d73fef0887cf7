package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/tbrandt27/football-pick-em-sub003/internal/kvstore"
	seasonModel "github.com/tbrandt27/football-pick-em-sub003/internal/season/model"
)

const seasonCollection = "seasons"

type kvRepository struct {
	store *kvstore.Store
}

// NewKV creates a new key-value-backed season repository.
func NewKV(store *kvstore.Store) Repository {
	return &kvRepository{store: store}
}

func seasonAttrs(season *seasonModel.Season) map[string]string {
	current := "false"
	if season.IsCurrent {
		current = "true"
	}
	return map[string]string{
		"label":      season.Label,
		"is_current": current,
	}
}

// Create creates a new season.
func (r *kvRepository) Create(ctx context.Context, label string) (*seasonModel.Season, error) {
	existing, err := r.GetByLabel(ctx, label)
	if err != nil && !errors.Is(err, seasonModel.ErrSeasonNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, seasonModel.ErrSeasonExists
	}

	id, err := r.store.NextID(ctx, seasonCollection)
	if err != nil {
		return nil, err
	}

	season := &seasonModel.Season{ID: id, Label: label}
	if err := r.store.Put(ctx, seasonCollection, id, season, seasonAttrs(season)); err != nil {
		return nil, err
	}
	return season, nil
}

// GetByID finds a season by id.
func (r *kvRepository) GetByID(ctx context.Context, id uint) (*seasonModel.Season, error) {
	var season seasonModel.Season
	if err := r.store.Get(ctx, seasonCollection, id, &season); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, seasonModel.ErrSeasonNotFound
		}
		return nil, err
	}
	return &season, nil
}

// GetByLabel finds a season by its label via the label index.
func (r *kvRepository) GetByLabel(ctx context.Context, label string) (*seasonModel.Season, error) {
	ids, err := r.store.IDsBy(ctx, seasonCollection, "label", label)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, seasonModel.ErrSeasonNotFound
	}
	return r.GetByID(ctx, ids[0])
}

// List returns all seasons ordered by label descending.
func (r *kvRepository) List(ctx context.Context) ([]seasonModel.Season, error) {
	docs, err := r.store.All(ctx, seasonCollection)
	if err != nil {
		return nil, err
	}
	seasons, err := kvstore.DecodeAll[seasonModel.Season](docs)
	if err != nil {
		return nil, err
	}
	sort.Slice(seasons, func(i, j int) bool { return seasons[i].Label > seasons[j].Label })
	return seasons, nil
}

// GetCurrent returns the season marked current.
func (r *kvRepository) GetCurrent(ctx context.Context) (*seasonModel.Season, error) {
	ids, err := r.store.IDsBy(ctx, seasonCollection, "is_current", "true")
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, seasonModel.ErrNoCurrentSeason
	}
	return r.GetByID(ctx, ids[0])
}

// SetCurrent marks a season current and clears any previous current season.
func (r *kvRepository) SetCurrent(ctx context.Context, id uint) error {
	season, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	ids, err := r.store.IDsBy(ctx, seasonCollection, "is_current", "true")
	if err != nil {
		return err
	}
	for _, prevID := range ids {
		if prevID == id {
			continue
		}
		prev, getErr := r.GetByID(ctx, prevID)
		if getErr != nil {
			return getErr
		}
		prev.IsCurrent = false
		if putErr := r.store.Put(ctx, seasonCollection, prevID, prev, seasonAttrs(prev)); putErr != nil {
			return putErr
		}
	}

	season.IsCurrent = true
	return r.store.Put(ctx, seasonCollection, id, season, seasonAttrs(season))
}
