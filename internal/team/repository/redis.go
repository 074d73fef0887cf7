package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/tbrandt27/football-pick-em-sub003/internal/kvstore"
	teamModel "github.com/tbrandt27/football-pick-em-sub003/internal/team/model"
)

const teamCollection = "teams"

type kvRepository struct {
	store *kvstore.Store
}

// NewKV creates a new key-value-backed team repository.
func NewKV(store *kvstore.Store) Repository {
	return &kvRepository{store: store}
}

func teamAttrs(team *teamModel.Team) map[string]string {
	return map[string]string{
		"code": team.Code,
	}
}

// List returns all teams ordered by code.
func (r *kvRepository) List(ctx context.Context) ([]teamModel.Team, error) {
	docs, err := r.store.All(ctx, teamCollection)
	if err != nil {
		return nil, err
	}
	teams, err := kvstore.DecodeAll[teamModel.Team](docs)
	if err != nil {
		return nil, err
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Code < teams[j].Code })
	return teams, nil
}

// GetByID finds a team by id.
func (r *kvRepository) GetByID(ctx context.Context, id uint) (*teamModel.Team, error) {
	var team teamModel.Team
	if err := r.store.Get(ctx, teamCollection, id, &team); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// GetByCode finds a team by its short code via the code index.
func (r *kvRepository) GetByCode(ctx context.Context, code string) (*teamModel.Team, error) {
	ids, err := r.store.IDsBy(ctx, teamCollection, "code", code)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, teamModel.ErrTeamNotFound
	}
	return r.GetByID(ctx, ids[0])
}

// Seed inserts the canonical league table, skipping codes that already exist.
func (r *kvRepository) Seed(ctx context.Context, teams []teamModel.Team) error {
	for i := range teams {
		team := teams[i]
		existing, err := r.GetByCode(ctx, team.Code)
		if err != nil && !errors.Is(err, teamModel.ErrTeamNotFound) {
			return err
		}
		if existing != nil {
			continue
		}

		id, err := r.store.NextID(ctx, teamCollection)
		if err != nil {
			return err
		}
		team.ID = id
		if err := r.store.Put(ctx, teamCollection, id, &team, teamAttrs(&team)); err != nil {
			return err
		}
	}
	return nil
}
