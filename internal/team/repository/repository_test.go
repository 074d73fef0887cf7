package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	teamModel "github.com/tbrandt27/football-pick-em-sub003/internal/team/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/testutil"
)

func TestSeedIsIdempotent(t *testing.T) {
	repo := New(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, teamModel.NFLTeams()))
	require.NoError(t, repo.Seed(ctx, teamModel.NFLTeams()))

	teams, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 32)
}

func TestGetByCode(t *testing.T) {
	repo := New(testutil.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Seed(ctx, teamModel.NFLTeams()))

	team, err := repo.GetByCode(ctx, "SEA")
	require.NoError(t, err)
	assert.Equal(t, "Seahawks", team.Name)
	assert.Equal(t, "Seattle", team.City)

	_, err = repo.GetByCode(ctx, "XXX")
	assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
}

func TestGetByID(t *testing.T) {
	repo := New(testutil.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Seed(ctx, teamModel.NFLTeams()))

	byCode, err := repo.GetByCode(ctx, "KC")
	require.NoError(t, err)

	byID, err := repo.GetByID(ctx, byCode.ID)
	require.NoError(t, err)
	assert.Equal(t, byCode.Code, byID.Code)

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
}
