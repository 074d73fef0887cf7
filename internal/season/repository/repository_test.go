package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	seasonModel "github.com/tbrandt27/football-pick-em-sub003/internal/season/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/testutil"
)

func TestCreateAndGet(t *testing.T) {
	repo := New(testutil.NewTestDB(t))
	ctx := context.Background()

	season, err := repo.Create(ctx, "2025")
	require.NoError(t, err)
	assert.NotZero(t, season.ID)
	assert.Equal(t, "2025", season.Label)
	assert.False(t, season.IsCurrent)

	got, err := repo.GetByID(ctx, season.ID)
	require.NoError(t, err)
	assert.Equal(t, season.Label, got.Label)

	byLabel, err := repo.GetByLabel(ctx, "2025")
	require.NoError(t, err)
	assert.Equal(t, season.ID, byLabel.ID)
}

func TestCreateDuplicateLabel(t *testing.T) {
	repo := New(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, "2025")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "2025")
	assert.ErrorIs(t, err, seasonModel.ErrSeasonExists)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := New(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, seasonModel.ErrSeasonNotFound)
}

func TestSetCurrentKeepsSingleCurrent(t *testing.T) {
	repo := New(testutil.NewTestDB(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, "2024")
	require.NoError(t, err)
	second, err := repo.Create(ctx, "2025")
	require.NoError(t, err)

	require.NoError(t, repo.SetCurrent(ctx, first.ID))
	current, err := repo.GetCurrent(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, current.ID)

	require.NoError(t, repo.SetCurrent(ctx, second.ID))
	current, err = repo.GetCurrent(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)

	// The previous current season must have been cleared.
	prev, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, prev.IsCurrent)
}

func TestSetCurrentUnknownSeason(t *testing.T) {
	repo := New(testutil.NewTestDB(t))

	err := repo.SetCurrent(context.Background(), 99)
	assert.ErrorIs(t, err, seasonModel.ErrSeasonNotFound)
}

func TestGetCurrentWhenNoneSet(t *testing.T) {
	repo := New(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, "2025")
	require.NoError(t, err)

	_, err = repo.GetCurrent(ctx)
	assert.ErrorIs(t, err, seasonModel.ErrNoCurrentSeason)
}

func TestListOrdersByLabelDescending(t *testing.T) {
	repo := New(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, label := range []string{"2023", "2025", "2024"} {
		_, err := repo.Create(ctx, label)
		require.NoError(t, err)
	}

	seasons, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, seasons, 3)
	assert.Equal(t, "2025", seasons[0].Label)
	assert.Equal(t, "2024", seasons[1].Label)
	assert.Equal(t, "2023", seasons[2].Label)
}
