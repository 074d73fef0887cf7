package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	poolModel "github.com/tbrandt27/football-pick-em-sub003/internal/pool/model"
	poolRepository "github.com/tbrandt27/football-pick-em-sub003/internal/pool/repository"
	seasonModel "github.com/tbrandt27/football-pick-em-sub003/internal/season/model"
	seasonRepository "github.com/tbrandt27/football-pick-em-sub003/internal/season/repository"
	"github.com/tbrandt27/football-pick-em-sub003/internal/testutil"
	userModel "github.com/tbrandt27/football-pick-em-sub003/internal/user/model"
	userRepository "github.com/tbrandt27/football-pick-em-sub003/internal/user/repository"
)

type fixture struct {
	svc    Service
	db     *gorm.DB
	season *seasonModel.Season
	owner  *userModel.User
	other  *userModel.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)

	f := &fixture{db: db}
	f.season = &seasonModel.Season{Label: "2025"}
	require.NoError(t, db.Create(f.season).Error)

	f.owner = &userModel.User{Email: "owner@example.com", PasswordHash: "x", FirstName: "Olive", LastName: "Owner"}
	f.other = &userModel.User{Email: "other@example.com", PasswordHash: "x", FirstName: "Otto", LastName: "Other"}
	require.NoError(t, db.Create(f.owner).Error)
	require.NoError(t, db.Create(f.other).Error)

	f.svc = New(poolRepository.New(db), seasonRepository.New(db), userRepository.New(db), nil, zap.NewNop().Sugar())
	return f
}

func (f *fixture) createPool(t *testing.T) *poolModel.Pool {
	t.Helper()
	pool, err := f.svc.CreatePool(context.Background(), Caller{UserID: f.owner.ID}, &poolModel.CreatePoolRequest{
		Name: "office pool", Mode: poolModel.ModeWeekly, SeasonID: f.season.ID,
	})
	require.NoError(t, err)
	return pool
}

func TestCreatePoolMakesOwnerParticipant(t *testing.T) {
	f := newFixture(t)
	pool := f.createPool(t)

	assert.Equal(t, f.owner.ID, pool.OwnerID)
	assert.True(t, pool.IsActive)

	participants, err := f.svc.ListParticipants(context.Background(), Caller{UserID: f.owner.ID}, pool.ID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, f.owner.ID, participants[0].UserID)
	assert.Equal(t, poolModel.RoleOwner, participants[0].Role)
}

func TestCreatePoolUnknownSeason(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreatePool(context.Background(), Caller{UserID: f.owner.ID}, &poolModel.CreatePoolRequest{
		Name: "p", Mode: poolModel.ModeWeekly, SeasonID: 999,
	})
	assert.ErrorIs(t, err, seasonModel.ErrSeasonNotFound)
}

func TestUpdatePoolRequiresOwnerOrAdmin(t *testing.T) {
	f := newFixture(t)
	pool := f.createPool(t)
	name := "renamed"

	_, err := f.svc.UpdatePool(context.Background(), Caller{UserID: f.other.ID}, pool.ID, &poolModel.UpdatePoolRequest{Name: &name})
	assert.ErrorIs(t, err, poolModel.ErrNotOwner)

	updated, err := f.svc.UpdatePool(context.Background(), Caller{UserID: f.other.ID, IsAdmin: true}, pool.ID, &poolModel.UpdatePoolRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
}

func TestAddParticipant(t *testing.T) {
	f := newFixture(t)
	pool := f.createPool(t)
	ctx := context.Background()

	participant, err := f.svc.AddParticipant(ctx, Caller{UserID: f.owner.ID}, pool.ID, f.other.ID)
	require.NoError(t, err)
	assert.Equal(t, poolModel.RolePlayer, participant.Role)
	assert.Equal(t, "Otto", participant.FirstName)

	_, err = f.svc.AddParticipant(ctx, Caller{UserID: f.owner.ID}, pool.ID, f.other.ID)
	assert.ErrorIs(t, err, poolModel.ErrAlreadyParticipant)

	_, err = f.svc.AddParticipant(ctx, Caller{UserID: f.owner.ID}, pool.ID, 999)
	assert.ErrorIs(t, err, userModel.ErrUserNotFound)
}

func TestRemoveParticipant(t *testing.T) {
	f := newFixture(t)
	pool := f.createPool(t)
	ctx := context.Background()

	_, err := f.svc.AddParticipant(ctx, Caller{UserID: f.owner.ID}, pool.ID, f.other.ID)
	require.NoError(t, err)

	// The owner's own membership row is protected.
	err = f.svc.RemoveParticipant(ctx, Caller{UserID: f.owner.ID}, pool.ID, f.owner.ID)
	assert.ErrorIs(t, err, poolModel.ErrOwnerIrremovable)

	require.NoError(t, f.svc.RemoveParticipant(ctx, Caller{UserID: f.owner.ID}, pool.ID, f.other.ID))

	err = f.svc.RemoveParticipant(ctx, Caller{UserID: f.owner.ID}, pool.ID, f.other.ID)
	assert.ErrorIs(t, err, poolModel.ErrParticipantNotFound)
}

func TestGetPoolRequiresMembership(t *testing.T) {
	f := newFixture(t)
	pool := f.createPool(t)
	ctx := context.Background()

	_, err := f.svc.GetPool(ctx, Caller{UserID: f.other.ID}, pool.ID)
	assert.ErrorIs(t, err, poolModel.ErrNotParticipant)

	got, err := f.svc.GetPool(ctx, Caller{UserID: f.other.ID, IsAdmin: true}, pool.ID)
	require.NoError(t, err)
	assert.Equal(t, pool.ID, got.ID)
}

func TestListPoolsForUser(t *testing.T) {
	f := newFixture(t)
	pool := f.createPool(t)
	ctx := context.Background()

	pools, err := f.svc.ListPools(ctx, Caller{UserID: f.owner.ID})
	require.NoError(t, err)
	require.Len(t, pools, 1)
	assert.Equal(t, pool.ID, pools[0].ID)

	pools, err = f.svc.ListPools(ctx, Caller{UserID: f.other.ID})
	require.NoError(t, err)
	assert.Empty(t, pools)
}

func TestDeletePool(t *testing.T) {
	f := newFixture(t)
	pool := f.createPool(t)
	ctx := context.Background()

	err := f.svc.DeletePool(ctx, Caller{UserID: f.other.ID}, pool.ID)
	assert.ErrorIs(t, err, poolModel.ErrNotOwner)

	require.NoError(t, f.svc.DeletePool(ctx, Caller{UserID: f.owner.ID}, pool.ID))

	_, err = f.svc.GetPool(ctx, Caller{UserID: f.owner.ID, IsAdmin: true}, pool.ID)
	assert.ErrorIs(t, err, poolModel.ErrPoolNotFound)
}
