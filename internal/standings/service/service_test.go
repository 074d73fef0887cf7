package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	pickModel "github.com/tbrandt27/football-pick-em-sub003/internal/pick/model"
	pickRepository "github.com/tbrandt27/football-pick-em-sub003/internal/pick/repository"
	poolModel "github.com/tbrandt27/football-pick-em-sub003/internal/pool/model"
	poolRepository "github.com/tbrandt27/football-pick-em-sub003/internal/pool/repository"
	scheduleModel "github.com/tbrandt27/football-pick-em-sub003/internal/schedule/model"
	scheduleRepository "github.com/tbrandt27/football-pick-em-sub003/internal/schedule/repository"
	seasonModel "github.com/tbrandt27/football-pick-em-sub003/internal/season/model"
	teamModel "github.com/tbrandt27/football-pick-em-sub003/internal/team/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/testutil"
	userModel "github.com/tbrandt27/football-pick-em-sub003/internal/user/model"
)

type fixture struct {
	svc    Service
	db     *gorm.DB
	season *seasonModel.Season
	pool   *poolModel.Pool
	teamA  *teamModel.Team
	teamB  *teamModel.Team
}

func newFixture(t *testing.T, mode string) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)

	f := &fixture{db: db}
	f.teamA = &teamModel.Team{Code: "SEA", Name: "Seahawks", City: "Seattle", Conference: "NFC", Division: "West"}
	f.teamB = &teamModel.Team{Code: "SF", Name: "49ers", City: "San Francisco", Conference: "NFC", Division: "West"}
	require.NoError(t, db.Create(f.teamA).Error)
	require.NoError(t, db.Create(f.teamB).Error)

	f.season = &seasonModel.Season{Label: "2025", IsCurrent: true}
	require.NoError(t, db.Create(f.season).Error)

	owner := f.user(t, "owner")
	f.pool = &poolModel.Pool{Name: "pool", Mode: mode, OwnerID: owner.ID, SeasonID: f.season.ID, IsActive: true}
	require.NoError(t, db.Create(f.pool).Error)
	require.NoError(t, db.Create(&poolModel.Participant{PoolID: f.pool.ID, UserID: owner.ID, Role: poolModel.RoleOwner}).Error)

	f.svc = New(pickRepository.New(db), poolRepository.New(db), scheduleRepository.New(db), zap.NewNop().Sugar())
	return f
}

func (f *fixture) user(t *testing.T, name string) *userModel.User {
	t.Helper()
	user := &userModel.User{Email: name + "@example.com", PasswordHash: "x", FirstName: name}
	require.NoError(t, f.db.Create(user).Error)
	return user
}

func (f *fixture) participant(t *testing.T, name string) *userModel.User {
	t.Helper()
	user := f.user(t, name)
	require.NoError(t, f.db.Create(&poolModel.Participant{PoolID: f.pool.ID, UserID: user.ID, Role: poolModel.RolePlayer}).Error)
	return user
}

func (f *fixture) game(t *testing.T, week, homeScore, awayScore int, status string) *scheduleModel.ScheduledGame {
	t.Helper()
	game := &scheduleModel.ScheduledGame{
		SeasonID:   f.season.ID,
		Week:       week,
		HomeTeamID: f.teamA.ID,
		AwayTeamID: f.teamB.ID,
		StartTime:  time.Now().Add(-3 * time.Hour),
		Status:     status,
		HomeScore:  homeScore,
		AwayScore:  awayScore,
		ExternalID: fmt.Sprintf("g-%d-%d-%d", week, homeScore, awayScore),
	}
	require.NoError(t, f.db.Create(game).Error)
	return game
}

func (f *fixture) pick(t *testing.T, user *userModel.User, game *scheduleModel.ScheduledGame, teamID uint) *pickModel.Pick {
	t.Helper()
	pick := &pickModel.Pick{
		UserID:   user.ID,
		PoolID:   f.pool.ID,
		SeasonID: f.season.ID,
		Week:     game.Week,
		GameID:   game.ID,
		TeamID:   teamID,
	}
	require.NoError(t, f.db.Create(pick).Error)
	return pick
}

func TestScoreResolvesPicksAgainstFinalGames(t *testing.T) {
	f := newFixture(t, poolModel.ModeWeekly)
	winner := f.participant(t, "winner")
	loser := f.participant(t, "loser")

	game := f.game(t, 1, 24, 17, scheduleModel.StatusFinal)
	winnerPick := f.pick(t, winner, game, f.teamA.ID)
	loserPick := f.pick(t, loser, game, f.teamB.ID)

	result, err := f.svc.Score(context.Background(), f.season.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.GamesFinal)
	assert.Equal(t, 2, result.PicksScored)

	var got pickModel.Pick
	require.NoError(t, f.db.First(&got, winnerPick.ID).Error)
	require.NotNil(t, got.Correct)
	assert.True(t, *got.Correct)

	got = pickModel.Pick{}
	require.NoError(t, f.db.First(&got, loserPick.ID).Error)
	require.NotNil(t, got.Correct)
	assert.False(t, *got.Correct)
}

func TestScoreIsIdempotent(t *testing.T) {
	f := newFixture(t, poolModel.ModeWeekly)
	user := f.participant(t, "u1")
	game := f.game(t, 1, 24, 17, scheduleModel.StatusFinal)
	f.pick(t, user, game, f.teamA.ID)

	first, err := f.svc.Score(context.Background(), f.season.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, first.PicksScored)

	// A second pass over unchanged data touches nothing.
	second, err := f.svc.Score(context.Background(), f.season.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, second.GamesFinal)
	assert.Equal(t, 0, second.PicksScored)
}

func TestScoreSkipsUnfinishedGames(t *testing.T) {
	f := newFixture(t, poolModel.ModeWeekly)
	user := f.participant(t, "u1")
	game := f.game(t, 1, 10, 7, scheduleModel.StatusInProgress)
	pick := f.pick(t, user, game, f.teamA.ID)

	result, err := f.svc.Score(context.Background(), f.season.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, result.GamesFinal)
	assert.Equal(t, 0, result.PicksScored)

	var got pickModel.Pick
	require.NoError(t, f.db.First(&got, pick.ID).Error)
	assert.Nil(t, got.Correct)
}

func TestScoreTieLeavesPicksUnresolved(t *testing.T) {
	f := newFixture(t, poolModel.ModeWeekly)
	user := f.participant(t, "u1")
	game := f.game(t, 1, 20, 20, scheduleModel.StatusFinal)
	pick := f.pick(t, user, game, f.teamA.ID)

	result, err := f.svc.Score(context.Background(), f.season.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.GamesFinal)
	assert.Equal(t, 0, result.PicksScored)

	var got pickModel.Pick
	require.NoError(t, f.db.First(&got, pick.ID).Error)
	assert.Nil(t, got.Correct)
}

func TestStandingsOrderingAndPercentages(t *testing.T) {
	f := newFixture(t, poolModel.ModeWeekly)
	ctx := context.Background()

	// alice 5/8, bob 5/6, carol 3/8, dave 0/0.
	alice := f.participant(t, "alice")
	bob := f.participant(t, "bob")
	carol := f.participant(t, "carol")
	f.participant(t, "dave")

	records := []struct {
		user    *userModel.User
		total   int
		correct int
	}{
		{alice, 8, 5},
		{bob, 6, 5},
		{carol, 8, 3},
	}

	week := 1
	for _, rec := range records {
		for i := 0; i < rec.total; i++ {
			game := f.game(t, week, 24, 17, scheduleModel.StatusFinal)
			teamID := f.teamB.ID
			if i < rec.correct {
				teamID = f.teamA.ID
			}
			f.pick(t, rec.user, game, teamID)
			week++
		}
	}

	for w := 1; w < week; w++ {
		_, err := f.svc.Score(ctx, f.season.ID, w)
		require.NoError(t, err)
	}

	rows, err := f.svc.Standings(ctx, Caller{IsAdmin: true}, f.pool.ID, nil)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// bob ties alice on correct picks but leads on percentage.
	assert.Equal(t, bob.ID, rows[0].UserID)
	assert.InDelta(t, 83.33, rows[0].PickPercentage, 0.01)
	assert.Equal(t, alice.ID, rows[1].UserID)
	assert.InDelta(t, 62.5, rows[1].PickPercentage, 0.01)
	assert.Equal(t, carol.ID, rows[2].UserID)
	assert.Equal(t, 3, rows[2].CorrectPicks)

	// No picks means zero percent, not a division by zero.
	assert.Equal(t, 0, rows[3].TotalPicks)
	assert.Equal(t, 0.0, rows[3].PickPercentage)
}

func TestStandingsExcludesUnresolvedPicksUntilFinal(t *testing.T) {
	f := newFixture(t, poolModel.ModeWeekly)
	user := f.participant(t, "u1")

	pending := f.game(t, 1, 0, 0, scheduleModel.StatusScheduled)
	f.pick(t, user, pending, f.teamA.ID)

	rows, err := f.svc.Standings(context.Background(), Caller{IsAdmin: true}, f.pool.ID, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		if row.UserID == user.ID {
			assert.Equal(t, 0, row.TotalPicks)
		}
	}
}

func TestSurvivorEliminationOnlyFromResolvedIncorrectPicks(t *testing.T) {
	f := newFixture(t, poolModel.ModeSurvivor)
	ctx := context.Background()
	alive := f.participant(t, "alive")
	eliminated := f.participant(t, "eliminated")
	pending := f.participant(t, "pending")

	finalGame := f.game(t, 1, 24, 17, scheduleModel.StatusFinal)
	openGame := f.game(t, 2, 0, 0, scheduleModel.StatusScheduled)

	f.pick(t, alive, finalGame, f.teamA.ID)
	f.pick(t, eliminated, finalGame, f.teamB.ID)
	f.pick(t, pending, openGame, f.teamB.ID)

	_, err := f.svc.Score(ctx, f.season.ID, 1)
	require.NoError(t, err)

	rows, err := f.svc.Standings(ctx, Caller{IsAdmin: true}, f.pool.ID, nil)
	require.NoError(t, err)

	status := map[uint]bool{}
	for _, row := range rows {
		require.NotNil(t, row.Alive)
		status[row.UserID] = *row.Alive
	}
	assert.True(t, status[alive.ID])
	assert.False(t, status[eliminated.ID])
	// An unresolved pick never eliminates anyone.
	assert.True(t, status[pending.ID])
}

func TestStandingsRequiresParticipant(t *testing.T) {
	f := newFixture(t, poolModel.ModeWeekly)
	stranger := f.user(t, "stranger")

	_, err := f.svc.Standings(context.Background(), Caller{UserID: stranger.ID}, f.pool.ID, nil)
	assert.ErrorIs(t, err, poolModel.ErrNotParticipant)
}

func TestTeamPickShares(t *testing.T) {
	f := newFixture(t, poolModel.ModeWeekly)
	u1 := f.participant(t, "u1")
	u2 := f.participant(t, "u2")
	u3 := f.participant(t, "u3")
	game := f.game(t, 1, 0, 0, scheduleModel.StatusScheduled)

	f.pick(t, u1, game, f.teamA.ID)
	f.pick(t, u2, game, f.teamA.ID)
	f.pick(t, u3, game, f.teamB.ID)

	shares, err := f.svc.TeamPickShares(context.Background(), Caller{IsAdmin: true}, f.pool.ID, 1)
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, f.teamA.ID, shares[0].TeamID)
	assert.Equal(t, 2, shares[0].Picks)
	assert.InDelta(t, 66.66, shares[0].Percentage, 0.01)
	assert.InDelta(t, 33.33, shares[1].Percentage, 0.01)
}
