// Package service implements the scoring pass and standings aggregation.
package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	pickModel "github.com/tbrandt27/football-pick-em-sub003/internal/pick/model"
	pickRepository "github.com/tbrandt27/football-pick-em-sub003/internal/pick/repository"
	poolModel "github.com/tbrandt27/football-pick-em-sub003/internal/pool/model"
	poolRepository "github.com/tbrandt27/football-pick-em-sub003/internal/pool/repository"
	scheduleModel "github.com/tbrandt27/football-pick-em-sub003/internal/schedule/model"
	scheduleRepository "github.com/tbrandt27/football-pick-em-sub003/internal/schedule/repository"
	standingsModel "github.com/tbrandt27/football-pick-em-sub003/internal/standings/model"
)

// Caller identifies the acting user for authorization decisions.
type Caller struct {
	UserID  uint
	IsAdmin bool
}

// Service defines scoring and standings operations.
type Service interface {
	// Score resolves picks against final games of a season week. It is a
	// pure function of the stored scores, so repeated runs converge.
	Score(ctx context.Context, seasonID uint, week int) (*standingsModel.ScoreResult, error)

	// Standings computes one row per participant, sorted by correct picks
	// then percentage. week narrows the window when non-nil.
	Standings(ctx context.Context, caller Caller, poolID uint, week *int) ([]standingsModel.Row, error)

	// TeamPickShares reports how the pool's picks distribute over teams
	// for one week.
	TeamPickShares(ctx context.Context, caller Caller, poolID uint, week int) ([]standingsModel.TeamPickShare, error)
}

type service struct {
	picks  pickRepository.Repository
	pools  poolRepository.Repository
	games  scheduleRepository.Repository
	logger *zap.SugaredLogger
}

// New creates a new standings service instance.
func New(picks pickRepository.Repository, pools poolRepository.Repository, games scheduleRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{picks: picks, pools: pools, games: games, logger: logger}
}

// Score resolves picks against final games of a season week.
func (s *service) Score(ctx context.Context, seasonID uint, week int) (*standingsModel.ScoreResult, error) {
	games, err := s.games.ListBySeasonWeek(ctx, seasonID, week)
	if err != nil {
		return nil, err
	}

	result := &standingsModel.ScoreResult{}
	for _, game := range games {
		if !game.IsFinal() {
			continue
		}
		result.GamesFinal++

		winner := game.Winner()
		picks, listErr := s.picks.ListByGame(ctx, game.ID)
		if listErr != nil {
			s.logger.Errorw("skipping game in scoring pass", "game_id", game.ID, "error", listErr)
			continue
		}

		for i := range picks {
			pick := &picks[i]
			var correct *bool
			if winner != nil {
				v := pick.TeamID == *winner
				correct = &v
			}
			if equalBoolPtr(pick.Correct, correct) {
				continue
			}
			pick.Correct = correct
			if updErr := s.picks.Update(ctx, pick); updErr != nil {
				s.logger.Errorw("skipping pick in scoring pass", "pick_id", pick.ID, "error", updErr)
				continue
			}
			result.PicksScored++
		}
	}
	return result, nil
}

func equalBoolPtr(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Standings computes one row per participant.
func (s *service) Standings(ctx context.Context, caller Caller, poolID uint, week *int) ([]standingsModel.Row, error) {
	pool, err := s.pools.GetByID(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureParticipant(ctx, caller, poolID); err != nil {
		return nil, err
	}

	participants, err := s.pools.ListParticipants(ctx, poolID)
	if err != nil {
		return nil, err
	}

	filter := pickModel.ListFilter{PoolID: poolID, SeasonID: &pool.SeasonID, Week: week}
	picks, err := s.picks.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	finalGames, err := s.finalGameSet(ctx, pool.SeasonID, week)
	if err != nil {
		return nil, err
	}

	type tally struct {
		total      int
		correct    int
		eliminated bool
	}
	tallies := make(map[uint]*tally, len(participants))
	for _, p := range participants {
		tallies[p.UserID] = &tally{}
	}

	for _, pick := range picks {
		t, ok := tallies[pick.UserID]
		if !ok {
			continue
		}
		// Unresolved picks only count once their game is final (ties).
		if pick.IsResolved() || finalGames[pick.GameID] {
			t.total++
		}
		if pick.Correct != nil && *pick.Correct {
			t.correct++
		}
		if pick.Correct != nil && !*pick.Correct {
			t.eliminated = true
		}
	}

	rows := make([]standingsModel.Row, 0, len(participants))
	for _, p := range participants {
		t := tallies[p.UserID]
		row := standingsModel.Row{
			UserID:       p.UserID,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			TotalPicks:   t.total,
			CorrectPicks: t.correct,
		}
		if t.total > 0 {
			row.PickPercentage = float64(t.correct) / float64(t.total) * 100
		}
		if pool.IsSurvivor() {
			alive := !t.eliminated
			row.Alive = &alive
		}
		rows = append(rows, row)
	}

	sortRows(rows)
	return rows, nil
}

// sortRows orders by correct picks, then percentage. The stable sort keeps
// participant join order for full ties.
func sortRows(rows []standingsModel.Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].CorrectPicks != rows[j].CorrectPicks {
			return rows[i].CorrectPicks > rows[j].CorrectPicks
		}
		return rows[i].PickPercentage > rows[j].PickPercentage
	})
}

// TeamPickShares reports how the pool's picks distribute over teams.
func (s *service) TeamPickShares(ctx context.Context, caller Caller, poolID uint, week int) ([]standingsModel.TeamPickShare, error) {
	pool, err := s.pools.GetByID(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureParticipant(ctx, caller, poolID); err != nil {
		return nil, err
	}

	filter := pickModel.ListFilter{PoolID: poolID, SeasonID: &pool.SeasonID, Week: &week}
	picks, err := s.picks.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int)
	order := make([]uint, 0)
	for _, pick := range picks {
		if counts[pick.TeamID] == 0 {
			order = append(order, pick.TeamID)
		}
		counts[pick.TeamID]++
	}

	shares := make([]standingsModel.TeamPickShare, 0, len(order))
	for _, teamID := range order {
		share := standingsModel.TeamPickShare{TeamID: teamID, Picks: counts[teamID]}
		if len(picks) > 0 {
			share.Percentage = float64(counts[teamID]) / float64(len(picks)) * 100
		}
		shares = append(shares, share)
	}
	return shares, nil
}

func (s *service) finalGameSet(ctx context.Context, seasonID uint, week *int) (map[uint]bool, error) {
	var games []scheduleModel.ScheduledGame
	var err error
	if week != nil {
		games, err = s.games.ListBySeasonWeek(ctx, seasonID, *week)
	} else {
		games, err = s.games.ListBySeason(ctx, seasonID)
	}
	if err != nil {
		return nil, err
	}

	final := make(map[uint]bool, len(games))
	for _, game := range games {
		if game.IsFinal() {
			final[game.ID] = true
		}
	}
	return final, nil
}

func (s *service) ensureParticipant(ctx context.Context, caller Caller, poolID uint) error {
	if caller.IsAdmin {
		return nil
	}
	_, err := s.pools.GetParticipant(ctx, poolID, caller.UserID)
	if err != nil {
		if errors.Is(err, poolModel.ErrParticipantNotFound) {
			return poolModel.ErrNotParticipant
		}
		return err
	}
	return nil
}
