// Package service provides schedule listing and provider synchronization.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/provider"
	scheduleModel "github.com/tbrandt27/football-pick-em-sub003/internal/schedule/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/schedule/repository"
	seasonRepository "github.com/tbrandt27/football-pick-em-sub003/internal/season/repository"
	standingsModel "github.com/tbrandt27/football-pick-em-sub003/internal/standings/model"
	teamRepository "github.com/tbrandt27/football-pick-em-sub003/internal/team/repository"
)

// Scorer resolves picks after a score refresh. Implemented by the
// standings service.
type Scorer interface {
	Score(ctx context.Context, seasonID uint, week int) (*standingsModel.ScoreResult, error)
}

// SyncResult reports what one synchronization run did.
type SyncResult struct {
	GamesUpserted int `json:"games_upserted"`
	GamesFinal    int `json:"games_final"`
	PicksScored   int `json:"picks_scored"`
}

// Service defines schedule business logic operations.
type Service interface {
	// ListGames returns a season's games, narrowed to one week when week
	// is non-nil.
	ListGames(ctx context.Context, seasonID uint, week *int) ([]scheduleModel.ScheduledGame, error)

	// GetGame finds a game by id.
	GetGame(ctx context.Context, id uint) (*scheduleModel.ScheduledGame, error)

	// Sync pulls scores from the provider, upserts the games and runs the
	// scoring pass.
	Sync(ctx context.Context, seasonID uint, week int) (*SyncResult, error)
}

type service struct {
	repo     repository.Repository
	seasons  seasonRepository.Repository
	teams    teamRepository.Repository
	provider provider.Provider
	scorer   Scorer
	logger   *zap.SugaredLogger
}

// New creates a new schedule service instance.
func New(repo repository.Repository, seasons seasonRepository.Repository, teams teamRepository.Repository, p provider.Provider, scorer Scorer, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, seasons: seasons, teams: teams, provider: p, scorer: scorer, logger: logger}
}

// ListGames returns a season's games.
func (s *service) ListGames(ctx context.Context, seasonID uint, week *int) ([]scheduleModel.ScheduledGame, error) {
	if week != nil {
		return s.repo.ListBySeasonWeek(ctx, seasonID, *week)
	}
	return s.repo.ListBySeason(ctx, seasonID)
}

// GetGame finds a game by id.
func (s *service) GetGame(ctx context.Context, id uint) (*scheduleModel.ScheduledGame, error) {
	return s.repo.GetByID(ctx, id)
}

// Sync pulls scores from the provider, upserts the games and runs the
// scoring pass.
func (s *service) Sync(ctx context.Context, seasonID uint, week int) (*SyncResult, error) {
	season, err := s.seasons.GetByID(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	scores, err := s.provider.GamesBySeasonWeek(ctx, season.Label, week)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{}
	now := time.Now()
	for _, score := range scores {
		home, homeErr := s.teams.GetByCode(ctx, score.HomeAbbr)
		if homeErr != nil {
			s.logger.Warnw("skipping game with unknown home team", "external_id", score.ExternalID, "team", score.HomeAbbr)
			continue
		}
		away, awayErr := s.teams.GetByCode(ctx, score.AwayAbbr)
		if awayErr != nil {
			s.logger.Warnw("skipping game with unknown away team", "external_id", score.ExternalID, "team", score.AwayAbbr)
			continue
		}

		refreshedAt := now
		game := &scheduleModel.ScheduledGame{
			SeasonID:         seasonID,
			Week:             week,
			HomeTeamID:       home.ID,
			AwayTeamID:       away.ID,
			StartTime:        score.StartTime,
			Status:           score.Status,
			HomeScore:        score.HomeScore,
			AwayScore:        score.AwayScore,
			ExternalID:       score.ExternalID,
			ScoreRefreshedAt: &refreshedAt,
		}
		if err := s.repo.Upsert(ctx, game); err != nil {
			s.logger.Errorw("failed to upsert game", "external_id", score.ExternalID, "error", err)
			continue
		}
		result.GamesUpserted++
	}

	scoreResult, err := s.scorer.Score(ctx, seasonID, week)
	if err != nil {
		return nil, err
	}
	result.GamesFinal = scoreResult.GamesFinal
	result.PicksScored = scoreResult.PicksScored

	s.logger.Infow("schedule synchronized",
		"season_id", seasonID, "week", week,
		"games_upserted", result.GamesUpserted,
		"games_final", result.GamesFinal,
		"picks_scored", result.PicksScored)
	return result, nil
}
