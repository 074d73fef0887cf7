// Package service provides business logic layer for the pick module.
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	pickModel "github.com/tbrandt27/football-pick-em-sub003/internal/pick/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/pick/repository"
	poolModel "github.com/tbrandt27/football-pick-em-sub003/internal/pool/model"
	poolRepository "github.com/tbrandt27/football-pick-em-sub003/internal/pool/repository"
	scheduleRepository "github.com/tbrandt27/football-pick-em-sub003/internal/schedule/repository"
)

// Caller identifies the acting user for authorization decisions.
type Caller struct {
	UserID  uint
	IsAdmin bool
}

// Service defines the interface for pick business logic operations.
type Service interface {
	// Submit creates or updates the caller's pick. The upsert key is
	// (user, pool, game) for weekly pools and (user, pool, week) for
	// survivor pools.
	Submit(ctx context.Context, caller Caller, req *pickModel.SubmitPickRequest) (*pickModel.SubmitPickResponse, error)

	// Delete removes a pick before kickoff; pick owner or admin only.
	Delete(ctx context.Context, caller Caller, pickID uint) error

	// List returns picks for a pool; caller must be a participant.
	List(ctx context.Context, caller Caller, filter pickModel.ListFilter) ([]pickModel.Pick, error)

	// UsedTeams returns the team ids the user has consumed in a survivor
	// pool season outside the given week, regardless of outcome.
	UsedTeams(ctx context.Context, caller Caller, poolID, seasonID uint, currentWeek int) ([]uint, error)
}

type service struct {
	repo   repository.Repository
	pools  poolRepository.Repository
	games  scheduleRepository.Repository
	logger *zap.SugaredLogger
}

// New creates a new pick service instance.
func New(repo repository.Repository, pools poolRepository.Repository, games scheduleRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, pools: pools, games: games, logger: logger}
}

// Submit creates or updates the caller's pick.
func (s *service) Submit(ctx context.Context, caller Caller, req *pickModel.SubmitPickRequest) (*pickModel.SubmitPickResponse, error) {
	pool, err := s.pools.GetByID(ctx, req.PoolID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureParticipant(ctx, req.PoolID, caller.UserID); err != nil {
		return nil, err
	}

	game, err := s.games.GetByID(ctx, req.GameID)
	if err != nil {
		return nil, err
	}
	if !time.Now().Before(game.StartTime) {
		return nil, pickModel.ErrGameAlreadyStarted
	}
	if !game.HasTeam(req.TeamID) {
		return nil, pickModel.ErrTeamNotInGame
	}

	if pool.IsSurvivor() {
		if err := s.checkSurvivorTeam(ctx, caller.UserID, pool, game.SeasonID, game.Week, req.TeamID); err != nil {
			return nil, err
		}
		// One pick per week: moving the pick to a different game replaces
		// the earlier one.
		prior, getErr := s.repo.GetByUserPoolWeek(ctx, caller.UserID, req.PoolID, game.SeasonID, game.Week)
		if getErr != nil && !errors.Is(getErr, pickModel.ErrPickNotFound) {
			return nil, getErr
		}
		if prior != nil && prior.GameID != req.GameID {
			if delErr := s.repo.Delete(ctx, prior.ID); delErr != nil {
				return nil, delErr
			}
		}
	}

	existing, err := s.repo.GetByUserPoolGame(ctx, caller.UserID, req.PoolID, req.GameID)
	if err != nil && !errors.Is(err, pickModel.ErrPickNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.TeamID = req.TeamID
		existing.Tiebreaker = req.Tiebreaker
		existing.Correct = nil
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return &pickModel.SubmitPickResponse{Pick: existing, Created: false}, nil
	}

	pick := &pickModel.Pick{
		UserID:     caller.UserID,
		PoolID:     req.PoolID,
		SeasonID:   game.SeasonID,
		Week:       game.Week,
		GameID:     req.GameID,
		TeamID:     req.TeamID,
		Tiebreaker: req.Tiebreaker,
	}
	if err := s.repo.Create(ctx, pick); err != nil {
		return nil, err
	}
	return &pickModel.SubmitPickResponse{Pick: pick, Created: true}, nil
}

// checkSurvivorTeam rejects a team already consumed in another week of the
// same pool season, whether that pick is still pending or already correct.
func (s *service) checkSurvivorTeam(ctx context.Context, userID uint, pool *poolModel.Pool, seasonID uint, week int, teamID uint) error {
	picks, err := s.repo.ListByUserPoolSeason(ctx, userID, pool.ID, seasonID)
	if err != nil {
		return err
	}
	for _, pick := range picks {
		if pick.Week == week {
			continue
		}
		if pick.TeamID == teamID {
			return pickModel.ErrDuplicateSurvivorTeam
		}
	}
	return nil
}

// Delete removes a pick before kickoff; pick owner or admin only.
func (s *service) Delete(ctx context.Context, caller Caller, pickID uint) error {
	pick, err := s.repo.GetByID(ctx, pickID)
	if err != nil {
		return err
	}
	if !caller.IsAdmin && pick.UserID != caller.UserID {
		return poolModel.ErrNotOwner
	}

	game, err := s.games.GetByID(ctx, pick.GameID)
	if err != nil {
		return err
	}
	if !time.Now().Before(game.StartTime) {
		return pickModel.ErrGameAlreadyStarted
	}

	return s.repo.Delete(ctx, pickID)
}

// List returns picks for a pool; caller must be a participant.
func (s *service) List(ctx context.Context, caller Caller, filter pickModel.ListFilter) ([]pickModel.Pick, error) {
	if _, err := s.pools.GetByID(ctx, filter.PoolID); err != nil {
		return nil, err
	}
	if err := s.ensureParticipant(ctx, filter.PoolID, caller.UserID); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

// UsedTeams returns the team ids consumed outside the given week.
func (s *service) UsedTeams(ctx context.Context, caller Caller, poolID, seasonID uint, currentWeek int) ([]uint, error) {
	if _, err := s.pools.GetByID(ctx, poolID); err != nil {
		return nil, err
	}
	if err := s.ensureParticipant(ctx, poolID, caller.UserID); err != nil {
		return nil, err
	}

	picks, err := s.repo.ListByUserPoolSeason(ctx, caller.UserID, poolID, seasonID)
	if err != nil {
		return nil, err
	}

	used := make([]uint, 0, len(picks))
	seen := make(map[uint]bool)
	for _, pick := range picks {
		if pick.Week == currentWeek || seen[pick.TeamID] {
			continue
		}
		seen[pick.TeamID] = true
		used = append(used, pick.TeamID)
	}
	return used, nil
}

func (s *service) ensureParticipant(ctx context.Context, poolID, userID uint) error {
	_, err := s.pools.GetParticipant(ctx, poolID, userID)
	if err != nil {
		if errors.Is(err, poolModel.ErrParticipantNotFound) {
			return poolModel.ErrNotParticipant
		}
		return err
	}
	return nil
}
