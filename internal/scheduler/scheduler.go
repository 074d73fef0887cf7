// Package scheduler runs periodic score synchronization.
package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/config"
	scheduleRepository "github.com/tbrandt27/football-pick-em-sub003/internal/schedule/repository"
	scheduleService "github.com/tbrandt27/football-pick-em-sub003/internal/schedule/service"
	seasonRepository "github.com/tbrandt27/football-pick-em-sub003/internal/season/repository"
)

// Scheduler ticks on an interval and synchronizes scores for the current
// season week while games are in their configured window.
type Scheduler struct {
	cfg     config.SchedulerConfig
	sync    scheduleService.Service
	seasons seasonRepository.Repository
	games   scheduleRepository.Repository
	logger  *zap.SugaredLogger

	running  atomic.Bool
	inFlight atomic.Bool
	stop     chan struct{}
	done     chan struct{}
}

// New creates a scheduler. It does not start ticking until Start is called.
func New(cfg config.SchedulerConfig, sync scheduleService.Service, seasons seasonRepository.Repository, games scheduleRepository.Repository, logger *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		cfg:     cfg,
		sync:    sync,
		seasons: seasons,
		games:   games,
		logger:  logger,
	}
}

// Start launches the ticking goroutine. Calling Start on a running
// scheduler is a no-op.
func (s *Scheduler) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()

		s.logger.Infow("scheduler started", "interval", s.cfg.Interval)
		for {
			select {
			case <-s.stop:
				return
			case now := <-ticker.C:
				s.tick(now)
			}
		}
	}()
}

// Stop halts the ticking goroutine and waits for it to exit. An in-flight
// sync finishes on its own.
func (s *Scheduler) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	close(s.stop)
	<-s.done
	s.logger.Infow("scheduler stopped")
}

// Running reports whether the scheduler is started.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

func (s *Scheduler) tick(now time.Time) {
	if !s.cfg.InWindow(now) {
		return
	}
	// A slow sync must not pile up behind the ticker.
	if !s.inFlight.CompareAndSwap(false, true) {
		s.logger.Warnw("skipping tick, previous sync still running")
		return
	}
	defer s.inFlight.Store(false)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Interval)
	defer cancel()

	season, err := s.seasons.GetCurrent(ctx)
	if err != nil {
		s.logger.Warnw("skipping tick, no current season", "error", err)
		return
	}

	week, ok, err := s.currentWeek(ctx, season.ID)
	if err != nil {
		s.logger.Errorw("skipping tick, failed to determine week", "error", err)
		return
	}
	if !ok {
		return
	}

	if _, err := s.sync.Sync(ctx, season.ID, week); err != nil {
		s.logger.Errorw("scheduled sync failed", "season_id", season.ID, "week", week, "error", err)
	}
}

// currentWeek returns the lowest week with an unfinished game, or the last
// scheduled week once everything is final.
func (s *Scheduler) currentWeek(ctx context.Context, seasonID uint) (int, bool, error) {
	games, err := s.games.ListBySeason(ctx, seasonID)
	if err != nil {
		return 0, false, err
	}
	if len(games) == 0 {
		return 0, false, nil
	}

	lastWeek := games[0].Week
	for _, game := range games {
		if game.Week > lastWeek {
			lastWeek = game.Week
		}
		if !game.IsFinal() {
			return game.Week, true, nil
		}
	}
	return lastWeek, true, nil
}
