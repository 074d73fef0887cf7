// Command server runs the pick'em API.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authRouter "github.com/tbrandt27/football-pick-em-sub003/internal/auth/router"
	authService "github.com/tbrandt27/football-pick-em-sub003/internal/auth/service"
	appConfig "github.com/tbrandt27/football-pick-em-sub003/internal/config"
	"github.com/tbrandt27/football-pick-em-sub003/internal/database"
	"github.com/tbrandt27/football-pick-em-sub003/internal/database/migrate"
	healthHandler "github.com/tbrandt27/football-pick-em-sub003/internal/health/handler"
	healthRouter "github.com/tbrandt27/football-pick-em-sub003/internal/health/router"
	inviteRepository "github.com/tbrandt27/football-pick-em-sub003/internal/invite/repository"
	inviteRouter "github.com/tbrandt27/football-pick-em-sub003/internal/invite/router"
	inviteService "github.com/tbrandt27/football-pick-em-sub003/internal/invite/service"
	"github.com/tbrandt27/football-pick-em-sub003/internal/kvstore"
	"github.com/tbrandt27/football-pick-em-sub003/internal/middleware"
	pickRepository "github.com/tbrandt27/football-pick-em-sub003/internal/pick/repository"
	pickRouter "github.com/tbrandt27/football-pick-em-sub003/internal/pick/router"
	pickService "github.com/tbrandt27/football-pick-em-sub003/internal/pick/service"
	poolRepository "github.com/tbrandt27/football-pick-em-sub003/internal/pool/repository"
	poolRouter "github.com/tbrandt27/football-pick-em-sub003/internal/pool/router"
	poolService "github.com/tbrandt27/football-pick-em-sub003/internal/pool/service"
	"github.com/tbrandt27/football-pick-em-sub003/internal/provider"
	scheduleRepository "github.com/tbrandt27/football-pick-em-sub003/internal/schedule/repository"
	scheduleRouter "github.com/tbrandt27/football-pick-em-sub003/internal/schedule/router"
	scheduleService "github.com/tbrandt27/football-pick-em-sub003/internal/schedule/service"
	"github.com/tbrandt27/football-pick-em-sub003/internal/scheduler"
	seasonRepository "github.com/tbrandt27/football-pick-em-sub003/internal/season/repository"
	seasonRouter "github.com/tbrandt27/football-pick-em-sub003/internal/season/router"
	seasonService "github.com/tbrandt27/football-pick-em-sub003/internal/season/service"
	standingsRouter "github.com/tbrandt27/football-pick-em-sub003/internal/standings/router"
	standingsService "github.com/tbrandt27/football-pick-em-sub003/internal/standings/service"
	teamRepository "github.com/tbrandt27/football-pick-em-sub003/internal/team/repository"
	teamRouter "github.com/tbrandt27/football-pick-em-sub003/internal/team/router"
	teamService "github.com/tbrandt27/football-pick-em-sub003/internal/team/service"
	userRepository "github.com/tbrandt27/football-pick-em-sub003/internal/user/repository"
	userRouter "github.com/tbrandt27/football-pick-em-sub003/internal/user/router"
	userService "github.com/tbrandt27/football-pick-em-sub003/internal/user/service"
	"github.com/tbrandt27/football-pick-em-sub003/pkg/logger"
)

// repositories is the backend-specific repository set. The concrete
// implementations are chosen once at startup and injected everywhere.
type repositories struct {
	teams     teamRepository.Repository
	seasons   seasonRepository.Repository
	users     userRepository.Repository
	games     scheduleRepository.Repository
	pools     poolRepository.Repository
	invites   inviteRepository.Repository
	picks     pickRepository.Repository
	healthSrc healthHandler.Pinger
	close     func() error
}

func main() {
	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	repos, err := buildRepositories(cfg, appLogger)
	if err != nil {
		appLogger.Fatalw("failed to initialize storage", "backend", cfg.DataBackend, "error", err)
	}
	defer repos.close()

	// Teams are static reference data; both backends seed from the same table.
	teamSvc := teamService.New(repos.teams, appLogger)
	if err := teamSvc.EnsureSeeded(context.Background()); err != nil {
		appLogger.Fatalw("failed to seed teams", "error", err)
	}

	seasonSvc := seasonService.New(repos.seasons, appLogger)
	userSvc := userService.New(repos.users, repos.teams, appLogger)
	inviteSvc := inviteService.New(repos.invites, repos.pools, appLogger)
	authSvc := authService.New(repos.users, inviteSvc, cfg.Auth, appLogger)
	poolSvc := poolService.New(repos.pools, repos.seasons, repos.users, repos.picks, appLogger)
	pickSvc := pickService.New(repos.picks, repos.pools, repos.games, appLogger)
	standingsSvc := standingsService.New(repos.picks, repos.pools, repos.games, appLogger)
	scoreProvider := provider.NewHTTPFromEnv()
	scheduleSvc := scheduleService.New(repos.games, repos.seasons, repos.teams, scoreProvider, standingsSvc, appLogger)

	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	engine.Use(middleware.Logger(appLogger))
	engine.Use(middleware.Recovery(appLogger))
	engine.Use(middleware.CORS())

	api := engine.Group("/api/v1")
	healthRouter.RegisterRoutes(api, repos.healthSrc, appLogger)
	authRouter.RegisterRoutes(api, authSvc, appLogger)

	authed := api.Group("/")
	authed.Use(middleware.Auth(cfg.Auth.JWTSecret))
	teamRouter.RegisterRoutes(authed, teamSvc, appLogger)
	seasonRouter.RegisterRoutes(authed, seasonSvc, appLogger)
	userRouter.RegisterRoutes(authed, userSvc, appLogger)
	poolRouter.RegisterRoutes(authed, poolSvc, appLogger)
	inviteRouter.RegisterRoutes(authed, inviteSvc, appLogger)
	pickRouter.RegisterRoutes(authed, pickSvc, appLogger)
	standingsRouter.RegisterRoutes(authed, standingsSvc, appLogger)
	scheduleRouter.RegisterRoutes(authed, scheduleSvc, appLogger)

	var syncScheduler *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		syncScheduler = scheduler.New(cfg.Scheduler, scheduleSvc, repos.seasons, repos.games, appLogger)
		syncScheduler.Start()
	}

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Infow("server starting", "address", server.Addr, "backend", cfg.DataBackend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Infow("shutting down")
	if syncScheduler != nil {
		syncScheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Errorw("forced shutdown", "error", err)
	}
	appLogger.Infow("server stopped")
}

// buildRepositories connects the configured backend and constructs the
// repository set for it.
func buildRepositories(cfg appConfig.Config, appLogger *zap.SugaredLogger) (*repositories, error) {
	switch cfg.DataBackend {
	case appConfig.BackendRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		store, err := kvstore.New(ctx, kvstore.LoadConfigFromEnv())
		if err != nil {
			return nil, err
		}

		users := userRepository.NewKV(store)
		return &repositories{
			teams:     teamRepository.NewKV(store),
			seasons:   seasonRepository.NewKV(store),
			users:     users,
			games:     scheduleRepository.NewKV(store),
			pools:     poolRepository.NewKV(store, users),
			invites:   inviteRepository.NewKV(store),
			picks:     pickRepository.NewKV(store),
			healthSrc: store,
			close:     store.Close,
		}, nil

	default:
		db, err := database.New()
		if err != nil {
			return nil, err
		}
		if err := migrate.Migrate(db); err != nil {
			return nil, err
		}

		appLogger.Infow("database migrated")
		return &repositories{
			teams:   teamRepository.New(db),
			seasons: seasonRepository.New(db),
			users:   userRepository.New(db),
			games:   scheduleRepository.New(db),
			pools:   poolRepository.New(db),
			invites: inviteRepository.New(db),
			picks:   pickRepository.New(db),
			healthSrc: healthHandler.PingerFunc(func(ctx context.Context) error {
				return database.HealthCheck(ctx, db)
			}),
			close: func() error { return database.Close(db) },
		}, nil
	}
}
