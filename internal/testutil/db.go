// Package testutil provides shared helpers for repository and service tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	inviteModel "github.com/tbrandt27/football-pick-em-sub003/internal/invite/model"
	pickModel "github.com/tbrandt27/football-pick-em-sub003/internal/pick/model"
	poolModel "github.com/tbrandt27/football-pick-em-sub003/internal/pool/model"
	scheduleModel "github.com/tbrandt27/football-pick-em-sub003/internal/schedule/model"
	seasonModel "github.com/tbrandt27/football-pick-em-sub003/internal/season/model"
	teamModel "github.com/tbrandt27/football-pick-em-sub003/internal/team/model"
	userModel "github.com/tbrandt27/football-pick-em-sub003/internal/user/model"
)

// NewTestDB opens a fresh in-memory sqlite database with the full schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// An in-memory database lives and dies with its connection; pin the
	// pool to one so every query sees the same database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&teamModel.Team{},
		&userModel.User{},
		&seasonModel.Season{},
		&scheduleModel.ScheduledGame{},
		&poolModel.Pool{},
		&poolModel.Participant{},
		&pickModel.Pick{},
		&inviteModel.Invitation{},
	)
	require.NoError(t, err)

	return db
}
