// Package model contains domain models for the schedule module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Game status values.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusFinal      = "final"
)

// ScheduledGame represents one game on the season schedule, kept in sync
// with the external score provider.
type ScheduledGame struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	SeasonID         uint       `gorm:"not null;index:idx_scheduled_games_season_week" json:"season_id"`
	Week             int        `gorm:"not null;index:idx_scheduled_games_season_week" json:"week"`
	HomeTeamID       uint       `gorm:"not null" json:"home_team_id"`
	AwayTeamID       uint       `gorm:"not null" json:"away_team_id"`
	StartTime        time.Time  `gorm:"not null" json:"start_time"`
	Status           string     `gorm:"not null;default:scheduled" json:"status"`
	HomeScore        int        `gorm:"not null;default:0" json:"home_score"`
	AwayScore        int        `gorm:"not null;default:0" json:"away_score"`
	ExternalID       string     `gorm:"uniqueIndex;not null" json:"external_id"`
	ScoreRefreshedAt *time.Time `json:"score_refreshed_at,omitempty"`
	CreatedAt        time.Time  `json:"-"`
	UpdatedAt        time.Time  `json:"-"`
}

// TableName specifies the table name for the ScheduledGame model.
func (ScheduledGame) TableName() string {
	return "scheduled_games"
}

// BeforeUpdate sets the updated timestamp.
func (g *ScheduledGame) BeforeUpdate(tx *gorm.DB) error {
	g.UpdatedAt = time.Now()
	return nil
}

// IsFinal reports whether the game is score-eligible.
func (g *ScheduledGame) IsFinal() bool {
	return g.Status == StatusFinal
}

// Winner returns the winning team id, or nil on a tie or a non-final game.
func (g *ScheduledGame) Winner() *uint {
	if !g.IsFinal() || g.HomeScore == g.AwayScore {
		return nil
	}
	if g.HomeScore > g.AwayScore {
		return &g.HomeTeamID
	}
	return &g.AwayTeamID
}

// HasTeam reports whether the team plays in this game.
func (g *ScheduledGame) HasTeam(teamID uint) bool {
	return g.HomeTeamID == teamID || g.AwayTeamID == teamID
}
