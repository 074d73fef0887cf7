// Package provider integrates the external schedule and score feed.
package provider

import (
	"context"
	"time"
)

// GameScore is one game as reported by the score feed.
type GameScore struct {
	ExternalID string    `json:"id"`
	HomeAbbr   string    `json:"home_team"`
	AwayAbbr   string    `json:"away_team"`
	HomeScore  int       `json:"home_score"`
	AwayScore  int       `json:"away_score"`
	Status     string    `json:"status"`
	StartTime  time.Time `json:"start_time"`
}

// Provider fetches games for a season week from an external feed.
type Provider interface {
	GamesBySeasonWeek(ctx context.Context, seasonLabel string, week int) ([]GameScore, error)
}
