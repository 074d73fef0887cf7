// Package model contains result types for scoring and standings.
package model

// ScoreResult reports what a scoring pass touched.
type ScoreResult struct {
	GamesFinal  int `json:"games_final"`
	PicksScored int `json:"picks_scored"`
}

// Row is one participant's line in the standings.
type Row struct {
	UserID         uint    `json:"user_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	TotalPicks     int     `json:"total_picks"`
	CorrectPicks   int     `json:"correct_picks"`
	PickPercentage float64 `json:"pick_percentage"`

	// Alive is set only for survivor pools.
	Alive *bool `json:"alive,omitempty"`
}

// TeamPickShare reports how often a team was picked in a pool week.
type TeamPickShare struct {
	TeamID     uint    `json:"team_id"`
	Picks      int     `json:"picks"`
	Percentage float64 `json:"percentage"`
}
