// Package model contains domain models for the pick module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Pick represents one user's pick in a pool. Correct stays nil until the
// game resolves; a tie leaves it nil for good.
type Pick struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_picks_user_pool_game" json:"user_id"`
	PoolID     uint      `gorm:"not null;uniqueIndex:idx_picks_user_pool_game" json:"pool_id"`
	SeasonID   uint      `gorm:"not null" json:"season_id"`
	Week       int       `gorm:"not null" json:"week"`
	GameID     uint      `gorm:"not null;uniqueIndex:idx_picks_user_pool_game" json:"game_id"`
	TeamID     uint      `gorm:"not null" json:"team_id"`
	Tiebreaker *int      `json:"tiebreaker,omitempty"`
	Correct    *bool     `json:"correct,omitempty"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// TableName specifies the table name for the Pick model.
func (Pick) TableName() string {
	return "picks"
}

// BeforeUpdate sets the updated timestamp.
func (p *Pick) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}

// IsResolved reports whether the pick has been scored.
func (p *Pick) IsResolved() bool {
	return p.Correct != nil
}
