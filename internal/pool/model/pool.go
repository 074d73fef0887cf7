// Package model contains domain models for the pool module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Pool modes.
const (
	ModeWeekly   = "weekly"
	ModeSurvivor = "survivor"
)

// Participant roles.
const (
	RoleOwner  = "owner"
	RolePlayer = "player"
)

// Pool represents a pick'em pool for one season.
type Pool struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Mode      string    `gorm:"not null" json:"mode"`
	OwnerID   uint      `gorm:"not null" json:"owner_id"`
	SeasonID  uint      `gorm:"not null" json:"season_id"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the table name for the Pool model.
func (Pool) TableName() string {
	return "pools"
}

// BeforeUpdate sets the updated timestamp.
func (p *Pool) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}

// IsSurvivor reports whether the pool uses survivor rules.
func (p *Pool) IsSurvivor() bool {
	return p.Mode == ModeSurvivor
}

// Participant represents one user's membership in a pool.
type Participant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PoolID    uint      `gorm:"not null;uniqueIndex:idx_participants_pool_user" json:"pool_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_participants_pool_user" json:"user_id"`
	Role      string    `gorm:"not null;default:player" json:"role"`
	CreatedAt time.Time `json:"-"`

	// Filled from the users table for listing.
	FirstName string `gorm:"-" json:"first_name,omitempty"`
	LastName  string `gorm:"-" json:"last_name,omitempty"`
}

// TableName specifies the table name for the Participant model.
func (Participant) TableName() string {
	return "participants"
}
