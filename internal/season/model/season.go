// Package model provides domain models and DTOs for the season module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Season represents an NFL season (e.g. "2025").
// Matches the seasons table schema. At most one season is current; the
// repository's SetCurrent enforces that atomically.
type Season struct {
	ID        uint      `gorm:"primaryKey;column:id"                              json:"id"`
	Label     string    `gorm:"column:label;type:varchar(16);uniqueIndex;not null" json:"label"`
	IsCurrent bool      `gorm:"column:is_current;type:boolean;not null;default:false" json:"is_current"`
	CreatedAt time.Time `gorm:"column:created_at;not null"                        json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"                        json:"-"`
}

// TableName specifies the table name for GORM.
func (Season) TableName() string {
	return "seasons"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (s *Season) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return nil
}
