// Package model provides domain models for the team module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Team represents static NFL team reference data.
// Matches the teams table schema.
type Team struct {
	ID             uint      `gorm:"primaryKey;column:id"                               json:"id"`
	Code           string    `gorm:"column:code;type:varchar(4);uniqueIndex;not null"   json:"code"`
	Name           string    `gorm:"column:name;type:varchar(64);not null"              json:"name"`
	City           string    `gorm:"column:city;type:varchar(64);not null"              json:"city"`
	Conference     string    `gorm:"column:conference;type:varchar(4);not null"         json:"conference"`
	Division       string    `gorm:"column:division;type:varchar(8);not null"           json:"division"`
	PrimaryColor   string    `gorm:"column:primary_color;type:varchar(8);not null"      json:"primary_color"`
	SecondaryColor string    `gorm:"column:secondary_color;type:varchar(8);not null"    json:"secondary_color"`
	LogoPath       string    `gorm:"column:logo_path;type:varchar(255);not null"        json:"logo_path"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"                         json:"-"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null"                         json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}
