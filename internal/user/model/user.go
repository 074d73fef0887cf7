// Package model contains domain models for the user module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account in the system.
type User struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	Email              string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string     `gorm:"not null" json:"-"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	FavoriteTeamID     *uint      `json:"favorite_team_id,omitempty"`
	IsAdmin            bool       `gorm:"default:false" json:"is_admin"`
	VerifyToken        *string    `json:"-"`
	VerifyTokenExpires *time.Time `json:"-"`
	ResetToken         *string    `json:"-"`
	ResetTokenExpires  *time.Time `json:"-"`
	LastLoginAt        *time.Time `json:"last_login_at,omitempty"`
	CreatedAt          time.Time  `json:"-"`
	UpdatedAt          time.Time  `json:"-"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate sets the updated timestamp.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
