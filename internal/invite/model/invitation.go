// Package model contains domain models for the invite module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Invitation statuses.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusCancelled = "cancelled"
)

// Invitation represents a pending pool membership offer sent to an email
// address. The token is handed out-of-band and consumed at registration.
type Invitation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PoolID    uint      `gorm:"not null" json:"pool_id"`
	Email     string    `gorm:"not null" json:"email"`
	InviterID uint      `gorm:"not null" json:"inviter_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"token"`
	Status    string    `gorm:"not null;default:pending" json:"status"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the table name for the Invitation model.
func (Invitation) TableName() string {
	return "invitations"
}

// BeforeUpdate sets the updated timestamp.
func (i *Invitation) BeforeUpdate(tx *gorm.DB) error {
	i.UpdatedAt = time.Now()
	return nil
}

// IsUsable reports whether the invitation can still be accepted.
func (i *Invitation) IsUsable(now time.Time) bool {
	return i.Status == StatusPending && now.Before(i.ExpiresAt)
}
