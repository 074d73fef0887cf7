package model

// CreatePoolRequest represents the payload for pool creation.
type CreatePoolRequest struct {
	Name     string `json:"name" binding:"required"`
	Mode     string `json:"mode" binding:"required,oneof=weekly survivor"`
	SeasonID uint   `json:"season_id" binding:"required"`
}

// UpdatePoolRequest represents the payload for pool updates.
// Nil fields are left unchanged.
type UpdatePoolRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

// AddParticipantRequest represents the payload for adding a pool member.
type AddParticipantRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}
