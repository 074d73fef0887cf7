package model

// CreateInvitationRequest represents the payload for inviting a user to a pool.
type CreateInvitationRequest struct {
	Email string `json:"email" binding:"required,email"`
}
