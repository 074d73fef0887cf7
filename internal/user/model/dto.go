package model

// UpdateProfileRequest represents the payload for profile updates.
// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	FavoriteTeamID *uint   `json:"favorite_team_id"`
}

// SetAdminRequest represents the payload for granting or revoking admin rights.
type SetAdminRequest struct {
	IsAdmin bool `json:"is_admin"`
}
