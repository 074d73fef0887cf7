package model

// SubmitPickRequest represents the payload for creating or updating a pick.
type SubmitPickRequest struct {
	PoolID     uint `json:"pool_id" binding:"required"`
	GameID     uint `json:"game_id" binding:"required"`
	TeamID     uint `json:"team_id" binding:"required"`
	Tiebreaker *int `json:"tiebreaker"`
}

// SubmitPickResponse reports the stored pick and whether it replaced an
// earlier one.
type SubmitPickResponse struct {
	Pick    *Pick `json:"pick"`
	Created bool  `json:"created"`
}

// ListFilter narrows pick listings. Nil fields match everything.
type ListFilter struct {
	PoolID   uint
	SeasonID *uint
	Week     *int
	UserID   *uint
}
