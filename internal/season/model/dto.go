package model

// CreateSeasonRequest represents the request to create a season.
type CreateSeasonRequest struct {
	Label       string `json:"label" binding:"required"`
	MakeCurrent bool   `json:"make_current"`
}
