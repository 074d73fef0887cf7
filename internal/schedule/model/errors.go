package model

import "errors"

var (
	// ErrGameNotFound is returned when a scheduled game does not exist.
	ErrGameNotFound = errors.New("game not found")
)
