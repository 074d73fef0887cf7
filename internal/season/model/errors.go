package model

import "errors"

var (
	// ErrSeasonExists indicates that a season with the given label already exists.
	ErrSeasonExists = errors.New("season already exists")
	// ErrSeasonNotFound indicates that the requested season does not exist.
	ErrSeasonNotFound = errors.New("season not found")
	// ErrNoCurrentSeason indicates that no season is marked current.
	ErrNoCurrentSeason = errors.New("no current season")
	// ErrInvalidLabel indicates that the provided season label is invalid (e.g. empty).
	ErrInvalidLabel = errors.New("invalid season label")
)
