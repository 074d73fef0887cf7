package model

import "errors"

var (
	// ErrPickNotFound is returned when a pick does not exist.
	ErrPickNotFound = errors.New("pick not found")

	// ErrGameAlreadyStarted is returned for submissions at or after kickoff.
	ErrGameAlreadyStarted = errors.New("game has already started")

	// ErrTeamNotInGame is returned when the chosen team does not play in the game.
	ErrTeamNotInGame = errors.New("team is not playing in this game")

	// ErrDuplicateSurvivorTeam is returned when a survivor pick reuses a team
	// already consumed in another week.
	ErrDuplicateSurvivorTeam = errors.New("team already used in this survivor pool")
)
