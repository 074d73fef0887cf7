package model

import "errors"

var (
	// ErrPoolNotFound is returned when a pool does not exist.
	ErrPoolNotFound = errors.New("pool not found")

	// ErrNotParticipant is returned when the caller is not a member of the pool.
	ErrNotParticipant = errors.New("not a pool participant")

	// ErrNotOwner is returned when a mutation requires pool ownership.
	ErrNotOwner = errors.New("not the pool owner")

	// ErrAlreadyParticipant is returned when adding a user who is already a member.
	ErrAlreadyParticipant = errors.New("user is already a participant")

	// ErrParticipantNotFound is returned when a participant row does not exist.
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrOwnerIrremovable is returned when removing the owner's own participant row.
	ErrOwnerIrremovable = errors.New("pool owner cannot be removed")
)
