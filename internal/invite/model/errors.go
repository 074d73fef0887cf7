package model

import "errors"

var (
	// ErrInvitationNotFound is returned when an invitation does not exist.
	ErrInvitationNotFound = errors.New("invitation not found")

	// ErrInvitationNotUsable is returned for expired or non-pending invitations.
	ErrInvitationNotUsable = errors.New("invitation is expired or no longer pending")
)
