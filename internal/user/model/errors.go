package model

import "errors"

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when registering with an email that is already in use.
	ErrEmailTaken = errors.New("email already registered")
)
