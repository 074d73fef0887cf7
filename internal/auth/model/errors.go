package model

import "errors"

var (
	// ErrInvalidCredentials is returned when email/password do not match an account.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
