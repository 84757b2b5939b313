package model

import "errors"

// Common errors used across the application
var (
	// Credential store errors
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("username already exists")

	// Round errors
	ErrUnknownChoice = errors.New("unknown choice")
	ErrNotLocked     = errors.New("player 1 has not locked a choice")
	ErrChoiceLocked  = errors.New("choice is already locked for this round")

	// Match errors
	ErrMatchComplete = errors.New("match is already complete")
)
