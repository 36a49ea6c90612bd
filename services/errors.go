package services

import "errors"

// Common service-level errors
var (
	// Auth errors
	ErrEmptyCredentials = errors.New("username or password empty")
	ErrWrongPassword    = errors.New("wrong password for existing user")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrUnauthorized     = errors.New("unauthorized access")

	// Note errors
	ErrNoteNotFound = errors.New("note not found")
	ErrNoSearchTerm = errors.New("no previous search")
	ErrInvalidField = errors.New("invalid search field")
)
