// Package errs holds the sentinel errors shared across repositories,
// services and handlers.
package errs

import "errors"

var (
	// ErrNotFound covers both "does not exist" and "exists but belongs to
	// another user" — callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrNoteImmutable is returned when a mutation targets a note in the bin.
	// Deleted notes only accept restore and permanent delete.
	ErrNoteImmutable = errors.New("note is deleted and cannot be modified")

	ErrValidation  = errors.New("invalid input")
	ErrRateLimited = errors.New("too many requests")

	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenInvalid       = errors.New("token is invalid or expired")
)
