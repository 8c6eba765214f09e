package utils

import "github.com/google/uuid"

// GenerateID returns a fresh opaque identifier for notes, tags and sessions.
func GenerateID() string {
	return uuid.New().String()
}
