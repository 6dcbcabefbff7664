package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// IsID reports whether s is a well-formed identifier from GenerateID
func IsID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
