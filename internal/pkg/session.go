package pkg

import "github.com/google/uuid"

// GenerateNewSessionID returns a random id for a game session.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
