package uid

import "github.com/google/uuid"

// GenerateGameID returns a random ID for a history record.
func GenerateGameID() string {
	return uuid.NewString()
}
