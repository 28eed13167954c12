package uid

import "github.com/google/uuid"

// NewRoundID returns a random identifier for one round of play.
func NewRoundID() string {
	return uuid.NewString()
}

// NewSessionID identifies a whole session of rounds.
func NewSessionID() string {
	return uuid.NewString()
}
