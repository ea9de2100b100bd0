package match

import (
	"errors"

	"github.com/KirkDiggler/deuce/internal/models"
)

// ErrMatchNotFound is returned when a match is not found
var ErrMatchNotFound = errors.New("match not found")

// SaveMatchInput contains the match to persist
type SaveMatchInput struct {
	Match *models.Match
}

// GetMatchInput identifies a match by ID
type GetMatchInput struct {
	MatchID string
}

// GetMatchByChannelInput identifies a match by channel
type GetMatchByChannelInput struct {
	ChannelID string
}

// DeleteMatchInput identifies the match to delete
type DeleteMatchInput struct {
	MatchID string
}

// GetActiveMatchesInput is reserved for filtering
type GetActiveMatchesInput struct{}

// GetActiveMatchesOutput contains the in-progress matches
type GetActiveMatchesOutput struct {
	Matches []*models.Match
}
