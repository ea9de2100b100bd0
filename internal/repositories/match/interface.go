package match

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/deuce/internal/repositories/match Repository

import (
	"context"

	"github.com/KirkDiggler/deuce/internal/models"
)

// Repository defines the interface for live match persistence
type Repository interface {
	// SaveMatch persists a match and its channel mapping
	SaveMatch(ctx context.Context, input *SaveMatchInput) error

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error)

	// GetMatchByChannel retrieves the match tracked in a channel
	GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*models.Match, error)

	// DeleteMatch removes a match
	DeleteMatch(ctx context.Context, input *DeleteMatchInput) error

	// GetActiveMatches retrieves all in-progress matches
	GetActiveMatches(ctx context.Context, input *GetActiveMatchesInput) (*GetActiveMatchesOutput, error)
}
