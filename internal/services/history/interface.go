package history

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/deuce/internal/services/history Service

import "context"

// Service defines the operations on the completed match history
type Service interface {
	// SaveMatch stores a completed match at the front of the history
	SaveMatch(ctx context.Context, input *SaveMatchInput) (*SaveMatchOutput, error)

	// ListMatches returns the history, most recent first
	ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error)

	// GetMatch returns a single match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error)

	// DeleteMatch removes a match by ID
	DeleteMatch(ctx context.Context, input *DeleteMatchInput) error

	// GetPlayerStats aggregates a player's results across the history
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error)

	// GetPlayerProfile builds the profile view of a player
	GetPlayerProfile(ctx context.Context, input *GetPlayerProfileInput) (*GetPlayerProfileOutput, error)
}
