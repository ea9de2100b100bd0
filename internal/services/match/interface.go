package match

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/deuce/internal/services/match Service

import (
	"context"
)

// Service tracks one live match per channel
type Service interface {
	// StartMatch begins a new match in a channel
	StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error)

	// GetMatchByChannel returns the match tracked in a channel
	GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*GetMatchByChannelOutput, error)

	// ListActiveMatches returns every match still being played
	ListActiveMatches(ctx context.Context) (*ListActiveMatchesOutput, error)

	// ScorePoint awards a point to a player
	ScorePoint(ctx context.Context, input *ScorePointInput) (*ScoreOutput, error)

	// RecordStat counts an ace, winner or double fault for a player
	RecordStat(ctx context.Context, input *RecordStatInput) (*ScoreOutput, error)

	// ResetMatch clears the score and stats but keeps the players
	ResetMatch(ctx context.Context, input *ResetMatchInput) (*ResetMatchOutput, error)

	// AbandonMatch stops tracking the match without saving it
	AbandonMatch(ctx context.Context, input *AbandonMatchInput) error

	// SetMessageID remembers the scoreboard message for a match
	SetMessageID(ctx context.Context, input *SetMessageIDInput) error
}
