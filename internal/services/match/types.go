package match

import (
	"github.com/KirkDiggler/deuce/internal/common/clock"
	"github.com/KirkDiggler/deuce/internal/common/uuid"
	"github.com/KirkDiggler/deuce/internal/models"
	matchRepo "github.com/KirkDiggler/deuce/internal/repositories/match"
	"github.com/KirkDiggler/deuce/internal/services/history"
	"github.com/charmbracelet/log"
)

// Config holds configuration for the match service
type Config struct {
	// Repository dependencies
	MatchRepo matchRepo.Repository

	// Service dependencies
	HistoryService history.Service

	// Utility dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger defaults to log.Default()
	Logger *log.Logger
}

// StartMatchInput contains the parameters for starting a match
type StartMatchInput struct {
	ChannelID   string
	Player1Name string
	Player2Name string
}

// StartMatchOutput contains the new match
type StartMatchOutput struct {
	Match *models.Match
}

// GetMatchByChannelInput identifies a channel
type GetMatchByChannelInput struct {
	ChannelID string
}

// GetMatchByChannelOutput contains the channel's match
type GetMatchByChannelOutput struct {
	Match *models.Match
}

// ListActiveMatchesOutput contains the in-progress matches
type ListActiveMatchesOutput struct {
	Matches []*models.Match
}

// ScorePointInput contains the parameters for awarding a point
type ScorePointInput struct {
	ChannelID string
	Player    models.PlayerSlot
}

// RecordStatInput contains the parameters for recording a stat
type RecordStatInput struct {
	ChannelID string
	Player    models.PlayerSlot
	Kind      models.StatKind
}

// ScoreOutput contains the result of a scoring event
type ScoreOutput struct {
	// Match is the updated match
	Match *models.Match

	// Notifications are the transitions the event caused
	Notifications []models.Notification

	// Record is set when this event completed the match and the
	// result was saved to the history
	Record *models.MatchRecord
}

// ResetMatchInput identifies the match to reset
type ResetMatchInput struct {
	ChannelID string
}

// ResetMatchOutput contains the reset match
type ResetMatchOutput struct {
	Match *models.Match
}

// AbandonMatchInput identifies the match to abandon
type AbandonMatchInput struct {
	ChannelID string
}

// SetMessageIDInput links a scoreboard message to a match
type SetMessageIDInput struct {
	ChannelID string
	MessageID string
}
