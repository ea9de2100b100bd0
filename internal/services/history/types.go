package history

import (
	"time"

	"github.com/KirkDiggler/deuce/internal/common/clock"
	"github.com/KirkDiggler/deuce/internal/models"
	"github.com/KirkDiggler/deuce/internal/repositories/record_store"
	"github.com/charmbracelet/log"
)

const (
	// DefaultKey is the record store key holding the serialized history
	DefaultKey = "tennis_match_history"

	// DefaultMaxRecords is how many matches are kept
	DefaultMaxRecords = 100
)

// Config holds configuration for the history service
type Config struct {
	// Store persists the serialized history
	Store record_store.Store

	// Clock stamps IDs and dates; defaults to the system clock
	Clock clock.Clock

	// Logger reports degraded reads; defaults to log.Default()
	Logger *log.Logger

	// Key overrides DefaultKey
	Key string

	// MaxRecords overrides DefaultMaxRecords
	MaxRecords int
}

// SaveMatchInput contains a completed match to store
type SaveMatchInput struct {
	// WinnerName is the display name of the winner
	WinnerName string

	// LoserName is the display name of the loser
	LoserName string

	// WinnerSlot is the slot the winner played in. When empty the final
	// score's winner is used, then player1.
	WinnerSlot models.PlayerSlot

	// Score is the final match state
	Score models.MatchState

	// Stats are the final stat counters; nil counts as all zero
	Stats *models.MatchStats

	// ID is assigned when zero
	ID int64

	// Date is set to now when zero
	Date time.Time
}

// SaveMatchOutput contains the stored record
type SaveMatchOutput struct {
	Record *models.MatchRecord
}

// ListMatchesInput contains parameters for listing matches
type ListMatchesInput struct {
	// Limit caps the number of records returned; zero means all
	Limit int
}

// ListMatchesOutput contains the history, most recent first
type ListMatchesOutput struct {
	Records []*models.MatchRecord
}

// GetMatchInput identifies a match
type GetMatchInput struct {
	ID int64
}

// GetMatchOutput contains a single match
type GetMatchOutput struct {
	Record *models.MatchRecord
}

// DeleteMatchInput identifies the match to delete
type DeleteMatchInput struct {
	ID int64
}

// GetPlayerStatsInput names the player to aggregate
type GetPlayerStatsInput struct {
	PlayerName string
}

// GetPlayerStatsOutput contains the aggregated stats
type GetPlayerStatsOutput struct {
	Stats models.PlayerStats
}

// GetPlayerProfileInput names the player to profile
type GetPlayerProfileInput struct {
	PlayerName string
}

// GetPlayerProfileOutput contains the profile
type GetPlayerProfileOutput struct {
	Profile models.PlayerProfile
}
