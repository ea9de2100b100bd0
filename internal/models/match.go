package models

import (
	"time"
)

// MatchStatus represents the lifecycle of a live match
type MatchStatus string

const (
	// MatchStatusInProgress indicates points are still being played
	MatchStatusInProgress MatchStatus = "in_progress"

	// MatchStatusCompleted indicates the match has a winner
	MatchStatusCompleted MatchStatus = "completed"
)

// IsInProgress returns true if the match is still being played
func (s MatchStatus) IsInProgress() bool {
	return s == MatchStatusInProgress
}

// IsCompleted returns true if the match has finished
func (s MatchStatus) IsCompleted() bool {
	return s == MatchStatusCompleted
}

// Match is a live match being tracked in a Discord channel
type Match struct {
	// ID is the unique identifier for the match
	ID string `json:"id"`

	// ChannelID is the Discord channel where the match is tracked
	ChannelID string `json:"channelId"`

	// Player1Name is the display name of the first player
	Player1Name string `json:"player1Name"`

	// Player2Name is the display name of the second player
	Player2Name string `json:"player2Name"`

	// Status is the lifecycle state of the match
	Status MatchStatus `json:"status"`

	// State is the current score
	State MatchState `json:"state"`

	// Stats are the stat counters for both players
	Stats MatchStats `json:"stats"`

	// RecordID is the history record created when the match completed
	RecordID int64 `json:"recordId,omitempty"`

	// MessageID is the ID of the scoreboard message in Discord
	MessageID string `json:"messageId,omitempty"`

	// CreatedAt is when the match was started
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the match was last changed
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlayerName returns the display name for a slot
func (m *Match) PlayerName(slot PlayerSlot) string {
	switch slot {
	case PlayerSlotOne:
		return m.Player1Name
	case PlayerSlotTwo:
		return m.Player2Name
	default:
		return ""
	}
}
