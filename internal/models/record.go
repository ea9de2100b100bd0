package models

import (
	"time"
)

// matchDateLayout is the layout used when listing matches
const matchDateLayout = "Jan 2, 2006 15:04"

// PlayerRecordStats is one player's stat snapshot stored with a completed match
type PlayerRecordStats struct {
	Aces         int `json:"aces"`
	DoubleFaults int `json:"doubleFaults"`
	Winners      int `json:"winners"`

	// WinningPercentage is derived from the counters every time a record is read
	WinningPercentage int `json:"winningPercentage"`
}

// RecordStats holds both players' snapshots, keyed by slot
type RecordStats struct {
	Player1 PlayerRecordStats `json:"player1"`
	Player2 PlayerRecordStats `json:"player2"`
}

// For returns the snapshot of the given slot
func (r RecordStats) For(slot PlayerSlot) PlayerRecordStats {
	if slot == PlayerSlotTwo {
		return r.Player2
	}
	return r.Player1
}

// MatchRecord is a completed match kept in history
type MatchRecord struct {
	// ID is unique and increases with insertion order
	ID int64 `json:"id"`

	// Date is when the match was saved
	Date time.Time `json:"date"`

	// WinnerName is the display name of the winner
	WinnerName string `json:"winner"`

	// LoserName is the display name of the loser
	LoserName string `json:"loser"`

	// WinnerSlot is the slot the winner played in. Records written without it
	// are treated as won by player1.
	WinnerSlot PlayerSlot `json:"winnerSlot,omitempty"`

	// Score is the final match state
	Score MatchState `json:"score"`

	// Stats is the final stat snapshot
	Stats RecordStats `json:"stats"`
}

// SlotOf returns the slot the named player occupied in the match, or
// PlayerSlotNone if the player did not take part
func (r *MatchRecord) SlotOf(playerName string) PlayerSlot {
	winnerSlot := r.WinnerSlot
	if !winnerSlot.Valid() {
		winnerSlot = PlayerSlotOne
	}

	switch playerName {
	case r.WinnerName:
		return winnerSlot
	case r.LoserName:
		return winnerSlot.Opponent()
	default:
		return PlayerSlotNone
	}
}

// FormatMatchDate renders a match date for list views
func FormatMatchDate(t time.Time) string {
	return t.Local().Format(matchDateLayout)
}
