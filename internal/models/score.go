package models

import "fmt"

// GameScore holds one player's standing in a match
type GameScore struct {
	// Points in the current game: 0-3 map to 0/15/30/40, 4 is advantage
	Points int `json:"points"`

	// Games won in the current set
	Games int `json:"games"`

	// Sets won in the match
	Sets int `json:"sets"`

	// TiebreakPoints is only meaningful while the match is in a tiebreak
	TiebreakPoints int `json:"tiebreakPoints"`
}

// SetScore is the final game count of a completed set
type SetScore struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
}

// String formats the set as "6-4"
func (s SetScore) String() string {
	return fmt.Sprintf("%d-%d", s.Player1, s.Player2)
}

// MatchState is the full scoring state of a match.
// Winner stays PlayerSlotNone until the match is over.
type MatchState struct {
	// Player1 is the first player's score
	Player1 GameScore `json:"player1"`

	// Player2 is the second player's score
	Player2 GameScore `json:"player2"`

	// IsTiebreak is set while the current set is decided by a tiebreak
	IsTiebreak bool `json:"isTiebreak"`

	// Winner is the slot that won the match
	Winner PlayerSlot `json:"winner,omitempty"`

	// SetScores records the games of each completed set, in order
	SetScores []SetScore `json:"setScores,omitempty"`
}

// Score returns a pointer to the score of the given slot, or nil for an invalid slot
func (m *MatchState) Score(slot PlayerSlot) *GameScore {
	switch slot {
	case PlayerSlotOne:
		return &m.Player1
	case PlayerSlotTwo:
		return &m.Player2
	default:
		return nil
	}
}

// IsComplete reports whether the match has a winner
func (m MatchState) IsComplete() bool {
	return m.Winner != PlayerSlotNone
}

// Clone returns a copy that shares no memory with m
func (m MatchState) Clone() MatchState {
	out := m
	if m.SetScores != nil {
		out.SetScores = make([]SetScore, len(m.SetScores))
		copy(out.SetScores, m.SetScores)
	}
	return out
}
