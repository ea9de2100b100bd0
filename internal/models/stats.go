package models

// StatKind is a countable event recorded alongside scoring
type StatKind string

const (
	// StatKindAce is a serve that wins the point untouched
	StatKindAce StatKind = "ace"

	// StatKindWinner is a shot that wins the point outright
	StatKindWinner StatKind = "winner"

	// StatKindDoubleFault is two missed serves in a row
	StatKindDoubleFault StatKind = "doubleFault"
)

// Valid reports whether the kind is a known stat
func (k StatKind) Valid() bool {
	switch k {
	case StatKindAce, StatKindWinner, StatKindDoubleFault:
		return true
	}
	return false
}

// AwardsPoint reports whether recording this stat also scores a point for the player
func (k StatKind) AwardsPoint() bool {
	return k == StatKindAce || k == StatKindWinner
}

// StatTally counts a player's stat events in a match
type StatTally struct {
	Aces         int `json:"aces"`
	DoubleFaults int `json:"doubleFaults"`
	Winners      int `json:"winners"`
}

// Total sums every counter
func (t StatTally) Total() int {
	return t.Aces + t.DoubleFaults + t.Winners
}

// MatchStats holds both players' tallies
type MatchStats struct {
	Player1 StatTally `json:"player1"`
	Player2 StatTally `json:"player2"`
}

// Tally returns a pointer to the tally of the given slot, or nil for an invalid slot
func (m *MatchStats) Tally(slot PlayerSlot) *StatTally {
	switch slot {
	case PlayerSlotOne:
		return &m.Player1
	case PlayerSlotTwo:
		return &m.Player2
	default:
		return nil
	}
}
