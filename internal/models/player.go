package models

// PlayerSlot identifies one of the two sides of a singles match
type PlayerSlot string

const (
	// PlayerSlotNone means no player, used while a match has no winner
	PlayerSlotNone PlayerSlot = ""

	// PlayerSlotOne is the first player
	PlayerSlotOne PlayerSlot = "player1"

	// PlayerSlotTwo is the second player
	PlayerSlotTwo PlayerSlot = "player2"
)

const (
	// DefaultPlayer1Name is used when no display name was given for player 1
	DefaultPlayer1Name = "Player 1"

	// DefaultPlayer2Name is used when no display name was given for player 2
	DefaultPlayer2Name = "Player 2"
)

// Valid reports whether the slot is one of the two players
func (p PlayerSlot) Valid() bool {
	return p == PlayerSlotOne || p == PlayerSlotTwo
}

// Opponent returns the other slot. An invalid slot has no opponent.
func (p PlayerSlot) Opponent() PlayerSlot {
	switch p {
	case PlayerSlotOne:
		return PlayerSlotTwo
	case PlayerSlotTwo:
		return PlayerSlotOne
	default:
		return PlayerSlotNone
	}
}
