package models

// NotificationKind is a structural change produced by a scoring event
type NotificationKind string

const (
	// NotificationGameWon is emitted when a player takes a game
	NotificationGameWon NotificationKind = "game_won"

	// NotificationSetWon is emitted when a player takes a set without ending the match
	NotificationSetWon NotificationKind = "set_won"

	// NotificationMatchWon is emitted when a player takes the deciding set
	NotificationMatchWon NotificationKind = "match_won"

	// NotificationTiebreakStarted is emitted when a set reaches 6-6
	NotificationTiebreakStarted NotificationKind = "tiebreak_started"
)

// Notification describes the transition a single scoring event caused
type Notification struct {
	// Kind is what happened
	Kind NotificationKind `json:"kind"`

	// Player is the slot whose point caused it
	Player PlayerSlot `json:"player"`
}
