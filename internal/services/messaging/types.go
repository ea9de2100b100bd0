package messaging

import (
	"github.com/KirkDiggler/deuce/internal/models"
)

// GetNotificationMessageInput contains parameters for a notification toast
type GetNotificationMessageInput struct {
	// Notification is the transition to describe
	Notification models.Notification

	// Player1Name is the display name of player1
	Player1Name string

	// Player2Name is the display name of player2
	Player2Name string
}

// GetNotificationMessageOutput contains the toast text
type GetNotificationMessageOutput struct {
	// Title is a short heading
	Title string

	// Message is the toast body
	Message string
}

// GetMatchCompleteMessageInput contains parameters for a match announcement
type GetMatchCompleteMessageInput struct {
	// Match is the finished match
	Match *models.Match

	// Saved reports whether the result made it into the history
	Saved bool
}

// GetMatchCompleteMessageOutput contains the match announcement
type GetMatchCompleteMessageOutput struct {
	Title   string
	Message string
}

// GetMatchDeletedMessageInput identifies the deleted match
type GetMatchDeletedMessageInput struct {
	ID int64
}

// GetMatchDeletedMessageOutput contains the deletion confirmation
type GetMatchDeletedMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains the error to describe
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains a message safe to show to players
type GetErrorMessageOutput struct {
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct{}
