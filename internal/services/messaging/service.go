package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/deuce/internal/models"
	"github.com/KirkDiggler/deuce/internal/services/history"
	"github.com/KirkDiggler/deuce/internal/services/match"
)

// service implements the Service interface
type service struct{}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	return &service{}, nil
}

// GetNotificationMessage returns the toast text for a scoring notification
func (s *service) GetNotificationMessage(ctx context.Context, input *GetNotificationMessageInput) (*GetNotificationMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := playerName(input.Notification.Player, input.Player1Name, input.Player2Name)

	var title, message string
	switch input.Notification.Kind {
	case models.NotificationGameWon:
		title = "Game"
		message = fmt.Sprintf("%s wins the game!", name)
	case models.NotificationSetWon:
		title = "Set"
		message = fmt.Sprintf("%s wins the set!", name)
	case models.NotificationMatchWon:
		title = "Game, set and match"
		message = fmt.Sprintf("%s wins the match!", name)
	case models.NotificationTiebreakStarted:
		title = "Tiebreak"
		message = "Tiebreak started!"
	default:
		return nil, fmt.Errorf("unknown notification kind %q", input.Notification.Kind)
	}

	return &GetNotificationMessageOutput{
		Title:   title,
		Message: message,
	}, nil
}

// GetMatchCompleteMessage returns the announcement for a finished match
func (s *service) GetMatchCompleteMessage(ctx context.Context, input *GetMatchCompleteMessageInput) (*GetMatchCompleteMessageOutput, error) {
	if input == nil || input.Match == nil {
		return nil, errors.New("input and match cannot be nil")
	}

	winner := input.Match.State.Winner
	if !winner.Valid() {
		return nil, errors.New("match has no winner")
	}

	sets := make([]string, 0, len(input.Match.State.SetScores))
	for _, set := range input.Match.State.SetScores {
		// Set scores are stored player1 first; show them from the winner's side
		if winner == models.PlayerSlotTwo {
			set = models.SetScore{Player1: set.Player2, Player2: set.Player1}
		}
		sets = append(sets, set.String())
	}

	message := fmt.Sprintf("%s def. %s", input.Match.PlayerName(winner), input.Match.PlayerName(winner.Opponent()))
	if len(sets) > 0 {
		message += " " + strings.Join(sets, ", ")
	}

	if input.Saved {
		message += "\nSaved to match history."
	} else {
		message += "\nThe result could not be saved to match history."
	}

	return &GetMatchCompleteMessageOutput{
		Title:   "Match complete",
		Message: message,
	}, nil
}

// GetMatchDeletedMessage returns the confirmation for a deleted history entry
func (s *service) GetMatchDeletedMessage(ctx context.Context, input *GetMatchDeletedMessageInput) (*GetMatchDeletedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetMatchDeletedMessageOutput{
		Message: fmt.Sprintf("Match %d deleted successfully", input.ID),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch {
	case input.Err == nil:
		message = "Something went wrong. Try again."
	case errors.Is(input.Err, match.ErrMatchNotFound):
		message = "There's no match in this channel. Start one with `/tennis start`."
	case errors.Is(input.Err, match.ErrMatchInProgress):
		message = "A match is already being played here. Finish it, or use `/tennis abandon` first."
	case errors.Is(input.Err, match.ErrInvalidPlayer):
		message = "Pick player 1 or player 2."
	case errors.Is(input.Err, match.ErrInvalidStat):
		message = "That stat isn't tracked. Use ace, winner or double fault."
	case errors.Is(input.Err, history.ErrMatchNotFound):
		message = "That match isn't in the history."
	case errors.Is(input.Err, history.ErrPlayerNameRequired):
		message = "Give a player name to look up."
	default:
		message = "Something went wrong. Try again."
	}

	return &GetErrorMessageOutput{
		Message: message,
	}, nil
}

func playerName(slot models.PlayerSlot, player1Name, player2Name string) string {
	switch slot {
	case models.PlayerSlotOne:
		if player1Name != "" {
			return player1Name
		}
		return models.DefaultPlayer1Name
	case models.PlayerSlotTwo:
		if player2Name != "" {
			return player2Name
		}
		return models.DefaultPlayer2Name
	default:
		return "Someone"
	}
}
