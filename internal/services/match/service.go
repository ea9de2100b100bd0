package match

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/deuce/internal/common/clock"
	"github.com/KirkDiggler/deuce/internal/common/uuid"
	"github.com/KirkDiggler/deuce/internal/models"
	matchRepo "github.com/KirkDiggler/deuce/internal/repositories/match"
	"github.com/KirkDiggler/deuce/internal/scoring"
	"github.com/KirkDiggler/deuce/internal/services/history"
	"github.com/charmbracelet/log"
)

// service implements the Service interface
type service struct {
	matchRepo      matchRepo.Repository
	historyService history.Service
	clock          clock.Clock
	uuidGenerator  uuid.UUID
	logger         *log.Logger

	// mu serializes read-modify-write cycles on matches
	mu sync.Mutex
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.MatchRepo == nil {
		return nil, ErrNilMatchRepo
	}

	if cfg.HistoryService == nil {
		return nil, ErrNilHistoryService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &service{
		matchRepo:      cfg.MatchRepo,
		historyService: cfg.HistoryService,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		logger:         logger,
	}, nil
}

// StartMatch begins a new match in a channel. A completed match in the
// channel is replaced; an in-progress one is an error.
func (s *service) StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.ChannelID == "" {
		return nil, ErrChannelRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.find(ctx, input.ChannelID)
	if err != nil && !errors.Is(err, ErrMatchNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.Status.IsInProgress() {
			return nil, ErrMatchInProgress
		}

		if err := s.matchRepo.DeleteMatch(ctx, &matchRepo.DeleteMatchInput{
			MatchID: existing.ID,
		}); err != nil && !errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, fmt.Errorf("failed to clear finished match: %w", err)
		}
	}

	player1Name := input.Player1Name
	if player1Name == "" {
		player1Name = models.DefaultPlayer1Name
	}
	player2Name := input.Player2Name
	if player2Name == "" {
		player2Name = models.DefaultPlayer2Name
	}

	now := s.clock.Now()
	match := &models.Match{
		ID:          s.uuidGenerator.NewUUID(),
		ChannelID:   input.ChannelID,
		Player1Name: player1Name,
		Player2Name: player2Name,
		Status:      models.MatchStatusInProgress,
		State:       scoring.Reset(),
		Stats:       scoring.ResetStats(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{
		Match: match,
	}); err != nil {
		return nil, err
	}

	s.logger.Info("match started", "channel", input.ChannelID, "match", match.ID,
		"player1", player1Name, "player2", player2Name)

	return &StartMatchOutput{
		Match: match,
	}, nil
}

// GetMatchByChannel returns the match tracked in a channel
func (s *service) GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*GetMatchByChannelOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.ChannelID == "" {
		return nil, ErrChannelRequired
	}

	match, err := s.find(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	return &GetMatchByChannelOutput{
		Match: match,
	}, nil
}

// ListActiveMatches returns every match still being played
func (s *service) ListActiveMatches(ctx context.Context) (*ListActiveMatchesOutput, error) {
	output, err := s.matchRepo.GetActiveMatches(ctx, &matchRepo.GetActiveMatchesInput{})
	if err != nil {
		return nil, err
	}

	return &ListActiveMatchesOutput{
		Matches: output.Matches,
	}, nil
}

// ScorePoint awards a point to a player
func (s *service) ScorePoint(ctx context.Context, input *ScorePointInput) (*ScoreOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !input.Player.Valid() {
		return nil, ErrInvalidPlayer
	}

	return s.update(ctx, input.ChannelID, func(match *models.Match) []models.Notification {
		state, notifications := scoring.ApplyPoint(match.State, input.Player)
		match.State = state
		return notifications
	})
}

// RecordStat counts a stat for a player. Aces and winners also score
// the point; double faults are only counted.
func (s *service) RecordStat(ctx context.Context, input *RecordStatInput) (*ScoreOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !input.Player.Valid() {
		return nil, ErrInvalidPlayer
	}

	if !input.Kind.Valid() {
		return nil, ErrInvalidStat
	}

	return s.update(ctx, input.ChannelID, func(match *models.Match) []models.Notification {
		state, stats, notifications := scoring.RecordStat(match.State, match.Stats, input.Player, input.Kind)
		match.State = state
		match.Stats = stats
		return notifications
	})
}

// ResetMatch clears the score and stats but keeps the players
func (s *service) ResetMatch(ctx context.Context, input *ResetMatchInput) (*ResetMatchOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.ChannelID == "" {
		return nil, ErrChannelRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	match, err := s.find(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	match.State = scoring.Reset()
	match.Stats = scoring.ResetStats()
	match.Status = models.MatchStatusInProgress
	match.RecordID = 0
	match.UpdatedAt = s.clock.Now()

	if err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{
		Match: match,
	}); err != nil {
		return nil, err
	}

	return &ResetMatchOutput{
		Match: match,
	}, nil
}

// AbandonMatch stops tracking the match without saving it
func (s *service) AbandonMatch(ctx context.Context, input *AbandonMatchInput) error {
	if input == nil {
		return ErrNilInput
	}

	if input.ChannelID == "" {
		return ErrChannelRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	match, err := s.find(ctx, input.ChannelID)
	if err != nil {
		return err
	}

	if err := s.matchRepo.DeleteMatch(ctx, &matchRepo.DeleteMatchInput{
		MatchID: match.ID,
	}); err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return err
	}

	s.logger.Info("match abandoned", "channel", input.ChannelID, "match", match.ID)
	return nil
}

// SetMessageID remembers the scoreboard message for a match
func (s *service) SetMessageID(ctx context.Context, input *SetMessageIDInput) error {
	if input == nil {
		return ErrNilInput
	}

	if input.ChannelID == "" {
		return ErrChannelRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	match, err := s.find(ctx, input.ChannelID)
	if err != nil {
		return err
	}

	match.MessageID = input.MessageID

	return s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{
		Match: match,
	})
}

// update applies a scoring change to the channel's match and saves the
// result to the history when the change completes the match
func (s *service) update(ctx context.Context, channelID string, apply func(*models.Match) []models.Notification) (*ScoreOutput, error) {
	if channelID == "" {
		return nil, ErrChannelRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	match, err := s.find(ctx, channelID)
	if err != nil {
		return nil, err
	}

	// Finished matches ignore further events
	if match.Status.IsCompleted() || match.State.IsComplete() {
		return &ScoreOutput{
			Match:         match,
			Notifications: []models.Notification{},
		}, nil
	}

	notifications := apply(match)
	match.UpdatedAt = s.clock.Now()

	if match.State.IsComplete() {
		match.Status = models.MatchStatusCompleted
	}

	// The completed state is stored before the history write so a failed
	// save leaves the match replayable without a record behind it
	if err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{
		Match: match,
	}); err != nil {
		return nil, err
	}

	var record *models.MatchRecord
	if match.Status.IsCompleted() {
		record = s.saveResult(ctx, match)
		if record != nil {
			match.RecordID = record.ID
			if err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{
				Match: match,
			}); err != nil {
				s.logger.Warn("failed to store record id on match", "channel", match.ChannelID, "match", match.ID, "record", record.ID, "err", err)
			}
		}
	}

	if notifications == nil {
		notifications = []models.Notification{}
	}

	return &ScoreOutput{
		Match:         match,
		Notifications: notifications,
		Record:        record,
	}, nil
}

// saveResult writes a completed match to the history. A failure is logged
// and the match still completes.
func (s *service) saveResult(ctx context.Context, match *models.Match) *models.MatchRecord {
	winner := match.State.Winner
	stats := match.Stats

	output, err := s.historyService.SaveMatch(ctx, &history.SaveMatchInput{
		WinnerName: match.PlayerName(winner),
		LoserName:  match.PlayerName(winner.Opponent()),
		WinnerSlot: winner,
		Score:      match.State,
		Stats:      &stats,
	})
	if err != nil {
		s.logger.Error("failed to save match history", "channel", match.ChannelID, "match", match.ID, "err", err)
		return nil
	}

	s.logger.Info("match completed", "channel", match.ChannelID, "match", match.ID,
		"winner", output.Record.WinnerName, "record", output.Record.ID)

	return output.Record
}

// find looks up the channel's match, mapping the repository's not found
func (s *service) find(ctx context.Context, channelID string) (*models.Match, error) {
	match, err := s.matchRepo.GetMatchByChannel(ctx, &matchRepo.GetMatchByChannelInput{
		ChannelID: channelID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	return match, nil
}
