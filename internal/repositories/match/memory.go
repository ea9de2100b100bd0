package match

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/deuce/internal/models"
	json "github.com/goccy/go-json"
)

// MemoryRepository keeps live matches in process. Matches are stored
// serialized so callers never share state with the repository.
type MemoryRepository struct {
	mu       sync.RWMutex
	matches  map[string][]byte
	channels map[string]string
}

// NewMemory creates an empty in-memory match repository
func NewMemory() *MemoryRepository {
	return &MemoryRepository{
		matches:  make(map[string][]byte),
		channels: make(map[string]string),
	}
}

// SaveMatch stores a copy of the match
func (r *MemoryRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	if input.Match.ID == "" {
		return errors.New("match ID cannot be empty")
	}

	matchJSON, err := json.Marshal(input.Match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches[input.Match.ID] = matchJSON
	if input.Match.ChannelID != "" {
		r.channels[input.Match.ChannelID] = input.Match.ID
	}

	return nil
}

// GetMatch returns a copy of the match
func (r *MemoryRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.get(input.MatchID)
}

// GetMatchByChannel returns a copy of the match tracked in a channel
func (r *MemoryRepository) GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*models.Match, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matchID, ok := r.channels[input.ChannelID]
	if !ok {
		return nil, ErrMatchNotFound
	}

	return r.get(matchID)
}

// DeleteMatch removes a match
func (r *MemoryRepository) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	match, err := r.get(input.MatchID)
	if err != nil {
		return err
	}

	delete(r.matches, input.MatchID)
	if r.channels[match.ChannelID] == input.MatchID {
		delete(r.channels, match.ChannelID)
	}

	return nil
}

// GetActiveMatches returns copies of all in-progress matches
func (r *MemoryRepository) GetActiveMatches(ctx context.Context, input *GetActiveMatchesInput) (*GetActiveMatchesOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*models.Match, 0, len(r.matches))
	for matchID := range r.matches {
		match, err := r.get(matchID)
		if err != nil {
			return nil, err
		}
		if match.Status.IsInProgress() {
			matches = append(matches, match)
		}
	}

	return &GetActiveMatchesOutput{
		Matches: matches,
	}, nil
}

// get must be called with the lock held
func (r *MemoryRepository) get(matchID string) (*models.Match, error) {
	matchJSON, ok := r.matches[matchID]
	if !ok {
		return nil, ErrMatchNotFound
	}

	var match models.Match
	if err := json.Unmarshal(matchJSON, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}
