package history

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/deuce/internal/common/clock"
	"github.com/KirkDiggler/deuce/internal/models"
	"github.com/KirkDiggler/deuce/internal/repositories/record_store"
	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
)

// service implements the Service interface on top of a record store
type service struct {
	store      record_store.Store
	clock      clock.Clock
	logger     *log.Logger
	key        string
	maxRecords int

	// mu makes each read-modify-write of the stored list atomic
	mu sync.Mutex

	// lastID is the highest ID handed out by this process
	lastID int64
}

// New creates a new history service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Store == nil {
		return nil, ErrNilStore
	}

	svc := &service{
		store:      cfg.Store,
		clock:      cfg.Clock,
		logger:     cfg.Logger,
		key:        cfg.Key,
		maxRecords: cfg.MaxRecords,
	}

	if svc.clock == nil {
		svc.clock = clock.New()
	}
	if svc.logger == nil {
		svc.logger = log.Default()
	}
	if svc.key == "" {
		svc.key = DefaultKey
	}
	if svc.maxRecords <= 0 {
		svc.maxRecords = DefaultMaxRecords
	}

	return svc, nil
}

// SaveMatch stores a completed match at the front of the history
func (s *service) SaveMatch(ctx context.Context, input *SaveMatchInput) (*SaveMatchOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	winnerSlot := input.WinnerSlot
	if !winnerSlot.Valid() {
		winnerSlot = input.Score.Winner
	}
	if !winnerSlot.Valid() {
		winnerSlot = models.PlayerSlotOne
	}

	record := &models.MatchRecord{
		ID:         input.ID,
		Date:       input.Date,
		WinnerName: input.WinnerName,
		LoserName:  input.LoserName,
		WinnerSlot: winnerSlot,
		Score:      input.Score.Clone(),
		Stats:      recordStats(input.Stats),
	}

	if record.WinnerName == "" {
		record.WinnerName = defaultName(winnerSlot)
	}
	if record.LoserName == "" {
		record.LoserName = defaultName(winnerSlot.Opponent())
	}
	if record.ID == 0 {
		record.ID = s.nextID(records)
	}
	if record.Date.IsZero() {
		record.Date = s.clock.Now().UTC()
	}
	enhance(record)

	records = append([]*models.MatchRecord{record}, records...)
	if len(records) > s.maxRecords {
		records = records[:s.maxRecords]
	}

	if err := s.write(ctx, records); err != nil {
		return nil, err
	}

	if record.ID > s.lastID {
		s.lastID = record.ID
	}

	saved := *record
	return &SaveMatchOutput{
		Record: &saved,
	}, nil
}

// ListMatches returns the history, most recent first. Storage problems
// produce an empty list rather than an error.
func (s *service) ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error) {
	records := s.list(ctx)

	if input != nil && input.Limit > 0 && len(records) > input.Limit {
		records = records[:input.Limit]
	}

	return &ListMatchesOutput{
		Records: records,
	}, nil
}

// GetMatch returns a single match by ID
func (s *service) GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	for _, record := range s.list(ctx) {
		if record.ID == input.ID {
			return &GetMatchOutput{
				Record: record,
			}, nil
		}
	}

	return nil, ErrMatchNotFound
}

// DeleteMatch removes a match by ID. Deleting an unknown ID does nothing.
func (s *service) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil {
		return ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read(ctx)
	if err != nil {
		return err
	}

	kept := make([]*models.MatchRecord, 0, len(records))
	for _, record := range records {
		if record.ID != input.ID {
			kept = append(kept, record)
		}
	}

	if len(kept) == len(records) {
		return nil
	}

	return s.write(ctx, kept)
}

// GetPlayerStats aggregates a player's results across the history
func (s *service) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.PlayerName == "" {
		return nil, ErrPlayerNameRequired
	}

	stats := models.PlayerStats{PlayerName: input.PlayerName}
	for _, record := range s.list(ctx) {
		slot := record.SlotOf(input.PlayerName)
		if slot == models.PlayerSlotNone {
			continue
		}

		playerStats := record.Stats.For(slot)
		stats.MatchesPlayed++
		stats.TotalAces += playerStats.Aces
		stats.TotalWinners += playerStats.Winners
		if record.WinnerName == input.PlayerName {
			stats.Wins++
		}
	}

	return &GetPlayerStatsOutput{
		Stats: stats,
	}, nil
}

// GetPlayerProfile builds the profile view of a player
func (s *service) GetPlayerProfile(ctx context.Context, input *GetPlayerProfileInput) (*GetPlayerProfileOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.PlayerName == "" {
		return nil, ErrPlayerNameRequired
	}

	profile := models.PlayerProfile{
		PlayerStats:     models.PlayerStats{PlayerName: input.PlayerName},
		LastFiveResults: []bool{},
	}

	for _, record := range s.list(ctx) {
		slot := record.SlotOf(input.PlayerName)
		if slot == models.PlayerSlotNone {
			continue
		}

		won := record.WinnerName == input.PlayerName
		playerStats := record.Stats.For(slot)

		profile.MatchesPlayed++
		profile.TotalAces += playerStats.Aces
		profile.TotalWinners += playerStats.Winners
		if won {
			profile.Wins++
		} else {
			profile.Losses++
		}

		if profile.LastMatch == nil {
			profile.LastMatch = record
		}
		if len(profile.LastFiveResults) < 5 {
			profile.LastFiveResults = append(profile.LastFiveResults, won)
		}
	}

	profile.WinRate = percentage(profile.Wins, profile.MatchesPlayed)

	return &GetPlayerProfileOutput{
		Profile: profile,
	}, nil
}

// list loads and enhances every stored record
func (s *service) list(ctx context.Context) []*models.MatchRecord {
	records := s.load(ctx)
	for _, record := range records {
		enhance(record)
	}
	return records
}

// load reads the stored list for queries. Any failure degrades to an empty
// history.
func (s *service) load(ctx context.Context) []*models.MatchRecord {
	records, err := s.read(ctx)
	if err != nil {
		s.logger.Warn("match history unreadable, using empty history", "key", s.key, "err", err)
		return []*models.MatchRecord{}
	}
	return records
}

// read loads the stored list ahead of a write. A missing or malformed list
// reads as empty so the next write replaces it; a store failure is returned
// so the caller does not overwrite records it could not see.
func (s *service) read(ctx context.Context) ([]*models.MatchRecord, error) {
	data, err := s.store.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, record_store.ErrNotFound) {
			return []*models.MatchRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read match history: %w", err)
	}

	var stored []*models.MatchRecord
	if err := json.Unmarshal(data, &stored); err != nil {
		s.logger.Warn("match history is malformed, using empty history", "key", s.key, "err", err)
		return []*models.MatchRecord{}, nil
	}

	records := make([]*models.MatchRecord, 0, len(stored))
	for _, record := range stored {
		if record != nil {
			records = append(records, record)
		}
	}

	return records, nil
}

func (s *service) write(ctx context.Context, records []*models.MatchRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal match history: %w", err)
	}

	if err := s.store.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to save match history: %w", err)
	}

	return nil
}

// nextID returns a millisecond timestamp, bumped past every ID already
// issued or stored so saves within the same millisecond stay unique.
func (s *service) nextID(records []*models.MatchRecord) int64 {
	id := s.clock.Now().UnixMilli()

	floor := s.lastID
	for _, record := range records {
		if record.ID > floor {
			floor = record.ID
		}
	}

	if id <= floor {
		id = floor + 1
	}
	return id
}

func defaultName(slot models.PlayerSlot) string {
	if slot == models.PlayerSlotTwo {
		return models.DefaultPlayer2Name
	}
	return models.DefaultPlayer1Name
}
