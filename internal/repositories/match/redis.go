package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/deuce/internal/models"
	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	matchKeyPrefix   = "match:"
	channelKeyPrefix = "channel:"
	activeMatchesKey = "active_matches"
)

// Config holds configuration for the Redis match repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed match repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveMatch persists a match to Redis
func (r *redisRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
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

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, matchKeyPrefix+input.Match.ID, matchJSON, 0)

	if input.Match.ChannelID != "" {
		pipe.Set(ctx, channelKeyPrefix+input.Match.ChannelID, input.Match.ID, 0)
	}

	if input.Match.Status.IsInProgress() {
		pipe.SAdd(ctx, activeMatchesKey, input.Match.ID)
	} else {
		pipe.SRem(ctx, activeMatchesKey, input.Match.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

// GetMatch retrieves a match by ID from Redis
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	matchJSON, err := r.client.Get(ctx, matchKeyPrefix+input.MatchID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var match models.Match
	if err := json.Unmarshal(matchJSON, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}

// GetMatchByChannel retrieves the match tracked in a channel from Redis
func (r *redisRepository) GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*models.Match, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	matchID, err := r.client.Get(ctx, channelKeyPrefix+input.ChannelID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match ID for channel: %w", err)
	}

	return r.GetMatch(ctx, &GetMatchInput{
		MatchID: matchID,
	})
}

// DeleteMatch removes a match and its channel mapping from Redis
func (r *redisRepository) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	match, err := r.GetMatch(ctx, &GetMatchInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()

	pipe.Del(ctx, matchKeyPrefix+input.MatchID)

	// Only drop the channel mapping if it still points at this match
	if match.ChannelID != "" {
		channelKey := channelKeyPrefix + match.ChannelID
		current, err := r.client.Get(ctx, channelKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to get match ID for channel: %w", err)
		}
		if current == input.MatchID {
			pipe.Del(ctx, channelKey)
		}
	}

	pipe.SRem(ctx, activeMatchesKey, input.MatchID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	return nil
}

// GetActiveMatches retrieves all in-progress matches from Redis
func (r *redisRepository) GetActiveMatches(ctx context.Context, input *GetActiveMatchesInput) (*GetActiveMatchesOutput, error) {
	matchIDs, err := r.client.SMembers(ctx, activeMatchesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active match IDs: %w", err)
	}

	if len(matchIDs) == 0 {
		return &GetActiveMatchesOutput{
			Matches: []*models.Match{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(matchIDs))
	for _, matchID := range matchIDs {
		commands[matchID] = pipe.Get(ctx, matchKeyPrefix+matchID)
	}

	// redis.Nil from a single GET surfaces here too; handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get active matches: %w", err)
	}

	matches := make([]*models.Match, 0, len(matchIDs))
	for matchID, cmd := range commands {
		matchJSON, err := cmd.Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Deleted between SMEMBERS and GET
				continue
			}
			return nil, fmt.Errorf("failed to get match %s: %w", matchID, err)
		}

		var match models.Match
		if err := json.Unmarshal(matchJSON, &match); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match %s: %w", matchID, err)
		}

		matches = append(matches, &match)
	}

	return &GetActiveMatchesOutput{
		Matches: matches,
	}, nil
}
