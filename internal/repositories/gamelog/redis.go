package gamelog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rollkeeper/rollkeeper/internal/models"
)

const (
	// Key prefix for Redis
	gamelogKeyPrefix = "gamelog:"

	// DefaultMaxEntries caps a channel's log when no cap is configured
	DefaultMaxEntries = 100

	// DefaultRecentLimit is how many entries GetRecent returns when no
	// limit is given
	DefaultRecentLimit = 10
)

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	maxEntries int
}

// NewRedis creates a new Redis-backed game log repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		maxEntries: maxEntries,
	}, nil
}

// AppendEntry records an event in a channel's log, evicting the oldest
// entries once the cap is reached
func (r *redisRepository) AppendEntry(ctx context.Context, input *AppendEntryInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("channel ID is required")
	}

	if input.Content == "" {
		return errors.New("content cannot be empty")
	}

	entry := &models.LogEntry{
		Timestamp: time.Now(),
		Author:    input.Author,
		Content:   input.Content,
	}

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	// Push to the head and trim the tail in one round trip
	pipe := r.client.Pipeline()
	pipe.LPush(ctx, gamelogKey(input.ChannelID), entryJSON)
	pipe.LTrim(ctx, gamelogKey(input.ChannelID), 0, int64(r.maxEntries-1))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append log entry: %w", err)
	}

	return nil
}

// GetRecent retrieves the newest entries in a channel's log, newest
// first
func (r *redisRepository) GetRecent(ctx context.Context, input *GetRecentInput) (*GetRecentOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > r.maxEntries {
		limit = r.maxEntries
	}

	values, err := r.client.LRange(ctx, gamelogKey(input.ChannelID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}

	output := &GetRecentOutput{
		Entries: make([]*models.LogEntry, 0, len(values)),
	}

	for _, value := range values {
		var entry models.LogEntry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal log entry: %w", err)
		}

		output.Entries = append(output.Entries, &entry)
	}

	return output, nil
}

// Clear removes a channel's log entirely
func (r *redisRepository) Clear(ctx context.Context, input *ClearInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("channel ID is required")
	}

	if err := r.client.Del(ctx, gamelogKey(input.ChannelID)).Err(); err != nil {
		return fmt.Errorf("failed to clear log: %w", err)
	}

	return nil
}

func gamelogKey(channelID string) string {
	return fmt.Sprintf("%s%s", gamelogKeyPrefix, channelID)
}
