package gamelog

import (
	"github.com/redis/go-redis/v9"

	"github.com/rollkeeper/rollkeeper/internal/models"
)

// Config holds the configuration for the repository
type Config struct {
	// RedisClient is the Redis client to use
	RedisClient *redis.Client

	// MaxEntries caps each channel's log; zero uses the default
	MaxEntries int
}

// AppendEntryInput holds a game event to record
type AppendEntryInput struct {
	ChannelID string
	Author    string
	Content   string
}

// GetRecentInput identifies the channel log to read
type GetRecentInput struct {
	ChannelID string

	// Limit caps how many entries to return; zero uses the default
	Limit int
}

// GetRecentOutput holds the newest log entries, newest first
type GetRecentOutput struct {
	Entries []*models.LogEntry
}

// ClearInput identifies the channel log to remove
type ClearInput struct {
	ChannelID string
}
