package character

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/rollkeeper/rollkeeper/internal/models"
)

const (
	// Key prefixes for Redis
	characterKeyPrefix = "character:"
	userIndexKeyPrefix = "character_index:"
)

// ErrCharacterNotFound is returned when a character sheet is not found
var ErrCharacterNotFound = errors.New("character not found")

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed character repository
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

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveCharacter persists a character sheet, inserting or replacing by
// owner and name
func (r *redisRepository) SaveCharacter(ctx context.Context, input *SaveCharacterInput) error {
	if input == nil || input.Character == nil {
		return errors.New("input and character cannot be nil")
	}

	char := input.Character

	if char.UserID == "" {
		return errors.New("character user ID cannot be empty")
	}

	if char.Name == "" {
		return errors.New("character name cannot be empty")
	}

	// Marshal the character to JSON
	charJSON, err := json.Marshal(char)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Store the character
	pipe.Set(ctx, characterKey(char.UserID, char.Name), charJSON, 0)

	// Index it under its owner for listing
	pipe.SAdd(ctx, userIndexKey(char.UserID), char.Name)

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}

	return nil
}

// GetCharacter retrieves one of a user's characters by name
func (r *redisRepository) GetCharacter(ctx context.Context, input *GetCharacterInput) (*models.Character, error) {
	if input == nil || input.UserID == "" || input.Name == "" {
		return nil, errors.New("user ID and name are required")
	}

	data, err := r.client.Get(ctx, characterKey(input.UserID, input.Name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var char models.Character
	if err := json.Unmarshal([]byte(data), &char); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}

	return &char, nil
}

// ListCharacters retrieves all characters owned by a user
func (r *redisRepository) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("user ID is required")
	}

	names, err := r.client.SMembers(ctx, userIndexKey(input.UserID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}

	// Stable order for display
	sort.Strings(names)

	// Fetch every sheet in one round trip
	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(names))
	for _, name := range names {
		commands = append(commands, pipe.Get(ctx, characterKey(input.UserID, name)))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to fetch characters: %w", err)
	}

	output := &ListCharactersOutput{
		Characters: make([]*models.Character, 0, len(names)),
	}

	for _, cmd := range commands {
		data, err := cmd.Result()
		if err != nil {
			// Index entries without a sheet are stale; skip them
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to fetch character: %w", err)
		}

		var char models.Character
		if err := json.Unmarshal([]byte(data), &char); err != nil {
			return nil, fmt.Errorf("failed to unmarshal character: %w", err)
		}

		output.Characters = append(output.Characters, &char)
	}

	return output, nil
}

// DeleteCharacter removes one of a user's characters by name
func (r *redisRepository) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) error {
	if input == nil || input.UserID == "" || input.Name == "" {
		return errors.New("user ID and name are required")
	}

	// Verify the character exists before touching the index
	exists, err := r.client.Exists(ctx, characterKey(input.UserID, input.Name)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character: %w", err)
	}

	if exists == 0 {
		return ErrCharacterNotFound
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, characterKey(input.UserID, input.Name))
	pipe.SRem(ctx, userIndexKey(input.UserID), input.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}

func characterKey(userID, name string) string {
	return fmt.Sprintf("%s%s:%s", characterKeyPrefix, userID, name)
}

func userIndexKey(userID string) string {
	return fmt.Sprintf("%s%s", userIndexKeyPrefix, userID)
}
