package character

import (
	"github.com/redis/go-redis/v9"

	"github.com/rollkeeper/rollkeeper/internal/models"
)

// Config holds configuration for the Redis character repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

type SaveCharacterInput struct {
	Character *models.Character
}

type GetCharacterInput struct {
	UserID string
	Name   string
}

type ListCharactersInput struct {
	UserID string
}

type ListCharactersOutput struct {
	Characters []*models.Character
}

type DeleteCharacterInput struct {
	UserID string
	Name   string
}
