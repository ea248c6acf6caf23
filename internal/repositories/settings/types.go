package settings

import (
	"github.com/redis/go-redis/v9"
)

// Config holds configuration for the Redis settings repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// DefaultRuleName seeds first-access settings; empty means ruleset B
	DefaultRuleName string

	// DefaultCriticalThreshold seeds first-access settings; zero means
	// the standard threshold
	DefaultCriticalThreshold int

	// DefaultFumbleThreshold seeds first-access settings; zero means
	// the standard threshold
	DefaultFumbleThreshold int
}

type GetSettingsInput struct {
	UserID string
}

type SetRuleInput struct {
	UserID string

	// RuleName replaces the ruleset when non-empty
	RuleName string

	// CriticalThreshold replaces the critical threshold when non-zero
	CriticalThreshold int

	// FumbleThreshold replaces the fumble threshold when non-zero
	FumbleThreshold int
}

type SetActiveCharacterInput struct {
	UserID string

	// CharacterName is the new active character; empty clears it
	CharacterName string
}
