package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rollkeeper/rollkeeper/internal/models"
	"github.com/rollkeeper/rollkeeper/internal/rules"
)

// settingsKeyPrefix is the Redis key prefix for user settings
const settingsKeyPrefix = "user_settings:"

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client

	defaultRuleName string
	defaultCritical int
	defaultFumble   int
}

// NewRedis creates a new Redis-backed settings repository
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

	// Unrecognized rule names fall back to ruleset B, matching how the
	// rule engine resolves them
	ruleName := rules.RulesetB
	if strings.EqualFold(cfg.DefaultRuleName, rules.RulesetA) {
		ruleName = rules.RulesetA
	}

	critical := cfg.DefaultCriticalThreshold
	if critical == 0 {
		critical = rules.DefaultCriticalThreshold
	}

	fumble := cfg.DefaultFumbleThreshold
	if fumble == 0 {
		fumble = rules.DefaultFumbleThreshold
	}

	return &redisRepository{
		client:          cfg.RedisClient,
		defaultRuleName: ruleName,
		defaultCritical: rules.ClampCriticalThreshold(critical),
		defaultFumble:   rules.ClampFumbleThreshold(fumble),
	}, nil
}

// GetSettings retrieves a user's settings, creating defaults on first access
func (r *redisRepository) GetSettings(ctx context.Context, input *GetSettingsInput) (*models.UserSettings, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("user ID is required")
	}

	settings, err := r.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if settings != nil {
		return settings, nil
	}

	// First access creates persisted defaults
	settings = r.defaultSettings(input.UserID)
	if err := r.save(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// SetRule updates the parts of the rule configuration present in the input
func (r *redisRepository) SetRule(ctx context.Context, input *SetRuleInput) (*models.UserSettings, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("user ID is required")
	}

	settings, err := r.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = r.defaultSettings(input.UserID)
	}

	if input.RuleName != "" {
		settings.RuleName = input.RuleName
	}

	// Out-of-range thresholds are clamped instead of rejected, so the
	// stored values always match the ones the rule engine applies
	if input.CriticalThreshold != 0 {
		settings.CriticalThreshold = rules.ClampCriticalThreshold(input.CriticalThreshold)
	}

	if input.FumbleThreshold != 0 {
		settings.FumbleThreshold = rules.ClampFumbleThreshold(input.FumbleThreshold)
	}

	if err := r.save(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// SetActiveCharacter points the user at one of their characters
func (r *redisRepository) SetActiveCharacter(ctx context.Context, input *SetActiveCharacterInput) (*models.UserSettings, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("user ID is required")
	}

	settings, err := r.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = r.defaultSettings(input.UserID)
	}

	settings.ActiveCharacter = input.CharacterName

	if err := r.save(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// load fetches stored settings, returning nil without error when the
// user has none yet
func (r *redisRepository) load(ctx context.Context, userID string) (*models.UserSettings, error) {
	key := fmt.Sprintf("%s%s", settingsKeyPrefix, userID)

	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	var settings models.UserSettings
	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return &settings, nil
}

func (r *redisRepository) save(ctx context.Context, settings *models.UserSettings) error {
	settings.UpdatedAt = time.Now()

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	key := fmt.Sprintf("%s%s", settingsKeyPrefix, settings.UserID)
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

func (r *redisRepository) defaultSettings(userID string) *models.UserSettings {
	return &models.UserSettings{
		UserID:            userID,
		RuleName:          r.defaultRuleName,
		CriticalThreshold: r.defaultCritical,
		FumbleThreshold:   r.defaultFumble,
	}
}
