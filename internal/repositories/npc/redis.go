package npc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/rollkeeper/rollkeeper/internal/models"
)

const (
	// Key prefixes for Redis
	npcKeyPrefix          = "npc:"
	channelIndexKeyPrefix = "npc_index:"
	templateKeyPrefix     = "npc_template:"
	templateIndexKey      = "npc_template_index"
)

var (
	// ErrNPCNotFound is returned when a channel NPC is not found
	ErrNPCNotFound = errors.New("npc not found")

	// ErrTemplateNotFound is returned when a template is not found
	ErrTemplateNotFound = errors.New("npc template not found")

	// ErrBuiltinTemplate is returned when a write targets a builtin
	// template name
	ErrBuiltinTemplate = errors.New("builtin templates cannot be modified")
)

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed NPC repository
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

// SaveNPC persists an NPC, inserting or replacing by channel and name
func (r *redisRepository) SaveNPC(ctx context.Context, input *SaveNPCInput) error {
	if input == nil || input.NPC == nil {
		return errors.New("input and npc cannot be nil")
	}

	npc := input.NPC

	if npc.ChannelID == "" {
		return errors.New("npc channel ID cannot be empty")
	}

	if npc.Name == "" {
		return errors.New("npc name cannot be empty")
	}

	// Marshal the NPC to JSON
	npcJSON, err := json.Marshal(npc)
	if err != nil {
		return fmt.Errorf("failed to marshal npc: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Store the NPC
	pipe.Set(ctx, npcKey(npc.ChannelID, npc.Name), npcJSON, 0)

	// Index it under its channel for listing
	pipe.SAdd(ctx, channelIndexKey(npc.ChannelID), npc.Name)

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save npc: %w", err)
	}

	return nil
}

// GetNPC retrieves a channel's NPC by name
func (r *redisRepository) GetNPC(ctx context.Context, input *GetNPCInput) (*models.NPC, error) {
	if input == nil || input.ChannelID == "" || input.Name == "" {
		return nil, errors.New("channel ID and name are required")
	}

	data, err := r.client.Get(ctx, npcKey(input.ChannelID, input.Name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNPCNotFound
		}
		return nil, fmt.Errorf("failed to get npc: %w", err)
	}

	var npc models.NPC
	if err := json.Unmarshal([]byte(data), &npc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal npc: %w", err)
	}

	return &npc, nil
}

// ListNPCs retrieves all NPCs in a channel
func (r *redisRepository) ListNPCs(ctx context.Context, input *ListNPCsInput) (*ListNPCsOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	names, err := r.client.SMembers(ctx, channelIndexKey(input.ChannelID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list npcs: %w", err)
	}

	sort.Strings(names)

	// Fetch every NPC in one round trip
	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(names))
	for _, name := range names {
		commands = append(commands, pipe.Get(ctx, npcKey(input.ChannelID, name)))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to fetch npcs: %w", err)
	}

	output := &ListNPCsOutput{
		NPCs: make([]*models.NPC, 0, len(names)),
	}

	for _, cmd := range commands {
		data, err := cmd.Result()
		if err != nil {
			// Index entries without a record are stale; skip them
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to fetch npc: %w", err)
		}

		var npc models.NPC
		if err := json.Unmarshal([]byte(data), &npc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal npc: %w", err)
		}

		output.NPCs = append(output.NPCs, &npc)
	}

	return output, nil
}

// DeleteNPC removes a channel's NPC by name
func (r *redisRepository) DeleteNPC(ctx context.Context, input *DeleteNPCInput) error {
	if input == nil || input.ChannelID == "" || input.Name == "" {
		return errors.New("channel ID and name are required")
	}

	exists, err := r.client.Exists(ctx, npcKey(input.ChannelID, input.Name)).Result()
	if err != nil {
		return fmt.Errorf("failed to check npc: %w", err)
	}

	if exists == 0 {
		return ErrNPCNotFound
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, npcKey(input.ChannelID, input.Name))
	pipe.SRem(ctx, channelIndexKey(input.ChannelID), input.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete npc: %w", err)
	}

	return nil
}

// ClearChannel removes every NPC in a channel
func (r *redisRepository) ClearChannel(ctx context.Context, input *ClearChannelInput) (*ClearChannelOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	names, err := r.client.SMembers(ctx, channelIndexKey(input.ChannelID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list npcs: %w", err)
	}

	if len(names) == 0 {
		return &ClearChannelOutput{}, nil
	}

	pipe := r.client.Pipeline()
	for _, name := range names {
		pipe.Del(ctx, npcKey(input.ChannelID, name))
	}
	pipe.Del(ctx, channelIndexKey(input.ChannelID))

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear npcs: %w", err)
	}

	return &ClearChannelOutput{Removed: len(names)}, nil
}

// SaveTemplate persists a custom NPC template; builtin names are
// rejected
func (r *redisRepository) SaveTemplate(ctx context.Context, input *SaveTemplateInput) error {
	if input == nil || input.Template == nil {
		return errors.New("input and template cannot be nil")
	}

	tmpl := input.Template

	if tmpl.Name == "" {
		return errors.New("template name cannot be empty")
	}

	if builtinTemplate(tmpl.Name) != nil {
		return ErrBuiltinTemplate
	}

	tmpl.Builtin = false

	tmplJSON, err := json.Marshal(tmpl)
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, templateKey(tmpl.Name), tmplJSON, 0)
	pipe.SAdd(ctx, templateIndexKey, tmpl.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}

	return nil
}

// GetTemplate retrieves a template by name, builtin or custom
func (r *redisRepository) GetTemplate(ctx context.Context, input *GetTemplateInput) (*models.NPCTemplate, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("template name is required")
	}

	// Builtins take precedence and never live in Redis
	if tmpl := builtinTemplate(input.Name); tmpl != nil {
		return tmpl, nil
	}

	data, err := r.client.Get(ctx, templateKey(input.Name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	var tmpl models.NPCTemplate
	if err := json.Unmarshal([]byte(data), &tmpl); err != nil {
		return nil, fmt.Errorf("failed to unmarshal template: %w", err)
	}

	return &tmpl, nil
}

// ListTemplates retrieves builtin templates followed by custom ones
func (r *redisRepository) ListTemplates(ctx context.Context, input *ListTemplatesInput) (*ListTemplatesOutput, error) {
	names, err := r.client.SMembers(ctx, templateIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	sort.Strings(names)

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(names))
	for _, name := range names {
		commands = append(commands, pipe.Get(ctx, templateKey(name)))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to fetch templates: %w", err)
	}

	output := &ListTemplatesOutput{
		Templates: models.BuiltinTemplates(),
	}

	for _, cmd := range commands {
		data, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to fetch template: %w", err)
		}

		var tmpl models.NPCTemplate
		if err := json.Unmarshal([]byte(data), &tmpl); err != nil {
			return nil, fmt.Errorf("failed to unmarshal template: %w", err)
		}

		output.Templates = append(output.Templates, &tmpl)
	}

	return output, nil
}

// DeleteTemplate removes a custom template; builtin names are rejected
func (r *redisRepository) DeleteTemplate(ctx context.Context, input *DeleteTemplateInput) error {
	if input == nil || input.Name == "" {
		return errors.New("template name is required")
	}

	if builtinTemplate(input.Name) != nil {
		return ErrBuiltinTemplate
	}

	exists, err := r.client.Exists(ctx, templateKey(input.Name)).Result()
	if err != nil {
		return fmt.Errorf("failed to check template: %w", err)
	}

	if exists == 0 {
		return ErrTemplateNotFound
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, templateKey(input.Name))
	pipe.SRem(ctx, templateIndexKey, input.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	return nil
}

// builtinTemplate matches builtin templates by name, ignoring case
func builtinTemplate(name string) *models.NPCTemplate {
	for _, tmpl := range models.BuiltinTemplates() {
		if strings.EqualFold(tmpl.Name, name) {
			return tmpl
		}
	}

	return nil
}

func npcKey(channelID, name string) string {
	return fmt.Sprintf("%s%s:%s", npcKeyPrefix, channelID, name)
}

func channelIndexKey(channelID string) string {
	return fmt.Sprintf("%s%s", channelIndexKeyPrefix, channelID)
}

func templateKey(name string) string {
	return fmt.Sprintf("%s%s", templateKeyPrefix, name)
}
