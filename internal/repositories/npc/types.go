package npc

import (
	"github.com/redis/go-redis/v9"

	"github.com/rollkeeper/rollkeeper/internal/models"
)

// Config holds configuration for the Redis NPC repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

type SaveNPCInput struct {
	NPC *models.NPC
}

type GetNPCInput struct {
	ChannelID string
	Name      string
}

type ListNPCsInput struct {
	ChannelID string
}

type ListNPCsOutput struct {
	NPCs []*models.NPC
}

type DeleteNPCInput struct {
	ChannelID string
	Name      string
}

type ClearChannelInput struct {
	ChannelID string
}

type ClearChannelOutput struct {
	Removed int
}

type SaveTemplateInput struct {
	Template *models.NPCTemplate
}

type GetTemplateInput struct {
	Name string
}

type ListTemplatesInput struct {
}

type ListTemplatesOutput struct {
	Templates []*models.NPCTemplate
}

type DeleteTemplateInput struct {
	Name string
}
