package npc

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/rollkeeper/rollkeeper/internal/repositories/npc Repository

import (
	"context"

	"github.com/rollkeeper/rollkeeper/internal/models"
)

// Repository defines the interface for channel NPC and NPC template
// persistence
type Repository interface {
	// SaveNPC persists an NPC, inserting or replacing by channel and
	// name
	SaveNPC(ctx context.Context, input *SaveNPCInput) error

	// GetNPC retrieves a channel's NPC by name
	GetNPC(ctx context.Context, input *GetNPCInput) (*models.NPC, error)

	// ListNPCs retrieves all NPCs in a channel
	ListNPCs(ctx context.Context, input *ListNPCsInput) (*ListNPCsOutput, error)

	// DeleteNPC removes a channel's NPC by name
	DeleteNPC(ctx context.Context, input *DeleteNPCInput) error

	// ClearChannel removes every NPC in a channel
	ClearChannel(ctx context.Context, input *ClearChannelInput) (*ClearChannelOutput, error)

	// SaveTemplate persists a custom NPC template; builtin names are
	// rejected
	SaveTemplate(ctx context.Context, input *SaveTemplateInput) error

	// GetTemplate retrieves a template by name, builtin or custom
	GetTemplate(ctx context.Context, input *GetTemplateInput) (*models.NPCTemplate, error)

	// ListTemplates retrieves builtin templates followed by custom ones
	ListTemplates(ctx context.Context, input *ListTemplatesInput) (*ListTemplatesOutput, error)

	// DeleteTemplate removes a custom template; builtin names are
	// rejected
	DeleteTemplate(ctx context.Context, input *DeleteTemplateInput) error
}
