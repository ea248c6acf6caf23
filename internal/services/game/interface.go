package game

import "context"

// Service defines the interface for game operations
type Service interface {
	// Roll evaluates a dice expression, optionally several times
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// RollCheck rolls a skill check against the caller's own sheet or
	// an explicit target number
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)

	// CreateSkillCheck posts a group skill check the channel can roll
	// against
	CreateSkillCheck(ctx context.Context, input *CreateSkillCheckInput) (*CreateSkillCheckOutput, error)

	// RollSkillCheck resolves one user's press on a group skill check
	RollSkillCheck(ctx context.Context, input *RollSkillCheckInput) (*RollSkillCheckOutput, error)

	// RollSanity resolves an immediate sanity check for the caller
	RollSanity(ctx context.Context, input *RollSanityInput) (*RollSanityOutput, error)

	// CreateSanityCheck posts a group sanity check
	CreateSanityCheck(ctx context.Context, input *CreateSanityCheckInput) (*CreateSanityCheckOutput, error)

	// RollSanityCheck resolves one user's press on a group sanity
	// check
	RollSanityCheck(ctx context.Context, input *RollSanityCheckInput) (*RollSanityCheckOutput, error)

	// CreateOpposedCheck starts an opposed check against a user or a
	// channel NPC
	CreateOpposedCheck(ctx context.Context, input *CreateOpposedCheckInput) (*CreateOpposedCheckOutput, error)

	// RollOpposedCheck resolves one side's press on an opposed check
	RollOpposedCheck(ctx context.Context, input *RollOpposedCheckInput) (*RollOpposedCheckOutput, error)

	// CreateDamageCheck posts a damage confirmation for its initiator
	CreateDamageCheck(ctx context.Context, input *CreateDamageCheckInput) (*CreateDamageCheckOutput, error)

	// ConfirmDamage applies a pending damage check to its target
	ConfirmDamage(ctx context.Context, input *ConfirmDamageInput) (*ConfirmDamageOutput, error)

	// RollConstitutionCheck resolves a major-wound constitution check
	RollConstitutionCheck(ctx context.Context, input *RollConstitutionCheckInput) (*RollConstitutionCheckOutput, error)

	// ResolveBurstFire resolves a volley of automatic fire
	ResolveBurstFire(ctx context.Context, input *ResolveBurstFireInput) (*ResolveBurstFireOutput, error)

	// ImportCharacter imports a JSON character sheet and activates it
	ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error)

	// ListCharacters lists the caller's character sheets
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// SwitchCharacter activates one of the caller's characters
	SwitchCharacter(ctx context.Context, input *SwitchCharacterInput) (*SwitchCharacterOutput, error)

	// ShowCharacter fetches a sheet for display
	ShowCharacter(ctx context.Context, input *ShowCharacterInput) (*ShowCharacterOutput, error)

	// DeleteCharacter removes one of the caller's characters
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// AdjustStat applies +N/-N/=N maintenance to hp, mp or san
	AdjustStat(ctx context.Context, input *AdjustStatInput) (*AdjustStatOutput, error)

	// GenerateNPC creates a channel NPC from a template
	GenerateNPC(ctx context.Context, input *GenerateNPCInput) (*GenerateNPCOutput, error)

	// ListNPCs lists a channel's NPCs
	ListNPCs(ctx context.Context, input *ListNPCsInput) (*ListNPCsOutput, error)

	// ShowNPC fetches a channel NPC for display
	ShowNPC(ctx context.Context, input *ShowNPCInput) (*ShowNPCOutput, error)

	// DeleteNPC removes a channel NPC
	DeleteNPC(ctx context.Context, input *DeleteNPCInput) (*DeleteNPCOutput, error)

	// ClearNPCs removes every NPC in a channel
	ClearNPCs(ctx context.Context, input *ClearNPCsInput) (*ClearNPCsOutput, error)

	// SaveNPCTemplate saves a custom generation template
	SaveNPCTemplate(ctx context.Context, input *SaveNPCTemplateInput) (*SaveNPCTemplateOutput, error)

	// ListNPCTemplates lists builtin and custom templates
	ListNPCTemplates(ctx context.Context, input *ListNPCTemplatesInput) (*ListNPCTemplatesOutput, error)

	// DeleteNPCTemplate removes a custom template
	DeleteNPCTemplate(ctx context.Context, input *DeleteNPCTemplateInput) (*DeleteNPCTemplateOutput, error)

	// GetRule fetches the caller's rule settings
	GetRule(ctx context.Context, input *GetRuleInput) (*GetRuleOutput, error)

	// SetRule updates parts of the caller's rule settings
	SetRule(ctx context.Context, input *SetRuleInput) (*SetRuleOutput, error)

	// ApplyRulePreset replaces the caller's rule settings with a
	// named preset
	ApplyRulePreset(ctx context.Context, input *ApplyRulePresetInput) (*ApplyRulePresetOutput, error)

	// GetGameLog fetches a channel's recent log entries
	GetGameLog(ctx context.Context, input *GetGameLogInput) (*GetGameLogOutput, error)

	// ClearGameLog wipes a channel's log
	ClearGameLog(ctx context.Context, input *ClearGameLogInput) (*ClearGameLogOutput, error)

	// SweepExpiredChecks garbage-collects expired pending checks
	SweepExpiredChecks(ctx context.Context) (*SweepExpiredChecksOutput, error)
}
