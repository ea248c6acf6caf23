package game

import (
	"github.com/rollkeeper/rollkeeper/internal/dice"
	"github.com/rollkeeper/rollkeeper/internal/models"
	characterRepo "github.com/rollkeeper/rollkeeper/internal/repositories/character"
	checksRepo "github.com/rollkeeper/rollkeeper/internal/repositories/checks"
	gamelogRepo "github.com/rollkeeper/rollkeeper/internal/repositories/gamelog"
	npcRepo "github.com/rollkeeper/rollkeeper/internal/repositories/npc"
	settingsRepo "github.com/rollkeeper/rollkeeper/internal/repositories/settings"
	"github.com/rollkeeper/rollkeeper/internal/rules"
	"github.com/rollkeeper/rollkeeper/internal/services/burst"
	"github.com/rollkeeper/rollkeeper/internal/services/messaging"
)

// MaxTimes caps how often a roll or check command repeats
const MaxTimes = 10

// MadnessLossThreshold is the single sanity loss that triggers a bout
// of temporary madness
const MadnessLossThreshold = 5

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	CharacterRepo characterRepo.Repository
	NPCRepo       npcRepo.Repository
	CheckRepo     checksRepo.Repository
	SettingsRepo  settingsRepo.Repository
	GameLogRepo   gamelogRepo.Repository

	// Service dependencies
	BurstService     burst.Service
	MessagingService messaging.Service
	DiceRoller       dice.Roller
}

// RollInput contains parameters for a plain dice roll
type RollInput struct {
	// UserID is the Discord user ID of the roller
	UserID string

	// UserName is the display name of the roller
	UserName string

	// ChannelID is the Discord channel the roll happens in
	ChannelID string

	// Expression is the dice formula; empty rolls 1d100
	Expression string

	// Bonus and Penalty are extra-die counts; they apply only when
	// the expression is a plain percentile roll
	Bonus   int
	Penalty int

	// Times repeats the roll, clamped to 1-10
	Times int

	// Hidden rolls stay out of the channel log
	Hidden bool
}

// RollOutput contains the result of a plain dice roll
type RollOutput struct {
	// Expression is the normalized formula that was rolled
	Expression string

	// Details holds one rendered line per roll
	Details []string

	// Totals holds the final value of each roll
	Totals []int
}

// RollCheckInput contains parameters for a self skill check rolled
// directly from a command
type RollCheckInput struct {
	UserID    string
	UserName  string
	ChannelID string

	// SkillName is the skill to test
	SkillName string

	// Target overrides the active character's value when greater
	// than zero
	Target int

	Bonus   int
	Penalty int

	// Times repeats the check, clamped to 1-10
	Times int

	// Hidden checks stay out of the channel log
	Hidden bool
}

// SkillRoll is one graded percentile roll
type SkillRoll struct {
	// Detail is the chat rendering of the roll
	Detail string

	// Result is the graded outcome
	Result *rules.CheckResult
}

// RollCheckOutput contains the result of a self skill check
type RollCheckOutput struct {
	SkillName string
	Target    int
	RuleName  string
	Rolls     []*SkillRoll
}

// CreateSkillCheckInput posts a group skill check for the channel
type CreateSkillCheckInput struct {
	ChannelID   string
	CreatorID   string
	CreatorName string

	// SkillName is the skill everyone rolls
	SkillName string

	// Target overrides each character's own value when greater than
	// zero
	Target int
}

// CreateSkillCheckOutput contains the stored group skill check
type CreateSkillCheckOutput struct {
	CheckID   string
	SkillName string
	Target    int
}

// RollSkillCheckInput is a button press on a group skill check
type RollSkillCheckInput struct {
	CheckID  string
	UserID   string
	UserName string
}

// RollSkillCheckOutput contains the presser's graded roll
type RollSkillCheckOutput struct {
	SkillName string
	Detail    string
	Result    *rules.CheckResult

	// Flavor is extra commentary for criticals and fumbles, empty
	// otherwise
	Flavor string
}

// RollSanityInput contains parameters for an immediate sanity check
// against the caller's active character
type RollSanityInput struct {
	UserID    string
	UserName  string
	ChannelID string

	// SuccessExpression is the sanity loss on a success, as a number
	// or dice formula
	SuccessExpression string

	// FailureExpression is the sanity loss on a failure
	FailureExpression string
}

// MadnessEpisode describes a bout of temporary insanity
type MadnessEpisode struct {
	// Roll is the 1d10 symptom draw
	Roll int

	// Symptom is the rolled table entry
	Symptom models.MadnessSymptom

	// Duration is how many rounds the episode lasts
	Duration int
}

// SanityResult is the outcome of a resolved sanity check
type SanityResult struct {
	CharacterName string

	// Sanity is the value the roll was made against
	Sanity int

	Roll    int
	Detail  string
	Success bool

	// Loss is the sanity actually lost
	Loss int

	// LossExpression is the formula the loss came from
	LossExpression string

	NewSanity int

	// Madness is set when a single loss reaches five
	Madness *MadnessEpisode

	// PermanentInsanity is set when sanity falls to zero
	PermanentInsanity bool
}

// RollSanityOutput contains the result of an immediate sanity check
type RollSanityOutput struct {
	Result *SanityResult
}

// CreateSanityCheckInput posts a group sanity check for the channel
type CreateSanityCheckInput struct {
	ChannelID         string
	CreatorID         string
	CreatorName       string
	SuccessExpression string
	FailureExpression string
}

// CreateSanityCheckOutput contains the stored group sanity check
type CreateSanityCheckOutput struct {
	CheckID           string
	SuccessExpression string
	FailureExpression string
}

// RollSanityCheckInput is a button press on a group sanity check
type RollSanityCheckInput struct {
	CheckID  string
	UserID   string
	UserName string
}

// RollSanityCheckOutput contains the presser's resolved sanity check
type RollSanityCheckOutput struct {
	Result *SanityResult
}

// CreateOpposedCheckInput starts an opposed check between the
// initiator and either another user or a channel NPC
type CreateOpposedCheckInput struct {
	ChannelID     string
	InitiatorID   string
	InitiatorName string

	// TargetID is the challenged user. Leave empty when NPCName is
	// set.
	TargetID string

	// NPCName challenges a channel NPC instead of a user
	NPCName string

	// NPCSkillValue overrides the NPC sheet's skill value when
	// greater than zero
	NPCSkillValue int

	// InitiatorSkill names the initiator's skill. An empty
	// TargetSkill reuses it for the other side.
	InitiatorSkill string
	TargetSkill    string

	InitiatorBonus   int
	InitiatorPenalty int
	TargetBonus      int
	TargetPenalty    int
}

// OpposedSideResult is one side's recorded roll
type OpposedSideResult struct {
	UserID    string
	SkillName string
	Target    int
	Roll      int
	Detail    string
	Level     rules.SuccessLevel
}

// CreateOpposedCheckOutput contains the stored opposed check
type CreateOpposedCheckOutput struct {
	CheckID        string
	InitiatorSkill string
	TargetSkill    string

	// TargetID is the challenged user ID, empty for NPC targets
	TargetID string

	// NPCName is the challenged NPC, empty for user targets
	NPCName string

	// NPCResult is the NPC side's immediate roll, nil for user
	// targets
	NPCResult *OpposedSideResult
}

// RollOpposedCheckInput is a button press on an opposed check
type RollOpposedCheckInput struct {
	CheckID  string
	UserID   string
	UserName string
}

// OpposedOutcome compares both sides once the check is complete
type OpposedOutcome struct {
	Initiator *OpposedSideResult
	Target    *OpposedSideResult

	InitiatorName string
	TargetName    string

	// SkillDisplay is the contested skill, or "a vs b" when the
	// sides rolled different skills
	SkillDisplay string

	// WinnerID and WinnerName identify the higher-ranked side; both
	// are empty on a tie
	WinnerID   string
	WinnerName string
	Tie        bool
}

// RollOpposedCheckOutput contains one side's roll and, once both
// sides are in, the winner comparison
type RollOpposedCheckOutput struct {
	// Side is the presser's recorded roll
	Side *OpposedSideResult

	// Complete reports whether both sides have now rolled
	Complete bool

	// Outcome is the winner comparison, set only when Complete
	Outcome *OpposedOutcome
}

// CreateDamageCheckInput posts a damage confirmation for its
// initiator
type CreateDamageCheckInput struct {
	ChannelID     string
	InitiatorID   string
	InitiatorName string

	// TargetUserID is the damaged user. Leave empty when NPCName is
	// set.
	TargetUserID string

	// NPCName damages a channel NPC instead of a user
	NPCName string

	// Expression is the damage as a number or dice formula
	Expression string
}

// CreateDamageCheckOutput contains the stored damage confirmation
type CreateDamageCheckOutput struct {
	CheckID    string
	TargetKind models.TargetKind
	TargetID   string
	TargetName string
	Expression string
}

// ConfirmDamageInput is the initiator's button press applying the
// damage
type ConfirmDamageInput struct {
	CheckID  string
	UserID   string
	UserName string
}

// ConstitutionResult is a resolved major-wound constitution check
type ConstitutionResult struct {
	TargetName string

	// Value is the constitution the roll was made against
	Value int

	Roll    int
	Detail  string
	Success bool

	// Damage is the wound that forced the check
	Damage int
}

// ConfirmDamageOutput contains the applied damage and its follow-up
type ConfirmDamageOutput struct {
	TargetKind models.TargetKind
	TargetName string
	Expression string
	Damage     int

	// OldHP, NewHP and MaxHP are zeroed for NPC targets, whose exact
	// hit points stay hidden
	OldHP int
	NewHP int
	MaxHP int

	HealthLevel       messaging.HealthLevel
	HealthDescription string
	HealthBar         string
	HiddenHealth      bool

	// MajorWound reports damage of at least half the target's
	// maximum hit points
	MajorWound bool

	// ConCheckID is the stored constitution check for user targets
	ConCheckID string

	// ConResult is the immediate constitution check for NPC targets
	ConResult *ConstitutionResult
}

// RollConstitutionCheckInput is the wounded target's button press
type RollConstitutionCheckInput struct {
	CheckID  string
	UserID   string
	UserName string
}

// RollConstitutionCheckOutput contains the resolved constitution
// check
type RollConstitutionCheckOutput struct {
	Result *ConstitutionResult
}

// ResolveBurstFireInput resolves a volley of automatic fire
type ResolveBurstFireInput struct {
	ChannelID string
	UserID    string
	UserName  string

	// NPCName is the shooting NPC; its Firearms skill supplies the
	// target unless SkillValue overrides it
	NPCName string

	// SkillValue is an explicit firearm skill
	SkillValue int

	// Bursts is the volley length, clamped to 1-10
	Bursts int

	EnvBonus   int
	EnvPenalty int
}

// ResolveBurstFireOutput contains the resolved volley
type ResolveBurstFireOutput struct {
	NPCName  string
	RuleName string
	Volley   *burst.ResolveOutput
}

// ImportCharacterInput imports a character sheet from JSON
type ImportCharacterInput struct {
	UserID string

	// Data is the raw JSON sheet
	Data []byte
}

// ImportCharacterOutput contains the imported sheet
type ImportCharacterOutput struct {
	Character *models.Character

	// Activated reports that the imported sheet became the active
	// one
	Activated bool
}

// ListCharactersInput lists a user's character sheets
type ListCharactersInput struct {
	UserID string
}

// ListCharactersOutput contains the user's character sheets
type ListCharactersOutput struct {
	Characters []*models.Character

	// ActiveName is the user's active character, empty when none
	ActiveName string
}

// SwitchCharacterInput activates one of the user's characters
type SwitchCharacterInput struct {
	UserID string
	Name   string
}

// SwitchCharacterOutput contains the newly active character
type SwitchCharacterOutput struct {
	Character *models.Character
}

// ShowCharacterInput fetches a sheet for display
type ShowCharacterInput struct {
	UserID string

	// Name selects a sheet; empty shows the active character
	Name string
}

// ShowCharacterOutput contains the requested sheet
type ShowCharacterOutput struct {
	Character *models.Character

	// Active reports whether the shown sheet is the active one
	Active bool
}

// DeleteCharacterInput removes one of the user's characters
type DeleteCharacterInput struct {
	UserID string
	Name   string
}

// DeleteCharacterOutput confirms the removal
type DeleteCharacterOutput struct {
	Name string

	// Deactivated reports that the deleted sheet was the active one
	Deactivated bool
}

// AdjustStatInput applies hp/mp/san maintenance to the active
// character
type AdjustStatInput struct {
	UserID    string
	UserName  string
	ChannelID string

	// Stat is hp, mp or san
	Stat string

	// Op is "+", "-" or "="
	Op string

	// Value is the non-negative operand
	Value int
}

// AdjustStatOutput contains the stat change
type AdjustStatOutput struct {
	CharacterName string
	Stat          string
	Old           int
	New           int
	Max           int
}

// GenerateNPCInput creates a channel NPC from a template
type GenerateNPCInput struct {
	ChannelID string
	UserID    string
	UserName  string

	// Name is the NPC's display name
	Name string

	// TemplateName selects the template; empty uses the default
	TemplateName string
}

// GenerateNPCOutput contains the generated NPC
type GenerateNPCOutput struct {
	NPC *models.NPC
}

// ListNPCsInput lists a channel's NPCs
type ListNPCsInput struct {
	ChannelID string
}

// ListNPCsOutput contains the channel's NPCs
type ListNPCsOutput struct {
	NPCs []*models.NPC
}

// ShowNPCInput fetches a channel NPC for display
type ShowNPCInput struct {
	ChannelID string
	Name      string
}

// ShowNPCOutput contains the requested NPC
type ShowNPCOutput struct {
	NPC *models.NPC
}

// DeleteNPCInput removes a channel NPC
type DeleteNPCInput struct {
	ChannelID string
	Name      string
}

// DeleteNPCOutput confirms the removal
type DeleteNPCOutput struct {
	Name string
}

// ClearNPCsInput removes every NPC in a channel
type ClearNPCsInput struct {
	ChannelID string
}

// ClearNPCsOutput reports how many NPCs were removed
type ClearNPCsOutput struct {
	Removed int
}

// SaveNPCTemplateInput saves a custom generation template
type SaveNPCTemplateInput struct {
	UserID      string
	Name        string
	Description string

	// Stats maps stat names to value expressions: a fixed number, an
	// inclusive "a-b" range, or a dice formula whose total is
	// multiplied by five. Attribute names are canonicalized; anything
	// else becomes a skill.
	Stats map[string]string
}

// SaveNPCTemplateOutput contains the stored template
type SaveNPCTemplateOutput struct {
	Template *models.NPCTemplate
}

// ListNPCTemplatesInput lists builtin and custom templates
type ListNPCTemplatesInput struct {
}

// ListNPCTemplatesOutput contains the templates
type ListNPCTemplatesOutput struct {
	Templates []*models.NPCTemplate
}

// DeleteNPCTemplateInput removes a custom template
type DeleteNPCTemplateInput struct {
	Name string
}

// DeleteNPCTemplateOutput confirms the removal
type DeleteNPCTemplateOutput struct {
	Name string
}

// GetRuleInput fetches a user's rule settings
type GetRuleInput struct {
	UserID string
}

// GetRuleOutput contains the user's rule settings
type GetRuleOutput struct {
	Settings *models.UserSettings
}

// SetRuleInput updates the parts of the rule configuration that are
// set
type SetRuleInput struct {
	UserID string

	// RuleName replaces the ruleset when non-empty; "A" or "B"
	RuleName string

	// CriticalThreshold replaces the critical threshold when
	// non-zero
	CriticalThreshold int

	// FumbleThreshold replaces the fumble threshold when non-zero
	FumbleThreshold int
}

// SetRuleOutput contains the updated settings
type SetRuleOutput struct {
	Settings *models.UserSettings
}

// ApplyRulePresetInput replaces the rule configuration with a named
// preset
type ApplyRulePresetInput struct {
	UserID string

	// Preset is standard, strict or classic
	Preset string
}

// ApplyRulePresetOutput contains the applied settings
type ApplyRulePresetOutput struct {
	Preset   string
	Settings *models.UserSettings
}

// GetGameLogInput fetches a channel's recent log entries
type GetGameLogInput struct {
	ChannelID string

	// Limit caps the returned entries; zero uses the store default
	Limit int
}

// GetGameLogOutput contains the recent entries, newest first
type GetGameLogOutput struct {
	Entries []*models.LogEntry
}

// ClearGameLogInput wipes a channel's log
type ClearGameLogInput struct {
	ChannelID string
}

// ClearGameLogOutput confirms the wipe
type ClearGameLogOutput struct {
}

// SweepExpiredChecksOutput reports a garbage-collection pass over
// pending checks
type SweepExpiredChecksOutput struct {
	// Removed counts the checks dropped by this sweep
	Removed int

	// Live counts the checks still pending afterwards
	Live int
}
