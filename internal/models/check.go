package models

import (
	"strings"
	"time"
)

// CheckKind identifies what a pending check resolves when a user
// clicks its button.
type CheckKind string

const (
	// CheckKindSkill is a group skill check
	CheckKindSkill CheckKind = "skill"

	// CheckKindSanity is a group sanity check
	CheckKindSanity CheckKind = "sanity"

	// CheckKindOpposed is a two-sided opposed check
	CheckKindOpposed CheckKind = "opposed"

	// CheckKindDamage is a damage confirmation
	CheckKindDamage CheckKind = "damage"

	// CheckKindConstitution is a major-wound constitution check
	CheckKindConstitution CheckKind = "constitution"
)

// TargetKind distinguishes player characters from channel NPCs.
type TargetKind string

const (
	// TargetKindPlayer targets a user's active character
	TargetKindPlayer TargetKind = "player"

	// TargetKindNPC targets a channel NPC by name
	TargetKindNPC TargetKind = "npc"
)

// PendingCheck is an interactive check waiting for button clicks.
type PendingCheck struct {
	// ID is the short identifier embedded in button custom IDs
	ID string

	// Kind selects which payload below is set
	Kind CheckKind

	// ChannelID is the channel the check was posted in
	ChannelID string

	// CreatorID is the user who started the check
	CreatorID string

	// CreatedAt is when the check was created; checks expire after a
	// store-configured age
	CreatedAt time.Time

	// CompletedUsers tracks users who have already rolled on group
	// checks, so each user resolves at most once
	CompletedUsers map[string]bool

	// Skill is set for CheckKindSkill
	Skill *SkillCheckData

	// Sanity is set for CheckKindSanity
	Sanity *SanityCheckData

	// Opposed is set for CheckKindOpposed
	Opposed *OpposedCheckData

	// Damage is set for CheckKindDamage
	Damage *DamageCheckData

	// Constitution is set for CheckKindConstitution
	Constitution *ConstitutionCheckData
}

// SkillCheckData parameterizes a group skill check. Each clicker
// rolls against the named skill on their own active character.
type SkillCheckData struct {
	// SkillName is the skill to test
	SkillName string

	// Target overrides each character's own value when greater than
	// zero
	Target int
}

// SanityCheckData parameterizes a group sanity check.
type SanityCheckData struct {
	// SuccessExpression is the sanity loss on a successful roll, as a
	// number or dice formula
	SuccessExpression string

	// FailureExpression is the sanity loss on a failed roll
	FailureExpression string
}

// OpposedSide is one participant in an opposed check.
type OpposedSide struct {
	// UserID is the participant's user ID, or an "npc:<name>:<channel>"
	// marker for channel NPCs
	UserID string

	// SkillName is the skill this side rolls
	SkillName string

	// Bonus and Penalty are bonus and penalty die counts for the roll
	Bonus   int
	Penalty int

	// Resolved reports whether this side has rolled
	Resolved bool

	// Roll, Target and Level record the percentile result once the
	// side has resolved
	Roll   int
	Target int
	Level  string

	// LevelRank orders success levels for the winner comparison
	LevelRank int
}

// OpposedCheckData holds both sides of an opposed check.
type OpposedCheckData struct {
	// Initiator is the side that started the check
	Initiator OpposedSide

	// Target is the challenged side
	Target OpposedSide
}

// BothResolved reports whether the opposed check is ready for a
// winner comparison.
func (d *OpposedCheckData) BothResolved() bool {
	return d.Initiator.Resolved && d.Target.Resolved
}

// Side returns the side belonging to the given user ID.
func (d *OpposedCheckData) Side(userID string) (*OpposedSide, bool) {
	if d.Initiator.UserID == userID {
		return &d.Initiator, true
	}

	if d.Target.UserID == userID {
		return &d.Target, true
	}

	return nil, false
}

// OpposedNPCID returns the side marker used when a channel NPC holds
// one side of an opposed check.
func OpposedNPCID(name, channelID string) string {
	return "npc:" + name + ":" + channelID
}

// ParseOpposedNPCID extracts the NPC name from a side marker. The
// second return is false for regular user IDs.
func ParseOpposedNPCID(id string) (string, bool) {
	parts := strings.SplitN(id, ":", 3)
	if len(parts) != 3 || parts[0] != "npc" {
		return "", false
	}

	return parts[1], true
}

// DamageCheckData parameterizes a pending damage confirmation.
type DamageCheckData struct {
	// InitiatorID is the only user allowed to confirm
	InitiatorID string

	// TargetKind selects between a player character and a channel NPC
	TargetKind TargetKind

	// TargetID is the target user ID, or the NPC name for NPCs
	TargetID string

	// Expression is the damage amount as a number or dice formula
	Expression string
}

// ConstitutionCheckData parameterizes a major-wound constitution
// check.
type ConstitutionCheckData struct {
	// TargetID is the only user allowed to roll
	TargetID string

	// TargetName is the character name shown in the prompt
	TargetName string

	// Damage is the wound that triggered the check
	Damage int

	// MaxHP is the target's maximum hit points when wounded
	MaxHP int
}
