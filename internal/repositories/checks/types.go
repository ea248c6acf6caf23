package checks

import (
	"time"

	"github.com/rollkeeper/rollkeeper/internal/common/clock"
	"github.com/rollkeeper/rollkeeper/internal/common/token"
	"github.com/rollkeeper/rollkeeper/internal/models"
)

// Config holds configuration for the in-memory check repository
type Config struct {
	// Clock supplies timestamps; defaults to the system clock
	Clock clock.Clock

	// TokenGenerator mints check IDs; defaults to short UUID tokens
	TokenGenerator token.Generator

	// TTL is how long checks stay clickable before they expire;
	// defaults to DefaultTTL
	TTL time.Duration
}

type CreateSkillCheckInput struct {
	ChannelID string
	CreatorID string
	SkillName string
	Target    int
}

type CreateSanityCheckInput struct {
	ChannelID         string
	CreatorID         string
	SuccessExpression string
	FailureExpression string
}

type OpposedSideInput struct {
	UserID    string
	SkillName string
	Bonus     int
	Penalty   int
}

type CreateOpposedCheckInput struct {
	ChannelID string
	Initiator OpposedSideInput
	Target    OpposedSideInput
}

type CreateDamageCheckInput struct {
	ChannelID   string
	InitiatorID string
	TargetKind  models.TargetKind
	TargetID    string
	Expression  string
}

type CreateConstitutionCheckInput struct {
	ChannelID  string
	CreatorID  string
	TargetID   string
	TargetName string
	Damage     int
	MaxHP      int
}

type GetCheckInput struct {
	CheckID string

	// Kind, when set, requires the stored check to be of that kind
	Kind models.CheckKind
}

type MarkCompletedInput struct {
	CheckID string
	UserID  string
}

type MarkCompletedOutput struct {
	Check *models.PendingCheck

	// AlreadyCompleted indicates the user had rolled before this call
	AlreadyCompleted bool
}

type SetOpposedResultInput struct {
	CheckID   string
	UserID    string
	Roll      int
	Target    int
	Level     string
	LevelRank int
}

type SetOpposedResultOutput struct {
	Check *models.PendingCheck

	// AlreadyResolved indicates the side had a result before this call
	AlreadyResolved bool

	// BothResolved indicates the check is ready for a winner comparison
	BothResolved bool
}

type RemoveCheckInput struct {
	CheckID string
}

type SweepExpiredOutput struct {
	Removed int
}

type StatsOutput struct {
	Total  int
	ByKind map[models.CheckKind]int
}
