package burst

import (
	"github.com/rollkeeper/rollkeeper/internal/dice"
	"github.com/rollkeeper/rollkeeper/internal/rules"
)

// Config holds the dependencies for the burst fire service
type Config struct {
	// DiceRoller draws the percentile dice
	DiceRoller dice.Roller
}

// Volley bounds
const (
	MinBursts = 1
	MaxBursts = 10
)

// Tier is the difficulty grade a burst must reach before its bullets land
type Tier int

const (
	// TierNone grades against the full firearm skill
	TierNone Tier = iota
	// TierHard grades against half the skill
	TierHard
	// TierExtreme grades against a fifth of the skill
	TierExtreme
	// TierCriticalOnly grades against 1, so only a critical lands
	TierCriticalOnly
)

// String renders the tier as the difficulty label shown in chat
func (t Tier) String() string {
	switch t {
	case TierHard:
		return "Hard"
	case TierExtreme:
		return "Extreme"
	case TierCriticalOnly:
		return "Critical"
	default:
		return "Regular"
	}
}

// ResolveInput describes one volley of automatic fire
type ResolveInput struct {
	// Target is the shooter's firearm skill
	Target int

	// Bursts is how many bursts the volley contains, clamped to 1-10
	Bursts int

	// EnvBonus is the count of situational bonus dice
	EnvBonus int

	// EnvPenalty is the count of situational penalty dice
	EnvPenalty int

	// Rule grades each burst. Nil uses the default ruleset.
	Rule rules.Rule
}

// BurstResult is the outcome of a single burst
type BurstResult struct {
	// Index is the 1-based position of the burst in the volley
	Index int

	// PenaltyDice is the recoil penalty this burst carries
	PenaltyDice int

	// Tier is the difficulty the burst was graded at
	Tier Tier

	// Target is the effective number the roll was graded against
	Target int

	// AutoFailed marks bursts past the sustainable limit. No dice
	// are drawn for them.
	AutoFailed bool

	// Bonus is the bonus dice the roll was made with after
	// cancelling against penalties
	Bonus int

	// Penalty is the penalty dice the roll was made with after
	// cancelling against bonuses
	Penalty int

	// Roll is the percentile value
	Roll int

	// Detail is the chat rendering of the roll
	Detail string

	// Level is the graded outcome
	Level rules.SuccessLevel

	// Success reports whether the burst landed at its tier
	Success bool

	// Hits is how many bullets struck
	Hits int

	// Penetrating is how many of the hits punch through armor
	Penetrating int
}

// ResolveOutput tallies a resolved volley
type ResolveOutput struct {
	// Target is the shooter's firearm skill
	Target int

	// BulletsPerBurst is how many bullets each burst fires
	BulletsPerBurst int

	// Bursts holds each burst outcome in firing order
	Bursts []*BurstResult

	// TotalHits counts every bullet that struck
	TotalHits int

	// TotalPenetrating counts the hits that punch through armor
	TotalPenetrating int

	// TotalNormal counts the hits that do not
	TotalNormal int
}
