package rules

import (
	"fmt"
	"strings"
)

// Ruleset names
const (
	// RulesetA grades with two tiers: success or failure, plus the extremes
	RulesetA = "A"
	// RulesetB grades with four tiers: Extreme and Hard sit between
	// Critical and Regular
	RulesetB = "B"
)

// Threshold bounds and defaults
const (
	DefaultCriticalThreshold = 5
	DefaultFumbleThreshold   = 96

	MinCriticalThreshold = 1
	MaxCriticalThreshold = 20
	MinFumbleThreshold   = 80
	MaxFumbleThreshold   = 100
)

// SuccessLevel grades a percentile roll against a target
type SuccessLevel string

const (
	SuccessLevelCritical SuccessLevel = "Critical"
	SuccessLevelExtreme  SuccessLevel = "Extreme"
	SuccessLevelHard     SuccessLevel = "Hard"
	SuccessLevelRegular  SuccessLevel = "Regular"
	SuccessLevelFailure  SuccessLevel = "Failure"
	SuccessLevelFumble   SuccessLevel = "Fumble"
)

// Rank orders levels for opposed comparison. Fumble sits strictly below
// Failure, so a fumbling side loses even against a plain failure.
func (l SuccessLevel) Rank() int {
	switch l {
	case SuccessLevelCritical:
		return 4
	case SuccessLevelExtreme:
		return 3
	case SuccessLevelHard:
		return 2
	case SuccessLevelRegular:
		return 1
	case SuccessLevelFumble:
		return -1
	default:
		return 0
	}
}

// IsSuccess reports whether the level counts as any grade of success
func (l SuccessLevel) IsSuccess() bool {
	switch l {
	case SuccessLevelCritical, SuccessLevelExtreme, SuccessLevelHard, SuccessLevelRegular:
		return true
	default:
		return false
	}
}

// CheckResult is the graded outcome of a percentile check
type CheckResult struct {
	// Roll is the percentile value that was rolled
	Roll int
	// Target is the number the roll was graded against
	Target int
	// Level is the graded outcome
	Level SuccessLevel
	// RuleName identifies the ruleset that graded the roll
	RuleName string
}

// IsSuccess reports whether the check succeeded at any level
func (r *CheckResult) IsSuccess() bool {
	return r.Level.IsSuccess()
}

func (r *CheckResult) String() string {
	return fmt.Sprintf("D100=%d/%d [%s]", r.Roll, r.Target, r.Level)
}

// Rule grades a percentile roll against a target number
type Rule interface {
	// Name identifies the ruleset
	Name() string
	// Check grades a roll against a target
	Check(roll, target int) *CheckResult
}

// Config selects and tunes a ruleset
type Config struct {
	// Name selects the ruleset, "A" or "B". Empty or unknown selects B.
	Name string
	// CriticalThreshold is the highest roll graded Critical.
	// Zero means the default of 5; values are clamped to 1-20.
	CriticalThreshold int
	// FumbleThreshold is the lowest roll eligible for Fumble.
	// Zero means the default of 96; values are clamped to 80-100.
	FumbleThreshold int
}

// New builds the configured ruleset with thresholds clamped to their
// legal ranges.
func New(cfg *Config) Rule {
	if cfg == nil {
		cfg = &Config{}
	}

	critical := cfg.CriticalThreshold
	if critical == 0 {
		critical = DefaultCriticalThreshold
	}
	critical = ClampCriticalThreshold(critical)

	fumble := cfg.FumbleThreshold
	if fumble == 0 {
		fumble = DefaultFumbleThreshold
	}
	fumble = ClampFumbleThreshold(fumble)

	if strings.EqualFold(cfg.Name, RulesetA) {
		return &twoTierRule{critical: critical, fumble: fumble}
	}
	return &fourTierRule{critical: critical, fumble: fumble}
}

// twoTierRule knows only success and failure between the extremes
type twoTierRule struct {
	critical int
	fumble   int
}

func (r *twoTierRule) Name() string {
	return RulesetA
}

func (r *twoTierRule) Check(roll, target int) *CheckResult {
	var level SuccessLevel
	switch {
	case roll <= r.critical:
		level = SuccessLevelCritical
	case roll >= r.fumble:
		level = SuccessLevelFumble
	case roll <= target:
		level = SuccessLevelRegular
	default:
		level = SuccessLevelFailure
	}

	return &CheckResult{Roll: roll, Target: target, Level: level, RuleName: r.Name()}
}

// fourTierRule adds Extreme (target/5) and Hard (target/2) grades. The
// fumble band depends on the target: below 50 the configured threshold
// applies, at 50 or above only a straight 100 fumbles.
type fourTierRule struct {
	critical int
	fumble   int
}

func (r *fourTierRule) Name() string {
	return RulesetB
}

func (r *fourTierRule) Check(roll, target int) *CheckResult {
	var level SuccessLevel
	switch {
	case roll <= r.critical:
		level = SuccessLevelCritical
	case (target < 50 && roll >= r.fumble) || (target >= 50 && roll == 100):
		level = SuccessLevelFumble
	case roll <= target/5:
		level = SuccessLevelExtreme
	case roll <= target/2:
		level = SuccessLevelHard
	case roll <= target:
		level = SuccessLevelRegular
	default:
		level = SuccessLevelFailure
	}

	return &CheckResult{Roll: roll, Target: target, Level: level, RuleName: r.Name()}
}

// ClampCriticalThreshold bounds a configured critical threshold to
// its legal range.
func ClampCriticalThreshold(value int) int {
	return clamp(value, MinCriticalThreshold, MaxCriticalThreshold)
}

// ClampFumbleThreshold bounds a configured fumble threshold to its
// legal range.
func ClampFumbleThreshold(value int) int {
	return clamp(value, MinFumbleThreshold, MaxFumbleThreshold)
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
