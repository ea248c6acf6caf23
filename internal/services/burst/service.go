package burst

import (
	"context"
	"errors"
	"fmt"

	"github.com/rollkeeper/rollkeeper/internal/dice"
	"github.com/rollkeeper/rollkeeper/internal/rules"
)

// service implements the Service interface
type service struct {
	diceRoller dice.Roller
}

// New creates a new burst fire service
func New(cfg *Config) (*service, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DiceRoller == nil {
		return nil, errors.New("dice roller cannot be nil")
	}

	return &service{
		diceRoller: cfg.DiceRoller,
	}, nil
}

// Resolve rolls every burst in a volley and tallies the hits
func (s *service) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Target <= 0 {
		return nil, errors.New("target is required")
	}

	bursts := input.Bursts
	if bursts < MinBursts {
		bursts = MinBursts
	}
	if bursts > MaxBursts {
		bursts = MaxBursts
	}

	rule := input.Rule
	if rule == nil {
		rule = rules.New(nil)
	}

	output := &ResolveOutput{
		Target:          input.Target,
		BulletsPerBurst: input.Target / 10,
	}

	for i := 1; i <= bursts; i++ {
		result := s.resolveBurst(i, input, rule, output.BulletsPerBurst)
		output.Bursts = append(output.Bursts, result)
		output.TotalHits += result.Hits
		output.TotalPenetrating += result.Penetrating
	}

	output.TotalNormal = output.TotalHits - output.TotalPenetrating

	return output, nil
}

// resolveBurst rolls and grades a single burst
func (s *service) resolveBurst(index int, input *ResolveInput, rule rules.Rule, bullets int) *BurstResult {
	penaltyDice, tier, autoFail, halfOnly := burstParams(index)

	result := &BurstResult{
		Index:       index,
		PenaltyDice: penaltyDice,
		Tier:        tier,
		Target:      tierTarget(input.Target, tier),
		AutoFailed:  autoFail,
	}

	if autoFail {
		result.Level = rules.SuccessLevelFailure
		return result
	}

	// Recoil penalties stack with the situational dice, then bonus and
	// penalty cancel one for one. Whatever is left rides the roll.
	net := input.EnvBonus - (penaltyDice + input.EnvPenalty)
	switch {
	case net > 0:
		result.Bonus = net
	case net < 0:
		result.Penalty = -net
	}

	if result.Bonus > 0 || result.Penalty > 0 {
		roll := dice.RollPercentileWithBonus(s.diceRoller, result.Bonus, result.Penalty)
		result.Roll = roll.Final
		result.Detail = roll.String()
	} else {
		result.Roll = dice.RollPercentile(s.diceRoller)
		result.Detail = fmt.Sprintf("D100=%d", result.Roll)
	}

	check := rule.Check(result.Roll, result.Target)
	result.Level = check.Level
	if tier == TierCriticalOnly {
		result.Success = check.Level == rules.SuccessLevelCritical
	} else {
		result.Success = check.IsSuccess()
	}

	if !result.Success {
		return result
	}

	switch {
	case halfOnly:
		result.Hits = bullets / 2
	case (check.Level == rules.SuccessLevelCritical || check.Level == rules.SuccessLevelExtreme) && tier < TierExtreme:
		result.Hits = bullets
		penetrating := result.Hits / 2
		if penetrating < 1 {
			penetrating = 1
		}
		// A burst cannot penetrate with more bullets than it landed
		if penetrating > result.Hits {
			penetrating = result.Hits
		}
		result.Penetrating = penetrating
	default:
		result.Hits = bullets / 2
	}

	return result
}

// burstParams returns the recoil penalty, difficulty tier, and caps for
// the burst at the given position. Control degrades with every burst:
// penalty dice pile up first, then the difficulty climbs, then hits are
// capped at half a magazine, and past the sixth burst nothing lands.
func burstParams(index int) (penaltyDice int, tier Tier, autoFail bool, halfOnly bool) {
	switch {
	case index <= 1:
		return 0, TierNone, false, false
	case index == 2:
		return 1, TierNone, false, false
	case index == 3:
		return 2, TierNone, false, false
	case index == 4:
		return 2, TierHard, false, false
	case index == 5:
		return 2, TierExtreme, false, true
	case index == 6:
		return 2, TierCriticalOnly, false, true
	default:
		return 2, TierCriticalOnly, true, true
	}
}

// tierTarget reduces the base skill to the number the tier grades against
func tierTarget(base int, tier Tier) int {
	switch tier {
	case TierHard:
		return base / 2
	case TierExtreme:
		return base / 5
	case TierCriticalOnly:
		return 1
	default:
		return base
	}
}
