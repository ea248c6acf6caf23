package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxExtraDice caps how many bonus or penalty dice a percentile roll may use
const MaxExtraDice = 10

// PercentileResult captures a d100 roll made with bonus or penalty dice
type PercentileResult struct {
	// BaseTens is the tens digit of the unmodified roll (0-9)
	BaseTens int
	// Ones is the ones digit (0-9)
	Ones int
	// ExtraTens holds one extra tens digit per bonus or penalty die
	ExtraTens []int
	// ChosenTens is the tens digit actually used for the final value
	ChosenTens int
	// Final is the resulting percentile value (1-100)
	Final int
	// Bonus is the bonus die count the roll was made with
	Bonus int
	// Penalty is the penalty die count the roll was made with
	Penalty int
}

// String renders the roll for chat, listing every tens candidate when
// extra dice were involved.
func (r *PercentileResult) String() string {
	if len(r.ExtraTens) == 0 {
		return fmt.Sprintf("D100=%d", r.Final)
	}

	tens := make([]string, 0, len(r.ExtraTens)+1)
	tens = append(tens, strconv.Itoa(r.BaseTens))
	for _, t := range r.ExtraTens {
		tens = append(tens, strconv.Itoa(t))
	}

	kind := "bonus"
	count := r.Bonus
	if r.Penalty > r.Bonus {
		kind = "penalty"
		count = r.Penalty
	}

	return fmt.Sprintf("D100=%d [%s x%d: tens %s, ones %d]",
		r.Final, kind, count, strings.Join(tens, "/"), r.Ones)
}

// RollPercentile draws a plain percentile die
func RollPercentile(r Roller) int {
	return r.Roll(100)
}

// RollPercentileWithBonus rolls a percentile die with bonus or penalty dice.
//
// One base tens digit and one ones digit are drawn first, then one extra
// tens digit per bonus or penalty die. More bonus than penalty picks the
// lowest tens candidate, more penalty picks the highest, and equal counts
// keep the base tens digit regardless of the extras. A result of 00 with
// ones 0 reads as 100. Counts outside 0-10 are clamped.
func RollPercentileWithBonus(r Roller, bonus, penalty int) *PercentileResult {
	bonus = clampExtra(bonus)
	penalty = clampExtra(penalty)

	result := &PercentileResult{
		BaseTens: r.Roll(10) - 1,
		Ones:     r.Roll(10) - 1,
		Bonus:    bonus,
		Penalty:  penalty,
	}

	extra := bonus
	if penalty > extra {
		extra = penalty
	}
	for i := 0; i < extra; i++ {
		result.ExtraTens = append(result.ExtraTens, r.Roll(10)-1)
	}

	result.ChosenTens = result.BaseTens
	switch {
	case bonus > penalty:
		for _, t := range result.ExtraTens {
			if t < result.ChosenTens {
				result.ChosenTens = t
			}
		}
	case penalty > bonus:
		for _, t := range result.ExtraTens {
			if t > result.ChosenTens {
				result.ChosenTens = t
			}
		}
	}

	result.Final = result.ChosenTens*10 + result.Ones
	if result.Final == 0 {
		result.Final = 100
	}

	return result
}

func clampExtra(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxExtraDice {
		return MaxExtraDice
	}
	return n
}
