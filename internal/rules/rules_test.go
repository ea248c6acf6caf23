package rules

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RulesTestSuite struct {
	suite.Suite
}

func TestRulesTestSuite(t *testing.T) {
	suite.Run(t, new(RulesTestSuite))
}

func (s *RulesTestSuite) TestNew_Defaults() {
	rule := New(nil)
	s.Equal(RulesetB, rule.Name())

	// Defaults are critical 5, fumble 96
	s.Equal(SuccessLevelCritical, rule.Check(5, 40).Level)
	s.Equal(SuccessLevelFumble, rule.Check(96, 40).Level)
}

func (s *RulesTestSuite) TestNew_SelectsRuleset() {
	s.Equal(RulesetA, New(&Config{Name: "A"}).Name())
	s.Equal(RulesetA, New(&Config{Name: "a"}).Name())
	s.Equal(RulesetB, New(&Config{Name: "B"}).Name())
	s.Equal(RulesetB, New(&Config{Name: "unknown"}).Name())
	s.Equal(RulesetB, New(&Config{}).Name())
}

func (s *RulesTestSuite) TestNew_ClampsThresholds() {
	rule := New(&Config{CriticalThreshold: 25, FumbleThreshold: 70})

	// Critical clamps down to 20, fumble clamps up to 80
	s.Equal(SuccessLevelCritical, rule.Check(20, 10).Level)
	s.NotEqual(SuccessLevelCritical, rule.Check(21, 10).Level)
	s.Equal(SuccessLevelFumble, rule.Check(80, 10).Level)

	rule = New(&Config{CriticalThreshold: -5, FumbleThreshold: 150})
	s.Equal(SuccessLevelCritical, rule.Check(1, 10).Level)
	s.NotEqual(SuccessLevelCritical, rule.Check(2, 10).Level)
	s.Equal(SuccessLevelFumble, rule.Check(100, 10).Level)
	s.NotEqual(SuccessLevelFumble, rule.Check(99, 10).Level)
}

func (s *RulesTestSuite) TestRulesetA_TwoTiers() {
	rule := New(&Config{Name: RulesetA})

	s.Equal(SuccessLevelCritical, rule.Check(3, 60).Level)
	s.Equal(SuccessLevelFumble, rule.Check(97, 60).Level)
	s.Equal(SuccessLevelRegular, rule.Check(45, 60).Level)
	s.Equal(SuccessLevelFailure, rule.Check(61, 60).Level)

	// No Extreme or Hard grades even on very low rolls
	s.Equal(SuccessLevelRegular, rule.Check(6, 60).Level)
}

func (s *RulesTestSuite) TestRulesetA_CriticalBeatsTarget() {
	rule := New(&Config{Name: RulesetA})

	// A roll at or below the critical threshold is Critical even when
	// it would miss the target
	s.Equal(SuccessLevelCritical, rule.Check(4, 1).Level)
}

func (s *RulesTestSuite) TestRulesetB_TierBoundaries() {
	rule := New(&Config{Name: RulesetB})

	// target 60: Extreme at 12, Hard at 30, Regular at 60
	s.Equal(SuccessLevelExtreme, rule.Check(12, 60).Level)
	s.Equal(SuccessLevelHard, rule.Check(13, 60).Level)
	s.Equal(SuccessLevelHard, rule.Check(30, 60).Level)
	s.Equal(SuccessLevelRegular, rule.Check(31, 60).Level)
	s.Equal(SuccessLevelRegular, rule.Check(60, 60).Level)
	s.Equal(SuccessLevelFailure, rule.Check(61, 60).Level)
}

func (s *RulesTestSuite) TestRulesetB_FumbleDependsOnTarget() {
	rule := New(&Config{Name: RulesetB})

	// Below 50 the configured fumble band applies
	s.Equal(SuccessLevelFumble, rule.Check(96, 49).Level)
	s.Equal(SuccessLevelFumble, rule.Check(100, 49).Level)

	// At 50 or above only a straight 100 fumbles
	s.Equal(SuccessLevelFailure, rule.Check(96, 50).Level)
	s.Equal(SuccessLevelFailure, rule.Check(99, 50).Level)
	s.Equal(SuccessLevelFumble, rule.Check(100, 50).Level)
}

func (s *RulesTestSuite) TestRulesetB_CriticalBeatsTarget() {
	rule := New(&Config{Name: RulesetB})

	s.Equal(SuccessLevelCritical, rule.Check(5, 1).Level)
	s.Equal(SuccessLevelCritical, rule.Check(1, 0).Level)
}

func (s *RulesTestSuite) TestRank_Ordering() {
	s.Equal(4, SuccessLevelCritical.Rank())
	s.Equal(3, SuccessLevelExtreme.Rank())
	s.Equal(2, SuccessLevelHard.Rank())
	s.Equal(1, SuccessLevelRegular.Rank())
	s.Equal(0, SuccessLevelFailure.Rank())

	// Fumble ranks below Failure for opposed comparison
	s.Equal(-1, SuccessLevelFumble.Rank())
}

func (s *RulesTestSuite) TestIsSuccess() {
	s.True(SuccessLevelCritical.IsSuccess())
	s.True(SuccessLevelExtreme.IsSuccess())
	s.True(SuccessLevelHard.IsSuccess())
	s.True(SuccessLevelRegular.IsSuccess())
	s.False(SuccessLevelFailure.IsSuccess())
	s.False(SuccessLevelFumble.IsSuccess())
}

func (s *RulesTestSuite) TestCheckResult_String() {
	result := New(&Config{Name: RulesetB}).Check(45, 60)

	s.Equal(SuccessLevelRegular, result.Level)
	s.Equal("D100=45/60 [Regular]", result.String())
	s.True(result.IsSuccess())
}

func (s *RulesTestSuite) TestPresets() {
	presets := Presets()
	s.Require().Len(presets, 3)

	standard, ok := PresetByID(1)
	s.Require().True(ok)
	s.Equal(RulesetB, standard.RuleName)
	s.Equal(5, standard.CriticalThreshold)
	s.Equal(96, standard.FumbleThreshold)

	strict, ok := PresetByID(2)
	s.Require().True(ok)
	s.Equal(RulesetB, strict.RuleName)
	s.Equal(1, strict.CriticalThreshold)
	s.Equal(100, strict.FumbleThreshold)

	classic, ok := PresetByID(3)
	s.Require().True(ok)
	s.Equal(RulesetA, classic.RuleName)

	_, ok = PresetByID(9)
	s.False(ok)
}
