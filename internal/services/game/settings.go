package game

import (
	"context"
	"errors"
	"strings"

	settingsRepo "github.com/rollkeeper/rollkeeper/internal/repositories/settings"
	"github.com/rollkeeper/rollkeeper/internal/rules"
)

// GetRule fetches a user's rule settings, creating defaults on first
// use
func (s *service) GetRule(ctx context.Context, input *GetRuleInput) (*GetRuleOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	settings, err := s.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	return &GetRuleOutput{Settings: settings}, nil
}

// SetRule updates the parts of a user's rule configuration that are
// set, leaving the rest alone
func (s *service) SetRule(ctx context.Context, input *SetRuleInput) (*SetRuleOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ruleName := ""
	if input.RuleName != "" {
		switch {
		case strings.EqualFold(input.RuleName, rules.RulesetA):
			ruleName = rules.RulesetA
		case strings.EqualFold(input.RuleName, rules.RulesetB):
			ruleName = rules.RulesetB
		default:
			return nil, ErrUnknownRuleset
		}
	}

	settings, err := s.settingsRepo.SetRule(ctx, &settingsRepo.SetRuleInput{
		UserID:            input.UserID,
		RuleName:          ruleName,
		CriticalThreshold: input.CriticalThreshold,
		FumbleThreshold:   input.FumbleThreshold,
	})
	if err != nil {
		return nil, err
	}

	return &SetRuleOutput{Settings: settings}, nil
}

// ApplyRulePreset replaces the whole rule configuration with a named
// preset
func (s *service) ApplyRulePreset(ctx context.Context, input *ApplyRulePresetInput) (*ApplyRulePresetOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var preset rules.Preset
	found := false
	for _, p := range rules.Presets() {
		if strings.EqualFold(p.Name, input.Preset) {
			preset = p
			found = true
			break
		}
	}
	if !found {
		return nil, ErrUnknownPreset
	}

	settings, err := s.settingsRepo.SetRule(ctx, &settingsRepo.SetRuleInput{
		UserID:            input.UserID,
		RuleName:          preset.RuleName,
		CriticalThreshold: preset.CriticalThreshold,
		FumbleThreshold:   preset.FumbleThreshold,
	})
	if err != nil {
		return nil, err
	}

	return &ApplyRulePresetOutput{Preset: strings.ToLower(preset.Name), Settings: settings}, nil
}
