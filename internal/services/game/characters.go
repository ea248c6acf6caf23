package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rollkeeper/rollkeeper/internal/models"
	characterRepo "github.com/rollkeeper/rollkeeper/internal/repositories/character"
	settingsRepo "github.com/rollkeeper/rollkeeper/internal/repositories/settings"
)

// MythosSkill is always present on imported sheets, starting at zero
const MythosSkill = "Cthulhu Mythos"

// characterSheet is the JSON import format
type characterSheet struct {
	Name       string         `json:"name"`
	Attributes map[string]int `json:"attributes"`
	Skills     map[string]int `json:"skills"`
	HP         int            `json:"hp"`
	MP         int            `json:"mp"`
	SAN        int            `json:"san"`
	Luck       int            `json:"luck"`
}

// ImportCharacter parses a JSON character sheet, stores it, and makes
// it the caller's active character
func (s *service) ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var sheet characterSheet
	if err := json.Unmarshal(input.Data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse character sheet: %w", err)
	}

	if sheet.Name == "" {
		return nil, errors.New("character sheet has no name")
	}

	char := sheetCharacter(&sheet, input.UserID)

	if err := s.characterRepo.SaveCharacter(ctx, &characterRepo.SaveCharacterInput{Character: char}); err != nil {
		return nil, err
	}

	if _, err := s.settingsRepo.SetActiveCharacter(ctx, &settingsRepo.SetActiveCharacterInput{
		UserID:        input.UserID,
		CharacterName: char.Name,
	}); err != nil {
		return nil, err
	}

	return &ImportCharacterOutput{Character: char, Activated: true}, nil
}

// ListCharacters lists the caller's stored characters and which one is
// active
func (s *service) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	list, err := s.characterRepo.ListCharacters(ctx, &characterRepo.ListCharactersInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	return &ListCharactersOutput{
		Characters: list.Characters,
		ActiveName: settings.ActiveCharacter,
	}, nil
}

// SwitchCharacter makes a stored character the caller's active one
func (s *service) SwitchCharacter(ctx context.Context, input *SwitchCharacterInput) (*SwitchCharacterOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Name == "" {
		return nil, errors.New("character name is required")
	}

	char, err := s.characterRepo.GetCharacter(ctx, &characterRepo.GetCharacterInput{
		UserID: input.UserID,
		Name:   input.Name,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.settingsRepo.SetActiveCharacter(ctx, &settingsRepo.SetActiveCharacterInput{
		UserID:        input.UserID,
		CharacterName: char.Name,
	}); err != nil {
		return nil, err
	}

	return &SwitchCharacterOutput{Character: char}, nil
}

// ShowCharacter fetches a stored character, defaulting to the active
// one
func (s *service) ShowCharacter(ctx context.Context, input *ShowCharacterInput) (*ShowCharacterOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	settings, err := s.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{UserID: input.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	name := input.Name
	if name == "" {
		if settings.ActiveCharacter == "" {
			return nil, ErrNoActiveCharacter
		}

		name = settings.ActiveCharacter
	}

	char, err := s.characterRepo.GetCharacter(ctx, &characterRepo.GetCharacterInput{
		UserID: input.UserID,
		Name:   name,
	})
	if err != nil {
		return nil, err
	}

	return &ShowCharacterOutput{
		Character: char,
		Active:    char.Name == settings.ActiveCharacter,
	}, nil
}

// DeleteCharacter removes a stored character, clearing the active
// pointer when it was the one deleted
func (s *service) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Name == "" {
		return nil, errors.New("character name is required")
	}

	char, err := s.characterRepo.GetCharacter(ctx, &characterRepo.GetCharacterInput{
		UserID: input.UserID,
		Name:   input.Name,
	})
	if err != nil {
		return nil, err
	}

	if err := s.characterRepo.DeleteCharacter(ctx, &characterRepo.DeleteCharacterInput{
		UserID: input.UserID,
		Name:   char.Name,
	}); err != nil {
		return nil, err
	}

	output := &DeleteCharacterOutput{Name: char.Name}

	settings, err := s.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{UserID: input.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.ActiveCharacter == char.Name {
		if _, err := s.settingsRepo.SetActiveCharacter(ctx, &settingsRepo.SetActiveCharacterInput{
			UserID: input.UserID,
		}); err != nil {
			return nil, err
		}

		output.Deactivated = true
	}

	return output, nil
}

// AdjustStat changes HP, MP or SAN on the caller's active character,
// clamped between zero and the stat's maximum
func (s *service) AdjustStat(ctx context.Context, input *AdjustStatInput) (*AdjustStatOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Value < 0 {
		return nil, errors.New("value cannot be negative")
	}

	char, err := s.activeCharacter(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	stat := strings.ToLower(input.Stat)

	var current, max int
	switch stat {
	case "hp":
		current, max = char.HP, char.MaxHP
	case "mp":
		current, max = char.MP, char.MaxMP
	case "san":
		current, max = char.SAN, char.MaxSAN
	default:
		return nil, ErrUnknownStat
	}

	var next int
	switch input.Op {
	case "+":
		next = current + input.Value
	case "-":
		next = current - input.Value
	case "=":
		next = input.Value
	default:
		return nil, ErrUnknownOperation
	}

	if next < 0 {
		next = 0
	}
	if max > 0 && next > max {
		next = max
	}

	switch stat {
	case "hp":
		char.HP = next
	case "mp":
		char.MP = next
	case "san":
		char.SAN = next
	}

	if err := s.characterRepo.SaveCharacter(ctx, &characterRepo.SaveCharacterInput{Character: char}); err != nil {
		return nil, err
	}

	s.logEvent(ctx, input.ChannelID, input.UserName,
		fmt.Sprintf("%s %s %d -> %d", char.Name, strings.ToUpper(stat), current, next))

	return &AdjustStatOutput{
		CharacterName: char.Name,
		Stat:          strings.ToUpper(stat),
		Old:           current,
		New:           next,
		Max:           max,
	}, nil
}

// sheetCharacter fills in the derived fields an imported sheet omits.
// Sanity falls back to the POW attribute and luck to LUK.
func sheetCharacter(sheet *characterSheet, userID string) *models.Character {
	attributes := sheet.Attributes
	if attributes == nil {
		attributes = map[string]int{}
	}

	skills := sheet.Skills
	if skills == nil {
		skills = map[string]int{}
	}

	if _, ok := skills[MythosSkill]; !ok {
		skills[MythosSkill] = 0
	}

	san := sheet.SAN
	if san == 0 {
		san = attributes["POW"]
	}

	luck := sheet.Luck
	if value, ok := attributes["LUK"]; ok && value > 0 {
		luck = value
	}

	return &models.Character{
		Name:       sheet.Name,
		UserID:     userID,
		Attributes: attributes,
		Skills:     skills,
		HP:         sheet.HP,
		MaxHP:      sheet.HP,
		MP:         sheet.MP,
		MaxMP:      sheet.MP,
		SAN:        san,
		MaxSAN:     models.MaxSanity,
		Luck:       luck,
	}
}
