package game

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rollkeeper/rollkeeper/internal/dice"
	"github.com/rollkeeper/rollkeeper/internal/models"
	npcRepo "github.com/rollkeeper/rollkeeper/internal/repositories/npc"
)

// GenerateNPC rolls a channel NPC from a template
func (s *service) GenerateNPC(ctx context.Context, input *GenerateNPCInput) (*GenerateNPCOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Name == "" {
		return nil, errors.New("npc name is required")
	}

	templateName := input.TemplateName
	if templateName == "" {
		templateName = models.DefaultTemplateName
	}

	tmpl, err := s.npcRepo.GetTemplate(ctx, &npcRepo.GetTemplateInput{Name: templateName})
	if err != nil {
		return nil, err
	}

	var attributes, skills map[string]int
	if tmpl.IsRangeFormat() {
		attributes, skills = s.rollRangeStats(tmpl)
	} else {
		attributes, skills, err = s.rollTemplateStats(tmpl)
		if err != nil {
			return nil, err
		}
	}

	npc := s.deriveNPC(input, tmpl.Name, attributes, skills)

	if err := s.npcRepo.SaveNPC(ctx, &npcRepo.SaveNPCInput{NPC: npc}); err != nil {
		return nil, err
	}

	s.logEvent(ctx, input.ChannelID, input.UserName,
		fmt.Sprintf("generated NPC %s from the %s template", npc.Name, tmpl.Name))

	return &GenerateNPCOutput{NPC: npc}, nil
}

// ListNPCs lists a channel's NPCs
func (s *service) ListNPCs(ctx context.Context, input *ListNPCsInput) (*ListNPCsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	list, err := s.npcRepo.ListNPCs(ctx, &npcRepo.ListNPCsInput{ChannelID: input.ChannelID})
	if err != nil {
		return nil, err
	}

	return &ListNPCsOutput{NPCs: list.NPCs}, nil
}

// ShowNPC fetches a channel NPC for display
func (s *service) ShowNPC(ctx context.Context, input *ShowNPCInput) (*ShowNPCOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	npc, err := s.npcRepo.GetNPC(ctx, &npcRepo.GetNPCInput{
		ChannelID: input.ChannelID,
		Name:      input.Name,
	})
	if err != nil {
		return nil, err
	}

	return &ShowNPCOutput{NPC: npc}, nil
}

// DeleteNPC removes a channel NPC
func (s *service) DeleteNPC(ctx context.Context, input *DeleteNPCInput) (*DeleteNPCOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Name == "" {
		return nil, errors.New("npc name is required")
	}

	if err := s.npcRepo.DeleteNPC(ctx, &npcRepo.DeleteNPCInput{
		ChannelID: input.ChannelID,
		Name:      input.Name,
	}); err != nil {
		return nil, err
	}

	return &DeleteNPCOutput{Name: input.Name}, nil
}

// ClearNPCs removes every NPC in a channel
func (s *service) ClearNPCs(ctx context.Context, input *ClearNPCsInput) (*ClearNPCsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	cleared, err := s.npcRepo.ClearChannel(ctx, &npcRepo.ClearChannelInput{ChannelID: input.ChannelID})
	if err != nil {
		return nil, err
	}

	return &ClearNPCsOutput{Removed: cleared.Removed}, nil
}

// SaveNPCTemplate stores a custom generation template. Stat names
// matching a known attribute are canonicalized; everything else
// becomes a skill.
func (s *service) SaveNPCTemplate(ctx context.Context, input *SaveNPCTemplateInput) (*SaveNPCTemplateOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Name == "" {
		return nil, errors.New("template name is required")
	}

	if len(input.Stats) == 0 {
		return nil, errors.New("at least one stat is required")
	}

	tmpl := &models.NPCTemplate{
		Name:        input.Name,
		Description: input.Description,
		Attributes:  map[string]string{},
		Skills:      map[string]string{},
		CreatedBy:   input.UserID,
		CreatedAt:   time.Now().UTC(),
	}

	for _, name := range sortedKeys(input.Stats) {
		expr := strings.TrimSpace(input.Stats[name])
		if err := validateStatExpression(expr); err != nil {
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}

		if canonical, ok := models.CanonicalAttribute(name); ok {
			tmpl.Attributes[canonical] = expr
		} else {
			tmpl.Skills[name] = expr
		}
	}

	if err := s.npcRepo.SaveTemplate(ctx, &npcRepo.SaveTemplateInput{Template: tmpl}); err != nil {
		return nil, err
	}

	return &SaveNPCTemplateOutput{Template: tmpl}, nil
}

// ListNPCTemplates lists builtin and custom templates
func (s *service) ListNPCTemplates(ctx context.Context, input *ListNPCTemplatesInput) (*ListNPCTemplatesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	list, err := s.npcRepo.ListTemplates(ctx, &npcRepo.ListTemplatesInput{})
	if err != nil {
		return nil, err
	}

	return &ListNPCTemplatesOutput{Templates: list.Templates}, nil
}

// DeleteNPCTemplate removes a custom template
func (s *service) DeleteNPCTemplate(ctx context.Context, input *DeleteNPCTemplateInput) (*DeleteNPCTemplateOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Name == "" {
		return nil, errors.New("template name is required")
	}

	if err := s.npcRepo.DeleteTemplate(ctx, &npcRepo.DeleteTemplateInput{Name: input.Name}); err != nil {
		return nil, err
	}

	return &DeleteNPCTemplateOutput{Name: input.Name}, nil
}

// rollRangeStats rolls the standard attribute and combat skill lists
// from a range template's bounds, rounded to a multiple of five
func (s *service) rollRangeStats(tmpl *models.NPCTemplate) (map[string]int, map[string]int) {
	attributes := make(map[string]int, len(models.BaseAttributes))
	for _, name := range models.BaseAttributes {
		attributes[name] = roundTo5(s.randBetween(tmpl.AttrMin, tmpl.AttrMax))
	}

	skills := make(map[string]int, len(models.CombatSkills))
	for _, name := range models.CombatSkills {
		skills[name] = roundTo5(s.randBetween(tmpl.SkillMin, tmpl.SkillMax))
	}

	return attributes, skills
}

// rollTemplateStats evaluates a custom template's per-stat
// expressions. Stats resolve in sorted name order so a seeded roller
// produces the same NPC.
func (s *service) rollTemplateStats(tmpl *models.NPCTemplate) (map[string]int, map[string]int, error) {
	attributes := make(map[string]int, len(tmpl.Attributes))
	for _, name := range sortedKeys(tmpl.Attributes) {
		value, err := s.evaluateStatExpression(tmpl.Attributes[name])
		if err != nil {
			return nil, nil, fmt.Errorf("attribute %s: %w", name, err)
		}

		attributes[name] = value
	}

	skills := make(map[string]int, len(tmpl.Skills))
	for _, name := range sortedKeys(tmpl.Skills) {
		value, err := s.evaluateStatExpression(tmpl.Skills[name])
		if err != nil {
			return nil, nil, fmt.Errorf("skill %s: %w", name, err)
		}

		skills[name] = value
	}

	return attributes, skills, nil
}

// deriveNPC computes hit points, magic, sanity and luck from the
// rolled attributes
func (s *service) deriveNPC(input *GenerateNPCInput, templateName string, attributes, skills map[string]int) *models.NPC {
	con := attrOrDefault(attributes, "CON")
	siz := attrOrDefault(attributes, "SIZ")
	pow := attrOrDefault(attributes, "POW")

	hp := (con + siz) / 10
	mp := pow / 5

	// LUK is a roll result, not an attribute, so it moves off the
	// attribute map
	luck, ok := attributes["LUK"]
	if ok {
		delete(attributes, "LUK")
	} else {
		luck = s.randBetween(15, 90)
	}

	return &models.NPC{
		Character: models.Character{
			Name:       input.Name,
			UserID:     models.NPCUserID(input.ChannelID),
			Attributes: attributes,
			Skills:     skills,
			HP:         hp,
			MaxHP:      hp,
			MP:         mp,
			MaxMP:      mp,
			SAN:        pow,
			MaxSAN:     models.MaxSanity,
			Luck:       luck,
		},
		ChannelID:    input.ChannelID,
		TemplateName: templateName,
		CreatedAt:    time.Now().UTC(),
	}
}

// evaluateStatExpression resolves one template stat: a fixed number is
// used as is, a "low-high" range rolls within it, and anything else
// parses as a dice formula whose total is multiplied by five
func (s *service) evaluateStatExpression(expr string) (int, error) {
	if value, ok := fixedAmount(expr); ok {
		return value, nil
	}

	if low, high, ok := parseRange(expr); ok {
		return s.randBetween(low, high), nil
	}

	parsed, err := dice.Parse(dice.Normalize(expr))
	if err != nil {
		return 0, err
	}

	return dice.RollExpression(s.diceRoller, parsed).Total * 5, nil
}

// validateStatExpression checks a template stat without rolling it
func validateStatExpression(expr string) error {
	if _, ok := fixedAmount(expr); ok {
		return nil
	}

	if low, high, ok := parseRange(expr); ok {
		if low > high {
			return fmt.Errorf("range %d-%d is inverted", low, high)
		}

		return nil
	}

	_, err := dice.Parse(dice.Normalize(expr))
	return err
}

// parseRange parses an inclusive "low-high" expression
func parseRange(expr string) (int, int, bool) {
	parts := strings.SplitN(expr, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	low, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}

	high, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}

	return low, high, true
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}

// roundTo5 rounds to the nearest multiple of five
func roundTo5(value int) int {
	return (value + 2) / 5 * 5
}

// attrOrDefault reads an attribute, standing in fifty for templates
// that never rolled it
func attrOrDefault(attributes map[string]int, name string) int {
	if value, ok := attributes[name]; ok && value > 0 {
		return value
	}

	return DefaultAttribute
}
