package game

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rollkeeper/rollkeeper/internal/dice"
	"github.com/rollkeeper/rollkeeper/internal/models"
	characterRepo "github.com/rollkeeper/rollkeeper/internal/repositories/character"
	checksRepo "github.com/rollkeeper/rollkeeper/internal/repositories/checks"
	gamelogRepo "github.com/rollkeeper/rollkeeper/internal/repositories/gamelog"
	npcRepo "github.com/rollkeeper/rollkeeper/internal/repositories/npc"
	settingsRepo "github.com/rollkeeper/rollkeeper/internal/repositories/settings"
	"github.com/rollkeeper/rollkeeper/internal/rules"
	"github.com/rollkeeper/rollkeeper/internal/services/burst"
	"github.com/rollkeeper/rollkeeper/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	characterRepo    characterRepo.Repository
	npcRepo          npcRepo.Repository
	checkRepo        checksRepo.Repository
	settingsRepo     settingsRepo.Repository
	gamelogRepo      gamelogRepo.Repository
	burstService     burst.Service
	messagingService messaging.Service
	diceRoller       dice.Roller
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	// Validate config
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.CharacterRepo == nil {
		return nil, ErrNilCharacterRepo
	}

	if cfg.NPCRepo == nil {
		return nil, ErrNilNPCRepo
	}

	if cfg.CheckRepo == nil {
		return nil, ErrNilCheckRepo
	}

	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}

	if cfg.GameLogRepo == nil {
		return nil, ErrNilGameLogRepo
	}

	if cfg.BurstService == nil {
		return nil, ErrNilBurstService
	}

	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	return &service{
		characterRepo:    cfg.CharacterRepo,
		npcRepo:          cfg.NPCRepo,
		checkRepo:        cfg.CheckRepo,
		settingsRepo:     cfg.SettingsRepo,
		gamelogRepo:      cfg.GameLogRepo,
		burstService:     cfg.BurstService,
		messagingService: cfg.MessagingService,
		diceRoller:       cfg.DiceRoller,
	}, nil
}

// Roll evaluates a dice expression, optionally several times
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	normalized := dice.Normalize(input.Expression)
	times := clampTimes(input.Times)

	// Bonus and penalty dice only modify a plain percentile roll;
	// they are ignored for any other formula
	percentile := (input.Bonus > 0 || input.Penalty > 0) && isPlainPercentile(normalized)

	var expr *dice.Expression
	if !percentile {
		parsed, err := dice.Parse(normalized)
		if err != nil {
			return nil, err
		}
		expr = parsed
	}

	output := &RollOutput{Expression: normalized}

	for i := 0; i < times; i++ {
		if percentile {
			roll, detail := s.rollPercentile(input.Bonus, input.Penalty)
			output.Details = append(output.Details, detail)
			output.Totals = append(output.Totals, roll)
			continue
		}

		result := dice.RollExpression(s.diceRoller, expr)
		output.Details = append(output.Details, result.String())
		output.Totals = append(output.Totals, result.Total)
	}

	if !input.Hidden {
		s.logEvent(ctx, input.ChannelID, input.UserName,
			fmt.Sprintf("rolled %s", strings.Join(output.Details, "; ")))
	}

	return output, nil
}

// RollCheck rolls a skill check against the caller's own sheet or an
// explicit target number
func (s *service) RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.SkillName == "" {
		return nil, errors.New("skill name is required")
	}

	target := input.Target
	if target <= 0 {
		char, err := s.activeCharacter(ctx, input.UserID)
		if err != nil {
			return nil, err
		}

		value, ok := char.GetSkill(input.SkillName)
		if !ok {
			return nil, ErrSkillNotFound
		}
		target = value
	}

	rule, _, err := s.userRule(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &RollCheckOutput{
		SkillName: input.SkillName,
		Target:    target,
		RuleName:  rule.Name(),
	}

	times := clampTimes(input.Times)
	for i := 0; i < times; i++ {
		roll, detail := s.rollPercentile(input.Bonus, input.Penalty)
		output.Rolls = append(output.Rolls, &SkillRoll{
			Detail: detail,
			Result: rule.Check(roll, target),
		})
	}

	if !input.Hidden {
		lines := make([]string, 0, len(output.Rolls))
		for _, roll := range output.Rolls {
			lines = append(lines, roll.Result.String())
		}
		s.logEvent(ctx, input.ChannelID, input.UserName,
			fmt.Sprintf("%s check: %s", input.SkillName, strings.Join(lines, "; ")))
	}

	return output, nil
}

// GetGameLog fetches a channel's recent log entries
func (s *service) GetGameLog(ctx context.Context, input *GetGameLogInput) (*GetGameLogOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	recent, err := s.gamelogRepo.GetRecent(ctx, &gamelogRepo.GetRecentInput{
		ChannelID: input.ChannelID,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetGameLogOutput{Entries: recent.Entries}, nil
}

// ClearGameLog wipes a channel's log
func (s *service) ClearGameLog(ctx context.Context, input *ClearGameLogInput) (*ClearGameLogOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	if err := s.gamelogRepo.Clear(ctx, &gamelogRepo.ClearInput{ChannelID: input.ChannelID}); err != nil {
		return nil, err
	}

	return &ClearGameLogOutput{}, nil
}

// SweepExpiredChecks garbage-collects expired pending checks
func (s *service) SweepExpiredChecks(ctx context.Context) (*SweepExpiredChecksOutput, error) {
	swept, err := s.checkRepo.SweepExpired(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := s.checkRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &SweepExpiredChecksOutput{
		Removed: swept.Removed,
		Live:    stats.Total,
	}, nil
}

// userRule builds the rule engine from a user's stored settings
func (s *service) userRule(ctx context.Context, userID string) (rules.Rule, *models.UserSettings, error) {
	userSettings, err := s.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{UserID: userID})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load rule settings: %w", err)
	}

	rule := rules.New(&rules.Config{
		Name:              userSettings.RuleName,
		CriticalThreshold: userSettings.CriticalThreshold,
		FumbleThreshold:   userSettings.FumbleThreshold,
	})

	return rule, userSettings, nil
}

// activeCharacter loads the user's active character sheet
func (s *service) activeCharacter(ctx context.Context, userID string) (*models.Character, error) {
	userSettings, err := s.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if userSettings.ActiveCharacter == "" {
		return nil, ErrNoActiveCharacter
	}

	char, err := s.characterRepo.GetCharacter(ctx, &characterRepo.GetCharacterInput{
		UserID: userID,
		Name:   userSettings.ActiveCharacter,
	})
	if err != nil {
		// A stale pointer to a deleted sheet reads as having none
		if errors.Is(err, characterRepo.ErrCharacterNotFound) {
			return nil, ErrNoActiveCharacter
		}
		return nil, err
	}

	return char, nil
}

// rollPercentile draws a d100, with extra dice when bonus or penalty
// counts are set, and returns the value with its chat rendering
func (s *service) rollPercentile(bonus, penalty int) (int, string) {
	if bonus > 0 || penalty > 0 {
		result := dice.RollPercentileWithBonus(s.diceRoller, bonus, penalty)
		return result.Final, result.String()
	}

	roll := dice.RollPercentile(s.diceRoller)
	return roll, fmt.Sprintf("D100=%d", roll)
}

// evaluateAmount resolves a damage or sanity-loss expression: plain
// digits are a fixed amount, anything else rolls as a dice formula.
// Rolled amounts have a floor of zero.
func (s *service) evaluateAmount(text string) (int, error) {
	text = strings.TrimSpace(text)

	if value, ok := fixedAmount(text); ok {
		return value, nil
	}

	expr, err := dice.Parse(dice.Normalize(text))
	if err != nil {
		return 0, err
	}

	total := dice.RollExpression(s.diceRoller, expr).Total
	if total < 0 {
		total = 0
	}

	return total, nil
}

// randBetween draws uniformly from the inclusive range
func (s *service) randBetween(low, high int) int {
	if high <= low {
		return low
	}

	return low + s.diceRoller.Roll(high-low+1) - 1
}

// logEvent appends to the channel log. Log writes are best effort and
// never fail the operation that produced them.
func (s *service) logEvent(ctx context.Context, channelID, author, content string) {
	if channelID == "" {
		return
	}

	_ = s.gamelogRepo.AppendEntry(ctx, &gamelogRepo.AppendEntryInput{
		ChannelID: channelID,
		Author:    author,
		Content:   content,
	})
}

// validateAmount checks an amount expression without rolling it
func validateAmount(text string) error {
	text = strings.TrimSpace(text)

	if _, ok := fixedAmount(text); ok {
		return nil
	}

	_, err := dice.Parse(dice.Normalize(text))
	return err
}

// fixedAmount parses an all-digit amount
func fixedAmount(text string) (int, bool) {
	if text == "" {
		return 0, false
	}

	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}

	return value, true
}

// isPlainPercentile reports whether the expression is a bare d100
func isPlainPercentile(text string) bool {
	return strings.EqualFold(text, "d100") || strings.EqualFold(text, "1d100")
}

// clampTimes bounds a repeat count to 1-10
func clampTimes(times int) int {
	if times < 1 {
		return 1
	}

	if times > MaxTimes {
		return MaxTimes
	}

	return times
}

// binaryDetail renders a plain pass or fail percentile check
func binaryDetail(roll, target int, success bool) string {
	label := "Failure"
	if success {
		label = "Success"
	}

	return fmt.Sprintf("D100=%d/%d [%s]", roll, target, label)
}

// checkError maps store lookups onto the expiry sentinel
func checkError(err error) error {
	if errors.Is(err, checksRepo.ErrCheckNotFound) {
		return ErrCheckExpired
	}

	return err
}
