package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rollkeeper/rollkeeper/internal/models"
	characterRepo "github.com/rollkeeper/rollkeeper/internal/repositories/character"
	checksRepo "github.com/rollkeeper/rollkeeper/internal/repositories/checks"
	"github.com/rollkeeper/rollkeeper/internal/services/messaging"
)

// CreateSkillCheck posts a group skill check the channel can roll
// against
func (s *service) CreateSkillCheck(ctx context.Context, input *CreateSkillCheckInput) (*CreateSkillCheckOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.SkillName == "" {
		return nil, errors.New("skill name is required")
	}

	check, err := s.checkRepo.CreateSkillCheck(ctx, &checksRepo.CreateSkillCheckInput{
		ChannelID: input.ChannelID,
		CreatorID: input.CreatorID,
		SkillName: input.SkillName,
		Target:    input.Target,
	})
	if err != nil {
		return nil, err
	}

	s.logEvent(ctx, input.ChannelID, input.CreatorName,
		fmt.Sprintf("called for a %s check", input.SkillName))

	return &CreateSkillCheckOutput{
		CheckID:   check.ID,
		SkillName: input.SkillName,
		Target:    input.Target,
	}, nil
}

// RollSkillCheck resolves one user's press on a group skill check
func (s *service) RollSkillCheck(ctx context.Context, input *RollSkillCheckInput) (*RollSkillCheckOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	check, err := s.checkRepo.GetCheck(ctx, &checksRepo.GetCheckInput{
		CheckID: input.CheckID,
		Kind:    models.CheckKindSkill,
	})
	if err != nil {
		return nil, checkError(err)
	}

	data := check.Skill

	// Resolve the target before burning the user's attempt, so a
	// missing sheet or skill leaves the check rollable
	target := data.Target
	if target <= 0 {
		char, err := s.activeCharacter(ctx, input.UserID)
		if err != nil {
			return nil, err
		}

		value, ok := char.GetSkill(data.SkillName)
		if !ok {
			return nil, ErrSkillNotFound
		}
		target = value
	}

	rule, _, err := s.userRule(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	marked, err := s.checkRepo.MarkCompleted(ctx, &checksRepo.MarkCompletedInput{
		CheckID: input.CheckID,
		UserID:  input.UserID,
	})
	if err != nil {
		return nil, checkError(err)
	}

	if marked.AlreadyCompleted {
		return nil, ErrAlreadyRolled
	}

	roll, detail := s.rollPercentile(0, 0)
	result := rule.Check(roll, target)

	flavor := ""
	if comment, err := s.messagingService.GetOutcomeFlavor(ctx, &messaging.GetOutcomeFlavorInput{
		PlayerName: input.UserName,
		Level:      result.Level,
	}); err == nil {
		flavor = comment.Comment
	}

	s.logEvent(ctx, check.ChannelID, input.UserName,
		fmt.Sprintf("%s check: %s", data.SkillName, result))

	return &RollSkillCheckOutput{
		SkillName: data.SkillName,
		Detail:    detail,
		Result:    result,
		Flavor:    flavor,
	}, nil
}

// RollSanity resolves an immediate sanity check for the caller
func (s *service) RollSanity(ctx context.Context, input *RollSanityInput) (*RollSanityOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := validateAmount(input.SuccessExpression); err != nil {
		return nil, fmt.Errorf("success loss: %w", err)
	}

	if err := validateAmount(input.FailureExpression); err != nil {
		return nil, fmt.Errorf("failure loss: %w", err)
	}

	char, err := s.activeCharacter(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	result, err := s.applySanity(ctx, char, input.SuccessExpression, input.FailureExpression)
	if err != nil {
		return nil, err
	}

	s.logSanity(ctx, input.ChannelID, input.UserName, result)

	return &RollSanityOutput{Result: result}, nil
}

// CreateSanityCheck posts a group sanity check
func (s *service) CreateSanityCheck(ctx context.Context, input *CreateSanityCheckInput) (*CreateSanityCheckOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := validateAmount(input.SuccessExpression); err != nil {
		return nil, fmt.Errorf("success loss: %w", err)
	}

	if err := validateAmount(input.FailureExpression); err != nil {
		return nil, fmt.Errorf("failure loss: %w", err)
	}

	check, err := s.checkRepo.CreateSanityCheck(ctx, &checksRepo.CreateSanityCheckInput{
		ChannelID:         input.ChannelID,
		CreatorID:         input.CreatorID,
		SuccessExpression: input.SuccessExpression,
		FailureExpression: input.FailureExpression,
	})
	if err != nil {
		return nil, err
	}

	s.logEvent(ctx, input.ChannelID, input.CreatorName,
		fmt.Sprintf("called for a sanity check (%s/%s)",
			input.SuccessExpression, input.FailureExpression))

	return &CreateSanityCheckOutput{
		CheckID:           check.ID,
		SuccessExpression: input.SuccessExpression,
		FailureExpression: input.FailureExpression,
	}, nil
}

// RollSanityCheck resolves one user's press on a group sanity check
func (s *service) RollSanityCheck(ctx context.Context, input *RollSanityCheckInput) (*RollSanityCheckOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	check, err := s.checkRepo.GetCheck(ctx, &checksRepo.GetCheckInput{
		CheckID: input.CheckID,
		Kind:    models.CheckKindSanity,
	})
	if err != nil {
		return nil, checkError(err)
	}

	// Resolve the sheet before burning the user's attempt
	char, err := s.activeCharacter(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if char.SAN <= 0 {
		return nil, ErrNoSanityLeft
	}

	marked, err := s.checkRepo.MarkCompleted(ctx, &checksRepo.MarkCompletedInput{
		CheckID: input.CheckID,
		UserID:  input.UserID,
	})
	if err != nil {
		return nil, checkError(err)
	}

	if marked.AlreadyCompleted {
		return nil, ErrAlreadyRolled
	}

	result, err := s.applySanity(ctx, char, check.Sanity.SuccessExpression, check.Sanity.FailureExpression)
	if err != nil {
		return nil, err
	}

	s.logSanity(ctx, check.ChannelID, input.UserName, result)

	return &RollSanityCheckOutput{Result: result}, nil
}

// applySanity rolls the check against the character's current sanity,
// applies the loss, and persists the sheet
func (s *service) applySanity(ctx context.Context, char *models.Character, successExpr, failureExpr string) (*SanityResult, error) {
	if char.SAN <= 0 {
		return nil, ErrNoSanityLeft
	}

	roll, _ := s.rollPercentile(0, 0)
	success := roll <= char.SAN

	expr := failureExpr
	if success {
		expr = successExpr
	}

	loss, err := s.evaluateAmount(expr)
	if err != nil {
		return nil, err
	}

	result := &SanityResult{
		CharacterName:  char.Name,
		Sanity:         char.SAN,
		Roll:           roll,
		Detail:         binaryDetail(roll, char.SAN, success),
		Success:        success,
		Loss:           loss,
		LossExpression: expr,
	}

	newSAN := char.SAN - loss
	if newSAN < 0 {
		newSAN = 0
	}

	char.SAN = newSAN
	result.NewSanity = newSAN

	if err := s.characterRepo.SaveCharacter(ctx, &characterRepo.SaveCharacterInput{Character: char}); err != nil {
		return nil, err
	}

	// A single loss of five or more triggers a bout of temporary
	// madness
	if loss >= MadnessLossThreshold {
		symptomRoll := s.diceRoller.Roll(10)
		result.Madness = &MadnessEpisode{
			Roll:     symptomRoll,
			Symptom:  models.TemporaryMadness(symptomRoll),
			Duration: s.diceRoller.Roll(10),
		}
	}

	if newSAN == 0 {
		result.PermanentInsanity = true
	}

	return result, nil
}

func (s *service) logSanity(ctx context.Context, channelID, userName string, result *SanityResult) {
	content := fmt.Sprintf("sanity check: %s, lost %d (%d -> %d)",
		result.Detail, result.Loss, result.Sanity, result.NewSanity)
	if result.PermanentInsanity {
		content += ", sanity exhausted"
	}

	s.logEvent(ctx, channelID, userName, content)
}
