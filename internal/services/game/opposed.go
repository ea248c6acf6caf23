package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rollkeeper/rollkeeper/internal/models"
	checksRepo "github.com/rollkeeper/rollkeeper/internal/repositories/checks"
	npcRepo "github.com/rollkeeper/rollkeeper/internal/repositories/npc"
	"github.com/rollkeeper/rollkeeper/internal/rules"
)

// CreateOpposedCheck opens an opposed skill contest between the
// initiator and either another user or a channel NPC. An NPC opponent
// cannot press a button, so its side resolves immediately under the
// initiator's ruleset.
func (s *service) CreateOpposedCheck(ctx context.Context, input *CreateOpposedCheckInput) (*CreateOpposedCheckOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ChannelID == "" {
		return nil, errors.New("channel id is required")
	}

	if input.InitiatorID == "" {
		return nil, errors.New("initiator id is required")
	}

	if input.InitiatorSkill == "" {
		return nil, errors.New("initiator skill is required")
	}

	if input.TargetID != "" && input.NPCName != "" {
		return nil, errors.New("choose either a user or an npc opponent, not both")
	}

	if input.TargetID == "" && input.NPCName == "" {
		return nil, errors.New("an opponent is required")
	}

	if input.TargetID == input.InitiatorID {
		return nil, ErrSelfOpposition
	}

	targetSkill := input.TargetSkill
	if targetSkill == "" {
		targetSkill = input.InitiatorSkill
	}

	targetSideID := input.TargetID
	npcTarget := 0
	if input.NPCName != "" {
		npc, err := s.npcRepo.GetNPC(ctx, &npcRepo.GetNPCInput{
			ChannelID: input.ChannelID,
			Name:      input.NPCName,
		})
		if err != nil {
			return nil, err
		}

		npcTarget = input.NPCSkillValue
		if npcTarget <= 0 {
			value, ok := npc.GetSkill(targetSkill)
			if !ok {
				return nil, fmt.Errorf("npc has no %s skill", targetSkill)
			}
			npcTarget = value
		}

		targetSideID = models.OpposedNPCID(input.NPCName, input.ChannelID)
	}

	check, err := s.checkRepo.CreateOpposedCheck(ctx, &checksRepo.CreateOpposedCheckInput{
		ChannelID: input.ChannelID,
		Initiator: checksRepo.OpposedSideInput{
			UserID:    input.InitiatorID,
			SkillName: input.InitiatorSkill,
			Bonus:     input.InitiatorBonus,
			Penalty:   input.InitiatorPenalty,
		},
		Target: checksRepo.OpposedSideInput{
			UserID:    targetSideID,
			SkillName: targetSkill,
			Bonus:     input.TargetBonus,
			Penalty:   input.TargetPenalty,
		},
	})
	if err != nil {
		return nil, err
	}

	output := &CreateOpposedCheckOutput{
		CheckID:        check.ID,
		InitiatorSkill: input.InitiatorSkill,
		TargetSkill:    targetSkill,
		TargetID:       input.TargetID,
		NPCName:        input.NPCName,
	}

	if input.NPCName != "" {
		rule, _, err := s.userRule(ctx, input.InitiatorID)
		if err != nil {
			return nil, err
		}

		roll, detail := s.rollPercentile(input.TargetBonus, input.TargetPenalty)
		result := rule.Check(roll, npcTarget)

		if _, err := s.checkRepo.SetOpposedResult(ctx, &checksRepo.SetOpposedResultInput{
			CheckID:   check.ID,
			UserID:    targetSideID,
			Roll:      roll,
			Target:    npcTarget,
			Level:     string(result.Level),
			LevelRank: result.Level.Rank(),
		}); err != nil {
			return nil, checkError(err)
		}

		output.NPCResult = &OpposedSideResult{
			UserID:    targetSideID,
			SkillName: targetSkill,
			Target:    npcTarget,
			Roll:      roll,
			Detail:    detail,
			Level:     result.Level,
		}
	}

	s.logEvent(ctx, input.ChannelID, input.InitiatorName,
		fmt.Sprintf("opened an opposed %s check", skillDisplay(input.InitiatorSkill, targetSkill)))

	return output, nil
}

// RollOpposedCheck resolves the presser's side of an opposed check
// and, once both sides are in, compares them. The check stays stored
// until its TTL so the result message can be replayed.
func (s *service) RollOpposedCheck(ctx context.Context, input *RollOpposedCheckInput) (*RollOpposedCheckOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	check, err := s.checkRepo.GetCheck(ctx, &checksRepo.GetCheckInput{
		CheckID: input.CheckID,
		Kind:    models.CheckKindOpposed,
	})
	if err != nil {
		return nil, checkError(err)
	}

	side, ok := check.Opposed.Side(input.UserID)
	if !ok {
		return nil, ErrNotParticipant
	}

	if side.Resolved {
		return nil, ErrSideAlreadyResolved
	}

	char, err := s.activeCharacter(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	target, ok := char.GetSkill(side.SkillName)
	if !ok {
		return nil, ErrSkillNotFound
	}

	rule, _, err := s.userRule(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	roll, detail := s.rollPercentile(side.Bonus, side.Penalty)
	result := rule.Check(roll, target)

	set, err := s.checkRepo.SetOpposedResult(ctx, &checksRepo.SetOpposedResultInput{
		CheckID:   input.CheckID,
		UserID:    input.UserID,
		Roll:      roll,
		Target:    target,
		Level:     string(result.Level),
		LevelRank: result.Level.Rank(),
	})
	if err != nil {
		return nil, checkError(err)
	}

	if set.AlreadyResolved {
		return nil, ErrSideAlreadyResolved
	}

	output := &RollOpposedCheckOutput{
		Side: &OpposedSideResult{
			UserID:    input.UserID,
			SkillName: side.SkillName,
			Target:    target,
			Roll:      roll,
			Detail:    detail,
			Level:     result.Level,
		},
	}

	if !set.BothResolved {
		s.logEvent(ctx, check.ChannelID, input.UserName,
			fmt.Sprintf("%s (opposed): %s", side.SkillName, result))

		return output, nil
	}

	output.Complete = true
	output.Outcome = s.opposedOutcome(ctx, set.Check)

	if output.Outcome.Tie {
		s.logEvent(ctx, check.ChannelID, input.UserName,
			fmt.Sprintf("opposed %s ended in a tie", output.Outcome.SkillDisplay))
	} else {
		s.logEvent(ctx, check.ChannelID, input.UserName,
			fmt.Sprintf("opposed %s: %s wins", output.Outcome.SkillDisplay, output.Outcome.WinnerName))
	}

	return output, nil
}

// opposedOutcome compares the two resolved sides of an opposed check.
// The higher success level wins; equal levels are a tie.
func (s *service) opposedOutcome(ctx context.Context, check *models.PendingCheck) *OpposedOutcome {
	data := check.Opposed

	outcome := &OpposedOutcome{
		Initiator:     storedSideResult(&data.Initiator),
		Target:        storedSideResult(&data.Target),
		InitiatorName: s.sideName(ctx, data.Initiator.UserID),
		TargetName:    s.sideName(ctx, data.Target.UserID),
		SkillDisplay:  skillDisplay(data.Initiator.SkillName, data.Target.SkillName),
	}

	switch {
	case data.Initiator.LevelRank > data.Target.LevelRank:
		outcome.WinnerID = data.Initiator.UserID
		outcome.WinnerName = outcome.InitiatorName
	case data.Target.LevelRank > data.Initiator.LevelRank:
		outcome.WinnerID = data.Target.UserID
		outcome.WinnerName = outcome.TargetName
	default:
		outcome.Tie = true
	}

	return outcome
}

// storedSideResult rebuilds a side's display from its stored roll
func storedSideResult(side *models.OpposedSide) *OpposedSideResult {
	return &OpposedSideResult{
		UserID:    side.UserID,
		SkillName: side.SkillName,
		Target:    side.Target,
		Roll:      side.Roll,
		Detail:    fmt.Sprintf("D100=%d", side.Roll),
		Level:     rules.SuccessLevel(side.Level),
	}
}

// sideName resolves a display name for one side of an opposed check
func (s *service) sideName(ctx context.Context, userID string) string {
	if name, ok := models.ParseOpposedNPCID(userID); ok {
		return name
	}

	char, err := s.activeCharacter(ctx, userID)
	if err != nil {
		return userID
	}

	return char.Name
}

func skillDisplay(initiatorSkill, targetSkill string) string {
	if initiatorSkill == targetSkill {
		return initiatorSkill
	}

	return initiatorSkill + " vs " + targetSkill
}
