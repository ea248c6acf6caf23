package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rollkeeper/rollkeeper/internal/models"
	characterRepo "github.com/rollkeeper/rollkeeper/internal/repositories/character"
	checksRepo "github.com/rollkeeper/rollkeeper/internal/repositories/checks"
	npcRepo "github.com/rollkeeper/rollkeeper/internal/repositories/npc"
	"github.com/rollkeeper/rollkeeper/internal/services/burst"
	"github.com/rollkeeper/rollkeeper/internal/services/messaging"
)

// DefaultAttribute stands in for attributes a sheet never recorded
const DefaultAttribute = 50

// FirearmsSkill is the skill automatic fire rolls against
const FirearmsSkill = "Firearms"

// CreateDamageCheck posts a damage confirmation for the initiator to
// apply or abandon
func (s *service) CreateDamageCheck(ctx context.Context, input *CreateDamageCheckInput) (*CreateDamageCheckOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := validateAmount(input.Expression); err != nil {
		return nil, err
	}

	if input.TargetUserID != "" && input.NPCName != "" {
		return nil, errors.New("choose either a user or an npc target, not both")
	}

	if input.TargetUserID == "" && input.NPCName == "" {
		return nil, errors.New("a target is required")
	}

	kind := models.TargetKindPlayer
	targetID := input.TargetUserID
	targetName := ""

	if input.NPCName != "" {
		npc, err := s.npcRepo.GetNPC(ctx, &npcRepo.GetNPCInput{
			ChannelID: input.ChannelID,
			Name:      input.NPCName,
		})
		if err != nil {
			return nil, err
		}

		kind = models.TargetKindNPC
		targetID = npc.Name
		targetName = npc.Name
	} else {
		char, err := s.activeCharacter(ctx, input.TargetUserID)
		if err != nil {
			if errors.Is(err, ErrNoActiveCharacter) {
				return nil, ErrTargetNoCharacter
			}

			return nil, err
		}

		targetName = char.Name
	}

	check, err := s.checkRepo.CreateDamageCheck(ctx, &checksRepo.CreateDamageCheckInput{
		ChannelID:   input.ChannelID,
		InitiatorID: input.InitiatorID,
		TargetKind:  kind,
		TargetID:    targetID,
		Expression:  input.Expression,
	})
	if err != nil {
		return nil, err
	}

	s.logEvent(ctx, input.ChannelID, input.InitiatorName,
		fmt.Sprintf("readied %s damage against %s", input.Expression, targetName))

	return &CreateDamageCheckOutput{
		CheckID:    check.ID,
		TargetKind: kind,
		TargetID:   targetID,
		TargetName: targetName,
		Expression: input.Expression,
	}, nil
}

// ConfirmDamage applies a readied damage check. Only the initiator can
// confirm, and the first press claims the check.
func (s *service) ConfirmDamage(ctx context.Context, input *ConfirmDamageInput) (*ConfirmDamageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	check, err := s.checkRepo.GetCheck(ctx, &checksRepo.GetCheckInput{
		CheckID: input.CheckID,
		Kind:    models.CheckKindDamage,
	})
	if err != nil {
		return nil, checkError(err)
	}

	data := check.Damage
	if data.InitiatorID != input.UserID {
		return nil, ErrNotInitiator
	}

	// Claim the check before touching hit points so a double press
	// cannot apply the damage twice
	if err := s.checkRepo.RemoveCheck(ctx, &checksRepo.RemoveCheckInput{CheckID: input.CheckID}); err != nil {
		return nil, checkError(err)
	}

	damage, err := s.evaluateAmount(data.Expression)
	if err != nil {
		return nil, err
	}

	output := &ConfirmDamageOutput{
		TargetKind: data.TargetKind,
		Expression: data.Expression,
		Damage:     damage,
	}

	if data.TargetKind == models.TargetKindNPC {
		err = s.applyNPCDamage(ctx, check.ChannelID, data.TargetID, damage, output)
	} else {
		err = s.applyPlayerDamage(ctx, check, damage, output)
	}
	if err != nil {
		return nil, err
	}

	s.logDamage(ctx, check.ChannelID, input.UserName, output)

	return output, nil
}

// applyNPCDamage wounds a channel NPC. The exact hit points stay
// hidden from the channel, so the output only carries the condition
// tier and an empty gauge.
func (s *service) applyNPCDamage(ctx context.Context, channelID, name string, damage int, output *ConfirmDamageOutput) error {
	npc, err := s.npcRepo.GetNPC(ctx, &npcRepo.GetNPCInput{
		ChannelID: channelID,
		Name:      name,
	})
	if err != nil {
		return err
	}

	newHP := npc.HP - damage
	if newHP < 0 {
		newHP = 0
	}

	npc.HP = newHP
	if err := s.npcRepo.SaveNPC(ctx, &npcRepo.SaveNPCInput{NPC: npc}); err != nil {
		return err
	}

	output.TargetName = npc.Name
	output.HiddenHealth = true

	status, err := s.messagingService.GetHealthStatus(ctx, &messaging.GetHealthStatusInput{
		Current: newHP,
		Max:     npc.MaxHP,
	})
	if err != nil {
		return err
	}

	output.HealthLevel = status.Level
	output.HealthDescription = status.Description

	bar, err := s.messagingService.GetHealthBar(ctx, &messaging.GetHealthBarInput{
		Current: newHP,
		Max:     npc.MaxHP,
		Hidden:  true,
	})
	if err != nil {
		return err
	}

	output.HealthBar = bar.Bar

	// An NPC has no button to press, so a major wound resolves its
	// constitution check on the spot
	if majorWound(damage, npc.MaxHP, newHP) {
		output.MajorWound = true
		output.ConResult = s.rollConstitution(npc.Name, constitutionValue(&npc.Character), damage)
	}

	return nil
}

// applyPlayerDamage wounds a user's active character and, on a major
// wound, stores a constitution check for the target to roll
func (s *service) applyPlayerDamage(ctx context.Context, check *models.PendingCheck, damage int, output *ConfirmDamageOutput) error {
	data := check.Damage

	char, err := s.activeCharacter(ctx, data.TargetID)
	if err != nil {
		if errors.Is(err, ErrNoActiveCharacter) {
			return ErrTargetNoCharacter
		}

		return err
	}

	oldHP := char.HP
	newHP := oldHP - damage
	if newHP < 0 {
		newHP = 0
	}

	char.HP = newHP
	if err := s.characterRepo.SaveCharacter(ctx, &characterRepo.SaveCharacterInput{Character: char}); err != nil {
		return err
	}

	output.TargetName = char.Name
	output.OldHP = oldHP
	output.NewHP = newHP
	output.MaxHP = char.MaxHP

	status, err := s.messagingService.GetHealthStatus(ctx, &messaging.GetHealthStatusInput{
		Current: newHP,
		Max:     char.MaxHP,
	})
	if err != nil {
		return err
	}

	output.HealthLevel = status.Level
	output.HealthDescription = status.Description

	bar, err := s.messagingService.GetHealthBar(ctx, &messaging.GetHealthBarInput{
		Current: newHP,
		Max:     char.MaxHP,
	})
	if err != nil {
		return err
	}

	output.HealthBar = bar.Bar

	if majorWound(damage, char.MaxHP, newHP) {
		output.MajorWound = true

		conCheck, err := s.checkRepo.CreateConstitutionCheck(ctx, &checksRepo.CreateConstitutionCheckInput{
			ChannelID:  check.ChannelID,
			CreatorID:  data.InitiatorID,
			TargetID:   data.TargetID,
			TargetName: char.Name,
			Damage:     damage,
			MaxHP:      char.MaxHP,
		})
		if err != nil {
			return err
		}

		output.ConCheckID = conCheck.ID
	}

	return nil
}

// RollConstitutionCheck resolves a stored major-wound constitution
// check. Only the wounded target can roll it, and the first press
// claims the check.
func (s *service) RollConstitutionCheck(ctx context.Context, input *RollConstitutionCheckInput) (*RollConstitutionCheckOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	check, err := s.checkRepo.GetCheck(ctx, &checksRepo.GetCheckInput{
		CheckID: input.CheckID,
		Kind:    models.CheckKindConstitution,
	})
	if err != nil {
		return nil, checkError(err)
	}

	data := check.Constitution
	if data.TargetID != input.UserID {
		return nil, ErrNotTarget
	}

	// Resolve the sheet before claiming the check so a missing
	// character leaves it rollable
	char, err := s.activeCharacter(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.checkRepo.RemoveCheck(ctx, &checksRepo.RemoveCheckInput{CheckID: input.CheckID}); err != nil {
		return nil, checkError(err)
	}

	result := s.rollConstitution(data.TargetName, constitutionValue(char), data.Damage)

	outcome := "stays on their feet"
	if !result.Success {
		outcome = "falls unconscious"
	}

	s.logEvent(ctx, check.ChannelID, input.UserName,
		fmt.Sprintf("constitution check %s, %s", result.Detail, outcome))

	return &RollConstitutionCheckOutput{Result: result}, nil
}

// ResolveBurstFire grades a volley of automatic fire, either against
// an explicit skill value or against a channel NPC's Firearms skill
func (s *service) ResolveBurstFire(ctx context.Context, input *ResolveBurstFireInput) (*ResolveBurstFireOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	target := input.SkillValue
	if target <= 0 {
		if input.NPCName == "" {
			return nil, errors.New("a skill value or an npc shooter is required")
		}

		npc, err := s.npcRepo.GetNPC(ctx, &npcRepo.GetNPCInput{
			ChannelID: input.ChannelID,
			Name:      input.NPCName,
		})
		if err != nil {
			return nil, err
		}

		value, ok := npc.GetSkill(FirearmsSkill)
		if !ok {
			return nil, ErrSkillNotFound
		}

		target = value
	}

	rule, settings, err := s.userRule(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	volley, err := s.burstService.Resolve(ctx, &burst.ResolveInput{
		Target:     target,
		Bursts:     input.Bursts,
		EnvBonus:   input.EnvBonus,
		EnvPenalty: input.EnvPenalty,
		Rule:       rule,
	})
	if err != nil {
		return nil, err
	}

	s.logEvent(ctx, input.ChannelID, input.UserName,
		fmt.Sprintf("fired %d bursts: %d hits", len(volley.Bursts), volley.TotalHits))

	return &ResolveBurstFireOutput{
		NPCName:  input.NPCName,
		RuleName: settings.RuleName,
		Volley:   volley,
	}, nil
}

func (s *service) rollConstitution(name string, value, damage int) *ConstitutionResult {
	roll, _ := s.rollPercentile(0, 0)
	success := roll <= value

	return &ConstitutionResult{
		TargetName: name,
		Value:      value,
		Roll:       roll,
		Detail:     binaryDetail(roll, value, success),
		Success:    success,
		Damage:     damage,
	}
}

func (s *service) logDamage(ctx context.Context, channelID, userName string, output *ConfirmDamageOutput) {
	content := fmt.Sprintf("dealt %d damage (%s) to %s",
		output.Damage, output.Expression, output.TargetName)
	if output.MajorWound {
		content += ", a major wound"
	}

	s.logEvent(ctx, channelID, userName, content)
}

// majorWound reports damage of at least half the target's maximum hit
// points. A wound that drops the target to zero skips the check, since
// they are down regardless.
func majorWound(damage, maxHP, newHP int) bool {
	return maxHP > 0 && damage*2 >= maxHP && newHP > 0
}

// constitutionValue reads CON from a sheet, falling back to
// DefaultAttribute for sheets that never recorded it
func constitutionValue(char *models.Character) int {
	if value, ok := char.Attributes["CON"]; ok && value > 0 {
		return value
	}

	return DefaultAttribute
}
