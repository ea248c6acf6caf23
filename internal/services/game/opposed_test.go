package game

import (
	"github.com/rollkeeper/rollkeeper/internal/models"
	checksRepo "github.com/rollkeeper/rollkeeper/internal/repositories/checks"
	npcRepo "github.com/rollkeeper/rollkeeper/internal/repositories/npc"
	settingsRepo "github.com/rollkeeper/rollkeeper/internal/repositories/settings"
	"github.com/rollkeeper/rollkeeper/internal/rules"
	"go.uber.org/mock/gomock"
)

const testRivalID = "rival-id"

// opposedCheckFixture returns a stored opposed check between the suite
// user and a rival, neither side rolled yet
func (s *GameServiceTestSuite) opposedCheckFixture() *models.PendingCheck {
	return &models.PendingCheck{
		ID:        s.testCheckID,
		Kind:      models.CheckKindOpposed,
		ChannelID: s.testChannelID,
		Opposed: &models.OpposedCheckData{
			Initiator: models.OpposedSide{
				UserID:    s.testUserID,
				SkillName: "Firearms",
			},
			Target: models.OpposedSide{
				UserID:    testRivalID,
				SkillName: "Firearms",
			},
		},
	}
}

func (s *GameServiceTestSuite) TestCreateOpposedCheck_UserTarget() {
	s.expectLog()

	s.mockCheckRepo.EXPECT().
		CreateOpposedCheck(gomock.Any(), &checksRepo.CreateOpposedCheckInput{
			ChannelID: s.testChannelID,
			Initiator: checksRepo.OpposedSideInput{
				UserID:    s.testUserID,
				SkillName: "Firearms",
			},
			Target: checksRepo.OpposedSideInput{
				UserID:    testRivalID,
				SkillName: "Firearms",
				Penalty:   1,
			},
		}).
		Return(s.opposedCheckFixture(), nil)

	output, err := s.gameService.CreateOpposedCheck(s.ctx, &CreateOpposedCheckInput{
		ChannelID:      s.testChannelID,
		InitiatorID:    s.testUserID,
		InitiatorName:  s.testUserName,
		TargetID:       testRivalID,
		InitiatorSkill: "Firearms",
		TargetPenalty:  1,
	})

	s.Require().NoError(err)
	s.Equal(s.testCheckID, output.CheckID)
	s.Equal("Firearms", output.InitiatorSkill)
	s.Equal("Firearms", output.TargetSkill)
	s.Equal(testRivalID, output.TargetID)
	s.Nil(output.NPCResult)
}

func (s *GameServiceTestSuite) TestCreateOpposedCheck_NPCRollsImmediately() {
	s.expectSettings()
	s.expectLog()

	npcSideID := models.OpposedNPCID("Cultist", s.testChannelID)

	s.mockNPCRepo.EXPECT().
		GetNPC(gomock.Any(), &npcRepo.GetNPCInput{
			ChannelID: s.testChannelID,
			Name:      "Cultist",
		}).
		Return(&models.NPC{
			Character: models.Character{
				Name:   "Cultist",
				Skills: map[string]int{"Dodge": 40},
			},
		}, nil)

	s.mockCheckRepo.EXPECT().
		CreateOpposedCheck(gomock.Any(), &checksRepo.CreateOpposedCheckInput{
			ChannelID: s.testChannelID,
			Initiator: checksRepo.OpposedSideInput{
				UserID:    s.testUserID,
				SkillName: "Fighting",
			},
			Target: checksRepo.OpposedSideInput{
				UserID:    npcSideID,
				SkillName: "Dodge",
			},
		}).
		Return(&models.PendingCheck{
			ID:        s.testCheckID,
			Kind:      models.CheckKindOpposed,
			ChannelID: s.testChannelID,
		}, nil)

	s.mockRoller.EXPECT().Roll(100).Return(25)

	s.mockCheckRepo.EXPECT().
		SetOpposedResult(gomock.Any(), &checksRepo.SetOpposedResultInput{
			CheckID:   s.testCheckID,
			UserID:    npcSideID,
			Roll:      25,
			Target:    40,
			Level:     string(rules.SuccessLevelRegular),
			LevelRank: rules.SuccessLevelRegular.Rank(),
		}).
		Return(&checksRepo.SetOpposedResultOutput{}, nil)

	output, err := s.gameService.CreateOpposedCheck(s.ctx, &CreateOpposedCheckInput{
		ChannelID:      s.testChannelID,
		InitiatorID:    s.testUserID,
		InitiatorName:  s.testUserName,
		NPCName:        "Cultist",
		InitiatorSkill: "Fighting",
		TargetSkill:    "Dodge",
	})

	s.Require().NoError(err)
	s.Equal("Cultist", output.NPCName)
	s.Empty(output.TargetID)

	s.Require().NotNil(output.NPCResult)
	s.Equal(npcSideID, output.NPCResult.UserID)
	s.Equal(40, output.NPCResult.Target)
	s.Equal(25, output.NPCResult.Roll)
	s.Equal("D100=25", output.NPCResult.Detail)
	s.Equal(rules.SuccessLevelRegular, output.NPCResult.Level)
}

func (s *GameServiceTestSuite) TestCreateOpposedCheck_SelfOpposition() {
	output, err := s.gameService.CreateOpposedCheck(s.ctx, &CreateOpposedCheckInput{
		ChannelID:      s.testChannelID,
		InitiatorID:    s.testUserID,
		TargetID:       s.testUserID,
		InitiatorSkill: "Firearms",
	})

	s.Nil(output)
	s.Equal(ErrSelfOpposition, err)
}

func (s *GameServiceTestSuite) TestCreateOpposedCheck_BothOpponentKinds() {
	output, err := s.gameService.CreateOpposedCheck(s.ctx, &CreateOpposedCheckInput{
		ChannelID:      s.testChannelID,
		InitiatorID:    s.testUserID,
		TargetID:       testRivalID,
		NPCName:        "Cultist",
		InitiatorSkill: "Firearms",
	})

	s.Nil(output)
	s.ErrorContains(err, "not both")
}

func (s *GameServiceTestSuite) TestCreateOpposedCheck_NPCMissingSkill() {
	s.mockNPCRepo.EXPECT().
		GetNPC(gomock.Any(), gomock.Any()).
		Return(&models.NPC{
			Character: models.Character{Name: "Cultist"},
		}, nil)

	output, err := s.gameService.CreateOpposedCheck(s.ctx, &CreateOpposedCheckInput{
		ChannelID:      s.testChannelID,
		InitiatorID:    s.testUserID,
		NPCName:        "Cultist",
		InitiatorSkill: "Fighting",
		TargetSkill:    "Dodge",
	})

	s.Nil(output)
	s.ErrorContains(err, "npc has no Dodge skill")
}

func (s *GameServiceTestSuite) TestRollOpposedCheck_FirstSide() {
	s.expectActiveCharacter()
	s.expectLog()

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), &checksRepo.GetCheckInput{
			CheckID: s.testCheckID,
			Kind:    models.CheckKindOpposed,
		}).
		Return(s.opposedCheckFixture(), nil)

	s.mockRoller.EXPECT().Roll(100).Return(30)

	s.mockCheckRepo.EXPECT().
		SetOpposedResult(gomock.Any(), &checksRepo.SetOpposedResultInput{
			CheckID:   s.testCheckID,
			UserID:    s.testUserID,
			Roll:      30,
			Target:    45,
			Level:     string(rules.SuccessLevelRegular),
			LevelRank: rules.SuccessLevelRegular.Rank(),
		}).
		Return(&checksRepo.SetOpposedResultOutput{
			Check: s.opposedCheckFixture(),
		}, nil)

	output, err := s.gameService.RollOpposedCheck(s.ctx, &RollOpposedCheckInput{
		CheckID:  s.testCheckID,
		UserID:   s.testUserID,
		UserName: s.testUserName,
	})

	s.Require().NoError(err)
	s.False(output.Complete)
	s.Nil(output.Outcome)
	s.Equal(30, output.Side.Roll)
	s.Equal(45, output.Side.Target)
	s.Equal(rules.SuccessLevelRegular, output.Side.Level)
}

func (s *GameServiceTestSuite) TestRollOpposedCheck_NotParticipant() {
	check := s.opposedCheckFixture()
	check.Opposed.Initiator.UserID = "someone-else"

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(check, nil)

	output, err := s.gameService.RollOpposedCheck(s.ctx, &RollOpposedCheckInput{
		CheckID: s.testCheckID,
		UserID:  s.testUserID,
	})

	s.Nil(output)
	s.Equal(ErrNotParticipant, err)
}

func (s *GameServiceTestSuite) TestRollOpposedCheck_SideAlreadyResolved() {
	check := s.opposedCheckFixture()
	check.Opposed.Initiator.Resolved = true

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(check, nil)

	output, err := s.gameService.RollOpposedCheck(s.ctx, &RollOpposedCheckInput{
		CheckID: s.testCheckID,
		UserID:  s.testUserID,
	})

	s.Nil(output)
	s.Equal(ErrSideAlreadyResolved, err)
}

func (s *GameServiceTestSuite) TestRollOpposedCheck_SkillMissingFromSheet() {
	check := s.opposedCheckFixture()
	check.Opposed.Initiator.SkillName = "Fighting"

	s.expectActiveCharacter()

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(check, nil)

	output, err := s.gameService.RollOpposedCheck(s.ctx, &RollOpposedCheckInput{
		CheckID: s.testCheckID,
		UserID:  s.testUserID,
	})

	s.Nil(output)
	s.Equal(ErrSkillNotFound, err)
}

func (s *GameServiceTestSuite) TestRollOpposedCheck_SecondSidePicksWinner() {
	s.expectActiveCharacter()
	s.expectLog()

	s.mockSettingsRepo.EXPECT().
		GetSettings(gomock.Any(), &settingsRepo.GetSettingsInput{UserID: testRivalID}).
		Return(&models.UserSettings{}, nil)

	rivalSide := models.OpposedSide{
		UserID:    testRivalID,
		SkillName: "Firearms",
		Resolved:  true,
		Roll:      50,
		Target:    60,
		Level:     string(rules.SuccessLevelRegular),
		LevelRank: rules.SuccessLevelRegular.Rank(),
	}

	stored := s.opposedCheckFixture()
	stored.Opposed.Target = rivalSide

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(stored, nil)

	s.mockRoller.EXPECT().Roll(100).Return(12)

	resolved := s.opposedCheckFixture()
	resolved.Opposed.Initiator = models.OpposedSide{
		UserID:    s.testUserID,
		SkillName: "Firearms",
		Resolved:  true,
		Roll:      12,
		Target:    45,
		Level:     string(rules.SuccessLevelHard),
		LevelRank: rules.SuccessLevelHard.Rank(),
	}
	resolved.Opposed.Target = rivalSide

	s.mockCheckRepo.EXPECT().
		SetOpposedResult(gomock.Any(), &checksRepo.SetOpposedResultInput{
			CheckID:   s.testCheckID,
			UserID:    s.testUserID,
			Roll:      12,
			Target:    45,
			Level:     string(rules.SuccessLevelHard),
			LevelRank: rules.SuccessLevelHard.Rank(),
		}).
		Return(&checksRepo.SetOpposedResultOutput{
			Check:        resolved,
			BothResolved: true,
		}, nil)

	output, err := s.gameService.RollOpposedCheck(s.ctx, &RollOpposedCheckInput{
		CheckID:  s.testCheckID,
		UserID:   s.testUserID,
		UserName: s.testUserName,
	})

	s.Require().NoError(err)
	s.True(output.Complete)

	outcome := output.Outcome
	s.Require().NotNil(outcome)
	s.False(outcome.Tie)
	s.Equal(s.testUserID, outcome.WinnerID)
	s.Equal("Harvey Walters", outcome.WinnerName)
	s.Equal(testRivalID, outcome.Target.UserID)
	s.Equal("Firearms", outcome.SkillDisplay)
	s.Equal("D100=12", outcome.Initiator.Detail)
	s.Equal(rules.SuccessLevelRegular, outcome.Target.Level)
	s.Equal("Harvey Walters", outcome.InitiatorName)
	s.Equal(testRivalID, outcome.TargetName)
}

func (s *GameServiceTestSuite) TestRollOpposedCheck_EqualLevelsTie() {
	s.expectActiveCharacter()
	s.expectLog()

	s.mockSettingsRepo.EXPECT().
		GetSettings(gomock.Any(), &settingsRepo.GetSettingsInput{UserID: testRivalID}).
		Return(&models.UserSettings{}, nil)

	rivalSide := models.OpposedSide{
		UserID:    testRivalID,
		SkillName: "Firearms",
		Resolved:  true,
		Roll:      70,
		Target:    60,
		Level:     string(rules.SuccessLevelFailure),
		LevelRank: rules.SuccessLevelFailure.Rank(),
	}

	stored := s.opposedCheckFixture()
	stored.Opposed.Target = rivalSide

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(stored, nil)

	s.mockRoller.EXPECT().Roll(100).Return(50)

	resolved := s.opposedCheckFixture()
	resolved.Opposed.Initiator = models.OpposedSide{
		UserID:    s.testUserID,
		SkillName: "Firearms",
		Resolved:  true,
		Roll:      50,
		Target:    45,
		Level:     string(rules.SuccessLevelFailure),
		LevelRank: rules.SuccessLevelFailure.Rank(),
	}
	resolved.Opposed.Target = rivalSide

	s.mockCheckRepo.EXPECT().
		SetOpposedResult(gomock.Any(), gomock.Any()).
		Return(&checksRepo.SetOpposedResultOutput{
			Check:        resolved,
			BothResolved: true,
		}, nil)

	output, err := s.gameService.RollOpposedCheck(s.ctx, &RollOpposedCheckInput{
		CheckID:  s.testCheckID,
		UserID:   s.testUserID,
		UserName: s.testUserName,
	})

	s.Require().NoError(err)
	s.True(output.Complete)
	s.True(output.Outcome.Tie)
	s.Empty(output.Outcome.WinnerID)
	s.Empty(output.Outcome.WinnerName)
}

func (s *GameServiceTestSuite) TestRollOpposedCheck_Expired() {
	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(nil, checksRepo.ErrCheckNotFound)

	output, err := s.gameService.RollOpposedCheck(s.ctx, &RollOpposedCheckInput{
		CheckID: s.testCheckID,
		UserID:  s.testUserID,
	})

	s.Nil(output)
	s.Equal(ErrCheckExpired, err)
}
