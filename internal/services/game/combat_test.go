package game

import (
	"github.com/rollkeeper/rollkeeper/internal/dice"
	"github.com/rollkeeper/rollkeeper/internal/models"
	checksRepo "github.com/rollkeeper/rollkeeper/internal/repositories/checks"
	npcRepo "github.com/rollkeeper/rollkeeper/internal/repositories/npc"
	settingsRepo "github.com/rollkeeper/rollkeeper/internal/repositories/settings"
	"github.com/rollkeeper/rollkeeper/internal/rules"
	"github.com/rollkeeper/rollkeeper/internal/services/messaging"
	"go.uber.org/mock/gomock"
)

// damageCheckFixture returns a readied damage confirmation
func (s *GameServiceTestSuite) damageCheckFixture(kind models.TargetKind, targetID, expression string) *models.PendingCheck {
	return &models.PendingCheck{
		ID:        s.testCheckID,
		Kind:      models.CheckKindDamage,
		ChannelID: s.testChannelID,
		Damage: &models.DamageCheckData{
			InitiatorID: s.testUserID,
			TargetKind:  kind,
			TargetID:    targetID,
			Expression:  expression,
		},
	}
}

// constitutionCheckFixture returns a stored major-wound check aimed at
// the suite character
func (s *GameServiceTestSuite) constitutionCheckFixture() *models.PendingCheck {
	return &models.PendingCheck{
		ID:        s.testCheckID,
		Kind:      models.CheckKindConstitution,
		ChannelID: s.testChannelID,
		Constitution: &models.ConstitutionCheckData{
			TargetID:   s.testUserID,
			TargetName: "Harvey Walters",
			Damage:     6,
			MaxHP:      11,
		},
	}
}

func (s *GameServiceTestSuite) TestCreateDamageCheck_PlayerTarget() {
	s.expectActiveCharacter()
	s.expectLog()

	s.mockCheckRepo.EXPECT().
		CreateDamageCheck(gomock.Any(), &checksRepo.CreateDamageCheckInput{
			ChannelID:   s.testChannelID,
			InitiatorID: "keeper-id",
			TargetKind:  models.TargetKindPlayer,
			TargetID:    s.testUserID,
			Expression:  "2d6",
		}).
		Return(s.damageCheckFixture(models.TargetKindPlayer, s.testUserID, "2d6"), nil)

	output, err := s.gameService.CreateDamageCheck(s.ctx, &CreateDamageCheckInput{
		ChannelID:     s.testChannelID,
		InitiatorID:   "keeper-id",
		InitiatorName: "Keeper",
		TargetUserID:  s.testUserID,
		Expression:    "2d6",
	})

	s.Require().NoError(err)
	s.Equal(s.testCheckID, output.CheckID)
	s.Equal(models.TargetKindPlayer, output.TargetKind)
	s.Equal("Harvey Walters", output.TargetName)
}

func (s *GameServiceTestSuite) TestCreateDamageCheck_NPCTarget() {
	s.expectLog()

	s.mockNPCRepo.EXPECT().
		GetNPC(gomock.Any(), &npcRepo.GetNPCInput{
			ChannelID: s.testChannelID,
			Name:      "Shoggoth",
		}).
		Return(&models.NPC{
			Character: models.Character{Name: "Shoggoth"},
		}, nil)

	s.mockCheckRepo.EXPECT().
		CreateDamageCheck(gomock.Any(), &checksRepo.CreateDamageCheckInput{
			ChannelID:   s.testChannelID,
			InitiatorID: s.testUserID,
			TargetKind:  models.TargetKindNPC,
			TargetID:    "Shoggoth",
			Expression:  "1d10",
		}).
		Return(s.damageCheckFixture(models.TargetKindNPC, "Shoggoth", "1d10"), nil)

	output, err := s.gameService.CreateDamageCheck(s.ctx, &CreateDamageCheckInput{
		ChannelID:     s.testChannelID,
		InitiatorID:   s.testUserID,
		InitiatorName: s.testUserName,
		NPCName:       "Shoggoth",
		Expression:    "1d10",
	})

	s.Require().NoError(err)
	s.Equal(models.TargetKindNPC, output.TargetKind)
	s.Equal("Shoggoth", output.TargetName)
}

func (s *GameServiceTestSuite) TestCreateDamageCheck_TargetWithoutCharacter() {
	s.mockSettingsRepo.EXPECT().
		GetSettings(gomock.Any(), &settingsRepo.GetSettingsInput{UserID: testRivalID}).
		Return(&models.UserSettings{}, nil)

	output, err := s.gameService.CreateDamageCheck(s.ctx, &CreateDamageCheckInput{
		ChannelID:    s.testChannelID,
		InitiatorID:  s.testUserID,
		TargetUserID: testRivalID,
		Expression:   "3",
	})

	s.Nil(output)
	s.Equal(ErrTargetNoCharacter, err)
}

func (s *GameServiceTestSuite) TestCreateDamageCheck_InvalidExpression() {
	output, err := s.gameService.CreateDamageCheck(s.ctx, &CreateDamageCheckInput{
		ChannelID:    s.testChannelID,
		InitiatorID:  s.testUserID,
		TargetUserID: testRivalID,
		Expression:   "soup",
	})

	s.Nil(output)
	s.ErrorIs(err, dice.ErrInvalidExpression)
}

func (s *GameServiceTestSuite) TestConfirmDamage_NotInitiator() {
	check := s.damageCheckFixture(models.TargetKindPlayer, testRivalID, "3")
	check.Damage.InitiatorID = "keeper-id"

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), &checksRepo.GetCheckInput{
			CheckID: s.testCheckID,
			Kind:    models.CheckKindDamage,
		}).
		Return(check, nil)

	output, err := s.gameService.ConfirmDamage(s.ctx, &ConfirmDamageInput{
		CheckID: s.testCheckID,
		UserID:  s.testUserID,
	})

	s.Nil(output)
	s.Equal(ErrNotInitiator, err)
}

func (s *GameServiceTestSuite) TestConfirmDamage_PlayerTarget() {
	s.expectActiveCharacter()
	s.expectLog()

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(s.damageCheckFixture(models.TargetKindPlayer, s.testUserID, "3"), nil)

	s.mockCheckRepo.EXPECT().
		RemoveCheck(gomock.Any(), &checksRepo.RemoveCheckInput{CheckID: s.testCheckID}).
		Return(nil)

	s.mockCharacterRepo.EXPECT().
		SaveCharacter(gomock.Any(), gomock.Any()).
		Return(nil)

	output, err := s.gameService.ConfirmDamage(s.ctx, &ConfirmDamageInput{
		CheckID:  s.testCheckID,
		UserID:   s.testUserID,
		UserName: s.testUserName,
	})

	s.Require().NoError(err)
	s.Equal(3, output.Damage)
	s.Equal("Harvey Walters", output.TargetName)
	s.Equal(11, output.OldHP)
	s.Equal(8, output.NewHP)
	s.Equal(11, output.MaxHP)
	s.Equal(messaging.HealthHealthy, output.HealthLevel)
	s.NotEmpty(output.HealthDescription)
	s.NotEmpty(output.HealthBar)
	s.False(output.HiddenHealth)
	s.False(output.MajorWound)
	s.Empty(output.ConCheckID)
	s.Equal(8, s.testCharacter.HP)
}

func (s *GameServiceTestSuite) TestConfirmDamage_PlayerMajorWound() {
	s.expectActiveCharacter()
	s.expectLog()

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(s.damageCheckFixture(models.TargetKindPlayer, s.testUserID, "6"), nil)

	s.mockCheckRepo.EXPECT().
		RemoveCheck(gomock.Any(), gomock.Any()).
		Return(nil)

	s.mockCharacterRepo.EXPECT().
		SaveCharacter(gomock.Any(), gomock.Any()).
		Return(nil)

	s.mockCheckRepo.EXPECT().
		CreateConstitutionCheck(gomock.Any(), &checksRepo.CreateConstitutionCheckInput{
			ChannelID:  s.testChannelID,
			CreatorID:  s.testUserID,
			TargetID:   s.testUserID,
			TargetName: "Harvey Walters",
			Damage:     6,
			MaxHP:      11,
		}).
		Return(&models.PendingCheck{ID: "con-check-id"}, nil)

	output, err := s.gameService.ConfirmDamage(s.ctx, &ConfirmDamageInput{
		CheckID:  s.testCheckID,
		UserID:   s.testUserID,
		UserName: s.testUserName,
	})

	s.Require().NoError(err)
	s.Equal(6, output.Damage)
	s.Equal(5, output.NewHP)
	s.Equal(messaging.HealthWounded, output.HealthLevel)
	s.True(output.MajorWound)
	s.Equal("con-check-id", output.ConCheckID)
	s.Nil(output.ConResult)
}

func (s *GameServiceTestSuite) TestConfirmDamage_LethalWoundSkipsConstitution() {
	s.expectActiveCharacter()
	s.expectLog()

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(s.damageCheckFixture(models.TargetKindPlayer, s.testUserID, "11"), nil)

	s.mockCheckRepo.EXPECT().
		RemoveCheck(gomock.Any(), gomock.Any()).
		Return(nil)

	s.mockCharacterRepo.EXPECT().
		SaveCharacter(gomock.Any(), gomock.Any()).
		Return(nil)

	output, err := s.gameService.ConfirmDamage(s.ctx, &ConfirmDamageInput{
		CheckID:  s.testCheckID,
		UserID:   s.testUserID,
		UserName: s.testUserName,
	})

	s.Require().NoError(err)
	s.Equal(0, output.NewHP)
	s.Equal(messaging.HealthDown, output.HealthLevel)
	s.False(output.MajorWound)
	s.Empty(output.ConCheckID)
}

func (s *GameServiceTestSuite) TestConfirmDamage_NPCTarget() {
	s.expectLog()

	npc := &models.NPC{
		Character: models.Character{
			Name:  "Shoggoth",
			HP:    30,
			MaxHP: 30,
		},
	}

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(s.damageCheckFixture(models.TargetKindNPC, "Shoggoth", "2d6"), nil)

	s.mockCheckRepo.EXPECT().
		RemoveCheck(gomock.Any(), gomock.Any()).
		Return(nil)

	s.mockNPCRepo.EXPECT().
		GetNPC(gomock.Any(), &npcRepo.GetNPCInput{
			ChannelID: s.testChannelID,
			Name:      "Shoggoth",
		}).
		Return(npc, nil)

	s.mockNPCRepo.EXPECT().
		SaveNPC(gomock.Any(), &npcRepo.SaveNPCInput{NPC: npc}).
		Return(nil)

	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(6).Return(2),
		s.mockRoller.EXPECT().Roll(6).Return(3),
	)

	output, err := s.gameService.ConfirmDamage(s.ctx, &ConfirmDamageInput{
		CheckID:  s.testCheckID,
		UserID:   s.testUserID,
		UserName: s.testUserName,
	})

	s.Require().NoError(err)
	s.Equal(5, output.Damage)
	s.Equal("Shoggoth", output.TargetName)
	s.True(output.HiddenHealth)
	s.Zero(output.OldHP)
	s.Zero(output.NewHP)
	s.Zero(output.MaxHP)
	s.Equal(messaging.HealthHealthy, output.HealthLevel)
	s.NotEmpty(output.HealthBar)
	s.False(output.MajorWound)
	s.Equal(25, npc.HP)
}

func (s *GameServiceTestSuite) TestConfirmDamage_NPCMajorWoundRollsConstitution() {
	s.expectLog()

	npc := &models.NPC{
		Character: models.Character{
			Name:       "Shoggoth",
			Attributes: map[string]int{"CON": 60},
			HP:         20,
			MaxHP:      20,
		},
	}

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(s.damageCheckFixture(models.TargetKindNPC, "Shoggoth", "12"), nil)

	s.mockCheckRepo.EXPECT().
		RemoveCheck(gomock.Any(), gomock.Any()).
		Return(nil)

	s.mockNPCRepo.EXPECT().
		GetNPC(gomock.Any(), gomock.Any()).
		Return(npc, nil)

	s.mockNPCRepo.EXPECT().
		SaveNPC(gomock.Any(), gomock.Any()).
		Return(nil)

	s.mockRoller.EXPECT().Roll(100).Return(30)

	output, err := s.gameService.ConfirmDamage(s.ctx, &ConfirmDamageInput{
		CheckID:  s.testCheckID,
		UserID:   s.testUserID,
		UserName: s.testUserName,
	})

	s.Require().NoError(err)
	s.True(output.MajorWound)
	s.Empty(output.ConCheckID)

	result := output.ConResult
	s.Require().NotNil(result)
	s.Equal("Shoggoth", result.TargetName)
	s.Equal(60, result.Value)
	s.Equal(30, result.Roll)
	s.Equal("D100=30/60 [Success]", result.Detail)
	s.True(result.Success)
	s.Equal(12, result.Damage)
}

func (s *GameServiceTestSuite) TestConfirmDamage_SecondPressExpires() {
	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(s.damageCheckFixture(models.TargetKindPlayer, s.testUserID, "3"), nil)

	s.mockCheckRepo.EXPECT().
		RemoveCheck(gomock.Any(), gomock.Any()).
		Return(checksRepo.ErrCheckNotFound)

	output, err := s.gameService.ConfirmDamage(s.ctx, &ConfirmDamageInput{
		CheckID: s.testCheckID,
		UserID:  s.testUserID,
	})

	s.Nil(output)
	s.Equal(ErrCheckExpired, err)
}

func (s *GameServiceTestSuite) TestRollConstitutionCheck() {
	s.expectActiveCharacter()
	s.expectLog()

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), &checksRepo.GetCheckInput{
			CheckID: s.testCheckID,
			Kind:    models.CheckKindConstitution,
		}).
		Return(s.constitutionCheckFixture(), nil)

	s.mockCheckRepo.EXPECT().
		RemoveCheck(gomock.Any(), &checksRepo.RemoveCheckInput{CheckID: s.testCheckID}).
		Return(nil)

	s.mockRoller.EXPECT().Roll(100).Return(70)

	output, err := s.gameService.RollConstitutionCheck(s.ctx, &RollConstitutionCheckInput{
		CheckID:  s.testCheckID,
		UserID:   s.testUserID,
		UserName: s.testUserName,
	})

	s.Require().NoError(err)

	result := output.Result
	s.Equal("Harvey Walters", result.TargetName)
	s.Equal(60, result.Value)
	s.Equal(70, result.Roll)
	s.Equal("D100=70/60 [Failure]", result.Detail)
	s.False(result.Success)
	s.Equal(6, result.Damage)
}

func (s *GameServiceTestSuite) TestRollConstitutionCheck_NotTarget() {
	check := s.constitutionCheckFixture()
	check.Constitution.TargetID = testRivalID

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(check, nil)

	output, err := s.gameService.RollConstitutionCheck(s.ctx, &RollConstitutionCheckInput{
		CheckID: s.testCheckID,
		UserID:  s.testUserID,
	})

	s.Nil(output)
	s.Equal(ErrNotTarget, err)
}

func (s *GameServiceTestSuite) TestRollConstitutionCheck_MissingCharacterKeepsCheck() {
	s.mockSettingsRepo.EXPECT().
		GetSettings(gomock.Any(), &settingsRepo.GetSettingsInput{UserID: s.testUserID}).
		Return(&models.UserSettings{}, nil)

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(s.constitutionCheckFixture(), nil)

	output, err := s.gameService.RollConstitutionCheck(s.ctx, &RollConstitutionCheckInput{
		CheckID: s.testCheckID,
		UserID:  s.testUserID,
	})

	s.Nil(output)
	s.Equal(ErrNoActiveCharacter, err)
}

func (s *GameServiceTestSuite) TestResolveBurstFire_ExplicitSkill() {
	s.expectSettings()
	s.expectLog()

	s.mockRoller.EXPECT().Roll(100).Return(5)

	output, err := s.gameService.ResolveBurstFire(s.ctx, &ResolveBurstFireInput{
		ChannelID:  s.testChannelID,
		UserID:     s.testUserID,
		UserName:   s.testUserName,
		SkillValue: 60,
		Bursts:     1,
	})

	s.Require().NoError(err)
	s.Equal("B", output.RuleName)

	volley := output.Volley
	s.Equal(60, volley.Target)
	s.Equal(6, volley.BulletsPerBurst)
	s.Require().Len(volley.Bursts, 1)
	s.Equal(rules.SuccessLevelCritical, volley.Bursts[0].Level)
	s.Equal("D100=5", volley.Bursts[0].Detail)
	s.Equal(6, volley.Bursts[0].Hits)
	s.Equal(3, volley.Bursts[0].Penetrating)
	s.Equal(6, volley.TotalHits)
	s.Equal(3, volley.TotalPenetrating)
	s.Equal(3, volley.TotalNormal)
}

func (s *GameServiceTestSuite) TestResolveBurstFire_RecoilPenaltyOnSecondBurst() {
	s.expectSettings()
	s.expectLog()

	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(100).Return(30),
		s.mockRoller.EXPECT().Roll(10).Return(8),
		s.mockRoller.EXPECT().Roll(10).Return(1),
		s.mockRoller.EXPECT().Roll(10).Return(3),
	)

	output, err := s.gameService.ResolveBurstFire(s.ctx, &ResolveBurstFireInput{
		ChannelID:  s.testChannelID,
		UserID:     s.testUserID,
		UserName:   s.testUserName,
		SkillValue: 60,
		Bursts:     2,
	})

	s.Require().NoError(err)

	volley := output.Volley
	s.Require().Len(volley.Bursts, 2)
	s.Equal(rules.SuccessLevelHard, volley.Bursts[0].Level)
	s.Equal(3, volley.Bursts[0].Hits)
	s.Equal(1, volley.Bursts[1].Penalty)
	s.Equal(70, volley.Bursts[1].Roll)
	s.Equal(0, volley.Bursts[1].Hits)
	s.Equal(3, volley.TotalHits)
}

func (s *GameServiceTestSuite) TestResolveBurstFire_NPCFirearms() {
	s.expectSettings()
	s.expectLog()

	s.mockNPCRepo.EXPECT().
		GetNPC(gomock.Any(), &npcRepo.GetNPCInput{
			ChannelID: s.testChannelID,
			Name:      "Cultist",
		}).
		Return(&models.NPC{
			Character: models.Character{
				Name:   "Cultist",
				Skills: map[string]int{"Firearms": 50},
			},
		}, nil)

	s.mockRoller.EXPECT().Roll(100).Return(25)

	output, err := s.gameService.ResolveBurstFire(s.ctx, &ResolveBurstFireInput{
		ChannelID: s.testChannelID,
		UserID:    s.testUserID,
		UserName:  s.testUserName,
		NPCName:   "Cultist",
		Bursts:    1,
	})

	s.Require().NoError(err)
	s.Equal("Cultist", output.NPCName)
	s.Equal(50, output.Volley.Target)
	s.Equal(2, output.Volley.TotalHits)
}

func (s *GameServiceTestSuite) TestResolveBurstFire_RequiresShooter() {
	output, err := s.gameService.ResolveBurstFire(s.ctx, &ResolveBurstFireInput{
		ChannelID: s.testChannelID,
		UserID:    s.testUserID,
		Bursts:    1,
	})

	s.Nil(output)
	s.ErrorContains(err, "skill value")
}
