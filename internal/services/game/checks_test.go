package game

import (
	"github.com/rollkeeper/rollkeeper/internal/models"
	checksRepo "github.com/rollkeeper/rollkeeper/internal/repositories/checks"
	"github.com/rollkeeper/rollkeeper/internal/rules"
	"go.uber.org/mock/gomock"
)

// skillCheckFixture returns a stored group skill check
func (s *GameServiceTestSuite) skillCheckFixture(target int) *models.PendingCheck {
	return &models.PendingCheck{
		ID:        s.testCheckID,
		Kind:      models.CheckKindSkill,
		ChannelID: s.testChannelID,
		CreatorID: "keeper-id",
		Skill: &models.SkillCheckData{
			SkillName: "Spot Hidden",
			Target:    target,
		},
	}
}

// sanityCheckFixture returns a stored group sanity check
func (s *GameServiceTestSuite) sanityCheckFixture(successExpr, failureExpr string) *models.PendingCheck {
	return &models.PendingCheck{
		ID:        s.testCheckID,
		Kind:      models.CheckKindSanity,
		ChannelID: s.testChannelID,
		CreatorID: "keeper-id",
		Sanity: &models.SanityCheckData{
			SuccessExpression: successExpr,
			FailureExpression: failureExpr,
		},
	}
}

func (s *GameServiceTestSuite) TestCreateSkillCheck() {
	s.expectLog()

	s.mockCheckRepo.EXPECT().
		CreateSkillCheck(gomock.Any(), &checksRepo.CreateSkillCheckInput{
			ChannelID: s.testChannelID,
			CreatorID: s.testUserID,
			SkillName: "Spot Hidden",
			Target:    50,
		}).
		Return(s.skillCheckFixture(50), nil)

	output, err := s.gameService.CreateSkillCheck(s.ctx, &CreateSkillCheckInput{
		ChannelID:   s.testChannelID,
		CreatorID:   s.testUserID,
		CreatorName: s.testUserName,
		SkillName:   "Spot Hidden",
		Target:      50,
	})

	s.Require().NoError(err)
	s.Equal(s.testCheckID, output.CheckID)
	s.Equal("Spot Hidden", output.SkillName)
	s.Equal(50, output.Target)
}

func (s *GameServiceTestSuite) TestCreateSkillCheck_RequiresSkillName() {
	output, err := s.gameService.CreateSkillCheck(s.ctx, &CreateSkillCheckInput{
		ChannelID: s.testChannelID,
		CreatorID: s.testUserID,
	})

	s.Nil(output)
	s.Error(err)
}

func (s *GameServiceTestSuite) TestRollSkillCheck_SheetTarget() {
	s.expectActiveCharacter()
	s.expectLog()

	check := s.skillCheckFixture(0)

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), &checksRepo.GetCheckInput{
			CheckID: s.testCheckID,
			Kind:    models.CheckKindSkill,
		}).
		Return(check, nil)

	s.mockCheckRepo.EXPECT().
		MarkCompleted(gomock.Any(), &checksRepo.MarkCompletedInput{
			CheckID: s.testCheckID,
			UserID:  s.testUserID,
		}).
		Return(&checksRepo.MarkCompletedOutput{Check: check}, nil)

	s.mockRoller.EXPECT().Roll(100).Return(4)

	output, err := s.gameService.RollSkillCheck(s.ctx, &RollSkillCheckInput{
		CheckID:  s.testCheckID,
		UserID:   s.testUserID,
		UserName: s.testUserName,
	})

	s.Require().NoError(err)
	s.Equal("Spot Hidden", output.SkillName)
	s.Equal("D100=4", output.Detail)
	s.Equal(60, output.Result.Target)
	s.Equal(rules.SuccessLevelCritical, output.Result.Level)
	s.NotEmpty(output.Flavor)
}

func (s *GameServiceTestSuite) TestRollSkillCheck_FixedTarget() {
	s.expectSettings()
	s.expectLog()

	check := s.skillCheckFixture(50)

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(check, nil)

	s.mockCheckRepo.EXPECT().
		MarkCompleted(gomock.Any(), gomock.Any()).
		Return(&checksRepo.MarkCompletedOutput{Check: check}, nil)

	s.mockRoller.EXPECT().Roll(100).Return(96)

	output, err := s.gameService.RollSkillCheck(s.ctx, &RollSkillCheckInput{
		CheckID:  s.testCheckID,
		UserID:   s.testUserID,
		UserName: s.testUserName,
	})

	s.Require().NoError(err)
	s.Equal(50, output.Result.Target)
	s.Equal(rules.SuccessLevelFailure, output.Result.Level)
	s.Empty(output.Flavor)
}

func (s *GameServiceTestSuite) TestRollSkillCheck_AlreadyRolled() {
	s.expectActiveCharacter()

	check := s.skillCheckFixture(0)

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(check, nil)

	s.mockCheckRepo.EXPECT().
		MarkCompleted(gomock.Any(), gomock.Any()).
		Return(&checksRepo.MarkCompletedOutput{
			Check:            check,
			AlreadyCompleted: true,
		}, nil)

	output, err := s.gameService.RollSkillCheck(s.ctx, &RollSkillCheckInput{
		CheckID:  s.testCheckID,
		UserID:   s.testUserID,
		UserName: s.testUserName,
	})

	s.Nil(output)
	s.Equal(ErrAlreadyRolled, err)
}

func (s *GameServiceTestSuite) TestRollSkillCheck_Expired() {
	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(nil, checksRepo.ErrCheckNotFound)

	output, err := s.gameService.RollSkillCheck(s.ctx, &RollSkillCheckInput{
		CheckID: s.testCheckID,
		UserID:  s.testUserID,
	})

	s.Nil(output)
	s.Equal(ErrCheckExpired, err)
}

func (s *GameServiceTestSuite) TestRollSkillCheck_MissingSkillKeepsCheck() {
	s.expectActiveCharacter()

	check := s.skillCheckFixture(0)
	check.Skill.SkillName = "Accounting"

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(check, nil)

	output, err := s.gameService.RollSkillCheck(s.ctx, &RollSkillCheckInput{
		CheckID:  s.testCheckID,
		UserID:   s.testUserID,
		UserName: s.testUserName,
	})

	s.Nil(output)
	s.Equal(ErrSkillNotFound, err)
}

func (s *GameServiceTestSuite) TestRollSanity_SuccessMinorLoss() {
	s.expectActiveCharacter()
	s.expectLog()

	s.mockCharacterRepo.EXPECT().
		SaveCharacter(gomock.Any(), gomock.Any()).
		Return(nil)

	s.mockRoller.EXPECT().Roll(100).Return(40)

	output, err := s.gameService.RollSanity(s.ctx, &RollSanityInput{
		UserID:            s.testUserID,
		UserName:          s.testUserName,
		ChannelID:         s.testChannelID,
		SuccessExpression: "1",
		FailureExpression: "1d6",
	})

	s.Require().NoError(err)

	result := output.Result
	s.Equal("Harvey Walters", result.CharacterName)
	s.Equal(65, result.Sanity)
	s.True(result.Success)
	s.Equal("D100=40/65 [Success]", result.Detail)
	s.Equal(1, result.Loss)
	s.Equal("1", result.LossExpression)
	s.Equal(64, result.NewSanity)
	s.Nil(result.Madness)
	s.False(result.PermanentInsanity)
	s.Equal(64, s.testCharacter.SAN)
}

func (s *GameServiceTestSuite) TestRollSanity_FailureTriggersMadness() {
	s.expectActiveCharacter()
	s.expectLog()

	s.mockCharacterRepo.EXPECT().
		SaveCharacter(gomock.Any(), gomock.Any()).
		Return(nil)

	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(100).Return(70),
		s.mockRoller.EXPECT().Roll(10).Return(6),
		s.mockRoller.EXPECT().Roll(10).Return(3),
		s.mockRoller.EXPECT().Roll(10).Return(7),
	)

	output, err := s.gameService.RollSanity(s.ctx, &RollSanityInput{
		UserID:            s.testUserID,
		UserName:          s.testUserName,
		ChannelID:         s.testChannelID,
		SuccessExpression: "1",
		FailureExpression: "1d10+2",
	})

	s.Require().NoError(err)

	result := output.Result
	s.False(result.Success)
	s.Equal("D100=70/65 [Failure]", result.Detail)
	s.Equal(8, result.Loss)
	s.Equal("1d10+2", result.LossExpression)
	s.Equal(57, result.NewSanity)
	s.Require().NotNil(result.Madness)
	s.Equal(3, result.Madness.Roll)
	s.Equal(models.TemporaryMadness(3), result.Madness.Symptom)
	s.Equal(7, result.Madness.Duration)
	s.False(result.PermanentInsanity)
}

func (s *GameServiceTestSuite) TestRollSanity_NoSanityLeft() {
	s.testCharacter.SAN = 0
	s.expectActiveCharacter()

	output, err := s.gameService.RollSanity(s.ctx, &RollSanityInput{
		UserID:            s.testUserID,
		UserName:          s.testUserName,
		ChannelID:         s.testChannelID,
		SuccessExpression: "1",
		FailureExpression: "1d6",
	})

	s.Nil(output)
	s.Equal(ErrNoSanityLeft, err)
}

func (s *GameServiceTestSuite) TestRollSanity_PermanentInsanityAtZero() {
	s.testCharacter.SAN = 4
	s.expectActiveCharacter()
	s.expectLog()

	s.mockCharacterRepo.EXPECT().
		SaveCharacter(gomock.Any(), gomock.Any()).
		Return(nil)

	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(100).Return(90),
		s.mockRoller.EXPECT().Roll(10).Return(2),
		s.mockRoller.EXPECT().Roll(10).Return(4),
	)

	output, err := s.gameService.RollSanity(s.ctx, &RollSanityInput{
		UserID:            s.testUserID,
		UserName:          s.testUserName,
		ChannelID:         s.testChannelID,
		SuccessExpression: "1",
		FailureExpression: "6",
	})

	s.Require().NoError(err)

	result := output.Result
	s.Equal(6, result.Loss)
	s.Equal(0, result.NewSanity)
	s.True(result.PermanentInsanity)
	s.Require().NotNil(result.Madness)
	s.Equal(models.TemporaryMadness(2), result.Madness.Symptom)
	s.Equal(0, s.testCharacter.SAN)
}

func (s *GameServiceTestSuite) TestCreateSanityCheck() {
	s.expectLog()

	s.mockCheckRepo.EXPECT().
		CreateSanityCheck(gomock.Any(), &checksRepo.CreateSanityCheckInput{
			ChannelID:         s.testChannelID,
			CreatorID:         s.testUserID,
			SuccessExpression: "1",
			FailureExpression: "1d8",
		}).
		Return(s.sanityCheckFixture("1", "1d8"), nil)

	output, err := s.gameService.CreateSanityCheck(s.ctx, &CreateSanityCheckInput{
		ChannelID:         s.testChannelID,
		CreatorID:         s.testUserID,
		CreatorName:       s.testUserName,
		SuccessExpression: "1",
		FailureExpression: "1d8",
	})

	s.Require().NoError(err)
	s.Equal(s.testCheckID, output.CheckID)
	s.Equal("1", output.SuccessExpression)
	s.Equal("1d8", output.FailureExpression)
}

func (s *GameServiceTestSuite) TestCreateSanityCheck_InvalidLoss() {
	output, err := s.gameService.CreateSanityCheck(s.ctx, &CreateSanityCheckInput{
		ChannelID:         s.testChannelID,
		CreatorID:         s.testUserID,
		SuccessExpression: "1",
		FailureExpression: "soup",
	})

	s.Nil(output)
	s.ErrorContains(err, "failure loss")
}

func (s *GameServiceTestSuite) TestRollSanityCheck() {
	s.expectActiveCharacter()
	s.expectLog()

	check := s.sanityCheckFixture("1", "1d4")

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), &checksRepo.GetCheckInput{
			CheckID: s.testCheckID,
			Kind:    models.CheckKindSanity,
		}).
		Return(check, nil)

	s.mockCheckRepo.EXPECT().
		MarkCompleted(gomock.Any(), &checksRepo.MarkCompletedInput{
			CheckID: s.testCheckID,
			UserID:  s.testUserID,
		}).
		Return(&checksRepo.MarkCompletedOutput{Check: check}, nil)

	s.mockCharacterRepo.EXPECT().
		SaveCharacter(gomock.Any(), gomock.Any()).
		Return(nil)

	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(100).Return(80),
		s.mockRoller.EXPECT().Roll(4).Return(3),
	)

	output, err := s.gameService.RollSanityCheck(s.ctx, &RollSanityCheckInput{
		CheckID:  s.testCheckID,
		UserID:   s.testUserID,
		UserName: s.testUserName,
	})

	s.Require().NoError(err)
	s.False(output.Result.Success)
	s.Equal(3, output.Result.Loss)
	s.Equal(62, output.Result.NewSanity)
}

func (s *GameServiceTestSuite) TestRollSanityCheck_AlreadyRolled() {
	s.expectActiveCharacter()

	check := s.sanityCheckFixture("1", "1d4")

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(check, nil)

	s.mockCheckRepo.EXPECT().
		MarkCompleted(gomock.Any(), gomock.Any()).
		Return(&checksRepo.MarkCompletedOutput{
			Check:            check,
			AlreadyCompleted: true,
		}, nil)

	output, err := s.gameService.RollSanityCheck(s.ctx, &RollSanityCheckInput{
		CheckID:  s.testCheckID,
		UserID:   s.testUserID,
		UserName: s.testUserName,
	})

	s.Nil(output)
	s.Equal(ErrAlreadyRolled, err)
}

func (s *GameServiceTestSuite) TestRollSanityCheck_ZeroSanityDoesNotConsume() {
	s.testCharacter.SAN = 0
	s.expectActiveCharacter()

	s.mockCheckRepo.EXPECT().
		GetCheck(gomock.Any(), gomock.Any()).
		Return(s.sanityCheckFixture("1", "1d4"), nil)

	output, err := s.gameService.RollSanityCheck(s.ctx, &RollSanityCheckInput{
		CheckID:  s.testCheckID,
		UserID:   s.testUserID,
		UserName: s.testUserName,
	})

	s.Nil(output)
	s.Equal(ErrNoSanityLeft, err)
}
