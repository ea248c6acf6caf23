package game

import (
	"github.com/rollkeeper/rollkeeper/internal/models"
	characterRepo "github.com/rollkeeper/rollkeeper/internal/repositories/character"
	settingsRepo "github.com/rollkeeper/rollkeeper/internal/repositories/settings"
	"go.uber.org/mock/gomock"
)

func (s *GameServiceTestSuite) TestImportCharacter() {
	sheet := []byte(`{
		"name": "Violet Marsh",
		"attributes": {"STR": 45, "POW": 55, "LUK": 60},
		"skills": {"Spot Hidden": 40},
		"hp": 10,
		"mp": 11
	}`)

	s.mockCharacterRepo.EXPECT().
		SaveCharacter(gomock.Any(), gomock.Any()).
		Return(nil)

	s.mockSettingsRepo.EXPECT().
		SetActiveCharacter(gomock.Any(), &settingsRepo.SetActiveCharacterInput{
			UserID:        s.testUserID,
			CharacterName: "Violet Marsh",
		}).
		Return(s.defaultSettings, nil)

	output, err := s.gameService.ImportCharacter(s.ctx, &ImportCharacterInput{
		UserID: s.testUserID,
		Data:   sheet,
	})

	s.Require().NoError(err)
	s.True(output.Activated)

	char := output.Character
	s.Equal("Violet Marsh", char.Name)
	s.Equal(s.testUserID, char.UserID)
	s.Equal(10, char.HP)
	s.Equal(10, char.MaxHP)
	s.Equal(11, char.MP)
	s.Equal(11, char.MaxMP)
	s.Equal(55, char.SAN)
	s.Equal(models.MaxSanity, char.MaxSAN)
	s.Equal(60, char.Luck)
	s.Equal(40, char.Skills["Spot Hidden"])
	s.Equal(0, char.Skills[MythosSkill])
}

func (s *GameServiceTestSuite) TestImportCharacter_ExplicitSanityKept() {
	sheet := []byte(`{"name": "Violet Marsh", "attributes": {"POW": 55}, "san": 30}`)

	s.mockCharacterRepo.EXPECT().
		SaveCharacter(gomock.Any(), gomock.Any()).
		Return(nil)

	s.mockSettingsRepo.EXPECT().
		SetActiveCharacter(gomock.Any(), gomock.Any()).
		Return(s.defaultSettings, nil)

	output, err := s.gameService.ImportCharacter(s.ctx, &ImportCharacterInput{
		UserID: s.testUserID,
		Data:   sheet,
	})

	s.Require().NoError(err)
	s.Equal(30, output.Character.SAN)
}

func (s *GameServiceTestSuite) TestImportCharacter_InvalidJSON() {
	output, err := s.gameService.ImportCharacter(s.ctx, &ImportCharacterInput{
		UserID: s.testUserID,
		Data:   []byte("not a sheet"),
	})

	s.Nil(output)
	s.ErrorContains(err, "failed to parse character sheet")
}

func (s *GameServiceTestSuite) TestImportCharacter_MissingName() {
	output, err := s.gameService.ImportCharacter(s.ctx, &ImportCharacterInput{
		UserID: s.testUserID,
		Data:   []byte(`{"hp": 10}`),
	})

	s.Nil(output)
	s.ErrorContains(err, "no name")
}

func (s *GameServiceTestSuite) TestListCharacters() {
	s.expectSettings()

	s.mockCharacterRepo.EXPECT().
		ListCharacters(gomock.Any(), &characterRepo.ListCharactersInput{UserID: s.testUserID}).
		Return(&characterRepo.ListCharactersOutput{
			Characters: []*models.Character{s.testCharacter},
		}, nil)

	output, err := s.gameService.ListCharacters(s.ctx, &ListCharactersInput{UserID: s.testUserID})

	s.Require().NoError(err)
	s.Len(output.Characters, 1)
	s.Equal("Harvey Walters", output.ActiveName)
}

func (s *GameServiceTestSuite) TestSwitchCharacter() {
	s.mockCharacterRepo.EXPECT().
		GetCharacter(gomock.Any(), &characterRepo.GetCharacterInput{
			UserID: s.testUserID,
			Name:   "Harvey Walters",
		}).
		Return(s.testCharacter, nil)

	s.mockSettingsRepo.EXPECT().
		SetActiveCharacter(gomock.Any(), &settingsRepo.SetActiveCharacterInput{
			UserID:        s.testUserID,
			CharacterName: "Harvey Walters",
		}).
		Return(s.defaultSettings, nil)

	output, err := s.gameService.SwitchCharacter(s.ctx, &SwitchCharacterInput{
		UserID: s.testUserID,
		Name:   "Harvey Walters",
	})

	s.Require().NoError(err)
	s.Equal(s.testCharacter, output.Character)
}

func (s *GameServiceTestSuite) TestSwitchCharacter_UnknownCharacter() {
	s.mockCharacterRepo.EXPECT().
		GetCharacter(gomock.Any(), gomock.Any()).
		Return(nil, characterRepo.ErrCharacterNotFound)

	output, err := s.gameService.SwitchCharacter(s.ctx, &SwitchCharacterInput{
		UserID: s.testUserID,
		Name:   "Nobody",
	})

	s.Nil(output)
	s.ErrorIs(err, characterRepo.ErrCharacterNotFound)
}

func (s *GameServiceTestSuite) TestShowCharacter_DefaultsToActive() {
	s.expectActiveCharacter()

	output, err := s.gameService.ShowCharacter(s.ctx, &ShowCharacterInput{UserID: s.testUserID})

	s.Require().NoError(err)
	s.Equal(s.testCharacter, output.Character)
	s.True(output.Active)
}

func (s *GameServiceTestSuite) TestShowCharacter_ByName() {
	s.expectSettings()

	s.mockCharacterRepo.EXPECT().
		GetCharacter(gomock.Any(), &characterRepo.GetCharacterInput{
			UserID: s.testUserID,
			Name:   "Backup",
		}).
		Return(&models.Character{Name: "Backup"}, nil)

	output, err := s.gameService.ShowCharacter(s.ctx, &ShowCharacterInput{
		UserID: s.testUserID,
		Name:   "Backup",
	})

	s.Require().NoError(err)
	s.Equal("Backup", output.Character.Name)
	s.False(output.Active)
}

func (s *GameServiceTestSuite) TestShowCharacter_NoActiveCharacter() {
	s.mockSettingsRepo.EXPECT().
		GetSettings(gomock.Any(), &settingsRepo.GetSettingsInput{UserID: s.testUserID}).
		Return(&models.UserSettings{}, nil)

	output, err := s.gameService.ShowCharacter(s.ctx, &ShowCharacterInput{UserID: s.testUserID})

	s.Nil(output)
	s.Equal(ErrNoActiveCharacter, err)
}

func (s *GameServiceTestSuite) TestDeleteCharacter_ActiveClearsPointer() {
	s.expectSettings()

	s.mockCharacterRepo.EXPECT().
		GetCharacter(gomock.Any(), gomock.Any()).
		Return(s.testCharacter, nil)

	s.mockCharacterRepo.EXPECT().
		DeleteCharacter(gomock.Any(), &characterRepo.DeleteCharacterInput{
			UserID: s.testUserID,
			Name:   "Harvey Walters",
		}).
		Return(nil)

	s.mockSettingsRepo.EXPECT().
		SetActiveCharacter(gomock.Any(), &settingsRepo.SetActiveCharacterInput{
			UserID: s.testUserID,
		}).
		Return(&models.UserSettings{}, nil)

	output, err := s.gameService.DeleteCharacter(s.ctx, &DeleteCharacterInput{
		UserID: s.testUserID,
		Name:   "Harvey Walters",
	})

	s.Require().NoError(err)
	s.Equal("Harvey Walters", output.Name)
	s.True(output.Deactivated)
}

func (s *GameServiceTestSuite) TestDeleteCharacter_InactiveKeepsPointer() {
	s.expectSettings()

	s.mockCharacterRepo.EXPECT().
		GetCharacter(gomock.Any(), gomock.Any()).
		Return(&models.Character{Name: "Backup", UserID: s.testUserID}, nil)

	s.mockCharacterRepo.EXPECT().
		DeleteCharacter(gomock.Any(), &characterRepo.DeleteCharacterInput{
			UserID: s.testUserID,
			Name:   "Backup",
		}).
		Return(nil)

	output, err := s.gameService.DeleteCharacter(s.ctx, &DeleteCharacterInput{
		UserID: s.testUserID,
		Name:   "Backup",
	})

	s.Require().NoError(err)
	s.False(output.Deactivated)
}

func (s *GameServiceTestSuite) TestAdjustStat_Heal() {
	s.testCharacter.HP = 6
	s.expectActiveCharacter()
	s.expectLog()

	s.mockCharacterRepo.EXPECT().
		SaveCharacter(gomock.Any(), gomock.Any()).
		Return(nil)

	output, err := s.gameService.AdjustStat(s.ctx, &AdjustStatInput{
		UserID:    s.testUserID,
		UserName:  s.testUserName,
		ChannelID: s.testChannelID,
		Stat:      "hp",
		Op:        "+",
		Value:     5,
	})

	s.Require().NoError(err)
	s.Equal("HP", output.Stat)
	s.Equal(6, output.Old)
	s.Equal(11, output.New)
	s.Equal(11, output.Max)
	s.Equal(11, s.testCharacter.HP)
}

func (s *GameServiceTestSuite) TestAdjustStat_SpendFloorsAtZero() {
	s.expectActiveCharacter()
	s.expectLog()

	s.mockCharacterRepo.EXPECT().
		SaveCharacter(gomock.Any(), gomock.Any()).
		Return(nil)

	output, err := s.gameService.AdjustStat(s.ctx, &AdjustStatInput{
		UserID:    s.testUserID,
		UserName:  s.testUserName,
		ChannelID: s.testChannelID,
		Stat:      "mp",
		Op:        "-",
		Value:     99,
	})

	s.Require().NoError(err)
	s.Equal(13, output.Old)
	s.Equal(0, output.New)
	s.Equal(0, s.testCharacter.MP)
}

func (s *GameServiceTestSuite) TestAdjustStat_SetClampsAtMax() {
	s.expectActiveCharacter()
	s.expectLog()

	s.mockCharacterRepo.EXPECT().
		SaveCharacter(gomock.Any(), gomock.Any()).
		Return(nil)

	output, err := s.gameService.AdjustStat(s.ctx, &AdjustStatInput{
		UserID:    s.testUserID,
		UserName:  s.testUserName,
		ChannelID: s.testChannelID,
		Stat:      "san",
		Op:        "=",
		Value:     120,
	})

	s.Require().NoError(err)
	s.Equal(65, output.Old)
	s.Equal(models.MaxSanity, output.New)
	s.Equal(models.MaxSanity, s.testCharacter.SAN)
}

func (s *GameServiceTestSuite) TestAdjustStat_UnknownStat() {
	s.expectActiveCharacter()

	output, err := s.gameService.AdjustStat(s.ctx, &AdjustStatInput{
		UserID: s.testUserID,
		Stat:   "luck",
		Op:     "+",
		Value:  1,
	})

	s.Nil(output)
	s.Equal(ErrUnknownStat, err)
}

func (s *GameServiceTestSuite) TestAdjustStat_UnknownOperation() {
	s.expectActiveCharacter()

	output, err := s.gameService.AdjustStat(s.ctx, &AdjustStatInput{
		UserID: s.testUserID,
		Stat:   "hp",
		Op:     "*",
		Value:  2,
	})

	s.Nil(output)
	s.Equal(ErrUnknownOperation, err)
}

func (s *GameServiceTestSuite) TestAdjustStat_NegativeValue() {
	output, err := s.gameService.AdjustStat(s.ctx, &AdjustStatInput{
		UserID: s.testUserID,
		Stat:   "hp",
		Op:     "+",
		Value:  -1,
	})

	s.Nil(output)
	s.ErrorContains(err, "negative")
}
