package game

import (
	"github.com/rollkeeper/rollkeeper/internal/dice"
	"github.com/rollkeeper/rollkeeper/internal/models"
	npcRepo "github.com/rollkeeper/rollkeeper/internal/repositories/npc"
	"go.uber.org/mock/gomock"
)

func (s *GameServiceTestSuite) TestGenerateNPC_RangeTemplate() {
	s.expectLog()

	s.mockNPCRepo.EXPECT().
		GetTemplate(gomock.Any(), &npcRepo.GetTemplateInput{Name: models.DefaultTemplateName}).
		Return(&models.NPCTemplate{
			Name:     "Average",
			Builtin:  true,
			AttrMin:  40,
			AttrMax:  60,
			SkillMin: 40,
			SkillMax: 50,
		}, nil)

	// Every attribute lands on 52 and rounds to 50, every combat
	// skill on 45
	s.mockRoller.EXPECT().Roll(21).Return(13).Times(len(models.BaseAttributes))
	s.mockRoller.EXPECT().Roll(11).Return(6).Times(len(models.CombatSkills))
	s.mockRoller.EXPECT().Roll(76).Return(26)

	s.mockNPCRepo.EXPECT().
		SaveNPC(gomock.Any(), gomock.Any()).
		Return(nil)

	output, err := s.gameService.GenerateNPC(s.ctx, &GenerateNPCInput{
		ChannelID: s.testChannelID,
		UserID:    s.testUserID,
		UserName:  s.testUserName,
		Name:      "Dockhand",
	})

	s.Require().NoError(err)

	npc := output.NPC
	s.Equal("Dockhand", npc.Name)
	s.Equal(models.NPCUserID(s.testChannelID), npc.UserID)
	s.Equal(s.testChannelID, npc.ChannelID)
	s.Equal("Average", npc.TemplateName)

	for _, name := range models.BaseAttributes {
		s.Equal(50, npc.Attributes[name])
	}
	for _, name := range models.CombatSkills {
		s.Equal(45, npc.Skills[name])
	}

	s.Equal(10, npc.HP)
	s.Equal(10, npc.MaxHP)
	s.Equal(10, npc.MP)
	s.Equal(50, npc.SAN)
	s.Equal(models.MaxSanity, npc.MaxSAN)
	s.Equal(40, npc.Luck)
}

func (s *GameServiceTestSuite) TestGenerateNPC_CustomTemplate() {
	s.expectLog()

	s.mockNPCRepo.EXPECT().
		GetTemplate(gomock.Any(), &npcRepo.GetTemplateInput{Name: "Cultist"}).
		Return(&models.NPCTemplate{
			Name: "Cultist",
			Attributes: map[string]string{
				"CON": "40-50",
				"LUK": "70",
				"STR": "60",
			},
			Skills: map[string]string{
				"Dodge": "2d6",
			},
		}, nil)

	// Stats evaluate in sorted name order: CON, LUK, STR, then Dodge
	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(11).Return(8),
		s.mockRoller.EXPECT().Roll(6).Return(3),
		s.mockRoller.EXPECT().Roll(6).Return(4),
	)

	s.mockNPCRepo.EXPECT().
		SaveNPC(gomock.Any(), gomock.Any()).
		Return(nil)

	output, err := s.gameService.GenerateNPC(s.ctx, &GenerateNPCInput{
		ChannelID:    s.testChannelID,
		UserID:       s.testUserID,
		UserName:     s.testUserName,
		Name:         "Brother Silas",
		TemplateName: "Cultist",
	})

	s.Require().NoError(err)

	npc := output.NPC
	s.Equal(47, npc.Attributes["CON"])
	s.Equal(60, npc.Attributes["STR"])
	s.NotContains(npc.Attributes, "LUK")
	s.Equal(35, npc.Skills["Dodge"])
	s.Equal(9, npc.HP)
	s.Equal(10, npc.MP)
	s.Equal(50, npc.SAN)
	s.Equal(70, npc.Luck)
}

func (s *GameServiceTestSuite) TestGenerateNPC_RequiresName() {
	output, err := s.gameService.GenerateNPC(s.ctx, &GenerateNPCInput{
		ChannelID: s.testChannelID,
		UserID:    s.testUserID,
	})

	s.Nil(output)
	s.ErrorContains(err, "name is required")
}

func (s *GameServiceTestSuite) TestGenerateNPC_TemplateNotFound() {
	s.mockNPCRepo.EXPECT().
		GetTemplate(gomock.Any(), gomock.Any()).
		Return(nil, npcRepo.ErrTemplateNotFound)

	output, err := s.gameService.GenerateNPC(s.ctx, &GenerateNPCInput{
		ChannelID:    s.testChannelID,
		UserID:       s.testUserID,
		Name:         "Dockhand",
		TemplateName: "Missing",
	})

	s.Nil(output)
	s.ErrorIs(err, npcRepo.ErrTemplateNotFound)
}

func (s *GameServiceTestSuite) TestSaveNPCTemplate() {
	s.mockNPCRepo.EXPECT().
		SaveTemplate(gomock.Any(), gomock.Any()).
		Return(nil)

	output, err := s.gameService.SaveNPCTemplate(s.ctx, &SaveNPCTemplateInput{
		UserID:      s.testUserID,
		Name:        "Thug",
		Description: "Hired muscle",
		Stats: map[string]string{
			"str":   "50-70",
			"pow":   "3d6",
			"Brawl": " 55 ",
		},
	})

	s.Require().NoError(err)

	tmpl := output.Template
	s.Equal("Thug", tmpl.Name)
	s.Equal("Hired muscle", tmpl.Description)
	s.False(tmpl.Builtin)
	s.Equal(s.testUserID, tmpl.CreatedBy)
	s.Equal("50-70", tmpl.Attributes["STR"])
	s.Equal("3d6", tmpl.Attributes["POW"])
	s.Equal("55", tmpl.Skills["Brawl"])
	s.NotContains(tmpl.Skills, "str")
}

func (s *GameServiceTestSuite) TestSaveNPCTemplate_InvertedRange() {
	output, err := s.gameService.SaveNPCTemplate(s.ctx, &SaveNPCTemplateInput{
		UserID: s.testUserID,
		Name:   "Thug",
		Stats:  map[string]string{"str": "70-50"},
	})

	s.Nil(output)
	s.ErrorContains(err, "range 70-50 is inverted")
}

func (s *GameServiceTestSuite) TestSaveNPCTemplate_InvalidExpression() {
	output, err := s.gameService.SaveNPCTemplate(s.ctx, &SaveNPCTemplateInput{
		UserID: s.testUserID,
		Name:   "Thug",
		Stats:  map[string]string{"Brawl": "soup"},
	})

	s.Nil(output)
	s.ErrorIs(err, dice.ErrInvalidExpression)
	s.ErrorContains(err, "stat Brawl")
}

func (s *GameServiceTestSuite) TestSaveNPCTemplate_RequiresStats() {
	output, err := s.gameService.SaveNPCTemplate(s.ctx, &SaveNPCTemplateInput{
		UserID: s.testUserID,
		Name:   "Thug",
	})

	s.Nil(output)
	s.ErrorContains(err, "at least one stat")
}

func (s *GameServiceTestSuite) TestSaveNPCTemplate_BuiltinRejected() {
	s.mockNPCRepo.EXPECT().
		SaveTemplate(gomock.Any(), gomock.Any()).
		Return(npcRepo.ErrBuiltinTemplate)

	output, err := s.gameService.SaveNPCTemplate(s.ctx, &SaveNPCTemplateInput{
		UserID: s.testUserID,
		Name:   "Average",
		Stats:  map[string]string{"str": "50"},
	})

	s.Nil(output)
	s.ErrorIs(err, npcRepo.ErrBuiltinTemplate)
}

func (s *GameServiceTestSuite) TestListNPCs() {
	s.mockNPCRepo.EXPECT().
		ListNPCs(gomock.Any(), &npcRepo.ListNPCsInput{ChannelID: s.testChannelID}).
		Return(&npcRepo.ListNPCsOutput{
			NPCs: []*models.NPC{
				{Character: models.Character{Name: "Dockhand"}},
			},
		}, nil)

	output, err := s.gameService.ListNPCs(s.ctx, &ListNPCsInput{ChannelID: s.testChannelID})

	s.Require().NoError(err)
	s.Len(output.NPCs, 1)
	s.Equal("Dockhand", output.NPCs[0].Name)
}

func (s *GameServiceTestSuite) TestShowNPC() {
	s.mockNPCRepo.EXPECT().
		GetNPC(gomock.Any(), &npcRepo.GetNPCInput{
			ChannelID: s.testChannelID,
			Name:      "Dockhand",
		}).
		Return(&models.NPC{Character: models.Character{Name: "Dockhand"}}, nil)

	output, err := s.gameService.ShowNPC(s.ctx, &ShowNPCInput{
		ChannelID: s.testChannelID,
		Name:      "Dockhand",
	})

	s.Require().NoError(err)
	s.Equal("Dockhand", output.NPC.Name)
}

func (s *GameServiceTestSuite) TestDeleteNPC() {
	s.mockNPCRepo.EXPECT().
		DeleteNPC(gomock.Any(), &npcRepo.DeleteNPCInput{
			ChannelID: s.testChannelID,
			Name:      "Dockhand",
		}).
		Return(nil)

	output, err := s.gameService.DeleteNPC(s.ctx, &DeleteNPCInput{
		ChannelID: s.testChannelID,
		Name:      "Dockhand",
	})

	s.Require().NoError(err)
	s.Equal("Dockhand", output.Name)
}

func (s *GameServiceTestSuite) TestClearNPCs() {
	s.mockNPCRepo.EXPECT().
		ClearChannel(gomock.Any(), &npcRepo.ClearChannelInput{ChannelID: s.testChannelID}).
		Return(&npcRepo.ClearChannelOutput{Removed: 4}, nil)

	output, err := s.gameService.ClearNPCs(s.ctx, &ClearNPCsInput{ChannelID: s.testChannelID})

	s.Require().NoError(err)
	s.Equal(4, output.Removed)
}

func (s *GameServiceTestSuite) TestListNPCTemplates() {
	s.mockNPCRepo.EXPECT().
		ListTemplates(gomock.Any(), &npcRepo.ListTemplatesInput{}).
		Return(&npcRepo.ListTemplatesOutput{
			Templates: []*models.NPCTemplate{
				{Name: "Average", Builtin: true},
				{Name: "Thug"},
			},
		}, nil)

	output, err := s.gameService.ListNPCTemplates(s.ctx, &ListNPCTemplatesInput{})

	s.Require().NoError(err)
	s.Len(output.Templates, 2)
}

func (s *GameServiceTestSuite) TestDeleteNPCTemplate() {
	s.mockNPCRepo.EXPECT().
		DeleteTemplate(gomock.Any(), &npcRepo.DeleteTemplateInput{Name: "Thug"}).
		Return(nil)

	output, err := s.gameService.DeleteNPCTemplate(s.ctx, &DeleteNPCTemplateInput{Name: "Thug"})

	s.Require().NoError(err)
	s.Equal("Thug", output.Name)
}
