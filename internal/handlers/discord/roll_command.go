package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/rollkeeper/rollkeeper/internal/services/game"
)

// RollCommand handles the /roll command
type RollCommand struct {
	BaseCommand
	gameService game.Service
}

// NewRollCommand creates a new roll command handler
func NewRollCommand(gameService game.Service) *RollCommand {
	return &RollCommand{
		BaseCommand: BaseCommand{
			Name:        "roll",
			Description: "Roll a dice expression",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "dice",
					Description: "Dice formula like 2d6+3, or a bare number for a single die (default d100)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "bonus",
					Description: "Bonus dice for a plain d100 roll (0-10)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "penalty",
					Description: "Penalty dice for a plain d100 roll (0-10)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "times",
					Description: "Repeat the roll (1-10)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "hidden",
					Description: "Show the result only to you",
				},
			},
		},
		gameService: gameService,
	}
}

// Handle processes a Discord interaction for the roll command
func (c *RollCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	ctx := context.Background()
	userID, username := interactionUser(i)
	options := optionMap(data.Options)

	hidden := boolOption(options, "hidden")

	output, err := c.gameService.Roll(ctx, &game.RollInput{
		UserID:     userID,
		UserName:   username,
		ChannelID:  i.ChannelID,
		Expression: stringOption(options, "dice"),
		Bonus:      intOption(options, "bonus"),
		Penalty:    intOption(options, "penalty"),
		Times:      intOption(options, "times"),
		Hidden:     hidden,
	})
	if err != nil {
		log.Printf("Roll failed for %s: %v", username, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to roll: %v", err))
	}

	title := fmt.Sprintf("%s rolled %s", username, output.Expression)
	description := strings.Join(output.Details, "\n")

	if hidden {
		return RespondWithEphemeralEmbed(s, i, title, description, nil)
	}

	return RespondWithEmbed(s, i, title, description, nil)
}
