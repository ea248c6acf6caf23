package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/rollkeeper/rollkeeper/internal/services/game"
)

// LogCommand handles the /log command
type LogCommand struct {
	BaseCommand
	gameService game.Service
}

// NewLogCommand creates a new game log command handler
func NewLogCommand(gameService game.Service) *LogCommand {
	return &LogCommand{
		BaseCommand: BaseCommand{
			Name:        "log",
			Description: "Show or clear this channel's game log",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show recent log entries",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "limit",
							Description: "How many entries to show (default 20)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "clear",
					Description: "Wipe the channel's log",
				},
			},
		},
		gameService: gameService,
	}
}

// Handle processes a Discord interaction for the log command
func (c *LogCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	switch sub.Name {
	case "show":
		return c.handleShow(s, i, sub.Options)
	case "clear":
		return c.handleClear(s, i)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}
}

// handleShow posts the channel's recent log entries
func (c *LogCommand) handleShow(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	_, username := interactionUser(i)
	options := optionMap(subOptions)

	output, err := c.gameService.GetGameLog(ctx, &game.GetGameLogInput{
		ChannelID: i.ChannelID,
		Limit:     intOption(options, "limit"),
	})
	if err != nil {
		log.Printf("Game log fetch failed for %s: %v", username, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to fetch the log: %v", err))
	}

	return RespondWithEmbed(s, i, "Channel log", logDescription(output.Entries), nil)
}

// handleClear wipes the channel's log
func (c *LogCommand) handleClear(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	_, username := interactionUser(i)

	if _, err := c.gameService.ClearGameLog(ctx, &game.ClearGameLogInput{ChannelID: i.ChannelID}); err != nil {
		log.Printf("Game log clear failed for %s: %v", username, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to clear the log: %v", err))
	}

	return RespondWithMessage(s, i, "Channel log cleared.")
}
