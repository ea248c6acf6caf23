package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/rollkeeper/rollkeeper/internal/services/game"
	"github.com/rollkeeper/rollkeeper/internal/services/messaging"
)

// NPCCommand handles the /npc command
type NPCCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
}

// NewNPCCommand creates a new NPC command handler
func NewNPCCommand(gameService game.Service, messagingService messaging.Service) *NPCCommand {
	return &NPCCommand{
		BaseCommand: BaseCommand{
			Name:        "npc",
			Description: "Generate and manage this channel's NPCs",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "gen",
					Description: "Generate an NPC from a template",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "The NPC's name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "template",
							Description: "Template to generate from (default Average)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List this channel's NPCs",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show an NPC's sheet",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "The NPC to show",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "delete",
					Description: "Remove an NPC from the channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "The NPC to remove",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "clear",
					Description: "Remove every NPC in the channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "save-template",
					Description: "Save a custom generation template",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "The template's name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "stats",
							Description: "Comma-separated name=value pairs, like STR=50-70, POW=3d6, Dodge=45",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "description",
							Description: "A note shown in template listings",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "templates",
					Description: "List builtin and custom templates",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "delete-template",
					Description: "Delete a custom template",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "The template to delete",
							Required:    true,
						},
					},
				},
			},
		},
		gameService:      gameService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the npc command
func (c *NPCCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	switch sub.Name {
	case "gen":
		return c.handleGen(s, i, sub.Options)
	case "list":
		return c.handleList(s, i)
	case "show":
		return c.handleShow(s, i, sub.Options)
	case "delete":
		return c.handleDelete(s, i, sub.Options)
	case "clear":
		return c.handleClear(s, i)
	case "save-template":
		return c.handleSaveTemplate(s, i, sub.Options)
	case "templates":
		return c.handleTemplates(s, i)
	case "delete-template":
		return c.handleDeleteTemplate(s, i, sub.Options)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}
}

// parseStatPairs splits "STR=50-70, POW=3d6, Dodge=45" into a stat
// expression map
func parseStatPairs(text string) (map[string]string, error) {
	stats := make(map[string]string)

	for _, pair := range strings.Split(text, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if !ok || name == "" || value == "" {
			return nil, fmt.Errorf("malformed stat %q, expected name=value", pair)
		}

		stats[name] = value
	}

	if len(stats) == 0 {
		return nil, errors.New("no stats provided")
	}

	return stats, nil
}

// handleGen generates an NPC. The sheet goes back ephemerally so the
// channel never sees its numbers.
func (c *NPCCommand) handleGen(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	userID, username := interactionUser(i)
	options := optionMap(subOptions)

	output, err := c.gameService.GenerateNPC(ctx, &game.GenerateNPCInput{
		ChannelID:    i.ChannelID,
		UserID:       userID,
		UserName:     username,
		Name:         stringOption(options, "name"),
		TemplateName: stringOption(options, "template"),
	})
	if err != nil {
		log.Printf("NPC generation failed for %s: %v", username, err)
		return respondGameError(s, i, c.messagingService, username, err)
	}

	npc := output.NPC
	title := fmt.Sprintf("%s (%s)", npc.Name, npc.TemplateName)

	return RespondWithEphemeralEmbed(s, i, title, "", npcSheetFields(npc))
}

// handleList shows the channel's NPCs, visible to the caller only
func (c *NPCCommand) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	_, username := interactionUser(i)

	output, err := c.gameService.ListNPCs(ctx, &game.ListNPCsInput{ChannelID: i.ChannelID})
	if err != nil {
		log.Printf("NPC list failed for %s: %v", username, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to list NPCs: %v", err))
	}

	return RespondWithEphemeralEmbed(s, i, "NPCs in this channel", npcListDescription(output.NPCs), nil)
}

// handleShow displays an NPC sheet, visible to the caller only
func (c *NPCCommand) handleShow(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	_, username := interactionUser(i)
	options := optionMap(subOptions)

	output, err := c.gameService.ShowNPC(ctx, &game.ShowNPCInput{
		ChannelID: i.ChannelID,
		Name:      stringOption(options, "name"),
	})
	if err != nil {
		log.Printf("NPC show failed for %s: %v", username, err)
		return respondGameError(s, i, c.messagingService, username, err)
	}

	npc := output.NPC
	title := fmt.Sprintf("%s (%s)", npc.Name, npc.TemplateName)

	return RespondWithEphemeralEmbed(s, i, title, "", npcSheetFields(npc))
}

// handleDelete removes one NPC
func (c *NPCCommand) handleDelete(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	_, username := interactionUser(i)
	options := optionMap(subOptions)

	output, err := c.gameService.DeleteNPC(ctx, &game.DeleteNPCInput{
		ChannelID: i.ChannelID,
		Name:      stringOption(options, "name"),
	})
	if err != nil {
		log.Printf("NPC delete failed for %s: %v", username, err)
		return respondGameError(s, i, c.messagingService, username, err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf("**%s** leaves the story.", output.Name))
}

// handleClear removes every NPC in the channel
func (c *NPCCommand) handleClear(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	_, username := interactionUser(i)

	output, err := c.gameService.ClearNPCs(ctx, &game.ClearNPCsInput{ChannelID: i.ChannelID})
	if err != nil {
		log.Printf("NPC clear failed for %s: %v", username, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to clear NPCs: %v", err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Cleared %d NPC(s) from this channel.", output.Removed))
}

// handleSaveTemplate stores a custom generation template
func (c *NPCCommand) handleSaveTemplate(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	userID, username := interactionUser(i)
	options := optionMap(subOptions)

	stats, err := parseStatPairs(stringOption(options, "stats"))
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to parse stats: %v", err))
	}

	output, err := c.gameService.SaveNPCTemplate(ctx, &game.SaveNPCTemplateInput{
		UserID:      userID,
		Name:        stringOption(options, "name"),
		Description: stringOption(options, "description"),
		Stats:       stats,
	})
	if err != nil {
		log.Printf("Template save failed for %s: %v", username, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to save template: %v", err))
	}

	title := fmt.Sprintf("Template %s saved", output.Template.Name)

	return RespondWithEphemeralEmbed(s, i, title, templateStatLine(output.Template), nil)
}

// handleTemplates lists templates, visible to the caller only
func (c *NPCCommand) handleTemplates(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	_, username := interactionUser(i)

	output, err := c.gameService.ListNPCTemplates(ctx, &game.ListNPCTemplatesInput{})
	if err != nil {
		log.Printf("Template list failed for %s: %v", username, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to list templates: %v", err))
	}

	return RespondWithEphemeralEmbed(s, i, "NPC templates", templatesDescription(output.Templates), nil)
}

// handleDeleteTemplate removes a custom template
func (c *NPCCommand) handleDeleteTemplate(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	_, username := interactionUser(i)
	options := optionMap(subOptions)

	output, err := c.gameService.DeleteNPCTemplate(ctx, &game.DeleteNPCTemplateInput{
		Name: stringOption(options, "name"),
	})
	if err != nil {
		log.Printf("Template delete failed for %s: %v", username, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to delete template: %v", err))
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Template **%s** deleted.", output.Name))
}
