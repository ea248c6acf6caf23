package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/rollkeeper/rollkeeper/internal/services/game"
	"github.com/rollkeeper/rollkeeper/internal/services/messaging"
)

// CharacterCommand handles the /pc command
type CharacterCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
}

// NewCharacterCommand creates a new character command handler
func NewCharacterCommand(gameService game.Service, messagingService messaging.Service) *CharacterCommand {
	return &CharacterCommand{
		BaseCommand: BaseCommand{
			Name:        "pc",
			Description: "Manage your investigator sheets",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "import",
					Description: "Import a JSON character sheet and make it active",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "json",
							Description: "The sheet as JSON",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List your imported sheets",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "switch",
					Description: "Make one of your sheets the active one",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "The character to activate",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show a sheet",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "The character to show; defaults to your active one",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "delete",
					Description: "Delete one of your sheets",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "The character to delete",
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

// Handle processes a Discord interaction for the pc command
func (c *CharacterCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	switch sub.Name {
	case "import":
		return c.handleImport(s, i, sub.Options)
	case "list":
		return c.handleList(s, i)
	case "switch":
		return c.handleSwitch(s, i, sub.Options)
	case "show":
		return c.handleShow(s, i, sub.Options)
	case "delete":
		return c.handleDelete(s, i, sub.Options)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}
}

// handleImport parses a JSON sheet and activates it
func (c *CharacterCommand) handleImport(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	userID, username := interactionUser(i)
	options := optionMap(subOptions)

	output, err := c.gameService.ImportCharacter(ctx, &game.ImportCharacterInput{
		UserID: userID,
		Data:   []byte(stringOption(options, "json")),
	})
	if err != nil {
		log.Printf("Character import failed for %s: %v", username, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to import character: %v", err))
	}

	title := fmt.Sprintf("%s joins the investigation", output.Character.Name)
	description := fmt.Sprintf("Imported and set as %s's active character.", username)

	return RespondWithEmbed(s, i, title, description, characterSheetFields(output.Character))
}

// handleList shows the caller's sheets
func (c *CharacterCommand) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	userID, username := interactionUser(i)

	output, err := c.gameService.ListCharacters(ctx, &game.ListCharactersInput{UserID: userID})
	if err != nil {
		log.Printf("Character list failed for %s: %v", username, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to list characters: %v", err))
	}

	title := fmt.Sprintf("%s's characters", username)

	return RespondWithEphemeralEmbed(s, i, title, charactersDescription(output.Characters, output.ActiveName), nil)
}

// handleSwitch activates one of the caller's sheets
func (c *CharacterCommand) handleSwitch(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	userID, username := interactionUser(i)
	options := optionMap(subOptions)

	output, err := c.gameService.SwitchCharacter(ctx, &game.SwitchCharacterInput{
		UserID: userID,
		Name:   stringOption(options, "name"),
	})
	if err != nil {
		log.Printf("Character switch failed for %s: %v", username, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to switch character: %v", err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf("%s now plays **%s**.", username, output.Character.Name))
}

// handleShow displays a sheet
func (c *CharacterCommand) handleShow(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	userID, username := interactionUser(i)
	options := optionMap(subOptions)

	output, err := c.gameService.ShowCharacter(ctx, &game.ShowCharacterInput{
		UserID: userID,
		Name:   stringOption(options, "name"),
	})
	if err != nil {
		log.Printf("Character show failed for %s: %v", username, err)
		return respondGameError(s, i, c.messagingService, username, err)
	}

	title := output.Character.Name
	if output.Active {
		title += " (active)"
	}

	return RespondWithEmbed(s, i, title, "", characterSheetFields(output.Character))
}

// handleDelete removes one of the caller's sheets
func (c *CharacterCommand) handleDelete(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	userID, username := interactionUser(i)
	options := optionMap(subOptions)

	output, err := c.gameService.DeleteCharacter(ctx, &game.DeleteCharacterInput{
		UserID: userID,
		Name:   stringOption(options, "name"),
	})
	if err != nil {
		log.Printf("Character delete failed for %s: %v", username, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to delete character: %v", err))
	}

	message := fmt.Sprintf("Deleted **%s**.", output.Name)
	if output.Deactivated {
		message += " You have no active character now."
	}

	return RespondWithEphemeralMessage(s, i, message)
}
