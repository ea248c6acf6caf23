package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/rollkeeper/rollkeeper/internal/services/game"
	"github.com/rollkeeper/rollkeeper/internal/services/messaging"
)

// Default sanity losses when the keeper does not spell them out
const (
	defaultSanitySuccessLoss = "0"
	defaultSanityFailureLoss = "1d6"
)

// SanityCommand handles the /sc command
type SanityCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
}

// NewSanityCommand creates a new sanity check command handler
func NewSanityCommand(gameService game.Service, messagingService messaging.Service) *SanityCommand {
	lossOptions := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "success",
			Description: "Sanity loss on a success, a number or dice formula (default 0)",
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "failure",
			Description: "Sanity loss on a failure, a number or dice formula (default 1d6)",
		},
	}

	return &SanityCommand{
		BaseCommand: BaseCommand{
			Name:        "sc",
			Description: "Sanity checks against your investigator's SAN",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roll",
					Description: "Roll a sanity check for your active investigator",
					Options:     lossOptions,
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "group",
					Description: "Post a sanity check everyone in the channel can roll",
					Options:     lossOptions,
				},
			},
		},
		gameService:      gameService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the sc command
func (c *SanityCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	switch sub.Name {
	case "roll":
		return c.handleRoll(s, i, sub.Options)
	case "group":
		return c.handleGroup(s, i, sub.Options)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}
}

// lossExpressions reads the success and failure losses, falling back
// to the defaults. An empty option would otherwise roll as a full d100.
func lossExpressions(options map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, string) {
	success := stringOption(options, "success")
	if success == "" {
		success = defaultSanitySuccessLoss
	}

	failure := stringOption(options, "failure")
	if failure == "" {
		failure = defaultSanityFailureLoss
	}

	return success, failure
}

// handleRoll resolves an immediate sanity check for the caller
func (c *SanityCommand) handleRoll(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	userID, username := interactionUser(i)
	success, failure := lossExpressions(optionMap(subOptions))

	output, err := c.gameService.RollSanity(ctx, &game.RollSanityInput{
		UserID:            userID,
		UserName:          username,
		ChannelID:         i.ChannelID,
		SuccessExpression: success,
		FailureExpression: failure,
	})
	if err != nil {
		log.Printf("Sanity check failed for %s: %v", username, err)
		return respondGameError(s, i, c.messagingService, username, err)
	}

	result := output.Result
	title := fmt.Sprintf("%s: Sanity check", result.CharacterName)

	return RespondWithEmbed(s, i, title, sanityDescription(result), sanityFields(result))
}

// handleGroup posts a sanity check the whole channel can roll against
func (c *SanityCommand) handleGroup(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	userID, username := interactionUser(i)
	success, failure := lossExpressions(optionMap(subOptions))

	output, err := c.gameService.CreateSanityCheck(ctx, &game.CreateSanityCheckInput{
		ChannelID:         i.ChannelID,
		CreatorID:         userID,
		CreatorName:       username,
		SuccessExpression: success,
		FailureExpression: failure,
	})
	if err != nil {
		log.Printf("Group sanity check creation failed for %s: %v", username, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to create sanity check: %v", err))
	}

	description := fmt.Sprintf("%s calls for a sanity check (**%s/%s**). Press the button to roll against your SAN.",
		username, output.SuccessExpression, output.FailureExpression)

	button := discordgo.Button{
		Label:    "Roll Sanity",
		Style:    discordgo.DangerButton,
		CustomID: componentID(ComponentSanityCheck, output.CheckID),
		Emoji: &discordgo.ComponentEmoji{
			Name: "😱",
		},
	}

	return RespondWithEmbedAndButtons(s, i, "Sanity check", description, nil, []discordgo.MessageComponent{button})
}
