package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/rollkeeper/rollkeeper/internal/services/game"
)

// RuleCommand handles the /rule command
type RuleCommand struct {
	BaseCommand
	gameService game.Service
}

// NewRuleCommand creates a new rule command handler
func NewRuleCommand(gameService game.Service) *RuleCommand {
	return &RuleCommand{
		BaseCommand: BaseCommand{
			Name:        "rule",
			Description: "Show or change how your rolls are graded",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show your current grading settings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "Change parts of your grading settings",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "ruleset",
							Description: "Success-level ruleset",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "A (success/failure)", Value: "A"},
								{Name: "B (four success tiers)", Value: "B"},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "critical",
							Description: "Highest roll graded as a critical (1-20)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "fumble",
							Description: "Lowest roll graded as a fumble (80-100)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "preset",
					Description: "Replace your grading settings with a preset",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Preset to apply",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "standard (B, crit 5, fumble 96)", Value: "standard"},
								{Name: "strict (B, crit 1, fumble 100)", Value: "strict"},
								{Name: "classic (A, crit 5, fumble 96)", Value: "classic"},
							},
						},
					},
				},
			},
		},
		gameService: gameService,
	}
}

// Handle processes a Discord interaction for the rule command
func (c *RuleCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
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
		return c.handleShow(s, i)
	case "set":
		return c.handleSet(s, i, sub.Options)
	case "preset":
		return c.handlePreset(s, i, sub.Options)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}
}

// handleShow displays the caller's grading settings
func (c *RuleCommand) handleShow(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	userID, username := interactionUser(i)

	output, err := c.gameService.GetRule(ctx, &game.GetRuleInput{UserID: userID})
	if err != nil {
		log.Printf("Rule lookup failed for %s: %v", username, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to load settings: %v", err))
	}

	title := fmt.Sprintf("%s's grading settings", username)

	return RespondWithEphemeralEmbed(s, i, title, "", ruleFields(output.Settings))
}

// handleSet updates the parts of the settings the caller named
func (c *RuleCommand) handleSet(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	userID, username := interactionUser(i)
	options := optionMap(subOptions)

	output, err := c.gameService.SetRule(ctx, &game.SetRuleInput{
		UserID:            userID,
		RuleName:          stringOption(options, "ruleset"),
		CriticalThreshold: intOption(options, "critical"),
		FumbleThreshold:   intOption(options, "fumble"),
	})
	if err != nil {
		log.Printf("Rule update failed for %s: %v", username, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to update settings: %v", err))
	}

	title := fmt.Sprintf("%s's grading settings updated", username)

	return RespondWithEphemeralEmbed(s, i, title, "", ruleFields(output.Settings))
}

// handlePreset replaces the settings with a named preset
func (c *RuleCommand) handlePreset(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	userID, username := interactionUser(i)
	options := optionMap(subOptions)

	output, err := c.gameService.ApplyRulePreset(ctx, &game.ApplyRulePresetInput{
		UserID: userID,
		Preset: stringOption(options, "name"),
	})
	if err != nil {
		log.Printf("Rule preset failed for %s: %v", username, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to apply preset: %v", err))
	}

	title := fmt.Sprintf("Applied the %s preset", output.Preset)

	return RespondWithEphemeralEmbed(s, i, title, "", ruleFields(output.Settings))
}
