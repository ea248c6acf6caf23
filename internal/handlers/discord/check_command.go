package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/rollkeeper/rollkeeper/internal/services/game"
	"github.com/rollkeeper/rollkeeper/internal/services/messaging"
)

// CheckCommand handles the /check command
type CheckCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
}

// NewCheckCommand creates a new check command handler
func NewCheckCommand(gameService game.Service, messagingService messaging.Service) *CheckCommand {
	return &CheckCommand{
		BaseCommand: BaseCommand{
			Name:        "check",
			Description: "Skill checks, opposed contests and burst fire",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roll",
					Description: "Roll a skill check against your own sheet or a fixed target",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "skill",
							Description: "Skill or attribute to test, like Spot Hidden or POW",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "target",
							Description: "Fixed target number instead of your sheet's value",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "bonus",
							Description: "Bonus dice (0-10)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "penalty",
							Description: "Penalty dice (0-10)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "times",
							Description: "Repeat the check (1-10)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "hidden",
							Description: "Show the result only to you",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "group",
					Description: "Post a check everyone in the channel can roll",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "skill",
							Description: "Skill or attribute everyone rolls",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "target",
							Description: "Fixed target for everyone instead of each sheet's value",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "oppose",
					Description: "Challenge another player or an NPC to an opposed check",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "skill",
							Description: "Your skill in the contest",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "The player you are challenging",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "npc",
							Description: "The channel NPC you are challenging",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "their-skill",
							Description: "The opponent's skill; defaults to yours",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "npc-skill",
							Description: "Override the NPC's skill value",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "bonus",
							Description: "Your bonus dice (0-10)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "penalty",
							Description: "Your penalty dice (0-10)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "their-bonus",
							Description: "The opponent's bonus dice (0-10)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "their-penalty",
							Description: "The opponent's penalty dice (0-10)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "burst",
					Description: "Resolve a volley of automatic fire",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "bursts",
							Description: "Bursts in the volley (1-10)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "skill-value",
							Description: "Explicit firearm skill; defaults to your sheet's Firearms",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "npc",
							Description: "Fire as a channel NPC using its Firearms skill",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "bonus",
							Description: "Situational bonus dice (0-10)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "penalty",
							Description: "Situational penalty dice (0-10)",
						},
					},
				},
			},
		},
		gameService:      gameService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the check command
func (c *CheckCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
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
	case "oppose":
		return c.handleOppose(s, i, sub.Options)
	case "burst":
		return c.handleBurst(s, i, sub.Options)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}
}

// handleRoll rolls an immediate skill check for the caller
func (c *CheckCommand) handleRoll(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	userID, username := interactionUser(i)
	options := optionMap(subOptions)

	hidden := boolOption(options, "hidden")

	output, err := c.gameService.RollCheck(ctx, &game.RollCheckInput{
		UserID:    userID,
		UserName:  username,
		ChannelID: i.ChannelID,
		SkillName: stringOption(options, "skill"),
		Target:    intOption(options, "target"),
		Bonus:     intOption(options, "bonus"),
		Penalty:   intOption(options, "penalty"),
		Times:     intOption(options, "times"),
		Hidden:    hidden,
	})
	if err != nil {
		log.Printf("Check failed for %s: %v", username, err)
		return respondGameError(s, i, c.messagingService, username, err)
	}

	title := fmt.Sprintf("%s: %s check", username, output.SkillName)
	description := strings.Join(checkRollLines(output.Rolls), "\n")

	if hidden {
		return RespondWithEphemeralEmbed(s, i, title, description, nil)
	}

	return RespondWithEmbed(s, i, title, description, nil)
}

// handleGroup posts a skill check the whole channel can roll against
func (c *CheckCommand) handleGroup(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	userID, username := interactionUser(i)
	options := optionMap(subOptions)

	output, err := c.gameService.CreateSkillCheck(ctx, &game.CreateSkillCheckInput{
		ChannelID:   i.ChannelID,
		CreatorID:   userID,
		CreatorName: username,
		SkillName:   stringOption(options, "skill"),
		Target:      intOption(options, "target"),
	})
	if err != nil {
		log.Printf("Group check creation failed for %s: %v", username, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to create check: %v", err))
	}

	title := fmt.Sprintf("%s check", output.SkillName)
	description := fmt.Sprintf("%s calls for a **%s** check. Press the button to roll against your own sheet.", username, output.SkillName)
	if output.Target > 0 {
		description = fmt.Sprintf("%s calls for a **%s** check against %d. Press the button to roll.", username, output.SkillName, output.Target)
	}

	button := discordgo.Button{
		Label:    "Roll " + output.SkillName,
		Style:    discordgo.PrimaryButton,
		CustomID: componentID(ComponentSkillCheck, output.CheckID),
		Emoji: &discordgo.ComponentEmoji{
			Name: "🎲",
		},
	}

	return RespondWithEmbedAndButtons(s, i, title, description, nil, []discordgo.MessageComponent{button})
}

// handleOppose opens an opposed contest against a player or an NPC
func (c *CheckCommand) handleOppose(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	userID, username := interactionUser(i)
	options := optionMap(subOptions)

	input := &game.CreateOpposedCheckInput{
		ChannelID:        i.ChannelID,
		InitiatorID:      userID,
		InitiatorName:    username,
		NPCName:          stringOption(options, "npc"),
		NPCSkillValue:    intOption(options, "npc-skill"),
		InitiatorSkill:   stringOption(options, "skill"),
		TargetSkill:      stringOption(options, "their-skill"),
		InitiatorBonus:   intOption(options, "bonus"),
		InitiatorPenalty: intOption(options, "penalty"),
		TargetBonus:      intOption(options, "their-bonus"),
		TargetPenalty:    intOption(options, "their-penalty"),
	}

	if user := userOption(options, "user", s); user != nil {
		input.TargetID = user.ID
	}

	output, err := c.gameService.CreateOpposedCheck(ctx, input)
	if err != nil {
		log.Printf("Opposed check creation failed for %s: %v", username, err)
		return respondGameError(s, i, c.messagingService, username, err)
	}

	skillDisplay := output.InitiatorSkill
	if output.TargetSkill != output.InitiatorSkill {
		skillDisplay = fmt.Sprintf("%s vs %s", output.InitiatorSkill, output.TargetSkill)
	}

	var description string
	if output.NPCName != "" {
		description = fmt.Sprintf("%s contests **%s** against %s. The NPC has already made its roll; press to make yours.",
			username, skillDisplay, output.NPCName)
	} else {
		description = fmt.Sprintf("%s challenges <@%s>: **%s**. Both sides, press to roll.",
			username, output.TargetID, skillDisplay)
	}

	button := discordgo.Button{
		Label:    "Roll your side",
		Style:    discordgo.PrimaryButton,
		CustomID: componentID(ComponentOpposedCheck, output.CheckID),
		Emoji: &discordgo.ComponentEmoji{
			Name: "⚔️",
		},
	}

	return RespondWithEmbedAndButtons(s, i, "Opposed check", description, nil, []discordgo.MessageComponent{button})
}

// handleBurst resolves a volley of automatic fire
func (c *CheckCommand) handleBurst(s *discordgo.Session, i *discordgo.InteractionCreate, subOptions []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	userID, username := interactionUser(i)
	options := optionMap(subOptions)

	output, err := c.gameService.ResolveBurstFire(ctx, &game.ResolveBurstFireInput{
		ChannelID:  i.ChannelID,
		UserID:     userID,
		UserName:   username,
		NPCName:    stringOption(options, "npc"),
		SkillValue: intOption(options, "skill-value"),
		Bursts:     intOption(options, "bursts"),
		EnvBonus:   intOption(options, "bonus"),
		EnvPenalty: intOption(options, "penalty"),
	})
	if err != nil {
		log.Printf("Burst fire failed for %s: %v", username, err)
		return respondGameError(s, i, c.messagingService, username, err)
	}

	shooter := username
	if output.NPCName != "" {
		shooter = output.NPCName
	}

	title := fmt.Sprintf("%s opens fire", shooter)

	return RespondWithEmbed(s, i, title, volleyDescription(output.Volley), volleyFields(output.Volley))
}
