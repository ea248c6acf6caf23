package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/rollkeeper/rollkeeper/internal/services/game"
	"github.com/rollkeeper/rollkeeper/internal/services/messaging"
)

// DamageCommand handles the /dmg command
type DamageCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
}

// NewDamageCommand creates a new damage command handler
func NewDamageCommand(gameService game.Service, messagingService messaging.Service) *DamageCommand {
	return &DamageCommand{
		BaseCommand: BaseCommand{
			Name:        "dmg",
			Description: "Deal damage to a character or NPC",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "amount",
					Description: "Damage as a number or dice formula, like 4 or 1d6+2",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "The player taking the damage (default you)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "npc",
					Description: "An NPC in this channel taking the damage instead",
				},
			},
		},
		gameService:      gameService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the damage command. The
// damage only lands once the initiator presses the confirmation
// button.
func (c *DamageCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
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

	input := &game.CreateDamageCheckInput{
		ChannelID:     i.ChannelID,
		InitiatorID:   userID,
		InitiatorName: username,
		NPCName:       stringOption(options, "npc"),
		Expression:    stringOption(options, "amount"),
	}
	if user := userOption(options, "user", s); user != nil {
		input.TargetUserID = user.ID
	}

	output, err := c.gameService.CreateDamageCheck(ctx, input)
	if err != nil {
		log.Printf("Damage check creation failed for %s: %v", username, err)
		return respondGameError(s, i, c.messagingService, username, err)
	}

	title := fmt.Sprintf("%s damage incoming", output.Expression)
	description := fmt.Sprintf("%s is about to deal **%s** damage to **%s**. Press to confirm.",
		username, output.Expression, output.TargetName)

	return RespondWithEmbedAndButtons(s, i, title, description, nil, []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Confirm damage",
			Style:    discordgo.DangerButton,
			CustomID: componentID(ComponentDamageConfirm, output.CheckID),
			Emoji:    &discordgo.ComponentEmoji{Name: "💥"},
		},
	})
}
