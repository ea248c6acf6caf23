package discord

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/rollkeeper/rollkeeper/internal/services/game"
	"github.com/rollkeeper/rollkeeper/internal/services/messaging"
)

// StatCommand handles the /stat command
type StatCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
}

// NewStatCommand creates a new stat adjustment command handler
func NewStatCommand(gameService game.Service, messagingService messaging.Service) *StatCommand {
	return &StatCommand{
		BaseCommand: BaseCommand{
			Name:        "stat",
			Description: "Adjust your active character's HP, MP or SAN",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "stat",
					Description: "The stat to adjust",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "HP", Value: "hp"},
						{Name: "MP", Value: "mp"},
						{Name: "SAN", Value: "san"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "change",
					Description: "The change: +5, -3 or =10",
					Required:    true,
				},
			},
		},
		gameService:      gameService,
		messagingService: messagingService,
	}
}

// parseStatChange splits "+5", "-3" or "=10" into an operator and a
// value. A bare number sets the stat outright.
func parseStatChange(text string) (string, int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", 0, fmt.Errorf("malformed change %q, expected +N, -N or =N", text)
	}

	op := "="
	rest := text
	switch text[0] {
	case '+', '-', '=':
		op = string(text[0])
		rest = strings.TrimSpace(text[1:])
	}

	value, err := strconv.Atoi(rest)
	if err != nil || value < 0 {
		return "", 0, fmt.Errorf("malformed change %q, expected +N, -N or =N", text)
	}

	return op, value, nil
}

// Handle processes a Discord interaction for the stat command
func (c *StatCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
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

	op, value, err := parseStatChange(stringOption(options, "change"))
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to parse change: %v", err))
	}

	output, err := c.gameService.AdjustStat(ctx, &game.AdjustStatInput{
		UserID:    userID,
		UserName:  username,
		ChannelID: i.ChannelID,
		Stat:      stringOption(options, "stat"),
		Op:        op,
		Value:     value,
	})
	if err != nil {
		log.Printf("Stat adjustment failed for %s: %v", username, err)
		return respondGameError(s, i, c.messagingService, username, err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf("%s: %s %d → %d (max %d)",
		output.CharacterName, strings.ToUpper(output.Stat), output.Old, output.New, output.Max))
}
