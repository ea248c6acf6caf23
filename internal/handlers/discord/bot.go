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

// Component ID prefixes. The pending check ID follows the prefix after
// a colon, so every button press carries the check it belongs to.
const (
	ComponentSkillCheck    = "check"
	ComponentSanityCheck   = "san_check"
	ComponentOpposedCheck  = "opposed"
	ComponentDamageConfirm = "damage_confirm"
	ComponentConstitution  = "con_check"
)

// componentID builds a button custom ID for a pending check
func componentID(prefix, checkID string) string {
	return prefix + ":" + checkID
}

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	commands         map[string]CommandHandler
	commandIDs       map[string]string // Maps command name to command ID
	gameService      game.Service
	messagingService messaging.Service
	config           *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Game service
	GameService game.Service

	// Messaging service for friendly error notices
	MessagingService messaging.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:          session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		config:           cfg,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	commands := []CommandHandler{
		NewRollCommand(b.gameService),
		NewCheckCommand(b.gameService, b.messagingService),
		NewSanityCommand(b.gameService, b.messagingService),
		NewRuleCommand(b.gameService),
		NewCharacterCommand(b.gameService, b.messagingService),
		NewNPCCommand(b.gameService, b.messagingService),
		NewDamageCommand(b.gameService, b.messagingService),
		NewStatCommand(b.gameService, b.messagingService),
		NewLogCommand(b.gameService),
	}

	for _, cmd := range commands {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" && b.session.State.User != nil {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// A guild ID scopes the command to that guild; otherwise it
	// registers globally
	if b.config.GuildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), b.config.GuildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	}
}

// handleComponentInteraction routes button clicks by their custom ID
// prefix
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	prefix, checkID, ok := strings.Cut(customID, ":")
	if !ok {
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}

	switch prefix {
	case ComponentSkillCheck:
		return b.handleSkillCheckButton(s, i, checkID)
	case ComponentSanityCheck:
		return b.handleSanityCheckButton(s, i, checkID)
	case ComponentOpposedCheck:
		return b.handleOpposedButton(s, i, checkID)
	case ComponentDamageConfirm:
		return b.handleDamageConfirmButton(s, i, checkID)
	case ComponentConstitution:
		return b.handleConstitutionButton(s, i, checkID)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

// handleSkillCheckButton resolves one user's press on a group skill
// check
func (b *Bot) handleSkillCheckButton(s *discordgo.Session, i *discordgo.InteractionCreate, checkID string) error {
	ctx := context.Background()
	userID, username := interactionUser(i)

	output, err := b.gameService.RollSkillCheck(ctx, &game.RollSkillCheckInput{
		CheckID:  checkID,
		UserID:   userID,
		UserName: username,
	})
	if err != nil {
		log.Printf("Skill check roll failed for %s: %v", username, err)
		return respondGameError(s, i, b.messagingService, username, err)
	}

	title := fmt.Sprintf("%s: %s check", username, output.SkillName)
	description := fmt.Sprintf("**%s**", output.Result.String())
	if output.Flavor != "" {
		description += "\n" + output.Flavor
	}

	return RespondWithEmbed(s, i, title, description, nil)
}

// handleSanityCheckButton resolves one user's press on a group sanity
// check
func (b *Bot) handleSanityCheckButton(s *discordgo.Session, i *discordgo.InteractionCreate, checkID string) error {
	ctx := context.Background()
	userID, username := interactionUser(i)

	output, err := b.gameService.RollSanityCheck(ctx, &game.RollSanityCheckInput{
		CheckID:  checkID,
		UserID:   userID,
		UserName: username,
	})
	if err != nil {
		log.Printf("Sanity check roll failed for %s: %v", username, err)
		return respondGameError(s, i, b.messagingService, username, err)
	}

	result := output.Result
	title := fmt.Sprintf("%s: Sanity check", result.CharacterName)

	return RespondWithEmbed(s, i, title, sanityDescription(result), sanityFields(result))
}

// handleOpposedButton resolves one side's press on an opposed check
func (b *Bot) handleOpposedButton(s *discordgo.Session, i *discordgo.InteractionCreate, checkID string) error {
	ctx := context.Background()
	userID, username := interactionUser(i)

	output, err := b.gameService.RollOpposedCheck(ctx, &game.RollOpposedCheckInput{
		CheckID:  checkID,
		UserID:   userID,
		UserName: username,
	})
	if err != nil {
		log.Printf("Opposed roll failed for %s: %v", username, err)
		return respondGameError(s, i, b.messagingService, username, err)
	}

	if !output.Complete {
		side := output.Side
		description := fmt.Sprintf("%s rolled %s: **%s/%d [%s]**\nWaiting for the other side.",
			username, side.SkillName, side.Detail, side.Target, side.Level)
		return RespondWithEmbed(s, i, "Opposed check", description, nil)
	}

	outcome := output.Outcome
	title := fmt.Sprintf("Opposed %s: %s vs %s", outcome.SkillDisplay, outcome.InitiatorName, outcome.TargetName)

	description := fmt.Sprintf("**%s** takes it.", outcome.WinnerName)
	if outcome.Tie {
		description = "Dead even. Neither side gains the upper hand."
	}

	return RespondWithEmbed(s, i, title, description, opposedOutcomeFields(outcome))
}

// handleDamageConfirmButton applies a pending damage check once its
// initiator confirms it
func (b *Bot) handleDamageConfirmButton(s *discordgo.Session, i *discordgo.InteractionCreate, checkID string) error {
	ctx := context.Background()
	userID, username := interactionUser(i)

	output, err := b.gameService.ConfirmDamage(ctx, &game.ConfirmDamageInput{
		CheckID:  checkID,
		UserID:   userID,
		UserName: username,
	})
	if err != nil {
		log.Printf("Damage confirm failed for %s: %v", username, err)
		return respondGameError(s, i, b.messagingService, username, err)
	}

	title := fmt.Sprintf("%s takes %d damage", output.TargetName, output.Damage)
	description := fmt.Sprintf("Damage: %d (%s)", output.Damage, output.Expression)

	if err := UpdateWithEmbed(s, i, title, description, damageFields(output)); err != nil {
		return err
	}

	// A wounded player still has a constitution roll to make; give
	// them the button in a follow-up message
	if output.ConCheckID != "" {
		if err := b.postConstitutionPrompt(s, i.ChannelID, output); err != nil {
			log.Printf("Failed to post constitution check prompt: %v", err)
		}
	}

	return nil
}

// postConstitutionPrompt asks a wounded player to roll against their
// constitution
func (b *Bot) postConstitutionPrompt(s *discordgo.Session, channelID string, output *game.ConfirmDamageOutput) error {
	embed := &discordgo.MessageEmbed{
		Title: "Major wound!",
		Description: fmt.Sprintf("%s took %d damage, at least half their maximum hit points. Roll against Constitution or go down.",
			output.TargetName, output.Damage),
		Color: 0xff0000, // Red color
	}

	button := discordgo.Button{
		Label:    "Roll Constitution",
		Style:    discordgo.DangerButton,
		CustomID: componentID(ComponentConstitution, output.ConCheckID),
		Emoji: &discordgo.ComponentEmoji{
			Name: "🩸",
		},
	}

	_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{button},
			},
		},
	})

	return err
}

// handleConstitutionButton resolves the wounded target's constitution
// roll
func (b *Bot) handleConstitutionButton(s *discordgo.Session, i *discordgo.InteractionCreate, checkID string) error {
	ctx := context.Background()
	userID, username := interactionUser(i)

	output, err := b.gameService.RollConstitutionCheck(ctx, &game.RollConstitutionCheckInput{
		CheckID:  checkID,
		UserID:   userID,
		UserName: username,
	})
	if err != nil {
		log.Printf("Constitution roll failed for %s: %v", username, err)
		return respondGameError(s, i, b.messagingService, username, err)
	}

	result := output.Result
	title := fmt.Sprintf("%s: Constitution check", result.TargetName)

	return UpdateWithEmbed(s, i, title, constitutionValue(result), nil)
}
