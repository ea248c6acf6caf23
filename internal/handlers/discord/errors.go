package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	npcRepo "github.com/rollkeeper/rollkeeper/internal/repositories/npc"
	"github.com/rollkeeper/rollkeeper/internal/services/game"
	"github.com/rollkeeper/rollkeeper/internal/services/messaging"
)

// classifyError buckets a service error into a messaging error type.
// Unrecognized errors return an empty string.
func classifyError(err error) string {
	switch {
	case errors.Is(err, game.ErrCheckExpired):
		return messaging.ErrorTypeCheckExpired
	case errors.Is(err, game.ErrNotParticipant),
		errors.Is(err, game.ErrNotInitiator),
		errors.Is(err, game.ErrNotTarget):
		return messaging.ErrorTypeNotParticipant
	case errors.Is(err, game.ErrAlreadyRolled),
		errors.Is(err, game.ErrSideAlreadyResolved):
		return messaging.ErrorTypeAlreadyRolled
	case errors.Is(err, game.ErrNoActiveCharacter),
		errors.Is(err, game.ErrTargetNoCharacter):
		return messaging.ErrorTypeNoCharacter
	case errors.Is(err, npcRepo.ErrNPCNotFound):
		return messaging.ErrorTypeNPCNotFound
	default:
		return ""
	}
}

// respondGameError answers a failed interaction. Known game errors get
// a friendly ephemeral notice, anything else a plain error embed.
func respondGameError(s *discordgo.Session, i *discordgo.InteractionCreate, messagingService messaging.Service, userName string, err error) error {
	errorType := classifyError(err)
	if errorType == "" || messagingService == nil {
		return RespondWithError(s, i, err.Error())
	}

	notice, msgErr := messagingService.GetErrorMessage(context.Background(), &messaging.GetErrorMessageInput{
		ErrorType:  errorType,
		PlayerName: userName,
	})
	if msgErr != nil || notice.Message == "" {
		return RespondWithError(s, i, err.Error())
	}

	return RespondWithEphemeralMessage(s, i, notice.Message)
}
