package settings

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/rollkeeper/rollkeeper/internal/repositories/settings Repository

import (
	"context"

	"github.com/rollkeeper/rollkeeper/internal/models"
)

// Repository defines the interface for per-user settings persistence
type Repository interface {
	// GetSettings retrieves a user's settings, creating defaults on
	// first access
	GetSettings(ctx context.Context, input *GetSettingsInput) (*models.UserSettings, error)

	// SetRule updates the parts of the rule configuration present in
	// the input
	SetRule(ctx context.Context, input *SetRuleInput) (*models.UserSettings, error)

	// SetActiveCharacter points the user at one of their characters
	SetActiveCharacter(ctx context.Context, input *SetActiveCharacterInput) (*models.UserSettings, error)
}
