package character

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/rollkeeper/rollkeeper/internal/repositories/character Repository

import (
	"context"

	"github.com/rollkeeper/rollkeeper/internal/models"
)

// Repository defines the interface for character sheet persistence
type Repository interface {
	// SaveCharacter persists a character sheet, inserting or replacing
	// by owner and name
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) error

	// GetCharacter retrieves one of a user's characters by name
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*models.Character, error)

	// ListCharacters retrieves all characters owned by a user
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// DeleteCharacter removes one of a user's characters by name
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) error
}
