package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetHealthStatus describes a combatant's condition based on their
	// remaining hit points
	GetHealthStatus(ctx context.Context, input *GetHealthStatusInput) (*GetHealthStatusOutput, error)

	// GetHealthBar renders a hit point gauge
	GetHealthBar(ctx context.Context, input *GetHealthBarInput) (*GetHealthBarOutput, error)

	// GetOutcomeFlavor returns a comment for notable check outcomes
	GetOutcomeFlavor(ctx context.Context, input *GetOutcomeFlavorInput) (*GetOutcomeFlavorOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
