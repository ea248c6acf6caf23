package gamelog

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/rollkeeper/rollkeeper/internal/repositories/gamelog Repository

import (
	"context"
)

// Repository keeps a capped per-channel log of game events
type Repository interface {
	// AppendEntry records an event in a channel's log, evicting the
	// oldest entries once the cap is reached
	AppendEntry(ctx context.Context, input *AppendEntryInput) error

	// GetRecent retrieves the newest entries in a channel's log,
	// newest first
	GetRecent(ctx context.Context, input *GetRecentInput) (*GetRecentOutput, error)

	// Clear removes a channel's log entirely
	Clear(ctx context.Context, input *ClearInput) error
}
