package checks

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/rollkeeper/rollkeeper/internal/repositories/checks Repository

import (
	"context"

	"github.com/rollkeeper/rollkeeper/internal/models"
)

// Repository defines the interface for pending check storage. Checks
// returned from it are defensive copies; all mutation goes through
// the repository methods.
type Repository interface {
	// CreateSkillCheck stores a group skill check
	CreateSkillCheck(ctx context.Context, input *CreateSkillCheckInput) (*models.PendingCheck, error)

	// CreateSanityCheck stores a group sanity check
	CreateSanityCheck(ctx context.Context, input *CreateSanityCheckInput) (*models.PendingCheck, error)

	// CreateOpposedCheck stores a two-sided opposed check
	CreateOpposedCheck(ctx context.Context, input *CreateOpposedCheckInput) (*models.PendingCheck, error)

	// CreateDamageCheck stores a damage confirmation
	CreateDamageCheck(ctx context.Context, input *CreateDamageCheckInput) (*models.PendingCheck, error)

	// CreateConstitutionCheck stores a major-wound constitution check
	CreateConstitutionCheck(ctx context.Context, input *CreateConstitutionCheckInput) (*models.PendingCheck, error)

	// GetCheck retrieves a live check by ID
	GetCheck(ctx context.Context, input *GetCheckInput) (*models.PendingCheck, error)

	// MarkCompleted records that a user has rolled on a group check
	MarkCompleted(ctx context.Context, input *MarkCompletedInput) (*MarkCompletedOutput, error)

	// SetOpposedResult records one side's roll on an opposed check
	SetOpposedResult(ctx context.Context, input *SetOpposedResultInput) (*SetOpposedResultOutput, error)

	// RemoveCheck deletes a check once it has been consumed
	RemoveCheck(ctx context.Context, input *RemoveCheckInput) error

	// SweepExpired removes checks older than the configured TTL
	SweepExpired(ctx context.Context) (*SweepExpiredOutput, error)

	// Stats counts live checks by kind
	Stats(ctx context.Context) (*StatsOutput, error)
}
