package checks

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rollkeeper/rollkeeper/internal/common/clock"
	"github.com/rollkeeper/rollkeeper/internal/common/token"
	"github.com/rollkeeper/rollkeeper/internal/models"
)

// DefaultTTL is how long a check stays clickable.
const DefaultTTL = 10 * time.Minute

var (
	// ErrCheckNotFound is returned when a check is missing or expired
	ErrCheckNotFound = errors.New("check not found")

	// ErrNotParticipant is returned when a user is not a side of an
	// opposed check
	ErrNotParticipant = errors.New("user is not part of this check")
)

// memoryRepository implements the Repository interface with a
// mutex-guarded map. Checks are transient UI state, so they live in
// process memory rather than Redis.
type memoryRepository struct {
	mu     sync.Mutex
	checks map[string]*models.PendingCheck

	clock          clock.Clock
	tokenGenerator token.Generator
	ttl            time.Duration
}

// NewMemory creates a new in-memory check repository
func NewMemory(cfg *Config) (*memoryRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	repoClock := cfg.Clock
	if repoClock == nil {
		repoClock = &clock.DefaultClock{}
	}

	generator := cfg.TokenGenerator
	if generator == nil {
		generator = token.New()
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &memoryRepository{
		checks:         make(map[string]*models.PendingCheck),
		clock:          repoClock,
		tokenGenerator: generator,
		ttl:            ttl,
	}, nil
}

// CreateSkillCheck stores a group skill check
func (r *memoryRepository) CreateSkillCheck(ctx context.Context, input *CreateSkillCheckInput) (*models.PendingCheck, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	if input.SkillName == "" {
		return nil, errors.New("skill name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	check := r.newCheck(models.CheckKindSkill, input.ChannelID, input.CreatorID)
	check.Skill = &models.SkillCheckData{
		SkillName: input.SkillName,
		Target:    input.Target,
	}

	r.store(check)

	return copyCheck(check), nil
}

// CreateSanityCheck stores a group sanity check
func (r *memoryRepository) CreateSanityCheck(ctx context.Context, input *CreateSanityCheckInput) (*models.PendingCheck, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	if input.SuccessExpression == "" || input.FailureExpression == "" {
		return nil, errors.New("success and failure expressions are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	check := r.newCheck(models.CheckKindSanity, input.ChannelID, input.CreatorID)
	check.Sanity = &models.SanityCheckData{
		SuccessExpression: input.SuccessExpression,
		FailureExpression: input.FailureExpression,
	}

	r.store(check)

	return copyCheck(check), nil
}

// CreateOpposedCheck stores a two-sided opposed check
func (r *memoryRepository) CreateOpposedCheck(ctx context.Context, input *CreateOpposedCheckInput) (*models.PendingCheck, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	if input.Initiator.UserID == "" || input.Target.UserID == "" {
		return nil, errors.New("both side user IDs are required")
	}

	if input.Initiator.SkillName == "" || input.Target.SkillName == "" {
		return nil, errors.New("both side skills are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	check := r.newCheck(models.CheckKindOpposed, input.ChannelID, input.Initiator.UserID)
	check.Opposed = &models.OpposedCheckData{
		Initiator: newOpposedSide(input.Initiator),
		Target:    newOpposedSide(input.Target),
	}

	r.store(check)

	return copyCheck(check), nil
}

// CreateDamageCheck stores a damage confirmation
func (r *memoryRepository) CreateDamageCheck(ctx context.Context, input *CreateDamageCheckInput) (*models.PendingCheck, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	if input.InitiatorID == "" || input.TargetID == "" {
		return nil, errors.New("initiator and target are required")
	}

	if input.Expression == "" {
		return nil, errors.New("damage expression is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	check := r.newCheck(models.CheckKindDamage, input.ChannelID, input.InitiatorID)
	check.Damage = &models.DamageCheckData{
		InitiatorID: input.InitiatorID,
		TargetKind:  input.TargetKind,
		TargetID:    input.TargetID,
		Expression:  input.Expression,
	}

	r.store(check)

	return copyCheck(check), nil
}

// CreateConstitutionCheck stores a major-wound constitution check
func (r *memoryRepository) CreateConstitutionCheck(ctx context.Context, input *CreateConstitutionCheckInput) (*models.PendingCheck, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	if input.TargetID == "" {
		return nil, errors.New("target is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	check := r.newCheck(models.CheckKindConstitution, input.ChannelID, input.CreatorID)
	check.Constitution = &models.ConstitutionCheckData{
		TargetID:   input.TargetID,
		TargetName: input.TargetName,
		Damage:     input.Damage,
		MaxHP:      input.MaxHP,
	}

	r.store(check)

	return copyCheck(check), nil
}

// GetCheck retrieves a live check by ID
func (r *memoryRepository) GetCheck(ctx context.Context, input *GetCheckInput) (*models.PendingCheck, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.CheckID == "" {
		return nil, errors.New("check ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	check, ok := r.liveCheck(input.CheckID)
	if !ok {
		return nil, ErrCheckNotFound
	}

	if input.Kind != "" && check.Kind != input.Kind {
		return nil, ErrCheckNotFound
	}

	return copyCheck(check), nil
}

// MarkCompleted records that a user has rolled on a group check
func (r *memoryRepository) MarkCompleted(ctx context.Context, input *MarkCompletedInput) (*MarkCompletedOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.CheckID == "" {
		return nil, errors.New("check ID is required")
	}

	if input.UserID == "" {
		return nil, errors.New("user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	check, ok := r.liveCheck(input.CheckID)
	if !ok {
		return nil, ErrCheckNotFound
	}

	if check.CompletedUsers[input.UserID] {
		return &MarkCompletedOutput{
			Check:            copyCheck(check),
			AlreadyCompleted: true,
		}, nil
	}

	check.CompletedUsers[input.UserID] = true

	return &MarkCompletedOutput{
		Check: copyCheck(check),
	}, nil
}

// SetOpposedResult records one side's roll on an opposed check. A
// side that already holds a result keeps it.
func (r *memoryRepository) SetOpposedResult(ctx context.Context, input *SetOpposedResultInput) (*SetOpposedResultOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.CheckID == "" {
		return nil, errors.New("check ID is required")
	}

	if input.UserID == "" {
		return nil, errors.New("user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	check, ok := r.liveCheck(input.CheckID)
	if !ok || check.Kind != models.CheckKindOpposed || check.Opposed == nil {
		return nil, ErrCheckNotFound
	}

	side, ok := check.Opposed.Side(input.UserID)
	if !ok {
		return nil, ErrNotParticipant
	}

	if side.Resolved {
		return &SetOpposedResultOutput{
			Check:           copyCheck(check),
			AlreadyResolved: true,
			BothResolved:    check.Opposed.BothResolved(),
		}, nil
	}

	side.Roll = input.Roll
	side.Target = input.Target
	side.Level = input.Level
	side.LevelRank = input.LevelRank
	side.Resolved = true

	return &SetOpposedResultOutput{
		Check:        copyCheck(check),
		BothResolved: check.Opposed.BothResolved(),
	}, nil
}

// RemoveCheck deletes a check once it has been consumed
func (r *memoryRepository) RemoveCheck(ctx context.Context, input *RemoveCheckInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.CheckID == "" {
		return errors.New("check ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.liveCheck(input.CheckID); !ok {
		return ErrCheckNotFound
	}

	delete(r.checks, input.CheckID)

	return nil
}

// SweepExpired removes checks older than the configured TTL
func (r *memoryRepository) SweepExpired(ctx context.Context) (*SweepExpiredOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return &SweepExpiredOutput{
		Removed: r.sweepLocked(r.clock.Now()),
	}, nil
}

// Stats counts live checks by kind
func (r *memoryRepository) Stats(ctx context.Context) (*StatsOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := &StatsOutput{
		ByKind: make(map[models.CheckKind]int),
	}

	now := r.clock.Now()
	for _, check := range r.checks {
		if r.expired(check, now) {
			continue
		}

		out.Total++
		out.ByKind[check.Kind]++
	}

	return out, nil
}

// newCheck builds the shared envelope for a pending check. Callers
// hold the lock.
func (r *memoryRepository) newCheck(kind models.CheckKind, channelID, creatorID string) *models.PendingCheck {
	return &models.PendingCheck{
		ID:             r.tokenGenerator.NewToken(),
		Kind:           kind,
		ChannelID:      channelID,
		CreatorID:      creatorID,
		CreatedAt:      r.clock.Now(),
		CompletedUsers: make(map[string]bool),
	}
}

// store inserts a check and takes the opportunity to drop expired
// ones. Callers hold the lock.
func (r *memoryRepository) store(check *models.PendingCheck) {
	r.checks[check.ID] = check
	r.sweepLocked(check.CreatedAt)
}

// liveCheck looks up a check and filters out expired ones. Callers
// hold the lock.
func (r *memoryRepository) liveCheck(checkID string) (*models.PendingCheck, bool) {
	check, ok := r.checks[checkID]
	if !ok {
		return nil, false
	}

	if r.expired(check, r.clock.Now()) {
		return nil, false
	}

	return check, true
}

func (r *memoryRepository) expired(check *models.PendingCheck, now time.Time) bool {
	return now.Sub(check.CreatedAt) > r.ttl
}

// sweepLocked deletes every expired check and reports how many were
// removed. Callers hold the lock.
func (r *memoryRepository) sweepLocked(now time.Time) int {
	removed := 0
	for id, check := range r.checks {
		if r.expired(check, now) {
			delete(r.checks, id)
			removed++
		}
	}

	return removed
}

func newOpposedSide(input OpposedSideInput) models.OpposedSide {
	return models.OpposedSide{
		UserID:    input.UserID,
		SkillName: input.SkillName,
		Bonus:     input.Bonus,
		Penalty:   input.Penalty,
	}
}

// copyCheck returns a deep copy so callers cannot mutate stored state
// outside the lock.
func copyCheck(check *models.PendingCheck) *models.PendingCheck {
	clone := *check

	clone.CompletedUsers = make(map[string]bool, len(check.CompletedUsers))
	for id := range check.CompletedUsers {
		clone.CompletedUsers[id] = true
	}

	if check.Skill != nil {
		data := *check.Skill
		clone.Skill = &data
	}

	if check.Sanity != nil {
		data := *check.Sanity
		clone.Sanity = &data
	}

	if check.Opposed != nil {
		data := *check.Opposed
		clone.Opposed = &data
	}

	if check.Damage != nil {
		data := *check.Damage
		clone.Damage = &data
	}

	if check.Constitution != nil {
		data := *check.Constitution
		clone.Constitution = &data
	}

	return &clone
}
