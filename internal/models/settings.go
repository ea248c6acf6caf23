package models

import (
	"time"
)

// UserSettings stores a user's rule preferences and active character.
type UserSettings struct {
	// UserID is the Discord user the settings belong to
	UserID string

	// RuleName selects the success-level ruleset
	RuleName string

	// CriticalThreshold is the highest roll counted as a critical
	CriticalThreshold int

	// FumbleThreshold is the lowest roll counted as a fumble when the
	// target is below fifty
	FumbleThreshold int

	// ActiveCharacter is the name of the user's active character sheet
	ActiveCharacter string

	// UpdatedAt is when the settings last changed
	UpdatedAt time.Time
}
