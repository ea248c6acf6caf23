package messaging

import (
	"github.com/rollkeeper/rollkeeper/internal/rules"
)

// HealthLevel buckets remaining hit points into a condition tier
type HealthLevel string

const (
	// HealthHealthy covers combatants above half their hit points
	HealthHealthy HealthLevel = "Healthy"

	// HealthWounded covers combatants between a quarter and half
	HealthWounded HealthLevel = "Wounded"

	// HealthCritical covers combatants below a quarter but still up
	HealthCritical HealthLevel = "Critical"

	// HealthDown covers combatants at zero hit points
	HealthDown HealthLevel = "Down"

	// HealthUnknown is reported when the maximum is not known
	HealthUnknown HealthLevel = "Unknown"
)

// Error types understood by GetErrorMessage
const (
	ErrorTypeCheckExpired   = "check_expired"
	ErrorTypeNotParticipant = "not_participant"
	ErrorTypeAlreadyRolled  = "already_rolled"
	ErrorTypeNoCharacter    = "no_character"
	ErrorTypeNPCNotFound    = "npc_not_found"
)

// GetHealthStatusInput contains the hit points to describe
type GetHealthStatusInput struct {
	// Current is the remaining hit points
	Current int

	// Max is the full hit point total
	Max int
}

// GetHealthStatusOutput contains the condition tier and a description
type GetHealthStatusOutput struct {
	// Level is the condition tier
	Level HealthLevel

	// Description is a short narrative line for the tier
	Description string
}

// GetHealthBarInput contains parameters for rendering a hit point gauge
type GetHealthBarInput struct {
	// Current is the remaining hit points
	Current int

	// Max is the full hit point total
	Max int

	// Length is the gauge width in cells; zero uses the default
	Length int

	// Hidden renders an empty gauge regardless of the values
	Hidden bool
}

// GetHealthBarOutput contains the rendered gauge
type GetHealthBarOutput struct {
	Bar string
}

// GetOutcomeFlavorInput contains parameters for a check outcome comment
type GetOutcomeFlavorInput struct {
	// PlayerName is the name of whoever rolled
	PlayerName string

	// Level is the graded outcome of the check
	Level rules.SuccessLevel
}

// GetOutcomeFlavorOutput contains the generated comment
type GetOutcomeFlavorOutput struct {
	// Comment is empty for outcomes that warrant no flavor
	Comment string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error
	ErrorType string

	// PlayerName is the name of the affected player (optional)
	PlayerName string
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the generated message
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct{}
