package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rollkeeper/rollkeeper/internal/rules"
)

// DefaultBarLength is the gauge width used when none is given
const DefaultBarLength = 10

const (
	barFilled = "█"
	barEmpty  = "░"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	// Create a new random source with the current time as seed
	source := rand.NewSource(time.Now().UnixNano())

	return &service{
		rand: rand.New(source),
	}, nil
}

// GetHealthStatus describes a combatant's condition based on their
// remaining hit points
func (s *service) GetHealthStatus(ctx context.Context, input *GetHealthStatusInput) (*GetHealthStatusOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Max <= 0 {
		return &GetHealthStatusOutput{
			Level:       HealthUnknown,
			Description: "condition unknown",
		}, nil
	}

	if input.Current <= 0 {
		messages := []string{
			"collapses in a pool of blood",
			"drops and does not move",
			"lies still, chest no longer rising",
			"goes limp, beyond response",
		}

		return &GetHealthStatusOutput{
			Level:       HealthDown,
			Description: messages[s.rand.Intn(len(messages))],
		}, nil
	}

	var level HealthLevel
	var messages []string

	ratio := float64(input.Current) / float64(input.Max)

	switch {
	case ratio > 0.5:
		level = HealthHealthy
		messages = []string{
			"still looks full of fight",
			"is barely scratched and stays alert",
			"shrugs off a few flesh wounds",
			"looks a little winded but no worse",
			"is lightly hurt and still dangerous",
			"shows minor cuts and keeps coming",
		}
	case ratio > 0.25:
		level = HealthWounded
		messages = []string{
			"is bleeding and starting to slow down",
			"breathes hard, clearly hurt",
			"staggers but stays standing",
			"bears deep cuts and a pained look",
			"is wounded in several places",
			"wheezes, visibly running out of strength",
			"has gone pale from the bleeding",
			"sways on unsteady legs",
		}
	default:
		level = HealthCritical
		messages = []string{
			"is at death's door",
			"is covered in blood and barely standing",
			"hangs on by a thread, eyes unfocused",
			"fights for every breath",
			"sways, about to collapse",
		}
	}

	return &GetHealthStatusOutput{
		Level:       level,
		Description: messages[s.rand.Intn(len(messages))],
	}, nil
}

// GetHealthBar renders a hit point gauge
func (s *service) GetHealthBar(ctx context.Context, input *GetHealthBarInput) (*GetHealthBarOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	length := input.Length
	if length <= 0 {
		length = DefaultBarLength
	}

	// Hidden gauges show no fill so players cannot read an enemy's
	// exact hit points
	if input.Hidden || input.Max <= 0 {
		return &GetHealthBarOutput{
			Bar: strings.Repeat(barEmpty, length),
		}, nil
	}

	filled := int(float64(input.Current) / float64(input.Max) * float64(length))
	if filled < 0 {
		filled = 0
	}
	if filled > length {
		filled = length
	}

	return &GetHealthBarOutput{
		Bar: strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, length-filled),
	}, nil
}

// GetOutcomeFlavor returns a comment for notable check outcomes
func (s *service) GetOutcomeFlavor(ctx context.Context, input *GetOutcomeFlavorInput) (*GetOutcomeFlavorOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string

	switch input.Level {
	case rules.SuccessLevelCritical:
		messages = []string{
			fmt.Sprintf("The dice could not have fallen better for %s.", input.PlayerName),
			fmt.Sprintf("%s makes it look effortless.", input.PlayerName),
			fmt.Sprintf("A flawless moment for %s.", input.PlayerName),
			fmt.Sprintf("%s seizes the moment perfectly.", input.PlayerName),
		}
	case rules.SuccessLevelFumble:
		messages = []string{
			fmt.Sprintf("%s will not want to remember this one.", input.PlayerName),
			fmt.Sprintf("Everything that could go wrong for %s just did.", input.PlayerName),
			fmt.Sprintf("The dice turn cruelly on %s.", input.PlayerName),
			fmt.Sprintf("%s freezes at the worst possible moment.", input.PlayerName),
		}
	default:
		// Ordinary outcomes carry no extra commentary
		return &GetOutcomeFlavorOutput{}, nil
	}

	return &GetOutcomeFlavorOutput{
		Comment: messages[s.rand.Intn(len(messages))],
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string

	// Select messages based on error type
	switch input.ErrorType {
	case ErrorTypeCheckExpired:
		messages = []string{
			"That check has expired. Ask for a new one.",
			"The moment has passed; this check is no longer open.",
		}
	case ErrorTypeNotParticipant:
		messages = []string{
			"This check belongs to someone else.",
			"You are not part of this contest.",
		}
	case ErrorTypeAlreadyRolled:
		messages = []string{
			"You already rolled for this check.",
			"One roll per investigator; yours is in.",
		}
	case ErrorTypeNoCharacter:
		messages = []string{
			"You have no active character. Import a sheet first.",
			"No character sheet found; import one and try again.",
		}
	case ErrorTypeNPCNotFound:
		messages = []string{
			"No such NPC in this channel.",
			"That NPC is not here. Check the name and try again.",
		}
	default:
		messages = []string{
			"Something went wrong. Try again.",
		}
	}

	return &GetErrorMessageOutput{
		Message: messages[s.rand.Intn(len(messages))],
	}, nil
}
