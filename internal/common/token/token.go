package token

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/rollkeeper/rollkeeper/internal/common/token Generator

// shortLen is the number of UUID characters kept in a short token.
const shortLen = 8

// Generator produces opaque identifiers for in-flight checks
type Generator interface {
	NewToken() string
}

// DefaultGenerator implements the Generator interface using the uuid package
type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewToken returns a short random token
func (g *DefaultGenerator) NewToken() string {
	return uuid.New().String()[:shortLen]
}
