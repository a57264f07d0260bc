package ai

import (
	"context"

	"github.com/yildizm/randy/internal/game"
)

// Messenger produces a short themed text for the outcome of a round
type Messenger interface {
	// Message asks the named model for a reaction to outcome
	Message(ctx context.Context, outcome game.Outcome, model string) (string, error)
}

// Catalog lists the models a service can serve
type Catalog interface {
	// Models returns model identifiers in catalog order
	Models(ctx context.Context) ([]string, error)
}

// Provider combines both remote collaborators of the game
type Provider interface {
	Messenger
	Catalog

	// Name returns the provider name (e.g., "openrouter")
	Name() string

	// ValidateConfig validates the provider configuration
	ValidateConfig() error

	// Close cleans up provider resources
	Close() error
}

// MessengerFunc adapts a function to the Messenger interface
type MessengerFunc func(ctx context.Context, outcome game.Outcome, model string) (string, error)

// Message calls f
func (f MessengerFunc) Message(ctx context.Context, outcome game.Outcome, model string) (string, error) {
	return f(ctx, outcome, model)
}

// CatalogFunc adapts a function to the Catalog interface
type CatalogFunc func(ctx context.Context) ([]string, error)

// Models calls f
func (f CatalogFunc) Models(ctx context.Context) ([]string, error) {
	return f(ctx)
}
