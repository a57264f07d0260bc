package ai

import (
	"strings"

	"github.com/yildizm/go-promptfmt"
	"github.com/yildizm/randy/internal/game"
)

// DefaultPersona instructs the model to answer an outcome in a cowboy manner
const DefaultPersona = `You will answer only to "Correct" or "Incorrect". These correspond to a ` +
	`notification that a user either got a number right in a number guessing game or not. ` +
	`Depending on which one you were given, return a cowboy-like answer to the user. ` +
	`Make it a short text. Include just your answer and nothing more. ` +
	`Don't include emoji or otherwise non-verbal content.`

// OutcomePattern builds the chat prompt for one round outcome
type OutcomePattern struct {
	promptfmt.BasePattern
	Persona string
	Outcome game.Outcome
}

// NewOutcomePattern creates a pattern with the given persona, falling back to DefaultPersona
func NewOutcomePattern(persona string) *OutcomePattern {
	if strings.TrimSpace(persona) == "" {
		persona = DefaultPersona
	}
	return &OutcomePattern{
		BasePattern: promptfmt.BasePattern{
			Description: "Reacts to the outcome of a number guessing round",
			Tags:        []string{"game", "outcome"},
		},
		Persona: persona,
	}
}

// WithOutcome sets the outcome the model reacts to
func (op *OutcomePattern) WithOutcome(outcome game.Outcome) *OutcomePattern {
	op.Outcome = outcome
	return op
}

// Build produces the prompt; the user turn is exactly the outcome word
func (op *OutcomePattern) Build() *promptfmt.Prompt {
	return promptfmt.New().
		System("%s", op.Persona).
		User("%s", op.Outcome.String()).
		Build()
}

// UserTurn returns the content of the last user message of p, or "" when it has none
func UserTurn(p *promptfmt.Prompt) string {
	for i := len(p.Messages) - 1; i >= 0; i-- {
		if p.Messages[i].Role == "user" {
			return p.Messages[i].Content
		}
	}
	return ""
}

// ExtractMessage cleans a model reply. Some models wrap their answer in a JSON object
// with a "message" field; the bare field is returned in that case.
func ExtractMessage(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "{") {
		return trimmed
	}

	var wrapped struct {
		Message string `json:"message"`
	}
	if result := promptfmt.NewResponse(trimmed).TryParseJSON(&wrapped); result.Success && wrapped.Message != "" {
		return strings.TrimSpace(wrapped.Message)
	}
	return trimmed
}
