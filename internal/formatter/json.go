package formatter

import (
	"encoding/json"
	"time"

	"github.com/yildizm/randy/internal/game"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(report *Report) ([]byte, error) {
	output := &SessionOutput{
		Summary: createSummary(report),
		Rounds:  createRoundOutputs(report.Session.History),
	}

	return json.MarshalIndent(output, "", "  ")
}

// SessionOutput represents the JSON document of a session
type SessionOutput struct {
	Summary *SummaryOutput `json:"summary"`
	Rounds  []*RoundOutput `json:"rounds"`
}

// SummaryOutput represents the summary section
type SummaryOutput struct {
	Provider   string     `json:"provider,omitempty"`
	Model      string     `json:"model"`
	Rounds     int        `json:"rounds"`
	Wins       int        `json:"wins"`
	Losses     int        `json:"losses"`
	BestStreak int        `json:"best_streak"`
	WinRate    float64    `json:"win_rate"`
	Finished   *time.Time `json:"finished,omitempty"`
}

// RoundOutput represents one finished round
type RoundOutput struct {
	Number  int    `json:"number"`
	Range   string `json:"range"`
	Guess   int    `json:"guess"`
	Drawn   int    `json:"drawn"`
	Outcome string `json:"outcome"`
}

func createSummary(report *Report) *SummaryOutput {
	s := &report.Session
	summary := &SummaryOutput{
		Provider:   report.Provider,
		Model:      report.Model,
		Rounds:     s.Rounds,
		Wins:       s.Wins,
		Losses:     s.Losses(),
		BestStreak: s.BestStreak,
		WinRate:    s.WinRate(),
	}

	if !report.Finished.IsZero() {
		finished := report.Finished
		summary.Finished = &finished
	}

	return summary
}

func createRoundOutputs(history []game.Result) []*RoundOutput {
	outputs := make([]*RoundOutput, 0, len(history))

	for i, res := range history {
		outputs = append(outputs, &RoundOutput{
			Number:  i + 1,
			Range:   res.Range.String(),
			Guess:   res.Guess,
			Drawn:   res.Drawn,
			Outcome: res.Outcome.String(),
		})
	}

	return outputs
}
