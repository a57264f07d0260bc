package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/randy/internal/game"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Randy Session\n\n")
	if !report.Finished.IsZero() {
		fmt.Fprintf(&b, "Finished: %s\n\n", report.Finished.Format("2006-01-02 15:04:05"))
	}

	f.writeSummaryTable(&b, report)

	if len(report.Session.History) > 0 {
		f.writeRoundTable(&b, report.Session.History)
	}

	return []byte(b.String()), nil
}

// writeSummaryTable writes the score as a two-column table
func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, report *Report) {
	s := &report.Session

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	if report.Provider != "" {
		fmt.Fprintf(b, "| Provider | %s |\n", report.Provider)
	}
	fmt.Fprintf(b, "| Model | `%s` |\n", report.Model)
	fmt.Fprintf(b, "| Rounds | %d |\n", s.Rounds)
	fmt.Fprintf(b, "| Won | %d |\n", s.Wins)
	fmt.Fprintf(b, "| Lost | %d |\n", s.Losses())
	fmt.Fprintf(b, "| Best streak | %d |\n", s.BestStreak)
	fmt.Fprintf(b, "| Win rate | %.1f%% |\n\n", winRatePercent(s))
}

// writeRoundTable writes one row per finished round
func (f *markdownFormatter) writeRoundTable(b *strings.Builder, history []game.Result) {
	b.WriteString("## Rounds\n\n")
	b.WriteString("| # | Range | Guess | Drawn | Outcome |\n")
	b.WriteString("|---|-------|-------|-------|---------|\n")

	for i, res := range history {
		fmt.Fprintf(b, "| %d | %s | %d | %d | %s |\n", i+1, res.Range, res.Guess, res.Drawn, res.Outcome)
	}
	b.WriteString("\n")
}
