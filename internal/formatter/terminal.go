package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-termfmt"

	"github.com/yildizm/randy/internal/game"
)

// maxTerminalRounds bounds the round list printed after a session
const maxTerminalRounds = 10

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color and emoji support
func NewTerminal(color, useEmoji bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = useEmoji
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder

	f.writeStatistics(&b, report)

	if len(report.Session.History) > 0 {
		f.writeRounds(&b, report.Session.History)
	}

	return []byte(b.String()), nil
}

// writeStatistics writes the score as a tree
func (f *terminalFormatter) writeStatistics(b *strings.Builder, report *Report) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Session summary\n")

	s := &report.Session
	items := []termfmt.TreeItem{
		{Label: "Rounds", Value: fmt.Sprintf("%d", s.Rounds)},
		{Label: "Won", Value: fmt.Sprintf("%d", s.Wins)},
		{Label: "Lost", Value: fmt.Sprintf("%d", s.Losses())},
		{Label: "Best streak", Value: fmt.Sprintf("%d", s.BestStreak)},
		{Label: "Win rate", Value: fmt.Sprintf("%s %.0f%%", termfmt.CreateConfidenceBar(s.WinRate(), f.opts), winRatePercent(s))},
		{Label: "Model", Value: report.Model, Last: true},
	}

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts))
	b.WriteString("\n")
}

// writeRounds lists the most recent rounds, newest last
func (f *terminalFormatter) writeRounds(b *strings.Builder, history []game.Result) {
	b.WriteString("\nRounds\n")

	start := 0
	if len(history) > maxTerminalRounds {
		start = len(history) - maxTerminalRounds
		fmt.Fprintf(b, "  ... %d earlier\n", start)
	}

	for i := start; i < len(history); i++ {
		res := history[i]
		mark := f.roundMark(res.Outcome)
		fmt.Fprintf(b, "  %s #%d  %s  guessed %d, drew %d\n", mark, i+1, res.Range, res.Guess, res.Drawn)
	}
}

func (f *terminalFormatter) roundMark(o game.Outcome) string {
	switch {
	case o == game.Correct && f.opts.Emoji:
		return "✓"
	case o == game.Correct:
		return "+"
	case f.opts.Emoji:
		return "✗"
	default:
		return "-"
	}
}
