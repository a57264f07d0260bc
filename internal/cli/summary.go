package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/yildizm/randy/internal/emoji"
	"github.com/yildizm/randy/internal/formatter"
	"github.com/yildizm/randy/internal/game"
	"github.com/yildizm/randy/internal/render"
)

// getFormatter returns the session report formatter for the given format, or nil
// when the summary is turned off
func getFormatter(format string) (formatter.Formatter, error) {
	switch format {
	case "none":
		return nil, nil
	case "json":
		return formatter.NewJSON(), nil
	case "markdown", "md":
		return formatter.NewMarkdown(), nil
	case "csv":
		return formatter.NewCSV(), nil
	case "text", "terminal", "":
		return formatter.NewTerminal(!render.IsColorDisabled(), !emoji.IsEmojiDisabled()), nil
	default:
		return nil, fmt.Errorf("unknown summary format: %s", format)
	}
}

// writeSummary prints the report of a finished session. Nothing is printed when no
// round was played or f is nil.
func writeSummary(w io.Writer, f formatter.Formatter, session game.Session, provider, model string) error {
	if f == nil || session.Rounds == 0 {
		return nil
	}

	out, err := f.Format(&formatter.Report{
		Session:  session,
		Provider: provider,
		Model:    model,
		Finished: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to format summary: %w", err)
	}

	_, err = w.Write(out)
	return err
}
