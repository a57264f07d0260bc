package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// csvFormatter formats the rounds of a session as CSV
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(report *Report) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	headers := []string{
		"Round",
		"Range Start",
		"Range End",
		"Guess",
		"Drawn",
		"Outcome",
		"Model",
	}

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, res := range report.Session.History {
		record := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(res.Range.Start()),
			strconv.Itoa(res.Range.End()),
			strconv.Itoa(res.Guess),
			strconv.Itoa(res.Drawn),
			res.Outcome.String(),
			report.Model,
		}

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}
