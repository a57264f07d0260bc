package formatter

import (
	"time"

	"github.com/yildizm/randy/internal/game"
)

// Report describes a finished game session
type Report struct {
	Session  game.Session
	Provider string
	Model    string
	Finished time.Time
}

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(report *Report) ([]byte, error)
}

// winRatePercent returns the win rate of s as a percentage
func winRatePercent(s *game.Session) float64 {
	return s.WinRate() * 100
}
