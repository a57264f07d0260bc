package game

// Session keeps the score of every round played since the process started
type Session struct {
	Rounds     int
	Wins       int
	Streak     int
	BestStreak int

	// History holds the finished rounds, oldest first
	History []Result
}

// Record adds a finished round to the score
func (s *Session) Record(res Result) {
	s.Rounds++
	s.History = append(s.History, res)
	if res.Outcome != Correct {
		s.Streak = 0
		return
	}
	s.Wins++
	s.Streak++
	if s.Streak > s.BestStreak {
		s.BestStreak = s.Streak
	}
}

// Losses returns the number of missed rounds
func (s *Session) Losses() int {
	return s.Rounds - s.Wins
}

// WinRate returns the fraction of rounds won, or 0 before the first round
func (s *Session) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}
