package game

import "testing"

func TestEvaluate(t *testing.T) {
	if got := Evaluate(7, 7); got != Correct {
		t.Errorf("Expected Correct, got %s", got)
	}
	if got := Evaluate(3, 7); got != Incorrect {
		t.Errorf("Expected Incorrect, got %s", got)
	}
}

func TestOutcomeString(t *testing.T) {
	if Correct.String() != "Correct" {
		t.Errorf("Expected Correct, got %s", Correct.String())
	}
	if Incorrect.String() != "Incorrect" {
		t.Errorf("Expected Incorrect, got %s", Incorrect.String())
	}
}

func TestPlay_UsesSelectorRange(t *testing.T) {
	r, err := ParseRange("1..10")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for drawn := 1; drawn <= 10; drawn++ {
		var got Range
		sel := SelectorFunc(func(in Range) int {
			got = in
			return drawn
		})

		res := Play(sel, Submission{Guess: 10, Range: r})

		if got != r {
			t.Errorf("Expected selector to receive %s, got %s", r, got)
		}
		want := Incorrect
		if drawn == 10 {
			want = Correct
		}
		if res.Outcome != want {
			t.Errorf("drawn=%d: expected %s, got %s", drawn, want, res.Outcome)
		}
		if res.Drawn != drawn || res.Guess != 10 {
			t.Errorf("Expected result to carry guess 10 and draw %d, got %+v", drawn, res)
		}
	}
}

func TestSession_Record(t *testing.T) {
	var s Session
	outcomes := []Outcome{Correct, Correct, Incorrect, Correct, Correct, Correct, Incorrect}
	for _, o := range outcomes {
		s.Record(Result{Outcome: o})
	}

	if s.Rounds != 7 {
		t.Errorf("Expected 7 rounds, got %d", s.Rounds)
	}
	if s.Wins != 5 {
		t.Errorf("Expected 5 wins, got %d", s.Wins)
	}
	if s.Losses() != 2 {
		t.Errorf("Expected 2 losses, got %d", s.Losses())
	}
	if s.BestStreak != 3 {
		t.Errorf("Expected best streak 3, got %d", s.BestStreak)
	}
	if s.Streak != 0 {
		t.Errorf("Expected current streak 0, got %d", s.Streak)
	}
	if len(s.History) != len(outcomes) {
		t.Fatalf("Expected %d rounds in history, got %d", len(outcomes), len(s.History))
	}
	for i, o := range outcomes {
		if s.History[i].Outcome != o {
			t.Errorf("Expected round %d to be %v, got %v", i+1, o, s.History[i].Outcome)
		}
	}
}

func TestSession_WinRate(t *testing.T) {
	var s Session
	if s.WinRate() != 0 {
		t.Errorf("Expected 0 win rate before any round, got %f", s.WinRate())
	}
	s.Record(Result{Outcome: Correct})
	s.Record(Result{Outcome: Incorrect})
	if s.WinRate() != 0.5 {
		t.Errorf("Expected 0.5, got %f", s.WinRate())
	}
}
