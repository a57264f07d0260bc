package game

import (
	"errors"
	"testing"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart int
		wantEnd   int
		wantErr   error
	}{
		{name: "simple range", input: "3..10", wantStart: 3, wantEnd: 10},
		{name: "zero start", input: "0..1", wantStart: 0, wantEnd: 1},
		{name: "surrounding whitespace", input: "  1..100 ", wantStart: 1, wantEnd: 100},
		{name: "leading zeros", input: "007..010", wantStart: 7, wantEnd: 10},
		{name: "inverted", input: "10..3", wantErr: ErrInvertedBounds},
		{name: "single point", input: "5..5", wantErr: ErrInvertedBounds},
		{name: "letters in start", input: "abc..10", wantErr: ErrNonNumericBound},
		{name: "letters in end", input: "1..1x", wantErr: ErrNonNumericBound},
		{name: "negative start", input: "-1..10", wantErr: ErrNonNumericBound},
		{name: "inner spaces", input: "1 ..10", wantErr: ErrNonNumericBound},
		{name: "overflow", input: "1..99999999999999999999999", wantErr: ErrNonNumericBound},
		{name: "no separator", input: "310", wantErr: ErrMalformedRange},
		{name: "single dot", input: "3.10", wantErr: ErrMalformedRange},
		{name: "empty", input: "", wantErr: ErrMalformedRange},
		{name: "missing start", input: "..10", wantErr: ErrMalformedRange},
		{name: "missing end", input: "3..", wantErr: ErrMalformedRange},
		{name: "two separators", input: "1..5..10", wantErr: ErrMalformedRange},
		{name: "triple dot", input: "1...10", wantErr: ErrMalformedRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRange(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if r.Start() != tt.wantStart || r.End() != tt.wantEnd {
				t.Errorf("Expected %d..%d, got %s", tt.wantStart, tt.wantEnd, r)
			}
		})
	}
}

func TestRangeHelpers(t *testing.T) {
	r, err := ParseRange("1..10")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if r.String() != "1..10" {
		t.Errorf("Expected 1..10, got %s", r.String())
	}
	for _, n := range []int{1, 5, 10} {
		if !r.Contains(n) {
			t.Errorf("Expected %d to be contained in %s", n, r)
		}
	}
	for _, n := range []int{0, 11} {
		if r.Contains(n) {
			t.Errorf("Expected %d to be outside %s", n, r)
		}
	}
}

func TestParseGuess(t *testing.T) {
	r, err := ParseRange("1..10")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		input   string
		r       *Range
		want    int
		wantErr error
	}{
		{name: "within range", input: "5", r: &r, want: 5},
		{name: "lower bound", input: "1", r: &r, want: 1},
		{name: "upper bound", input: "10", r: &r, want: 10},
		{name: "no range", input: "42", want: 42},
		{name: "above range", input: "11", r: &r, wantErr: ErrGuessOutOfRange},
		{name: "below range", input: "0", r: &r, wantErr: ErrGuessOutOfRange},
		{name: "letters", input: "five", r: &r, wantErr: ErrGuessNotNumeric},
		{name: "empty", input: "", wantErr: ErrGuessNotNumeric},
		{name: "negative", input: "-3", wantErr: ErrGuessNotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGuess(tt.input, tt.r)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}
