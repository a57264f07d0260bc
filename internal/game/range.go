package game

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Separator splits the two bounds of a range expression
const Separator = ".."

// Range parsing and guess validation errors
var (
	ErrMalformedRange  = errors.New("range must have the form n..m")
	ErrNonNumericBound = errors.New("range bounds must be non-negative integers")
	ErrInvertedBounds  = errors.New("range start must be smaller than its end")
	ErrGuessNotNumeric = errors.New("guess must be a non-negative integer")
	ErrGuessOutOfRange = errors.New("guess is not within the range")
)

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// Range is an inclusive pair of non-negative bounds with start < end.
// A valid Range is only produced by ParseRange.
type Range struct {
	start int
	end   int
}

// Start returns the lower bound
func (r Range) Start() int {
	return r.start
}

// End returns the upper bound
func (r Range) End() int {
	return r.end
}

// Contains reports whether n lies within the inclusive bounds
func (r Range) Contains(n int) bool {
	return n >= r.start && n <= r.end
}

func (r Range) String() string {
	return fmt.Sprintf("%d%s%d", r.start, Separator, r.end)
}

// ParseRange parses text of the form "n..m" into an inclusive Range.
//
// The first separator ends the start bound and the last separator begins the end
// bound; if they are not the same occurrence the input is malformed. Each bound must
// be a pure run of digits.
func ParseRange(text string) (Range, error) {
	input := strings.TrimSpace(text)

	first := strings.Index(input, Separator)
	if first < 0 {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformedRange, text)
	}
	last := strings.LastIndex(input, Separator)
	if first != last {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformedRange, text)
	}

	startText := input[:first]
	endText := input[last+len(Separator):]
	if startText == "" || endText == "" {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformedRange, text)
	}

	start, err := parseBound(startText)
	if err != nil {
		return Range{}, fmt.Errorf("%w: start %q", ErrNonNumericBound, startText)
	}
	end, err := parseBound(endText)
	if err != nil {
		return Range{}, fmt.Errorf("%w: end %q", ErrNonNumericBound, endText)
	}

	if start >= end {
		return Range{}, fmt.Errorf("%w: %d%s%d", ErrInvertedBounds, start, Separator, end)
	}

	return Range{start: start, end: end}, nil
}

// ParseGuess parses a guess. When r is not nil the guess must also fall within it.
func ParseGuess(text string, r *Range) (int, error) {
	input := strings.TrimSpace(text)

	guess, err := parseBound(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrGuessNotNumeric, text)
	}

	if r != nil && !r.Contains(guess) {
		return 0, fmt.Errorf("%w: %d not in %s", ErrGuessOutOfRange, guess, r)
	}

	return guess, nil
}

func parseBound(s string) (int, error) {
	if !digitsPattern.MatchString(s) {
		return 0, fmt.Errorf("not a digit run: %q", s)
	}
	return strconv.Atoi(s)
}
