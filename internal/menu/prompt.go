package menu

import (
	"fmt"
	"unicode"

	"github.com/yildizm/randy/internal/game"
)

// PromptFocus tells which of the three rows of a DualPrompt has focus
type PromptFocus int

const (
	FocusRange PromptFocus = iota
	FocusGuess
	FocusAccept
)

const promptPositions = 3

// PromptEvent reports what a key did to a DualPrompt
type PromptEvent int

const (
	PromptPass PromptEvent = iota
	PromptSubmit
	PromptCancel
)

// DualPrompt holds the range and guess text fields plus an accept control.
//
// Enter on a field starts capturing characters into it. Escape or Enter while
// capturing validates the buffer: on success capture ends, on failure the buffer is
// cleared and capture continues.
type DualPrompt struct {
	rangeBuf  []rune
	guessBuf  []rune
	focus     PromptFocus
	capturing bool

	parsed   game.Range
	rangeOK  bool
	guess    int
	guessOK  bool
	lastErr  error
	rejected PromptFocus
}

// NewDualPrompt creates an empty prompt focused on the range field
func NewDualPrompt() *DualPrompt {
	return &DualPrompt{}
}

// Focus returns the focused row
func (p *DualPrompt) Focus() PromptFocus {
	return p.focus
}

// Capturing reports whether characters are currently typed into a field
func (p *DualPrompt) Capturing() bool {
	return p.capturing
}

// RangeText returns the contents of the range field
func (p *DualPrompt) RangeText() string {
	return string(p.rangeBuf)
}

// GuessText returns the contents of the guess field
func (p *DualPrompt) GuessText() string {
	return string(p.guessBuf)
}

// Ready reports whether both fields hold validated values
func (p *DualPrompt) Ready() bool {
	return p.rangeOK && p.guessOK
}

// Err returns the last validation failure, cleared as soon as typing resumes
func (p *DualPrompt) Err() error {
	return p.lastErr
}

// Submission returns the committed values. Only meaningful when Ready is true.
func (p *DualPrompt) Submission() game.Submission {
	return game.Submission{Guess: p.guess, Range: p.parsed}
}

// HandleKey applies one key event
func (p *DualPrompt) HandleKey(k Key) PromptEvent {
	if p.capturing {
		p.capture(k)
		return PromptPass
	}

	switch k.Kind {
	case KeyUp, KeyDown:
		p.focus = PromptFocus(wrap(int(p.focus)+verticalDelta(k), promptPositions))
	case KeyEscape:
		return PromptCancel
	case KeyEnter:
		if p.focus == FocusAccept {
			if p.Ready() {
				return PromptSubmit
			}
			return PromptPass
		}
		p.capturing = true
		p.lastErr = nil
	}
	return PromptPass
}

func (p *DualPrompt) capture(k Key) {
	buf := p.buffer()

	switch k.Kind {
	case KeyChar:
		if unicode.IsPrint(k.Char) {
			*buf = append(*buf, k.Char)
			p.invalidate()
			p.lastErr = nil
		}
	case KeyBackspace:
		if len(*buf) > 0 {
			*buf = (*buf)[:len(*buf)-1]
			p.invalidate()
		}
	case KeyEscape, KeyEnter:
		if err := p.validate(); err != nil {
			*buf = (*buf)[:0]
			p.lastErr = err
			p.rejected = p.focus
			return
		}
		p.capturing = false
	}
}

func (p *DualPrompt) buffer() *[]rune {
	if p.focus == FocusGuess {
		return &p.guessBuf
	}
	return &p.rangeBuf
}

// invalidate drops the validated value of the field being edited
func (p *DualPrompt) invalidate() {
	if p.focus == FocusGuess {
		p.guessOK = false
	} else {
		p.rangeOK = false
	}
}

func (p *DualPrompt) validate() error {
	if p.focus == FocusGuess {
		var bounds *game.Range
		if p.rangeOK {
			bounds = &p.parsed
		}
		guess, err := game.ParseGuess(string(p.guessBuf), bounds)
		if err != nil {
			return err
		}
		p.guess = guess
		p.guessOK = true
		return nil
	}

	r, err := game.ParseRange(string(p.rangeBuf))
	if err != nil {
		return err
	}
	p.parsed = r
	p.rangeOK = true

	// a guess accepted earlier may not fit the new range
	if p.guessOK && !r.Contains(p.guess) {
		p.guessBuf = p.guessBuf[:0]
		p.guessOK = false
		p.lastErr = fmt.Errorf("%w: %d not in %s", game.ErrGuessOutOfRange, p.guess, r)
		p.rejected = FocusGuess
	}
	return nil
}

// RejectedField returns the field whose buffer was last cleared by a failed validation
func (p *DualPrompt) RejectedField() PromptFocus {
	return p.rejected
}
