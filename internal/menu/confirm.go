package menu

// ConfirmFocus tells which row of a Confirm has focus
type ConfirmFocus int

const (
	FocusToggle ConfirmFocus = iota
	FocusConfirmAccept
)

// Confirm is a yes/no toggle with a separate accept row
type Confirm struct {
	question string
	answer   bool
	focus    ConfirmFocus
}

// NewConfirm creates a confirmation starting on the given answer
func NewConfirm(question string, initial bool) *Confirm {
	return &Confirm{question: question, answer: initial}
}

// Question returns the text shown above the toggle
func (c *Confirm) Question() string {
	return c.question
}

// Answer returns the value currently shown
func (c *Confirm) Answer() bool {
	return c.answer
}

// Focus returns the focused row
func (c *Confirm) Focus() ConfirmFocus {
	return c.focus
}

// AnswerLabel returns the toggle as displayed
func (c *Confirm) AnswerLabel() string {
	if c.answer {
		return "< Yes >"
	}
	return "< No >"
}

// HandleKey applies a key event. It returns the shown answer and true when Enter is
// pressed on the accept row.
func (c *Confirm) HandleKey(k Key) (bool, bool) {
	switch k.Kind {
	case KeyLeft, KeyRight:
		if c.focus == FocusToggle {
			c.answer = !c.answer
		}
	case KeyUp, KeyDown:
		if c.focus == FocusToggle {
			c.focus = FocusConfirmAccept
		} else {
			c.focus = FocusToggle
		}
	case KeyEnter:
		if c.focus == FocusConfirmAccept {
			return c.answer, true
		}
	}
	return false, false
}
