package menu

// SliderFocus tells which row of a Slider has focus
type SliderFocus int

const (
	FocusSelector SliderFocus = iota
	FocusConfirm
)

// Slider is a cyclic single-choice picker over an ordered list of strings, with a
// second row holding the confirm control.
type Slider struct {
	items []string
	index int
	focus SliderFocus
}

// NewSlider creates a slider over items showing current, or the first item when
// current is not in the list.
func NewSlider(items []string, current string) *Slider {
	s := &Slider{items: items}
	for i, item := range items {
		if item == current {
			s.index = i
			break
		}
	}
	return s
}

// Index returns the position of the displayed item
func (s *Slider) Index() int {
	return s.index
}

// Value returns the displayed item, or "" for an empty list
func (s *Slider) Value() string {
	if len(s.items) == 0 {
		return ""
	}
	return s.items[s.index]
}

// Len returns the number of items
func (s *Slider) Len() int {
	return len(s.items)
}

// Focus returns the focused row
func (s *Slider) Focus() SliderFocus {
	return s.focus
}

// HandleKey applies a key event. It returns the chosen value and true when Enter is
// pressed with the confirm row focused.
func (s *Slider) HandleKey(k Key) (string, bool) {
	switch k.Kind {
	case KeyUp, KeyDown:
		s.toggleFocus()
	case KeyLeft, KeyRight:
		if s.focus == FocusSelector && len(s.items) > 0 {
			s.index = wrap(s.index+horizontalDelta(k), len(s.items))
		}
	case KeyEnter:
		if s.focus == FocusConfirm && len(s.items) > 0 {
			return s.Value(), true
		}
	}
	return "", false
}

func (s *Slider) toggleFocus() {
	if s.focus == FocusSelector {
		s.focus = FocusConfirm
	} else {
		s.focus = FocusSelector
	}
}
