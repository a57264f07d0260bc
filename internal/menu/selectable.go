package menu

// Item is a selectable entry of a menu
type Item interface {
	comparable
	Label() string
}

// Selectable is implemented by every screen that offers a list of mutually exclusive
// items. S is the item type and A the action type produced on commit.
type Selectable[S Item, A comparable] interface {
	// Items returns every item in display order
	Items() []S
	// Selected returns the highlighted item
	Selected() S
	// Advance moves the highlight for a navigation key, wrapping at both ends.
	// Other keys are ignored.
	Advance(k Key)
	// Commit maps the highlighted item to its action
	Commit() A
	// Pass returns the no-op action
	Pass() A
	// Label returns the display string of the highlighted item
	Label() string
}

// Entry is one display row of a menu
type Entry struct {
	Label    string
	Selected bool
}

// Navigate handles one key event: Enter commits, anything else advances and passes.
func Navigate[S Item, A comparable](m Selectable[S, A], k Key) A {
	if k.Kind == KeyEnter {
		return m.Commit()
	}
	m.Advance(k)
	return m.Pass()
}

// Entries returns the display rows of m, with exactly one row selected
func Entries[S Item, A comparable](m Selectable[S, A]) []Entry {
	items := m.Items()
	selected := m.Selected()

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, Entry{
			Label:    item.Label(),
			Selected: item == selected,
		})
	}
	return entries
}

// cycle returns the item delta positions away from current, wrapping around
func cycle[S comparable](items []S, current S, delta int) S {
	n := len(items)
	if n == 0 {
		return current
	}
	idx := 0
	for i, item := range items {
		if item == current {
			idx = i
			break
		}
	}
	return items[wrap(idx+delta, n)]
}

// wrap maps i into [0, n)
func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// verticalDelta translates up/down into a step; other keys yield 0
func verticalDelta(k Key) int {
	switch k.Kind {
	case KeyUp:
		return -1
	case KeyDown:
		return 1
	default:
		return 0
	}
}

// horizontalDelta translates left/right into a step; other keys yield 0
func horizontalDelta(k Key) int {
	switch k.Kind {
	case KeyLeft:
		return -1
	case KeyRight:
		return 1
	default:
		return 0
	}
}
