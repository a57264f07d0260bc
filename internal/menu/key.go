package menu

// KeyKind categorizes a key event
type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyChar
)

// Key is a single key event. Char is only set for KeyChar.
type Key struct {
	Kind KeyKind
	Char rune
}

// Common keys
var (
	Up        = Key{Kind: KeyUp}
	Down      = Key{Kind: KeyDown}
	Left      = Key{Kind: KeyLeft}
	Right     = Key{Kind: KeyRight}
	Enter     = Key{Kind: KeyEnter}
	Escape    = Key{Kind: KeyEscape}
	Backspace = Key{Kind: KeyBackspace}
)

// Char returns the key event for a printable character
func Char(r rune) Key {
	return Key{Kind: KeyChar, Char: r}
}

// Chars returns one key event per rune of s
func Chars(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, Char(r))
	}
	return keys
}

func (k Key) String() string {
	switch k.Kind {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	case KeyBackspace:
		return "backspace"
	case KeyChar:
		return string(k.Char)
	default:
		return "other"
	}
}
