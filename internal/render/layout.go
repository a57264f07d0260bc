package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// SelectionMarker prefixes the selected option of a menu
const SelectionMarker = "▶ "

// Kind picks the style a line is drawn with
type Kind int

const (
	KindBody Kind = iota
	KindTitle
	KindMuted
	KindSuccess
	KindWarning
	KindError
	KindAccent
	// KindOption lines take part in selection marking
	KindOption
)

// Line is one row of screen content before layout
type Line struct {
	Text     string
	Kind     Kind
	Selected bool
}

// Text returns a body line
func Text(s string) Line {
	return Line{Text: s}
}

// Styled returns a line drawn with the given kind
func Styled(kind Kind, s string) Line {
	return Line{Text: s, Kind: kind}
}

// Option returns a selectable line
func Option(s string, selected bool) Line {
	return Line{Text: s, Kind: KindOption, Selected: selected}
}

// Blank returns an empty spacer line
func Blank() Line {
	return Line{}
}

// Layout centers lines in a rows x cols frame.
//
// The blank rows above the content are floor((rows-n)/2) and the rows below take the
// remainder. Each line is centered by display width with the left pad rounded down.
// When content does not fit, lines are returned unpadded vertically.
func Layout(rows, cols int, lines []Line, styles *Styles) []string {
	if styles == nil {
		styles = GetStyles()
	}

	top, bottom := split(rows - len(lines))
	blank := strings.Repeat(" ", max(cols, 0))

	out := make([]string, 0, top+len(lines)+bottom)
	for i := 0; i < top; i++ {
		out = append(out, blank)
	}
	for _, line := range lines {
		out = append(out, center(renderLine(line, styles), cols))
	}
	for i := 0; i < bottom; i++ {
		out = append(out, blank)
	}
	return out
}

// Frame joins the output of Layout into a single view string
func Frame(rows, cols int, lines []Line, styles *Styles) string {
	return strings.Join(Layout(rows, cols, lines, styles), "\n")
}

// Wrap breaks text on word boundaries so no line exceeds width, where possible
func Wrap(text string, width int) []string {
	if width <= 0 {
		return strings.Split(text, "\n")
	}
	wrapped := wordwrap.String(strings.TrimSpace(text), width)
	return strings.Split(wrapped, "\n")
}

func renderLine(line Line, styles *Styles) string {
	if line.Text == "" {
		return ""
	}

	if line.Kind == KindOption {
		pad := strings.Repeat(" ", lipgloss.Width(SelectionMarker))
		if line.Selected {
			// trailing pad keeps the label itself on the center column
			return styles.Selected.Render(SelectionMarker+line.Text) + pad
		}
		return pad + styles.Option.Render(line.Text) + pad
	}

	return styleFor(line.Kind, styles).Render(line.Text)
}

func styleFor(kind Kind, styles *Styles) lipgloss.Style {
	switch kind {
	case KindTitle:
		return styles.Title
	case KindMuted:
		return styles.Muted
	case KindSuccess:
		return styles.Success
	case KindWarning:
		return styles.Warning
	case KindError:
		return styles.Error
	case KindAccent:
		return styles.Accent
	default:
		return styles.Body
	}
}

func center(s string, cols int) string {
	left, right := split(cols - lipgloss.Width(s))
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// split divides free space into a floor half and the remainder
func split(free int) (int, int) {
	if free <= 0 {
		return 0, 0
	}
	first := free / 2
	return first, free - first
}
