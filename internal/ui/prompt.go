package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/randy/internal/emoji"
	"github.com/yildizm/randy/internal/game"
	"github.com/yildizm/randy/internal/menu"
	"github.com/yildizm/randy/internal/render"
)

const cursor = "_"

// promptScreen collects the range and the guess of one round
type promptScreen struct {
	prompt  *menu.DualPrompt
	session *game.Session
}

func newPromptScreen(session *game.Session) *promptScreen {
	return &promptScreen{prompt: menu.NewDualPrompt(), session: session}
}

func (s *promptScreen) Init() tea.Cmd {
	return nil
}

func (s *promptScreen) HandleKey(k menu.Key) Step {
	switch s.prompt.HandleKey(k) {
	case menu.PromptSubmit:
		return Pop(submitted{submission: s.prompt.Submission()})
	case menu.PromptCancel:
		return Pop(nil)
	}
	return Stay(nil)
}

func (s *promptScreen) Update(tea.Msg) Step {
	return Stay(nil)
}

func (s *promptScreen) Resume(any) Step {
	return Stay(nil)
}

func (s *promptScreen) Lines(int) []render.Line {
	focus := s.prompt.Focus()

	lines := []render.Line{
		render.Styled(render.KindTitle, emoji.Decorate("target", "Guess the number")),
		render.Blank(),
		render.Option(s.field("Range", s.prompt.RangeText(), "e.g. 1..10", menu.FocusRange), focus == menu.FocusRange),
		render.Option(s.field("Guess", s.prompt.GuessText(), "a number in the range", menu.FocusGuess), focus == menu.FocusGuess),
		render.Option("Accept", focus == menu.FocusAccept),
		render.Blank(),
	}

	if err := s.prompt.Err(); err != nil {
		lines = append(lines, render.Styled(render.KindError, s.hint(err)))
	} else {
		lines = append(lines, render.Blank())
	}

	return append(lines,
		render.Blank(),
		render.Styled(render.KindMuted, fmt.Sprintf("Score %d", s.session.Wins)),
	)
}

func (s *promptScreen) Bindings() []key.Binding {
	if s.prompt.Capturing() {
		return []key.Binding{keys.Select, keys.Back, keys.Backspace, keys.Quit}
	}
	return []key.Binding{keys.Up, keys.Down, keys.Select, keys.Back, keys.Quit}
}

func (s *promptScreen) field(label, text, placeholder string, field menu.PromptFocus) string {
	editing := s.prompt.Capturing() && s.prompt.Focus() == field
	switch {
	case editing:
		return fmt.Sprintf("%s: %s%s", label, text, cursor)
	case text == "":
		return fmt.Sprintf("%s: (%s)", label, placeholder)
	default:
		return fmt.Sprintf("%s: %s", label, text)
	}
}

func (s *promptScreen) hint(err error) string {
	name := "range"
	if s.prompt.RejectedField() == menu.FocusGuess {
		name = "guess"
	}
	return fmt.Sprintf("%s Invalid %s: %v", emoji.GetEmoji("warning"), name, err)
}
