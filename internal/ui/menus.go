package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/randy/internal/emoji"
	"github.com/yildizm/randy/internal/game"
	"github.com/yildizm/randy/internal/logger"
	"github.com/yildizm/randy/internal/menu"
	"github.com/yildizm/randy/internal/render"
)

const replayQuestion = "Play another round?"

// mainScreen is the bottom of the stack. It owns the selected model, the score and
// the draw of every round.
type mainScreen struct {
	opts    *Options
	menu    menu.MainMenu
	model   string
	session game.Session
}

func newMainScreen(opts *Options) *mainScreen {
	return &mainScreen{opts: opts, model: opts.Model}
}

func (s *mainScreen) Init() tea.Cmd {
	return nil
}

func (s *mainScreen) HandleKey(k menu.Key) Step {
	switch menu.Navigate[menu.MainMenu, menu.MainAction](&s.menu, k) {
	case menu.StartGame:
		return Push(newPromptScreen(&s.session))
	case menu.OptionsPage:
		return Push(newOptionsScreen(s.opts, s.model))
	case menu.Finish:
		return Quit()
	}
	return Stay(nil)
}

func (s *mainScreen) Update(tea.Msg) Step {
	return Stay(nil)
}

func (s *mainScreen) Resume(payload any) Step {
	switch p := payload.(type) {
	case submitted:
		return s.play(p.submission)
	case modelChoice:
		if p.model != s.model {
			s.opts.Logger.Info("Model changed to %s", p.model)
		}
		s.model = p.model
	case roundOver:
		if s.opts.AskReplay {
			return Push(newConfirmScreen(replayQuestion))
		}
	case replay:
		if p.again {
			return Push(newPromptScreen(&s.session))
		}
		return Quit()
	}
	return Stay(nil)
}

func (s *mainScreen) play(sub game.Submission) Step {
	res := game.Play(s.opts.Selector, sub)
	s.session.Record(res)

	s.opts.Logger.InfoWithFields("Round played", []logger.Field{
		logger.F("range", res.Range.String()),
		logger.F("guess", res.Guess),
		logger.F("drawn", res.Drawn),
		logger.F("outcome", res.Outcome.String()),
		logger.Count(s.session.Rounds),
	})

	return Push(newResultScreen(s.opts, res, s.model))
}

func (s *mainScreen) Lines(int) []render.Line {
	lines := []render.Line{
		render.Styled(render.KindTitle, emoji.Decorate("dice", "Randy")),
		render.Styled(render.KindMuted, "Guess the number"),
		render.Blank(),
	}
	lines = append(lines, entryLines(menu.Entries[menu.MainMenu, menu.MainAction](&s.menu))...)
	return append(lines,
		render.Blank(),
		render.Styled(render.KindMuted, emoji.Decorate("robot", s.model)),
	)
}

func (s *mainScreen) Bindings() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Select, keys.Quit}
}

// optionsScreen lets the player change the model and hands it back on Return
type optionsScreen struct {
	opts  *Options
	menu  menu.OptionsMenu
	model string
}

func newOptionsScreen(opts *Options, model string) *optionsScreen {
	return &optionsScreen{opts: opts, model: model}
}

func (s *optionsScreen) Init() tea.Cmd {
	return nil
}

func (s *optionsScreen) HandleKey(k menu.Key) Step {
	switch menu.Navigate[menu.OptionsMenu, menu.OptionsAction](&s.menu, k) {
	case menu.ChangeModel:
		return Push(newPickerScreen(s.opts, s.model))
	case menu.GoBack:
		return Pop(modelChoice{model: s.model})
	}
	return Stay(nil)
}

func (s *optionsScreen) Update(tea.Msg) Step {
	return Stay(nil)
}

func (s *optionsScreen) Resume(payload any) Step {
	if p, ok := payload.(modelChoice); ok {
		s.model = p.model
	}
	return Stay(nil)
}

func (s *optionsScreen) Lines(int) []render.Line {
	lines := []render.Line{
		render.Styled(render.KindTitle, emoji.Decorate("gear", "Options")),
		render.Blank(),
	}
	lines = append(lines, entryLines(menu.Entries[menu.OptionsMenu, menu.OptionsAction](&s.menu))...)
	return append(lines,
		render.Blank(),
		render.Styled(render.KindMuted, "Current model: "+s.model),
	)
}

func (s *optionsScreen) Bindings() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Select, keys.Quit}
}

// confirmScreen asks a yes/no question and pops the answer
type confirmScreen struct {
	confirm *menu.Confirm
}

func newConfirmScreen(question string) *confirmScreen {
	return &confirmScreen{confirm: menu.NewConfirm(question, true)}
}

func (s *confirmScreen) Init() tea.Cmd {
	return nil
}

func (s *confirmScreen) HandleKey(k menu.Key) Step {
	if answer, done := s.confirm.HandleKey(k); done {
		return Pop(replay{again: answer})
	}
	return Stay(nil)
}

func (s *confirmScreen) Update(tea.Msg) Step {
	return Stay(nil)
}

func (s *confirmScreen) Resume(any) Step {
	return Stay(nil)
}

func (s *confirmScreen) Lines(int) []render.Line {
	return []render.Line{
		render.Styled(render.KindTitle, s.confirm.Question()),
		render.Blank(),
		render.Option(s.confirm.AnswerLabel(), s.confirm.Focus() == menu.FocusToggle),
		render.Option("Confirm", s.confirm.Focus() == menu.FocusConfirmAccept),
	}
}

func (s *confirmScreen) Bindings() []key.Binding {
	return []key.Binding{keys.Left, keys.Right, keys.Up, keys.Down, keys.Select}
}

func entryLines(entries []menu.Entry) []render.Line {
	lines := make([]render.Line, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, render.Option(e.Label, e.Selected))
	}
	return lines
}
