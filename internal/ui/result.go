package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/randy/internal/ai"
	"github.com/yildizm/randy/internal/emoji"
	"github.com/yildizm/randy/internal/game"
	"github.com/yildizm/randy/internal/logger"
	"github.com/yildizm/randy/internal/menu"
	"github.com/yildizm/randy/internal/render"
)

const (
	maxMessageWidth = 64
	minMessageWidth = 20
)

var errNoMessenger = errors.New("no message service configured")

// resultScreen shows the outcome of a round together with the remote message about it
type resultScreen struct {
	opts    *Options
	result  game.Result
	model   string
	request int
	waiting bool
	text    string
	err     error
	spinner spinner.Model
	cancel  context.CancelFunc
}

func newResultScreen(opts *Options, result game.Result, model string) *resultScreen {
	return &resultScreen{
		opts:    opts,
		result:  result,
		model:   model,
		request: nextRequest(),
		waiting: true,
		spinner: newSpinner(),
		cancel:  func() {},
	}
}

func (s *resultScreen) Init() tea.Cmd {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.RequestTimeout)
	s.cancel = cancel
	return tea.Batch(s.spinner.Tick, s.fetch(ctx))
}

func (s *resultScreen) fetch(ctx context.Context) tea.Cmd {
	messenger := s.opts.Messenger
	outcome := s.result.Outcome
	model := s.model
	request := s.request

	return func() tea.Msg {
		if messenger == nil {
			return messageMsg{request: request, err: errNoMessenger}
		}
		text, err := messenger.Message(ctx, outcome, model)
		return messageMsg{request: request, text: text, err: err}
	}
}

func (s *resultScreen) HandleKey(k menu.Key) Step {
	switch k.Kind {
	case menu.KeyEnter:
		if !s.waiting {
			return Pop(roundOver{})
		}
	case menu.KeyEscape:
		s.cancel()
		return Pop(roundOver{})
	}
	return Stay(nil)
}

func (s *resultScreen) Update(msg tea.Msg) Step {
	switch msg := msg.(type) {
	case messageMsg:
		if msg.request != s.request {
			return Stay(nil)
		}
		s.cancel()
		s.waiting = false
		s.text, s.err = msg.text, msg.err
		if msg.err != nil {
			s.opts.Logger.ErrorWithFields("Message request failed", []logger.Field{
				logger.F("model", s.model),
				logger.F("retryable", ai.IsRetryableError(msg.err)),
				logger.Error(msg.err),
			})
		}

	case spinner.TickMsg:
		if s.waiting {
			var cmd tea.Cmd
			s.spinner, cmd = s.spinner.Update(msg)
			return Stay(cmd)
		}
	}
	return Stay(nil)
}

func (s *resultScreen) Resume(any) Step {
	return Stay(nil)
}

func (s *resultScreen) Lines(width int) []render.Line {
	lines := []render.Line{s.title(), render.Blank()}
	lines = append(lines,
		render.Text("Range "+s.result.Range.String()),
		render.Text(fmt.Sprintf("You guessed %d, the number was %d", s.result.Guess, s.result.Drawn)),
		render.Blank(),
	)

	wrapAt := min(max(width-4, minMessageWidth), maxMessageWidth)
	switch {
	case s.waiting:
		lines = append(lines, render.Styled(render.KindMuted, fmt.Sprintf("%s Asking %s...", s.spinner.View(), s.model)))
	case s.err != nil:
		for _, l := range render.Wrap(emoji.Decorate("error", s.err.Error()), wrapAt) {
			lines = append(lines, render.Styled(render.KindError, l))
		}
	default:
		for _, l := range render.Wrap(emoji.Decorate("cowboy", s.text), wrapAt) {
			lines = append(lines, render.Styled(render.KindAccent, l))
		}
	}

	return append(lines, render.Blank(), render.Option("Continue", !s.waiting))
}

func (s *resultScreen) title() render.Line {
	if s.result.Outcome == game.Correct {
		return render.Styled(render.KindSuccess, emoji.Decorate("trophy", "Correct!"))
	}
	return render.Styled(render.KindWarning, emoji.Decorate("miss", "Incorrect"))
}

func (s *resultScreen) Bindings() []key.Binding {
	if s.waiting {
		return []key.Binding{keys.Back, keys.Quit}
	}
	return []key.Binding{keys.Select, keys.Quit}
}
