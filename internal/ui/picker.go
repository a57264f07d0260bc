package ui

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/randy/internal/ai"
	"github.com/yildizm/randy/internal/emoji"
	"github.com/yildizm/randy/internal/logger"
	"github.com/yildizm/randy/internal/menu"
	"github.com/yildizm/randy/internal/render"
)

var (
	errNoCatalog   = errors.New("no model catalog configured")
	errEmptyModels = errors.New("the catalog has no models")
)

// requestSeq numbers remote requests so replies to abandoned screens are dropped
var requestSeq atomic.Int64

func nextRequest() int {
	return int(requestSeq.Add(1))
}

func newSpinner() spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.Dot))
}

// pickerScreen fetches the model catalog and offers it on a slider
type pickerScreen struct {
	opts    *Options
	current string
	request int
	loading bool
	slider  *menu.Slider
	err     error
	spinner spinner.Model
}

func newPickerScreen(opts *Options, current string) *pickerScreen {
	return &pickerScreen{
		opts:    opts,
		current: current,
		request: nextRequest(),
		loading: true,
		spinner: newSpinner(),
	}
}

func (s *pickerScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, fetchCatalog(s.opts.Catalog, s.request, s.opts.RequestTimeout))
}

func fetchCatalog(catalog ai.Catalog, request int, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if catalog == nil {
			return catalogMsg{request: request, err: errNoCatalog}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		models, err := catalog.Models(ctx)
		return catalogMsg{request: request, models: models, err: err}
	}
}

func (s *pickerScreen) HandleKey(k menu.Key) Step {
	if s.slider == nil {
		if k.Kind == menu.KeyEscape || (k.Kind == menu.KeyEnter && !s.loading) {
			return Pop(modelChoice{model: s.current})
		}
		return Stay(nil)
	}

	if k.Kind == menu.KeyEscape {
		return Pop(modelChoice{model: s.current})
	}
	if model, ok := s.slider.HandleKey(k); ok {
		return Pop(modelChoice{model: model})
	}
	return Stay(nil)
}

func (s *pickerScreen) Update(msg tea.Msg) Step {
	switch msg := msg.(type) {
	case catalogMsg:
		if msg.request != s.request {
			return Stay(nil)
		}
		s.loading = false
		switch {
		case msg.err != nil:
			s.err = msg.err
			s.opts.Logger.ErrorWithFields("Failed to fetch models", []logger.Field{logger.Error(msg.err)})
		case len(msg.models) == 0:
			s.err = errEmptyModels
		default:
			s.slider = menu.NewSlider(msg.models, s.current)
			s.opts.Logger.Debug("Fetched %d models", len(msg.models))
		}

	case spinner.TickMsg:
		if s.loading {
			var cmd tea.Cmd
			s.spinner, cmd = s.spinner.Update(msg)
			return Stay(cmd)
		}
	}
	return Stay(nil)
}

func (s *pickerScreen) Resume(any) Step {
	return Stay(nil)
}

func (s *pickerScreen) Lines(int) []render.Line {
	lines := []render.Line{
		render.Styled(render.KindTitle, emoji.Decorate("robot", "Select a model")),
		render.Blank(),
	}

	switch {
	case s.loading:
		return append(lines, render.Styled(render.KindMuted, s.spinner.View()+" Fetching models..."))
	case s.err != nil:
		return append(lines,
			render.Styled(render.KindError, emoji.Decorate("error", s.err.Error())),
			render.Blank(),
			render.Option("Back", true),
		)
	}

	focus := s.slider.Focus()
	return append(lines,
		render.Option("< "+s.slider.Value()+" >", focus == menu.FocusSelector),
		render.Styled(render.KindMuted, fmt.Sprintf("%d/%d", s.slider.Index()+1, s.slider.Len())),
		render.Blank(),
		render.Option("Confirm", focus == menu.FocusConfirm),
	)
}

func (s *pickerScreen) Bindings() []key.Binding {
	if s.slider == nil {
		return []key.Binding{keys.Back, keys.Quit}
	}
	return []key.Binding{keys.Left, keys.Right, keys.Up, keys.Down, keys.Select, keys.Back}
}
