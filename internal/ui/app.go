package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/randy/internal/ai"
	"github.com/yildizm/randy/internal/game"
	"github.com/yildizm/randy/internal/logger"
	"github.com/yildizm/randy/internal/render"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// DefaultRequestTimeout bounds a single message or catalog request
	DefaultRequestTimeout = 2 * time.Minute
)

// Options are the collaborators of the game
type Options struct {
	Messenger ai.Messenger
	Catalog   ai.Catalog
	// Selector draws the hidden value; a runtime-seeded source when nil
	Selector game.Selector
	// Model is the starting model name
	Model string
	// AskReplay shows the "play another round" question after each result
	AskReplay bool
	// RequestTimeout bounds each remote call; DefaultRequestTimeout when zero
	RequestTimeout time.Duration
	Logger         *logger.Logger
}

// App is the bubbletea model of the game. It owns a stack of screens whose bottom is
// the main menu; the top screen receives every event and decides what happens next.
type App struct {
	stack    []Screen
	root     *mainScreen
	width    int
	height   int
	styles   *render.Styles
	help     help.Model
	log      *logger.Logger
	quitting bool
}

// NewApp creates the game with the main menu on screen
func NewApp(opts Options) *App {
	if opts.Selector == nil {
		opts.Selector = game.NewRandomSelector()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewWithCallback("ui", func() bool { return false })
	}

	h := help.New()
	plain := lipgloss.NewStyle()
	h.Styles = help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}

	root := newMainScreen(&opts)
	return &App{
		stack:  []Screen{root},
		root:   root,
		width:  defaultWidth,
		height: defaultHeight,
		styles: render.GetStyles(),
		help:   h,
		log:    opts.Logger,
	}
}

// Init clears the terminal and starts the main menu
func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.ClearScreen, a.top().Init())
}

// Update routes a message to the top screen and applies the resulting step
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		return a, tea.ClearScreen

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return a, a.quit()
		}
		var cmds []tea.Cmd
		for _, k := range TranslateKey(msg) {
			if a.quitting {
				break
			}
			cmds = append(cmds, a.apply(a.top().HandleKey(k)))
		}
		// Repaint from scratch after every handled key so no stale highlight survives
		if len(cmds) > 0 && !a.quitting {
			cmds = append([]tea.Cmd{tea.ClearScreen}, cmds...)
		}
		return a, tea.Batch(cmds...)

	case ThemeMsg:
		if !render.SetThemeByName(msg.Theme) {
			a.log.Warn("Ignoring unknown theme %q", msg.Theme)
			return a, nil
		}
		a.styles = render.GetStyles()
		a.log.Info("Switched to theme %s", msg.Theme)
		return a, tea.ClearScreen
	}

	return a, a.apply(a.top().Update(msg))
}

// View draws the top screen and its key help centered in the terminal
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	top := a.top()
	lines := top.Lines(a.width)
	if bindings := top.Bindings(); len(bindings) > 0 {
		lines = append(lines, render.Blank(), render.Styled(render.KindMuted, a.help.ShortHelpView(bindings)))
	}
	return render.Frame(a.height, a.width, lines, a.styles)
}

// Session returns the score of the rounds played so far
func (a *App) Session() game.Session {
	return a.root.session
}

// Model returns the model selected when the program ended
func (a *App) Model() string {
	return a.root.model
}

func (a *App) top() Screen {
	return a.stack[len(a.stack)-1]
}

func (a *App) apply(step Step) tea.Cmd {
	switch step.kind {
	case stepPush:
		a.stack = append(a.stack, step.child)
		return tea.Batch(tea.ClearScreen, step.child.Init())

	case stepPop:
		a.stack = a.stack[:len(a.stack)-1]
		if len(a.stack) == 0 {
			return a.quit()
		}
		return tea.Batch(tea.ClearScreen, a.apply(a.top().Resume(step.payload)))

	case stepQuit:
		return a.quit()
	}
	return step.cmd
}

func (a *App) quit() tea.Cmd {
	a.quitting = true
	return tea.Quit
}
