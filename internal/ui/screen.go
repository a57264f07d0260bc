package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/randy/internal/menu"
	"github.com/yildizm/randy/internal/render"
)

// Screen is one context on the App stack. Only the top screen receives input.
type Screen interface {
	// Init returns the commands to run when the screen is pushed
	Init() tea.Cmd
	// HandleKey applies one key event
	HandleKey(k menu.Key) Step
	// Update receives every non-key message while the screen is on top
	Update(msg tea.Msg) Step
	// Resume is called when the child pushed by this screen pops with payload
	Resume(payload any) Step
	// Lines returns the content to lay out for a terminal of the given width
	Lines(width int) []render.Line
	// Bindings returns the keys listed in the help footer
	Bindings() []key.Binding
}

type stepKind int

const (
	stepStay stepKind = iota
	stepPush
	stepPop
	stepQuit
)

// Step tells the App what to do with the stack after a screen handled an event
type Step struct {
	kind    stepKind
	cmd     tea.Cmd
	child   Screen
	payload any
}

// Stay keeps the current screen on top and runs cmd, which may be nil
func Stay(cmd tea.Cmd) Step {
	return Step{kind: stepStay, cmd: cmd}
}

// Push puts child on top of the current screen
func Push(child Screen) Step {
	return Step{kind: stepPush, child: child}
}

// Pop removes the current screen and hands payload to the one below
func Pop(payload any) Step {
	return Step{kind: stepPop, payload: payload}
}

// Quit ends the program
func Quit() Step {
	return Step{kind: stepQuit}
}
