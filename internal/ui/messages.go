package ui

import "github.com/yildizm/randy/internal/game"

// Messages delivered to the event loop by commands

// messageMsg carries the remote message for a finished round
type messageMsg struct {
	request int
	text    string
	err     error
}

// catalogMsg carries the list of available models
type catalogMsg struct {
	request int
	models  []string
	err     error
}

// ThemeMsg asks the running program to switch to another theme
type ThemeMsg struct {
	Theme string
}

// Payloads passed from a popped screen to its parent

// modelChoice is the model committed on the picker or kept by the options page.
// A nil *modelChoice means the picker was left without a choice.
type modelChoice struct {
	model string
}

// submitted carries the values committed on the prompt
type submitted struct {
	submission game.Submission
}

// roundOver is popped by the result screen once the player has read it
type roundOver struct{}

// replay is the answer given on the "play another round" question
type replay struct {
	again bool
}
