package menu

// MainMenu is the highlighted item of the main menu
type MainMenu int

const (
	MainPlay MainMenu = iota
	MainOptions
	MainExit
)

// MainAction is what committing a main menu item triggers
type MainAction int

const (
	MainPass MainAction = iota
	StartGame
	OptionsPage
	Finish
)

var mainMenuItems = []MainMenu{MainPlay, MainOptions, MainExit}

func (m MainMenu) Items() []MainMenu {
	return mainMenuItems
}

func (m MainMenu) Selected() MainMenu {
	return m
}

func (m *MainMenu) Advance(k Key) {
	if delta := verticalDelta(k); delta != 0 {
		*m = cycle(mainMenuItems, *m, delta)
	}
}

func (m MainMenu) Commit() MainAction {
	switch m {
	case MainPlay:
		return StartGame
	case MainOptions:
		return OptionsPage
	case MainExit:
		return Finish
	default:
		return MainPass
	}
}

func (m MainMenu) Pass() MainAction {
	return MainPass
}

func (m MainMenu) Label() string {
	switch m {
	case MainPlay:
		return "Play"
	case MainOptions:
		return "Options"
	case MainExit:
		return "Exit"
	default:
		return ""
	}
}
