package menu

// OptionsMenu is the highlighted item of the options menu
type OptionsMenu int

const (
	OptionsModel OptionsMenu = iota
	OptionsReturn
)

// OptionsAction is what committing an options menu item triggers
type OptionsAction int

const (
	OptionsPass OptionsAction = iota
	ChangeModel
	GoBack
)

var optionsMenuItems = []OptionsMenu{OptionsModel, OptionsReturn}

func (m OptionsMenu) Items() []OptionsMenu {
	return optionsMenuItems
}

func (m OptionsMenu) Selected() OptionsMenu {
	return m
}

func (m *OptionsMenu) Advance(k Key) {
	if delta := verticalDelta(k); delta != 0 {
		*m = cycle(optionsMenuItems, *m, delta)
	}
}

func (m OptionsMenu) Commit() OptionsAction {
	switch m {
	case OptionsModel:
		return ChangeModel
	case OptionsReturn:
		return GoBack
	default:
		return OptionsPass
	}
}

func (m OptionsMenu) Pass() OptionsAction {
	return OptionsPass
}

func (m OptionsMenu) Label() string {
	switch m {
	case OptionsModel:
		return "Model"
	case OptionsReturn:
		return "Return"
	default:
		return ""
	}
}
