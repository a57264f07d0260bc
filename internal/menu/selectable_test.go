package menu

import "testing"

func TestMainMenu_Wraparound(t *testing.T) {
	m := MainPlay
	m.Advance(Up)
	if m != MainExit {
		t.Errorf("Expected Up from first item to land on Exit, got %s", m.Label())
	}

	m = MainExit
	m.Advance(Down)
	if m != MainPlay {
		t.Errorf("Expected Down from last item to land on Play, got %s", m.Label())
	}
}

func TestMainMenu_CycleLaw(t *testing.T) {
	for _, start := range mainMenuItems {
		m := start
		for i := 0; i < len(m.Items()); i++ {
			m.Advance(Down)
		}
		if m != start {
			t.Errorf("Expected three Down presses to return to %s, got %s", start.Label(), m.Label())
		}
	}
}

func TestMainMenu_IgnoresOtherKeys(t *testing.T) {
	m := MainOptions
	for _, k := range []Key{Left, Right, Escape, Backspace, Char('x'), {Kind: KeyOther}} {
		m.Advance(k)
		if m != MainOptions {
			t.Fatalf("Expected key %s to be a no-op, selection moved to %s", k, m.Label())
		}
	}
}

func TestMainMenu_Commit(t *testing.T) {
	tests := []struct {
		item MainMenu
		want MainAction
	}{
		{MainPlay, StartGame},
		{MainOptions, OptionsPage},
		{MainExit, Finish},
	}

	for _, tt := range tests {
		if got := tt.item.Commit(); got != tt.want {
			t.Errorf("%s: expected action %d, got %d", tt.item.Label(), tt.want, got)
		}
	}
}

func TestNavigate(t *testing.T) {
	m := MainPlay

	if got := Navigate[MainMenu, MainAction](&m, Down); got != MainPass {
		t.Errorf("Expected MainPass for navigation key, got %d", got)
	}
	if m != MainOptions {
		t.Errorf("Expected Options to be selected, got %s", m.Label())
	}
	if got := Navigate[MainMenu, MainAction](&m, Char('q')); got != MainPass {
		t.Errorf("Expected MainPass for unrelated key, got %d", got)
	}
	if got := Navigate[MainMenu, MainAction](&m, Enter); got != OptionsPage {
		t.Errorf("Expected OptionsPage on Enter, got %d", got)
	}
}

func TestEntries_SingleSelection(t *testing.T) {
	m := MainOptions
	entries := Entries[MainMenu, MainAction](&m)

	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	labels := []string{"Play", "Options", "Exit"}
	selected := 0
	for i, e := range entries {
		if e.Label != labels[i] {
			t.Errorf("Expected entry %d to be %s, got %s", i, labels[i], e.Label)
		}
		if e.Selected {
			selected++
			if e.Label != "Options" {
				t.Errorf("Expected Options to be selected, got %s", e.Label)
			}
		}
	}
	if selected != 1 {
		t.Errorf("Expected exactly one selected entry, got %d", selected)
	}
}

func TestOptionsMenu(t *testing.T) {
	m := OptionsModel

	m.Advance(Up)
	if m != OptionsReturn {
		t.Errorf("Expected Up from Model to wrap to Return, got %s", m.Label())
	}
	m.Advance(Down)
	if m != OptionsModel {
		t.Errorf("Expected Down from Return to wrap to Model, got %s", m.Label())
	}

	if m.Commit() != ChangeModel {
		t.Errorf("Expected ChangeModel, got %d", m.Commit())
	}
	m.Advance(Down)
	if m.Commit() != GoBack {
		t.Errorf("Expected GoBack, got %d", m.Commit())
	}
	if m.Pass() != OptionsPass {
		t.Errorf("Expected OptionsPass, got %d", m.Pass())
	}
}
