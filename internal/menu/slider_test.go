package menu

import "testing"

func newModelSlider(current string) *Slider {
	return NewSlider([]string{"a", "b", "c", "d", "e"}, current)
}

func TestSlider_Wraparound(t *testing.T) {
	s := newModelSlider("a")
	s.HandleKey(Left)
	if s.Index() != 4 {
		t.Errorf("Expected Left from index 0 to land on 4, got %d", s.Index())
	}

	s.HandleKey(Right)
	if s.Index() != 0 {
		t.Errorf("Expected Right from index 4 to land on 0, got %d", s.Index())
	}
}

func TestSlider_StartsOnCurrent(t *testing.T) {
	if s := newModelSlider("c"); s.Index() != 2 || s.Value() != "c" {
		t.Errorf("Expected slider to start on c, got %q at %d", s.Value(), s.Index())
	}
	if s := newModelSlider("missing"); s.Index() != 0 {
		t.Errorf("Expected unknown current value to start at 0, got %d", s.Index())
	}
}

func TestSlider_FocusStateMachine(t *testing.T) {
	s := newModelSlider("b")

	if _, ok := s.HandleKey(Enter); ok {
		t.Error("Expected Enter on the selector row to be a no-op")
	}

	s.HandleKey(Down)
	if s.Focus() != FocusConfirm {
		t.Fatalf("Expected focus on confirm, got %d", s.Focus())
	}

	s.HandleKey(Right)
	if s.Value() != "b" {
		t.Errorf("Expected left/right to be ignored on the confirm row, got %q", s.Value())
	}

	s.HandleKey(Up)
	if s.Focus() != FocusSelector {
		t.Fatalf("Expected focus back on selector, got %d", s.Focus())
	}

	s.HandleKey(Right)
	s.HandleKey(Up)
	got, ok := s.HandleKey(Enter)
	if !ok {
		t.Fatal("Expected Enter on the confirm row to commit")
	}
	if got != "c" {
		t.Errorf("Expected c to be committed, got %q", got)
	}
}

func TestSlider_Empty(t *testing.T) {
	s := NewSlider(nil, "x")
	s.HandleKey(Left)
	s.HandleKey(Down)

	if _, ok := s.HandleKey(Enter); ok {
		t.Error("Expected an empty slider to never commit")
	}
	if s.Value() != "" {
		t.Errorf("Expected empty value, got %q", s.Value())
	}
}
