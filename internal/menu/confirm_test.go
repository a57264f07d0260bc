package menu

import "testing"

func TestConfirm(t *testing.T) {
	c := NewConfirm("Play another round?", true)

	if _, ok := c.HandleKey(Enter); ok {
		t.Error("Expected Enter on the toggle row to be a no-op")
	}

	c.HandleKey(Right)
	if c.Answer() {
		t.Error("Expected Right to toggle to No")
	}
	if c.AnswerLabel() != "< No >" {
		t.Errorf("Expected '< No >', got %q", c.AnswerLabel())
	}

	c.HandleKey(Down)
	if c.Focus() != FocusConfirmAccept {
		t.Fatalf("Expected accept focus, got %d", c.Focus())
	}

	c.HandleKey(Left)
	if c.Answer() {
		t.Error("Expected left/right to be ignored on the accept row")
	}

	answer, ok := c.HandleKey(Enter)
	if !ok || answer {
		t.Errorf("Expected committed No, got answer=%v ok=%v", answer, ok)
	}

	c.HandleKey(Up)
	c.HandleKey(Left)
	c.HandleKey(Up)
	answer, ok = c.HandleKey(Enter)
	if !ok || !answer {
		t.Errorf("Expected committed Yes, got answer=%v ok=%v", answer, ok)
	}
}
