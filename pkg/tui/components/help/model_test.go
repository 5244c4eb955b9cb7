package help

import (
	"strings"
	"testing"

	"tableflip.dev/redo/pkg/tui/keys"
)

func TestViewRendersBindings(t *testing.T) {
	m := New(100, 80)
	if err := m.Err(); err != nil {
		t.Fatalf("render help: %v", err)
	}
	view := stripANSI(m.View())
	for _, want := range []string{"ctrl+q", "toggle done"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in help view:\n%s", want, view)
		}
	}
}

func TestSetSizeEnforcesMinimum(t *testing.T) {
	m := New(4, 2)
	if m.width != 32 || m.height != 8 {
		t.Fatalf("expected minimum 32x8, got %dx%d", m.width, m.height)
	}
}

func TestHandleKeyScrolls(t *testing.T) {
	m := New(60, 8)
	top := m.View()

	for i := 0; i < 3; i++ {
		m.HandleKey(keys.Key(keys.Down))
	}
	if m.Offset() != 3 {
		t.Fatalf("expected offset 3 after three downs, got %d", m.Offset())
	}
	if m.View() == top {
		t.Fatalf("view should change after scrolling")
	}

	m.HandleKey(keys.Char('k'))
	if m.Offset() != 2 {
		t.Fatalf("expected k to scroll up one line, got %d", m.Offset())
	}

	for i := 0; i < 50; i++ {
		m.HandleKey(keys.Key(keys.PageDown))
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "ctrl+q") {
		t.Fatalf("expected the last binding at the bottom:\n%s", view)
	}

	for i := 0; i < 50; i++ {
		m.HandleKey(keys.Key(keys.PageUp))
	}
	if m.Offset() != 0 {
		t.Fatalf("expected pgup to return to the top, got %d", m.Offset())
	}
}
