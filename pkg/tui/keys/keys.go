// Package keys is the terminal-neutral key event the panes consume, plus the
// translation from Bubble Tea key presses.
package keys

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Code identifies a key.
type Code int

const (
	Unknown Code = iota
	Rune
	Up
	Down
	Left
	Right
	Enter
	Esc
	Backspace
	Space
	PageUp
	PageDown
	Quit
)

// Event is one key press. Rune is set for Code Rune and Space.
type Event struct {
	Code Code
	Rune rune
}

// Char returns the event for a printable character.
func Char(r rune) Event {
	if r == ' ' {
		return Event{Code: Space, Rune: ' '}
	}
	return Event{Code: Rune, Rune: r}
}

// Key returns an event for a non-character key.
func Key(c Code) Event {
	if c == Space {
		return Char(' ')
	}
	return Event{Code: c}
}

// Is reports whether the event is the printable character r.
func (e Event) Is(r rune) bool {
	return (e.Code == Rune || e.Code == Space) && e.Rune == r
}

// Text returns the character to insert into a text buffer, if any.
func (e Event) Text() (rune, bool) {
	switch e.Code {
	case Rune, Space:
		return e.Rune, true
	default:
		return 0, false
	}
}

// IsUp matches the up arrow and `k`.
func (e Event) IsUp() bool { return e.Code == Up || e.Is('k') }

// IsDown matches the down arrow and `j`.
func (e Event) IsDown() bool { return e.Code == Down || e.Is('j') }

// IsLeft matches the left arrow and `h`.
func (e Event) IsLeft() bool { return e.Code == Left || e.Is('h') }

// IsRight matches the right arrow and `l`.
func (e Event) IsRight() bool { return e.Code == Right || e.Is('l') }

var named = map[string]Code{
	"up":        Up,
	"down":      Down,
	"left":      Left,
	"right":     Right,
	"enter":     Enter,
	"esc":       Esc,
	"escape":    Esc,
	"backspace": Backspace,
	"space":     Space,
	" ":         Space,
	"pgup":      PageUp,
	"pgdown":    PageDown,
	"ctrl+q":    Quit,
}

// FromTea converts a Bubble Tea key press.
func FromTea(msg tea.KeyPressMsg) Event {
	if code, ok := named[msg.String()]; ok {
		return Key(code)
	}
	runes := []rune(msg.Text)
	if len(runes) == 1 {
		return Char(runes[0])
	}
	return Event{Code: Unknown}
}
