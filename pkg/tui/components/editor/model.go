// Package editor implements the item pane. It holds only cursor, scroll and
// popup state; the list it edits is passed in by the caller on every call.
package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/redo/pkg/todo"
	"tableflip.dev/redo/pkg/tui/cursor"
	"tableflip.dev/redo/pkg/tui/keys"
	"tableflip.dev/redo/pkg/tui/theme"
)

// Kind tags an Intent.
type Kind int

const (
	None Kind = iota
	// Leave asks the caller to return to the selection screen.
	Leave
	// Remove asks the caller to delete the item at Index.
	Remove
	// Add asks the caller to append an item with Text.
	Add
	OpenPopup
	CancelPopup
)

func (k Kind) String() string {
	switch k {
	case Leave:
		return "leave"
	case Remove:
		return "remove"
	case Add:
		return "add"
	case OpenPopup:
		return "open-popup"
	case CancelPopup:
		return "cancel-popup"
	default:
		return "none"
	}
}

// Intent is what the pane asks its owner to do after a key press.
type Intent struct {
	Kind  Kind
	Index int
	Text  string
}

// Model is the editor pane state.
type Model struct {
	cursor cursor.Cursor
	view   cursor.Viewport
	buffer []rune
	adding bool

	width int
	pane  theme.PaneTheme
	modal theme.ModalTheme
}

// New returns an editor with the cursor at the origin.
func New() *Model {
	th := theme.Default()
	m := &Model{pane: th.Pane, modal: th.Modal}
	m.view.SetHeight(1)
	return m
}

// Cursor returns the current cursor.
func (m *Model) Cursor() cursor.Cursor { return m.cursor }

// Offset is the first visible row.
func (m *Model) Offset() int { return m.view.Offset }

// Adding reports whether the add-item popup is open.
func (m *Model) Adding() bool { return m.adding }

// Buffer returns the popup input typed so far.
func (m *Model) Buffer() string { return string(m.buffer) }

// Reset puts the cursor and scroll back at the top.
func (m *Model) Reset() {
	m.cursor.Reset()
	m.view.Reset()
}

// SetSize sets the outer width and height of the pane.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.view.SetHeight(height - m.pane.Frame.GetVerticalFrameSize() - 1)
	m.view.Follow(m.cursor.Y)
}

// AfterAdd moves the cursor after the caller appended an item. The cursor
// advances one row unless the list was empty before the add.
func (m *Model) AfterAdd(wasEmpty bool, count int) {
	if !wasEmpty {
		m.cursor.MoveDown(1, count-1)
	}
	m.view.Follow(m.cursor.Y)
}

// HandleKey interprets one key press against list.
func (m *Model) HandleKey(ev keys.Event, list *todo.List) Intent {
	if m.adding {
		return m.handlePopupKey(ev)
	}

	switch {
	case ev.IsUp():
		m.cursor.MoveUp(1)
		m.followRow(list)
	case ev.IsDown():
		m.cursor.MoveDown(1, list.Len()-1)
		m.followRow(list)
	case ev.IsLeft():
		m.cursor.MoveLeft(1)
	case ev.IsRight():
		m.cursor.MoveRight(1, list.LineLen(m.cursor.Y))
	case ev.Code == keys.Space:
		if it, ok := list.Item(m.cursor.Y); ok {
			it.Toggle()
		}
	case ev.Code == keys.Esc:
		if list.Len() == 0 {
			return Intent{}
		}
		m.Reset()
		return Intent{Kind: Leave}
	case ev.Is('x'):
		n := list.Len()
		if n == 0 {
			return Intent{}
		}
		idx := m.cursor.Y
		if m.cursor.Y > n-2 {
			m.cursor.MoveUp(1)
		}
		m.view.Clamp(n - 1)
		m.view.Follow(m.cursor.Y)
		return Intent{Kind: Remove, Index: idx}
	case ev.Code == keys.Enter:
		m.adding = true
		m.buffer = m.buffer[:0]
		return Intent{Kind: OpenPopup}
	}
	return Intent{}
}

func (m *Model) followRow(list *todo.List) {
	m.cursor.ClampX(list.LineLen(m.cursor.Y))
	m.view.Follow(m.cursor.Y)
}

func (m *Model) handlePopupKey(ev keys.Event) Intent {
	switch ev.Code {
	case keys.Esc:
		m.adding = false
		m.buffer = m.buffer[:0]
		return Intent{Kind: CancelPopup}
	case keys.Backspace:
		if n := len(m.buffer); n > 0 {
			m.buffer = m.buffer[:n-1]
		}
		return Intent{}
	case keys.Enter:
		// Parse trims item text on read, so trim here to keep the file in
		// step with memory.
		text := strings.TrimSpace(string(m.buffer))
		m.adding = false
		m.buffer = m.buffer[:0]
		return Intent{Kind: Add, Text: text}
	}
	if r, ok := ev.Text(); ok {
		m.buffer = append(m.buffer, r)
	}
	return Intent{}
}

// View renders list. The cursor row is highlighted only when focused.
func (m *Model) View(list *todo.List, focused bool) string {
	frame := m.pane.Frame
	if focused {
		frame = m.pane.FocusedFrame
	}
	inner := max(m.width-frame.GetHorizontalFrameSize(), 12)

	title := "Items"
	if list != nil {
		title = fmt.Sprintf("%s %d/%d", list.Header(), list.Completed(), list.Len())
	}
	lines := []string{m.pane.Title.Render(truncate.StringWithTail(title, uint(inner), "…"))}

	switch {
	case list == nil:
		lines = append(lines, m.pane.Placeholder.Render("no list selected"))
	case list.Len() == 0:
		lines = append(lines, m.pane.Placeholder.Render("empty · enter adds an item"))
	}

	start, end := m.view.Visible(list.Len())
	for i := start; i < end; i++ {
		it := list.Items[i]
		row := truncate.StringWithTail(it.String(), uint(inner), "…")
		switch {
		case focused && i == m.cursor.Y:
			row = m.pane.Selected.Render(row)
		case it.Done:
			row = m.pane.Done.Render(row)
		default:
			row = m.pane.Row.Render(row)
		}
		lines = append(lines, row)
	}
	for len(lines) < m.view.Height+1 {
		lines = append(lines, "")
	}
	return frame.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// PopupView renders the add-item prompt, or "" when the popup is closed.
func (m *Model) PopupView() string {
	if !m.adding {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.modal.Title.Render("New item"),
		m.modal.Prompt.Render("> ")+string(m.buffer)+"▏",
	)
	return m.modal.Frame.Render(body)
}
