// Package selection implements the list selector pane: a scrolling column of
// list names with an "add list" popup.
package selection

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/redo/pkg/parser"
	"tableflip.dev/redo/pkg/tui/cursor"
	"tableflip.dev/redo/pkg/tui/keys"
	"tableflip.dev/redo/pkg/tui/theme"
)

// Kind tags an Intent.
type Kind int

const (
	None Kind = iota
	// Show asks the caller to preview the list at Index.
	Show
	// Selected asks the caller to open the list at Index in the editor.
	Selected
	// Remove asks the caller to delete the list at Index.
	Remove
	// AddList asks the caller to append a list titled Title.
	AddList
	OpenPopup
	CancelPopup
	// Rejected reports popup input that was refused, with Reason.
	Rejected
)

func (k Kind) String() string {
	switch k {
	case Show:
		return "show"
	case Selected:
		return "selected"
	case Remove:
		return "remove"
	case AddList:
		return "add-list"
	case OpenPopup:
		return "open-popup"
	case CancelPopup:
		return "cancel-popup"
	case Rejected:
		return "rejected"
	default:
		return "none"
	}
}

// Intent is what the pane asks its owner to do after a key press.
type Intent struct {
	Kind   Kind
	Index  int
	Title  string
	Reason string
}

// Model holds the pane state. The names are a display cache; the caller
// refreshes them whenever the set of lists changes.
type Model struct {
	names  []string
	cursor cursor.Cursor
	view   cursor.Viewport
	buffer []rune
	adding bool

	width int
	pane  theme.PaneTheme
	modal theme.ModalTheme
}

// New constructs the pane with an initial set of names.
func New(names []string) *Model {
	th := theme.Default()
	m := &Model{pane: th.Pane, modal: th.Modal}
	m.view.SetHeight(1)
	m.SetNames(names)
	return m
}

// SetNames replaces the display cache and pulls the cursor back in range.
func (m *Model) SetNames(names []string) {
	m.names = append(m.names[:0:0], names...)
	m.cursor.ClampY(len(m.names) - 1)
	m.view.Clamp(len(m.names))
	m.view.Follow(m.cursor.Y)
}

// Names returns a copy of the display cache.
func (m *Model) Names() []string {
	return append([]string(nil), m.names...)
}

// Cursor returns the current cursor.
func (m *Model) Cursor() cursor.Cursor { return m.cursor }

// Offset is the first visible row.
func (m *Model) Offset() int { return m.view.Offset }

// Adding reports whether the add-list popup is open.
func (m *Model) Adding() bool { return m.adding }

// Buffer returns the popup input typed so far.
func (m *Model) Buffer() string { return string(m.buffer) }

// Select moves the cursor to idx, clamped to the names.
func (m *Model) Select(idx int) {
	m.cursor.Y = idx
	m.cursor.ClampY(len(m.names) - 1)
	m.view.Follow(m.cursor.Y)
}

// SetSize sets the outer width and height of the pane.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.view.SetHeight(height - m.pane.Frame.GetVerticalFrameSize() - 1)
	m.view.Follow(m.cursor.Y)
}

// HandleKey interprets one key press.
func (m *Model) HandleKey(ev keys.Event) Intent {
	if m.adding {
		return m.handlePopupKey(ev)
	}

	switch {
	case ev.IsUp():
		m.cursor.MoveUp(1)
		m.view.Follow(m.cursor.Y)
		return Intent{Kind: Show, Index: m.cursor.Y}
	case ev.IsDown():
		m.cursor.MoveDown(1, len(m.names)-1)
		m.view.Follow(m.cursor.Y)
		return Intent{Kind: Show, Index: m.cursor.Y}
	case ev.Code == keys.Space:
		if len(m.names) == 0 {
			return Intent{}
		}
		return Intent{Kind: Selected, Index: m.cursor.Y}
	case ev.Is('x'):
		return m.remove()
	case ev.Code == keys.Enter:
		m.adding = true
		m.buffer = m.buffer[:0]
		return Intent{Kind: OpenPopup}
	}
	return Intent{}
}

func (m *Model) remove() Intent {
	if len(m.names) == 0 {
		return Intent{}
	}
	idx := m.cursor.Y
	m.names = append(m.names[:idx], m.names[idx+1:]...)
	if m.cursor.Y > len(m.names)-1 {
		m.cursor.MoveUp(1)
	}
	m.view.Clamp(len(m.names))
	m.view.Follow(m.cursor.Y)
	return Intent{Kind: Remove, Index: idx}
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
		title := strings.TrimSpace(string(m.buffer))
		if err := parser.ValidTitle(title); err != nil {
			return Intent{Kind: Rejected, Reason: err.Error()}
		}
		m.adding = false
		m.buffer = m.buffer[:0]
		return Intent{Kind: AddList, Title: title}
	}
	if r, ok := ev.Text(); ok {
		m.buffer = append(m.buffer, r)
	}
	return Intent{}
}

// View renders the pane. The cursor row is highlighted only when focused.
func (m *Model) View(focused bool) string {
	frame := m.pane.Frame
	if focused {
		frame = m.pane.FocusedFrame
	}
	inner := max(m.width-frame.GetHorizontalFrameSize(), 8)

	lines := []string{m.pane.Title.Render("Lists")}
	if len(m.names) == 0 {
		lines = append(lines, m.pane.Placeholder.Render("no lists · enter adds"))
	}
	start, end := m.view.Visible(len(m.names))
	for i := start; i < end; i++ {
		name := truncate.StringWithTail(m.names[i], uint(inner-2), "…")
		if i == m.cursor.Y {
			row := "› " + name
			if focused {
				row = m.pane.Selected.Render(row)
			}
			lines = append(lines, row)
			continue
		}
		lines = append(lines, m.pane.Row.Render("  "+name))
	}
	for len(lines) < m.view.Height+1 {
		lines = append(lines, "")
	}
	return frame.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// PopupView renders the add-list prompt, or "" when the popup is closed.
func (m *Model) PopupView() string {
	if !m.adding {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.modal.Title.Render("New list"),
		m.modal.Prompt.Render("> ")+string(m.buffer)+"▏",
	)
	return m.modal.Frame.Render(body)
}
