// Package app hosts the root state machine of the redo TUI. It owns the
// collection, routes key presses to the active pane and applies the intents
// the panes return.
package app

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/redo/pkg/todo"
	"tableflip.dev/redo/pkg/tui/components/editor"
	"tableflip.dev/redo/pkg/tui/components/help"
	"tableflip.dev/redo/pkg/tui/components/selection"
	"tableflip.dev/redo/pkg/tui/keys"
	"tableflip.dev/redo/pkg/tui/theme"
)

// Screen is the active top-level mode.
type Screen int

const (
	ScreenSelection Screen = iota
	ScreenEditor
	ScreenHelp
)

func (s Screen) String() string {
	switch s {
	case ScreenEditor:
		return "editor"
	case ScreenHelp:
		return "help"
	default:
		return "selection"
	}
}

// Popup is a transient text input owned by one of the panes.
type Popup int

const (
	PopupAddingList Popup = iota
	PopupAddingItem
)

// Option configures a Model.
type Option func(*Model)

// WithLogger routes state machine logging to l.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// Model contains UI state.
type Model struct {
	collection *todo.Collection
	screen     Screen
	popups     []Popup

	selection *selection.Model
	editor    *editor.Model
	help      *help.Model

	// shown is the list previewed in the right pane, and the list being
	// edited while the screen is ScreenEditor.
	shown int

	width  int
	height int

	status      string
	statusErr   bool
	diagnostics []string
	quitting    bool

	logger *slog.Logger
	theme  theme.Theme
}

// New builds the state machine around c. A nil collection starts empty.
func New(c *todo.Collection, opts ...Option) *Model {
	if c == nil {
		c = todo.NewCollection()
	}
	m := &Model{
		collection: c,
		selection:  selection.New(c.Names()),
		editor:     editor.New(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		theme:      theme.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Collection returns the collection being edited.
func (m *Model) Collection() *todo.Collection { return m.collection }

// Screen returns the active screen.
func (m *Model) Screen() Screen { return m.screen }

// Popup returns the popup receiving keystrokes, if any.
func (m *Model) Popup() (Popup, bool) {
	if len(m.popups) == 0 {
		return 0, false
	}
	return m.popups[len(m.popups)-1], true
}

// Shown is the index of the list previewed or edited.
func (m *Model) Shown() int { return m.shown }

// Selection exposes the selection pane.
func (m *Model) Selection() *selection.Model { return m.selection }

// Editor exposes the editor pane.
func (m *Model) Editor() *editor.Model { return m.editor }

// Quitting reports whether a quit key was seen.
func (m *Model) Quitting() bool { return m.quitting }

// Diagnostics returns messages collected for the shutdown report.
func (m *Model) Diagnostics() []string {
	return append([]string(nil), m.diagnostics...)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model. Every message is handled to completion before
// the next one is delivered.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyPressMsg:
		if m.HandleKey(keys.FromTea(msg)) {
			return m, tea.Quit
		}
	}
	return m, nil
}

// HandleKey runs one key press through the state machine. It returns true
// once the program should terminate.
func (m *Model) HandleKey(ev keys.Event) bool {
	if ev.Code == keys.Quit {
		m.logger.Debug("quit requested", "screen", m.screen.String())
		m.quitting = true
		return true
	}
	m.status, m.statusErr = "", false

	if _, open := m.Popup(); !open {
		switch m.screen {
		case ScreenHelp:
			if ev.Code == keys.Esc || ev.Is('?') {
				m.screen = ScreenSelection
			} else if m.help != nil {
				m.help.HandleKey(ev)
			}
			return false
		case ScreenSelection:
			if ev.Is('?') {
				m.showHelp()
				return false
			}
		}
	}

	switch m.owner() {
	case ScreenEditor:
		m.applyEditor(m.editor.HandleKey(ev, m.activeList()))
	default:
		m.applySelection(m.selection.HandleKey(ev))
	}
	return false
}

// owner is the screen whose pane receives the next key. An open popup wins
// over the screen.
func (m *Model) owner() Screen {
	if p, ok := m.Popup(); ok {
		if p == PopupAddingItem {
			return ScreenEditor
		}
		return ScreenSelection
	}
	return m.screen
}

func (m *Model) applySelection(in selection.Intent) {
	if in.Kind != selection.None {
		m.logger.Debug("selection intent", "kind", in.Kind.String(), "index", in.Index)
	}
	switch in.Kind {
	case selection.Show:
		m.shown = in.Index
	case selection.Selected:
		m.enterEditor(in.Index)
	case selection.Remove:
		if m.collection.Empty() {
			return
		}
		if m.collection.Remove(in.Index) {
			m.setStatus("list removed")
		}
		m.refreshNames()
	case selection.AddList:
		m.collection.Append(in.Title)
		m.refreshNames()
		m.popPopup()
		m.setStatus(fmt.Sprintf("added list %q", in.Title))
	case selection.OpenPopup:
		m.pushPopup(PopupAddingList)
	case selection.CancelPopup:
		m.popPopup()
	case selection.Rejected:
		m.reject(in.Reason)
	}
}

func (m *Model) applyEditor(in editor.Intent) {
	list, ok := m.collection.Get(m.shown)
	if !ok {
		m.logger.Warn("editor without a list", "index", m.shown, "lists", m.collection.Len())
		m.leaveEditor()
		return
	}
	if in.Kind != editor.None {
		m.logger.Debug("editor intent", "kind", in.Kind.String(), "index", in.Index, "list", list.Title)
	}

	switch in.Kind {
	case editor.Leave:
		m.leaveEditor()
		return
	case editor.Remove:
		if in.Index < 0 || in.Index >= list.Len() {
			panic(fmt.Sprintf("app: remove item %d from %q with %d items", in.Index, list.Title, list.Len()))
		}
		list.Remove(in.Index)
	case editor.Add:
		wasEmpty := list.Len() == 0
		list.Add(in.Text)
		m.editor.AfterAdd(wasEmpty, list.Len())
		m.popPopup()
	case editor.OpenPopup:
		m.pushPopup(PopupAddingItem)
	case editor.CancelPopup:
		m.popPopup()
	}

	// The editor never rests on an empty list without an open popup.
	if _, open := m.Popup(); !open && m.screen == ScreenEditor && list.Len() == 0 {
		m.leaveEditor()
	}
}

func (m *Model) enterEditor(idx int) {
	if _, ok := m.collection.Get(idx); !ok {
		return
	}
	m.shown = idx
	m.editor.Reset()
	m.screen = ScreenEditor
}

func (m *Model) leaveEditor() {
	m.editor.Reset()
	m.screen = ScreenSelection
	m.selection.Select(m.shown)
}

func (m *Model) showHelp() {
	if m.help == nil {
		m.help = help.New(m.width, m.bodyHeight())
	}
	m.screen = ScreenHelp
}

func (m *Model) activeList() *todo.List {
	l, _ := m.collection.Get(m.shown)
	return l
}

// refreshNames rebuilds the selection cache after the set of lists changed
// and keeps the preview on the selection cursor.
func (m *Model) refreshNames() {
	m.selection.SetNames(m.collection.Names())
	m.shown = m.selection.Cursor().Y
}

func (m *Model) pushPopup(p Popup) {
	m.popups = append(m.popups, p)
}

func (m *Model) popPopup() {
	if n := len(m.popups); n > 0 {
		m.popups = m.popups[:n-1]
	}
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) reject(reason string) {
	m.status, m.statusErr = reason, true
	m.diagnostics = append(m.diagnostics, reason)
	m.logger.Info("input rejected", "reason", reason)
}
