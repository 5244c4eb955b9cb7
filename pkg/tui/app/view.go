package app

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// popupReserve is the number of rows kept free below the panes for a popup.
const popupReserve = 3

// SetSize splits the terminal between the two panes.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.applySizes()
}

// applySizes recalculates pane sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// Allocate ~1/3 for list names with sensible bounds.
	left := m.width / 3
	if left < 24 {
		left = 24
	}
	if left > 40 {
		left = 40
	}
	right := m.width - left - 1
	if right < 20 {
		right = 20
	}
	height := m.bodyHeight()
	m.selection.SetSize(left, height)
	m.editor.SetSize(right, height)
	if m.help != nil {
		m.help.SetSize(m.width, height)
	}
}

// bodyHeight leaves room for the popup and the footer line.
func (m *Model) bodyHeight() int {
	h := m.height - popupReserve - 1
	if h < 5 {
		h = 5
	}
	return h
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	if m.screen == ScreenHelp && m.help != nil {
		sections = append(sections, m.help.View())
	} else {
		left := m.selection.View(m.screen == ScreenSelection)
		right := m.editor.View(m.activeList(), m.screen == ScreenEditor)
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	}

	if p, ok := m.Popup(); ok {
		switch p {
		case PopupAddingList:
			sections = append(sections, m.selection.PopupView())
		case PopupAddingItem:
			sections = append(sections, m.editor.PopupView())
		}
	}
	sections = append(sections, m.footer())
	return strings.Join(sections, "\n")
}

func (m *Model) footer() string {
	if m.status != "" {
		if m.statusErr {
			return m.theme.Footer.Error.Render(m.status)
		}
		return m.theme.Footer.Status.Render(m.status)
	}
	return m.theme.Footer.Help.Render(m.hint())
}

func (m *Model) hint() string {
	if p, ok := m.Popup(); ok {
		if p == PopupAddingList {
			return "enter add list · esc cancel · ctrl+q quit"
		}
		return "enter add item · esc cancel · ctrl+q quit"
	}
	switch m.screen {
	case ScreenEditor:
		return "space toggle · x remove · enter add · esc back · ctrl+q quit"
	case ScreenHelp:
		return "j/k scroll · pgup/pgdown page · esc close help · ctrl+q quit"
	default:
		return "space open · x remove · enter new list · ? help · ctrl+q quit"
	}
}

// Run launches the interactive program and blocks until it exits. The
// returned model carries the edited collection.
func Run(ctx context.Context, m *Model) (*Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(*Model); ok && fm != nil {
		m = fm
	}
	return m, err
}
