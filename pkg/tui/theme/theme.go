package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Pane   PaneTheme
	Modal  ModalTheme
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PaneTheme styles the selection and editor panes.
type PaneTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Title        lipgloss.Style
	Row          lipgloss.Style
	Selected     lipgloss.Style
	Done         lipgloss.Style
	Placeholder  lipgloss.Style
}

// ModalTheme styles the popup prompt.
type ModalTheme struct {
	Frame  lipgloss.Style
	Title  lipgloss.Style
	Prompt lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("244")

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		},
		Pane: PaneTheme{
			Frame:        frame,
			FocusedFrame: frame.BorderForeground(accent),
			Title:        lipgloss.NewStyle().Bold(true),
			Row:          lipgloss.NewStyle(),
			Selected:     lipgloss.NewStyle().Foreground(accent).Reverse(true),
			Done:         lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
			Placeholder:  lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(0, 1),
			Title:  lipgloss.NewStyle().Bold(true),
			Prompt: lipgloss.NewStyle().Foreground(accent),
		},
	}
}
