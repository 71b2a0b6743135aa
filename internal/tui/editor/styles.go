package editor

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	mutedColor  = lipgloss.Color("245")
	errorColor  = lipgloss.Color("196")
	borderColor = lipgloss.Color("240")

	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))

	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

// styles holds the accent-dependent styles.
type styles struct {
	title    lipgloss.Style
	pane     lipgloss.Style
	focused  lipgloss.Style
	heading  lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	category lipgloss.Style
}

func newStyles(accent string) styles {
	if accent == "" {
		accent = "#3b82f6"
	}
	a := lipgloss.Color(accent)
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(a).
			PaddingRight(2),
		pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1),
		focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(a).
			Padding(0, 1),
		heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(a).
			MarginBottom(1),
		cursor: lipgloss.NewStyle().
			Foreground(a).
			Bold(true),
		selected: lipgloss.NewStyle().
			Reverse(true),
		category: lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true),
	}
}
