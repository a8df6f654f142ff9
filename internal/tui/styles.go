package tui

import (
	"charm.land/bubbles/v2/help"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/pageview/internal/config"
)

// Styles holds the footer styles derived from the color scheme
type Styles struct {
	Footer   lipgloss.Style
	Position lipgloss.Style
	Help     help.Styles
}

// NewStyles builds styles from cs
func NewStyles(cs config.ColorScheme) Styles {
	h := help.New().Styles
	h.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(cs.Accent))
	h.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(cs.Subtle))
	h.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(cs.Subtle))
	h.FullKey = h.ShortKey
	h.FullDesc = h.ShortDesc
	h.FullSeparator = h.ShortSeparator

	return Styles{
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.Normal)).
			Padding(0, 1),
		Position: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cs.Title)),
		Help: h,
	}
}
