package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// pageLabel renders a one-based position like "2/5"
func pageLabel(page, count int) string {
	return fmt.Sprintf("%d/%d", page+1, count)
}

func (m Model) footer() string {
	position := ""
	if n := m.pager.PageCount(); n > 0 {
		position = m.styles.Position.Render(pageLabel(m.pager.Page(), n)) + "  "
	}
	return m.styles.Footer.Render(position + m.help.View(m.keys))
}

// View implements tea.Model
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.ReportFocus = true
	view.BackgroundColor = lipgloss.Color(m.colors.Background)

	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	view.Content = lipgloss.JoinVertical(lipgloss.Left, m.pager.View(), m.footer())
	return view
}
