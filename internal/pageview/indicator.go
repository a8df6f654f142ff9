package pageview

import (
	"strings"

	"charm.land/bubbles/v2/paginator"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// RenderIndicator draws one dot per page along axis with the selected dot
// highlighted. When the dots do not fit in maxExtent cells along the axis
// the indicator falls back to "n/total". maxExtent <= 0 means unbounded.
// A single page needs no indicator and renders empty.
func RenderIndicator(axis Axis, pageCount, selected int, theme Theme, maxExtent int) string {
	if pageCount <= 1 {
		return ""
	}
	theme = theme.normalized()
	selected = clampPage(selected, pageCount)

	bg := lipgloss.NewStyle().Background(lipgloss.Color(theme.Background))
	dot := strings.Repeat(theme.DotGlyph, theme.DotSize)
	active := bg.Foreground(lipgloss.Color(theme.DotActive)).Render(dot)
	inactive := bg.Foreground(lipgloss.Color(theme.DotInactive)).Render(dot)

	dotWidth := ansi.StringWidth(dot)
	box := bg.Padding(0, theme.Padding)

	var content string
	if axis == Vertical {
		need := pageCount + (pageCount-1)*theme.Spacing
		if maxExtent > 0 && need > maxExtent {
			content = arabic(pageCount, selected, bg.Foreground(lipgloss.Color(theme.DotActive)))
		} else {
			content = verticalDots(pageCount, selected, active, inactive, bg.Render(strings.Repeat(" ", dotWidth)), theme.Spacing)
		}
		return box.Render(content)
	}

	gap := bg.Render(strings.Repeat(" ", theme.Spacing))
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = active + gap
	p.InactiveDot = inactive + gap
	p.TotalPages = pageCount
	p.Page = selected

	rowWidth := pageCount*dotWidth + (pageCount-1)*theme.Spacing
	if maxExtent > 0 && rowWidth+2*theme.Padding > maxExtent {
		content = arabic(pageCount, selected, bg.Foreground(lipgloss.Color(theme.DotActive)))
	} else {
		// Every dot carries a trailing gap; drop the last one.
		content = ansi.Truncate(p.View(), rowWidth, "")
	}
	return box.Render(content)
}

func verticalDots(pageCount, selected int, active, inactive, filler string, spacing int) string {
	lines := make([]string, 0, pageCount+(pageCount-1)*spacing)
	for i := range pageCount {
		if i > 0 {
			for range spacing {
				lines = append(lines, filler)
			}
		}
		if i == selected {
			lines = append(lines, active)
		} else {
			lines = append(lines, inactive)
		}
	}
	return strings.Join(lines, "\n")
}

func arabic(pageCount, selected int, style lipgloss.Style) string {
	p := paginator.New()
	p.Type = paginator.Arabic
	p.TotalPages = pageCount
	p.Page = selected
	return style.Render(p.View())
}
