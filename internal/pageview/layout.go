package pageview

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Offset returns the translation applied to the strip of panes.
//
// The strip is centered on the viewport, so base shifts it until page 0
// sits under the viewport. While a gesture is active liveOffset, measured
// from the start of the strip (see ScrollState.ContentOffset), is added on
// top; otherwise the strip rests on the selected page.
func Offset(axis Axis, containerExtent float64, pageCount, selected int, liveOffset float64, gestureActive bool) float64 {
	base := (containerExtent / 2) * float64(pageCount-1)
	if gestureActive {
		return base + liveOffset
	}
	return base + -1*float64(selected)*containerExtent
}

// restingOffset is Offset for a page at rest.
func restingOffset(containerExtent float64, pageCount, page int) float64 {
	return Offset(Horizontal, containerExtent, pageCount, page, 0, false)
}

// windowStart converts a strip offset into the first strip cell visible in
// the viewport.
func windowStart(offset, containerExtent float64, pageCount int) int {
	base := (containerExtent / 2) * float64(pageCount-1)
	return int(math.Round(base - offset))
}

// Compose renders the part of the strip that lies under a width x height
// viewport translated by offset along axis. Cells beyond either end of the
// strip render blank. Only panes intersecting the viewport are drawn.
func Compose(panes []Pane, width, height int, axis Axis, offset float64) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(panes) == 0 {
		return blank(width, height)
	}

	extent := width
	if axis == Vertical {
		extent = height
	}
	start := windowStart(offset, float64(extent), len(panes))

	first := floorDiv(start, extent)
	last := floorDiv(start+extent-1, extent)

	if axis == Vertical {
		return composeVertical(panes, width, height, start, first, last)
	}
	return composeHorizontal(panes, width, height, start, first, last)
}

func composeHorizontal(panes []Pane, width, height, start, first, last int) string {
	rows := make([]strings.Builder, height)
	for idx := first; idx <= last; idx++ {
		// Columns of this pane that fall inside the viewport.
		left := max(start, idx*width)
		right := min(start+width, (idx+1)*width)
		if right <= left {
			continue
		}
		var lines []string
		if idx >= 0 && idx < len(panes) {
			lines = paneLines(panes[idx], width, height)
		}
		for y := range rows {
			if lines == nil {
				rows[y].WriteString(strings.Repeat(" ", right-left))
				continue
			}
			rows[y].WriteString(ansi.Cut(lines[y], left-idx*width, right-idx*width))
		}
	}

	out := make([]string, height)
	for y := range rows {
		out[y] = rows[y].String()
	}
	return strings.Join(out, "\n")
}

func composeVertical(panes []Pane, width, height, start, first, last int) string {
	out := make([]string, 0, height)
	empty := strings.Repeat(" ", width)
	for idx := first; idx <= last; idx++ {
		top := max(start, idx*height)
		bottom := min(start+height, (idx+1)*height)
		if bottom <= top {
			continue
		}
		if idx < 0 || idx >= len(panes) {
			for range bottom - top {
				out = append(out, empty)
			}
			continue
		}
		lines := paneLines(panes[idx], width, height)
		out = append(out, lines[top-idx*height:bottom-idx*height]...)
	}
	return strings.Join(out, "\n")
}

// paneLines renders p into exactly height lines of exactly width cells.
func paneLines(p Pane, width, height int) []string {
	view := lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height).
		Render(p.View(width, height))

	lines := strings.Split(view, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, line := range lines {
		if w := ansi.StringWidth(line); w < width {
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return lines
}

func blank(width, height int) string {
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// IndicatorPosition returns the top-left cell of an indicatorW x indicatorH
// overlay inside a containerW x containerH view. The overlay does not move
// with the drag. Horizontal paging lifts it by offset from its aligned
// position, vertical paging pushes it right by offset.
func IndicatorPosition(axis Axis, align Alignment, offset, containerW, containerH, indicatorW, indicatorH int) (int, int) {
	x := int(math.Round(float64(containerW-indicatorW) * float64(align.Horizontal)))
	y := int(math.Round(float64(containerH-indicatorH) * float64(align.Vertical)))
	if axis == Vertical {
		x += offset
	} else {
		y -= offset
	}
	x = min(max(x, 0), max(containerW-indicatorW, 0))
	y = min(max(y, 0), max(containerH-indicatorH, 0))
	return x, y
}
