package pageview

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRenderIndicatorSinglePage(t *testing.T) {
	assert.Empty(t, RenderIndicator(Horizontal, 1, 0, DefaultTheme(), 0))
	assert.Empty(t, RenderIndicator(Vertical, 0, 0, DefaultTheme(), 0))
}

func TestRenderIndicatorHorizontal(t *testing.T) {
	out := RenderIndicator(Horizontal, 3, 1, DefaultTheme(), 80)

	// three dots, two gaps, one cell of padding either side
	assert.Equal(t, 7, lipgloss.Width(out))
	assert.Equal(t, 1, lipgloss.Height(out))
	assert.Equal(t, " ● ● ● ", ansi.Strip(out))
}

func TestRenderIndicatorCompact(t *testing.T) {
	out := RenderIndicator(Horizontal, 4, 0, CompactTheme(), 80)
	assert.Equal(t, "••••", ansi.Strip(out))
}

func TestRenderIndicatorHighlightsSelected(t *testing.T) {
	first := RenderIndicator(Horizontal, 3, 0, DefaultTheme(), 80)
	second := RenderIndicator(Horizontal, 3, 1, DefaultTheme(), 80)
	assert.Equal(t, ansi.Strip(first), ansi.Strip(second))

	// an out of range selection is clamped to the last page
	assert.Equal(t,
		RenderIndicator(Horizontal, 3, 2, DefaultTheme(), 80),
		RenderIndicator(Horizontal, 3, 9, DefaultTheme(), 80))
}

func TestRenderIndicatorFallsBackToNumbers(t *testing.T) {
	out := RenderIndicator(Horizontal, 40, 4, DefaultTheme(), 20)
	assert.Equal(t, " 5/40 ", ansi.Strip(out))

	out = RenderIndicator(Vertical, 12, 0, DefaultTheme(), 10)
	assert.Equal(t, " 1/12 ", ansi.Strip(out))
}

func TestRenderIndicatorVertical(t *testing.T) {
	out := RenderIndicator(Vertical, 3, 2, DefaultTheme(), 40)

	assert.Equal(t, 5, lipgloss.Height(out))
	assert.Equal(t, 3, lipgloss.Width(out))
	assert.Equal(t, 3, strings.Count(ansi.Strip(out), "●"))
}
