// Package panes provides the content panes shown by the pager.
package panes

import (
	"strings"
	"sync"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
)

type rendererKey struct {
	style string
	width int
}

// Cache Glamour renderers by style and width to avoid expensive re-creation
var rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given style and width
func getRenderer(style string, width int) (*glamour.TermRenderer, error) {
	k := rendererKey{style: style, width: width}
	if cached, ok := rendererCache.Load(k); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	styleOpt := glamour.WithStandardStyle(style)
	if style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	renderer, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(k, renderer)
	return renderer, nil
}

// MarkdownPane renders markdown into a scrollable viewport. The mouse wheel
// scrolls the content without paging.
type MarkdownPane struct {
	Title  string
	source string
	style  string

	vp     viewport.Model
	width  int
	height int
}

// NewMarkdownPane creates a pane for markdown source rendered with a glamour
// standard style ("dark", "light", "notty", ...) or "auto".
func NewMarkdownPane(title, source, style string) *MarkdownPane {
	if style == "" {
		style = "dark"
	}
	vp := viewport.New()
	vp.Style = lipgloss.NewStyle()
	vp.MouseWheelEnabled = true
	return &MarkdownPane{
		Title:  title,
		source: source,
		style:  style,
		vp:     vp,
	}
}

// SetSize re-renders the markdown when the width changes.
func (p *MarkdownPane) SetSize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	rerender := width != p.width
	p.width, p.height = width, height
	p.vp.SetWidth(width)
	p.vp.SetHeight(height)
	if rerender {
		p.vp.SetContent(p.render(width))
	}
}

func (p *MarkdownPane) render(width int) string {
	renderer, err := getRenderer(p.style, max(width-2, 1))
	if err != nil {
		return p.source
	}
	out, err := renderer.Render(p.source)
	if err != nil {
		return p.source
	}
	return strings.TrimRight(out, "\n")
}

// View implements pageview.Pane.
func (p *MarkdownPane) View(width, height int) string {
	p.SetSize(width, height)
	return p.vp.View()
}

// HandleMouse scrolls on wheel events and leaves everything else alone.
func (p *MarkdownPane) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if _, ok := msg.(tea.MouseWheelMsg); !ok {
		return false, nil
	}
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return true, cmd
}

// Update passes scrolling keys to the viewport.
func (p *MarkdownPane) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyPressMsg); !ok {
		return nil
	}
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return cmd
}

// ScrollPercent reports how far the content is scrolled.
func (p *MarkdownPane) ScrollPercent() float64 {
	return p.vp.ScrollPercent()
}
