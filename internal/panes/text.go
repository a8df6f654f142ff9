package panes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/pageview/internal/pageview"
)

// TextPane shows plain text wrapped to the pane width and centered.
type TextPane struct {
	Title string
	Body  string
	Style lipgloss.Style
}

// NewTextPane creates a centered text pane.
func NewTextPane(title, body string) *TextPane {
	return &TextPane{Title: title, Body: body, Style: lipgloss.NewStyle()}
}

// View implements pageview.Pane.
func (p *TextPane) View(width, height int) string {
	wrapWidth := max(width-4, 1)
	body := wordwrap.String(p.Body, wrapWidth)
	if p.Title != "" {
		title := lipgloss.NewStyle().Bold(true).Render(p.Title)
		body = lipgloss.JoinVertical(lipgloss.Center, title, "", body)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, p.Style.Render(body))
}

// Load opens path as a pane. Markdown files get a MarkdownPane, anything
// else a TextPane.
func Load(path, markdownStyle string) (pageview.Pane, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	title := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return NewMarkdownPane(title, string(data), markdownStyle), nil
	default:
		return NewTextPane(title, string(data)), nil
	}
}

// LoadAll opens every path in order.
func LoadAll(paths []string, markdownStyle string) ([]pageview.Pane, error) {
	out := make([]pageview.Pane, 0, len(paths))
	for _, path := range paths {
		p, err := Load(path, markdownStyle)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
