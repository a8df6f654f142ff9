package panes

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/pageview/internal/pageview"
)

// Demo returns a three page deck shown when no files are given.
// The middle page is a long list that scrolls with the mouse wheel.
func Demo(markdownStyle string) []pageview.Pane {
	var list strings.Builder
	list.WriteString("# Page 2\n\nScroll this list with the mouse wheel. Drag near the edges to page.\n\n")
	for i := 1; i <= 40; i++ {
		fmt.Fprintf(&list, "- Item %d\n", i)
	}

	return []pageview.Pane{
		NewTextPane("Page 1", "Drag with the left mouse button, or use the arrow keys, to move between pages."),
		NewMarkdownPane("Page 2", list.String(), markdownStyle),
		NewTextPane("Page 3", "Dragging past the last page meets resistance and snaps back."),
	}
}
