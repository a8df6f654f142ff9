package pageview

import tea "charm.land/bubbletea/v2"

// Pane is one unit of content shown across the whole view.
type Pane interface {
	// View renders the pane into a width x height area. Output larger than
	// the area is clipped, smaller output is padded.
	View(width, height int) string
}

// MouseHandler is implemented by panes that react to the mouse themselves,
// such as scrollable content. Coordinates are relative to the pane.
// HandleMouse reports whether the pane consumed the event.
type MouseHandler interface {
	HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd)
}

// Sizer is implemented by panes that need to know their size ahead of View.
type Sizer interface {
	SetSize(width, height int)
}

// Updater is implemented by panes that want the messages the view does not
// consume itself. Only the selected pane receives them.
type Updater interface {
	Update(msg tea.Msg) tea.Cmd
}

// StringPane renders a fixed string.
type StringPane string

func (s StringPane) View(int, int) string { return string(s) }

// PaneFunc adapts a render function to Pane.
type PaneFunc func(width, height int) string

func (f PaneFunc) View(width, height int) string { return f(width, height) }

// relativeMouse shifts a mouse message by (-dx, -dy).
func relativeMouse(msg tea.MouseMsg, dx, dy int) tea.MouseMsg {
	shift := func(m tea.Mouse) tea.Mouse {
		m.X -= dx
		m.Y -= dy
		return m
	}
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		return tea.MouseClickMsg(shift(tea.Mouse(msg)))
	case tea.MouseReleaseMsg:
		return tea.MouseReleaseMsg(shift(tea.Mouse(msg)))
	case tea.MouseMotionMsg:
		return tea.MouseMotionMsg(shift(tea.Mouse(msg)))
	case tea.MouseWheelMsg:
		return tea.MouseWheelMsg(shift(tea.Mouse(msg)))
	}
	return msg
}
