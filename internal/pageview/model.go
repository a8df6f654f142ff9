package pageview

import (
	"log/slog"
	"sync/atomic"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// settleCompleteMsg clears the gesture flag one update after the settle
// starts, so the first animation frame still sees an active gesture.
type settleCompleteMsg struct {
	id         int
	generation uint64
}

// settleFrameMsg advances a settle animation.
type settleFrameMsg struct {
	id         int
	generation uint64
}

// PageChangedMsg is emitted when a transition commits a different page.
type PageChangedMsg struct {
	ID   int
	Page int
}

// Option configures a Model.
type Option func(*Model)

// WithBinding makes the view read and write its selection through b.
func WithBinding(b Binding) Option {
	return func(m *Model) { m.binding = b }
}

// WithOnPageChanged registers a callback for committed page changes.
func WithOnPageChanged(fn func(page int)) Option {
	return func(m *Model) { m.onPageChanged = fn }
}

// WithClock replaces time.Now for the settle animation.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithLogger sets the logger for gesture transitions.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.KeyMap = k }
}

// Model is a paged view component. The pane set is fixed for the lifetime
// of the model.
type Model struct {
	KeyMap KeyMap

	id       int
	panes    []Pane
	settings Settings
	state    *ScrollState
	rec      recognizer
	settle   *Settle

	width   int
	height  int
	originX int
	originY int

	binding       Binding
	onPageChanged func(page int)
	now           func() time.Time
	logger        *slog.Logger
}

// New creates a page view over panes.
func New(panes []Pane, settings Settings, opts ...Option) Model {
	settings = NewSettings(settings)
	m := Model{
		KeyMap:   DefaultKeyMap(settings.Axis),
		id:       nextID(),
		panes:    append([]Pane(nil), panes...),
		settings: settings,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.state = NewScrollState(settings, m.binding)
	m.state.SetLogger(m.logger)
	m.state.OnPageChanged(m.onPageChanged)
	m.rec = recognizer{axis: settings.Axis, minDistance: settings.MinimumDistance}
	return m
}

// NewHorizontal creates a view paging left and right.
func NewHorizontal(panes []Pane, opts ...Option) Model {
	return New(panes, DefaultSettings(Horizontal), opts...)
}

// NewVertical creates a view paging up and down.
func NewVertical(panes []Pane, opts ...Option) Model {
	return New(panes, DefaultSettings(Vertical), opts...)
}

// ID identifies this view in PageChangedMsg.
func (m Model) ID() int { return m.id }

// PageCount is the number of panes.
func (m Model) PageCount() int { return len(m.panes) }

// Page returns the selected page.
func (m Model) Page() int { return m.state.SelectedPage(len(m.panes)) }

// State exposes the underlying scroll state.
func (m Model) State() *ScrollState { return m.state }

// Settings returns the normalized settings.
func (m Model) Settings() Settings { return m.settings }

// Settling reports whether a settle animation is running.
func (m Model) Settling() bool { return m.settle != nil }

// Width returns the view width.
func (m Model) Width() int { return m.width }

// Height returns the view height.
func (m Model) Height() int { return m.height }

// SetOrigin tells the view where its top-left cell sits on screen so mouse
// coordinates can be made relative.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// SetSize resizes the view. A drag in flight is cancelled since its
// geometry no longer holds.
func (m *Model) SetSize(width, height int) tea.Cmd {
	var cmd tea.Cmd
	if m.state.Phase() == PhaseDragging && (width != m.width || height != m.height) {
		cmd = m.endGesture(true)
	}
	m.width, m.height = width, height
	m.settle = nil
	for _, p := range m.panes {
		if s, ok := p.(Sizer); ok {
			s.SetSize(width, height)
		}
	}
	return cmd
}

func (m Model) extent() float64 {
	if m.settings.Axis == Vertical {
		return float64(m.height)
	}
	return float64(m.width)
}

// Offset is the strip offset currently on screen, including a running
// settle animation.
func (m Model) Offset() float64 {
	if m.settle != nil {
		return m.settle.Value(m.now())
	}
	if m.state.Phase() == PhaseSettling {
		// Committed but not yet cleared: hold the resting position.
		return restingOffset(m.extent(), len(m.panes), m.Page())
	}
	n := len(m.panes)
	return Offset(m.settings.Axis, m.extent(), n, m.Page(), m.state.ContentOffset(n, m.extent()), m.state.GestureActive())
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles mouse, key and animation messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settleCompleteMsg:
		if msg.id == m.id {
			m.state.SettleComplete(msg.generation)
		}
		return m, nil

	case settleFrameMsg:
		if msg.id != m.id || m.settle == nil || m.settle.Generation != msg.generation {
			return m, nil
		}
		if m.settle.Done(m.now()) {
			m.settle = nil
			return m, nil
		}
		return m, m.frame(msg.generation)

	case tea.MouseClickMsg:
		return m.handlePress(msg)

	case tea.MouseMotionMsg:
		return m.handleMotion(msg)

	case tea.MouseReleaseMsg:
		return m.handleRelease(msg)

	case tea.MouseWheelMsg:
		return m, m.forwardMouse(msg)

	case tea.BlurMsg:
		return m, m.endGesture(true)

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Cancel) && m.state.Phase() == PhaseDragging:
			return m, m.endGesture(true)
		case key.Matches(msg, m.KeyMap.Next):
			return m, m.Next()
		case key.Matches(msg, m.KeyMap.Prev):
			return m, m.Prev()
		case key.Matches(msg, m.KeyMap.First):
			return m, m.First()
		case key.Matches(msg, m.KeyMap.Last):
			return m, m.Last()
		}
	}

	if p, ok := m.currentPane().(Updater); ok {
		return m, p.Update(msg)
	}
	return m, nil
}

func (m *Model) handlePress(msg tea.MouseClickMsg) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	x, y := mouse.X-m.originX, mouse.Y-m.originY
	if !m.inside(x, y) {
		return *m, nil
	}

	var cmds []tea.Cmd
	// A press while a drag is still open means the release got lost.
	if m.rec.pressed && m.state.Phase() == PhaseDragging {
		cmds = append(cmds, m.endGesture(true))
	}
	if mouse.Button != tea.MouseLeft {
		m.rec.clear()
		cmds = append(cmds, m.forwardMouse(msg))
		return *m, tea.Batch(cmds...)
	}

	m.rec.press(x, y)
	switch m.settings.GesturePriority {
	case PriorityStandard:
		handled, cmd := m.forwardMouseHandled(msg)
		m.rec.claimed = handled
		cmds = append(cmds, cmd)
	case PrioritySimultaneous, PriorityDisabled:
		cmds = append(cmds, m.forwardMouse(msg))
	case PriorityHigh:
		if !m.state.Accepts(m.rec.gesture(), m.extent()) {
			cmds = append(cmds, m.forwardMouse(msg))
		}
	}
	return *m, tea.Batch(cmds...)
}

func (m *Model) handleMotion(msg tea.MouseMotionMsg) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	if !m.rec.pressed {
		return *m, m.forwardMouse(msg)
	}
	// Motion without the button held: the release was dropped.
	if mouse.Button != tea.MouseLeft {
		cmd := m.endGesture(true)
		return *m, tea.Batch(cmd, m.forwardMouse(msg))
	}

	var cmds []tea.Cmd
	if m.forwardsToPane() {
		cmds = append(cmds, m.forwardMouse(msg))
	}
	if m.rec.claimed {
		return *m, tea.Batch(cmds...)
	}
	if m.rec.move(mouse.X-m.originX, mouse.Y-m.originY) {
		if m.state.DragChanged(m.rec.gesture(), len(m.panes), m.extent()) {
			// A new drag supersedes any settle still on screen.
			m.settle = nil
		}
	}
	return *m, tea.Batch(cmds...)
}

func (m *Model) handleRelease(msg tea.MouseReleaseMsg) (Model, tea.Cmd) {
	if !m.rec.pressed {
		return *m, m.forwardMouse(msg)
	}
	var cmds []tea.Cmd
	if m.forwardsToPane() {
		cmds = append(cmds, m.forwardMouse(msg))
	}
	if !m.rec.claimed && m.rec.recognized {
		mouse := msg.Mouse()
		m.rec.move(mouse.X-m.originX, mouse.Y-m.originY)
		cmds = append(cmds, m.endGesture(false))
	}
	m.rec.clear()
	return *m, tea.Batch(cmds...)
}

// forwardsToPane reports whether the pane sees the events of the current
// press under the configured priority.
func (m Model) forwardsToPane() bool {
	switch m.settings.GesturePriority {
	case PriorityStandard:
		return m.rec.claimed
	case PriorityHigh:
		return !m.state.Accepts(m.rec.gesture(), m.extent())
	default:
		return true
	}
}

// endGesture settles the drag in flight. cancel selects the reset path used
// when the end event never arrived; both share ScrollState.finalize.
func (m *Model) endGesture(cancel bool) tea.Cmd {
	from := m.Offset()
	var (
		t  Transition
		ok bool
	)
	if cancel {
		t, ok = m.state.Reset(len(m.panes), m.extent())
	} else {
		t, ok = m.state.DragEnded(m.rec.gesture(), len(m.panes), m.extent())
	}
	m.rec.clear()
	if !ok {
		return nil
	}

	id, gen := m.id, t.Generation
	complete := func() tea.Msg {
		return settleCompleteMsg{id: id, generation: gen}
	}
	return tea.Batch(complete, m.startSettle(t, from))
}

// startSettle animates from the given offset to the resting offset of the
// transition's target page.
func (m *Model) startSettle(t Transition, from float64) tea.Cmd {
	to := restingOffset(m.extent(), len(m.panes), t.To)
	var cmds []tea.Cmd
	if t.Changed() {
		id, page := m.id, t.To
		cmds = append(cmds, func() tea.Msg { return PageChangedMsg{ID: id, Page: page} })
	}
	if t.Duration <= 0 || from == to {
		m.settle = nil
		return tea.Batch(cmds...)
	}
	m.settle = &Settle{
		Generation: t.Generation,
		From:       from,
		To:         to,
		Start:      m.now(),
		Duration:   t.Duration,
	}
	cmds = append(cmds, m.frame(t.Generation))
	return tea.Batch(cmds...)
}

func (m Model) frame(generation uint64) tea.Cmd {
	id := m.id
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return settleFrameMsg{id: id, generation: generation}
	})
}

// GoTo selects page with the settle animation.
func (m *Model) GoTo(page int) tea.Cmd {
	if len(m.panes) == 0 {
		return nil
	}
	from := m.Offset()
	m.rec.clear()
	t := m.state.SetPage(page, len(m.panes))
	return m.startSettle(t, from)
}

// Next selects the following page, if any.
func (m *Model) Next() tea.Cmd {
	if m.Page() >= len(m.panes)-1 {
		return nil
	}
	return m.GoTo(m.Page() + 1)
}

// Prev selects the preceding page, if any.
func (m *Model) Prev() tea.Cmd {
	if m.Page() == 0 {
		return nil
	}
	return m.GoTo(m.Page() - 1)
}

// First selects page 0.
func (m *Model) First() tea.Cmd { return m.GoTo(0) }

// Last selects the final page.
func (m *Model) Last() tea.Cmd { return m.GoTo(len(m.panes) - 1) }

func (m Model) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

func (m Model) currentPane() Pane {
	if len(m.panes) == 0 {
		return nil
	}
	return m.panes[m.Page()]
}

func (m Model) forwardMouse(msg tea.MouseMsg) tea.Cmd {
	_, cmd := m.forwardMouseHandled(msg)
	return cmd
}

func (m Model) forwardMouseHandled(msg tea.MouseMsg) (bool, tea.Cmd) {
	h, ok := m.currentPane().(MouseHandler)
	if !ok {
		return false, nil
	}
	return h.HandleMouse(relativeMouse(msg, m.originX, m.originY))
}

// View renders the visible panes with the indicator overlay.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	strip := Compose(m.panes, m.width, m.height, m.settings.Axis, m.Offset())

	maxExtent := m.width
	if m.settings.Axis == Vertical {
		maxExtent = m.height
	}
	indicator := RenderIndicator(m.settings.Axis, len(m.panes), m.Page(), m.settings.Theme, maxExtent)
	if indicator == "" {
		return strip
	}

	x, y := IndicatorPosition(
		m.settings.Axis,
		m.settings.IndicatorAlignment,
		m.settings.IndicatorOffset,
		m.width, m.height,
		lipgloss.Width(indicator), lipgloss.Height(indicator),
	)
	canvas := lipgloss.NewCanvas(
		lipgloss.NewLayer(strip),
		lipgloss.NewLayer(indicator).X(x).Y(y).Z(1),
	)
	return canvas.Render()
}
