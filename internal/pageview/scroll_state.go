package pageview

import (
	"log/slog"
	"time"
)

// Phase is the gesture state of a ScrollState.
type Phase int

const (
	// PhaseIdle: no gesture, zero live offset.
	PhaseIdle Phase = iota
	// PhaseDragging: the live offset tracks the pointer.
	PhaseDragging
	// PhaseSettling: the selection is committed and the strip animates to
	// rest. The gesture stays active until SettleComplete.
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseSettling:
		return "settling"
	default:
		return "idle"
	}
}

// rubberBand is the resistance applied when dragging past either end.
const rubberBand = 3.0

// Binding is caller-owned storage for the selected page. ScrollState writes
// through it on every transition and reads it back on every operation, so
// the caller may also drive the selection.
type Binding interface {
	Page() int
	SetPage(page int)
}

// PageCell is the simplest Binding: a plain int.
type PageCell struct {
	page int
}

// NewPageCell returns a cell holding page.
func NewPageCell(page int) *PageCell {
	return &PageCell{page: page}
}

func (c *PageCell) Page() int        { return c.page }
func (c *PageCell) SetPage(page int) { c.page = page }

// Transition describes a committed page change (or snap back) that the host
// animates. Generation identifies the settle so a stale completion can be
// dropped once a newer gesture has taken over.
type Transition struct {
	Generation uint64
	From       int
	To         int
	Duration   time.Duration
}

// Changed reports whether the transition moved the selection.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// ScrollState is the drag-to-page state machine.
//
//	Idle --DragChanged--> Dragging --DragEnded/Reset--> Settling --SettleComplete--> Idle
//
// A DragChanged during Settling starts a new Dragging phase and the pending
// SettleComplete of the old one is ignored.
type ScrollState struct {
	settings      Settings
	binding       Binding
	onPageChanged func(page int)
	logger        *slog.Logger

	liveOffset    float64
	gestureActive bool
	phase         Phase
	generation    uint64
}

// NewScrollState creates the state for one page view. A nil binding gets a
// private PageCell starting at page 0.
func NewScrollState(settings Settings, binding Binding) *ScrollState {
	if binding == nil {
		binding = NewPageCell(0)
	}
	return &ScrollState{
		settings: NewSettings(settings),
		binding:  binding,
		logger:   slog.Default(),
	}
}

// OnPageChanged registers fn to run whenever a transition commits a
// different page.
func (s *ScrollState) OnPageChanged(fn func(page int)) {
	s.onPageChanged = fn
}

// SetLogger replaces the logger used for phase transitions.
func (s *ScrollState) SetLogger(l *slog.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Settings returns the normalized settings.
func (s *ScrollState) Settings() Settings { return s.settings }

// LiveOffset is the in-flight translation along the axis.
func (s *ScrollState) LiveOffset() float64 { return s.liveOffset }

// ContentOffset is the live offset measured from the start of the strip
// rather than from the selected page. It is the value layout adds to the
// base offset while a gesture is active.
func (s *ScrollState) ContentOffset(pageCount int, extent float64) float64 {
	return s.liveOffset - float64(s.SelectedPage(pageCount))*extent
}

// GestureActive is true from the first accepted drag update until the
// deferred SettleComplete.
func (s *ScrollState) GestureActive() bool { return s.gestureActive }

// Phase returns the current gesture phase.
func (s *ScrollState) Phase() Phase { return s.phase }

// Generation identifies the latest gesture or programmatic transition.
func (s *ScrollState) Generation() uint64 { return s.generation }

// SelectedPage returns the bound page clamped into [0, pageCount).
func (s *ScrollState) SelectedPage(pageCount int) int {
	return clampPage(s.binding.Page(), pageCount)
}

// Accepts applies the edge filter for a gesture within a page of extent.
func (s *ScrollState) Accepts(g Gesture, extent float64) bool {
	enabled := s.settings.DragEnabled && s.settings.GesturePriority != PriorityDisabled
	return Accepts(g.Start, extent, s.settings.EdgeSwipeThreshold, enabled)
}

// DragChanged updates the live offset from the gesture's cumulative
// translation. Calling it again with the same gesture is harmless.
// Returns false when the edge filter rejects the gesture.
func (s *ScrollState) DragChanged(g Gesture, pageCount int, extent float64) bool {
	if !s.Accepts(g, extent) {
		return false
	}
	if s.phase != PhaseDragging {
		s.generation++
		s.phase = PhaseDragging
		s.logger.Debug("page drag started", "generation", s.generation, "start", g.Start)
	}
	s.gestureActive = true

	selected := s.SelectedPage(pageCount)
	delta := g.Translation
	if (delta > 0 && selected == 0) || (delta < 0 && selected == pageCount-1) {
		s.liveOffset = delta / rubberBand
	} else {
		s.liveOffset = delta
	}
	return true
}

// DragEnded resolves the gesture with the threshold rule and commits the
// new selection. Returns false when the edge filter rejects the gesture or
// no drag is in flight.
func (s *ScrollState) DragEnded(g Gesture, pageCount int, extent float64) (Transition, bool) {
	if !s.Accepts(g, extent) || s.phase != PhaseDragging {
		return Transition{}, false
	}
	return s.finalize(pageCount, extent), true
}

// Reset is the cancellation path for a gesture whose end event never
// arrived. It settles exactly like DragEnded, ignoring the edge filter since
// the gesture was already accepted when it started.
func (s *ScrollState) Reset(pageCount int, extent float64) (Transition, bool) {
	if s.phase != PhaseDragging {
		return Transition{}, false
	}
	s.logger.Debug("page drag cancelled", "generation", s.generation)
	return s.finalize(pageCount, extent), true
}

// finalize is shared by DragEnded and Reset.
func (s *ScrollState) finalize(pageCount int, extent float64) Transition {
	selected := s.SelectedPage(pageCount)
	next := selected
	if extent > 0 && pageCount > 0 {
		threshold := s.settings.SwitchThreshold * extent
		if s.liveOffset > threshold && selected != 0 {
			next = selected - 1
		} else if s.liveOffset < -threshold && selected != pageCount-1 {
			next = selected + 1
		}
	}

	s.liveOffset = 0
	s.phase = PhaseSettling
	s.commit(next)
	s.logger.Debug("page drag ended", "generation", s.generation, "from", selected, "to", next)

	return Transition{
		Generation: s.generation,
		From:       selected,
		To:         next,
		Duration:   s.settings.SettleDuration,
	}
}

// SettleComplete clears the gesture once the settle has been scheduled.
// It is ignored when generation is stale. Returns whether it applied.
func (s *ScrollState) SettleComplete(generation uint64) bool {
	if generation != s.generation || s.phase != PhaseSettling {
		return false
	}
	s.gestureActive = false
	s.phase = PhaseIdle
	return true
}

// SetPage selects page programmatically, clamped into range. Any gesture in
// flight is abandoned.
func (s *ScrollState) SetPage(page, pageCount int) Transition {
	from := s.SelectedPage(pageCount)
	to := clampPage(page, pageCount)

	s.generation++
	s.liveOffset = 0
	s.gestureActive = false
	s.phase = PhaseIdle
	s.commit(to)

	return Transition{
		Generation: s.generation,
		From:       from,
		To:         to,
		Duration:   s.settings.SettleDuration,
	}
}

func (s *ScrollState) commit(page int) {
	changed := s.binding.Page() != page
	s.binding.SetPage(page)
	if changed && s.onPageChanged != nil {
		s.onPageChanged(page)
	}
}

func clampPage(page, pageCount int) int {
	if pageCount <= 0 || page < 0 {
		return 0
	}
	if page >= pageCount {
		return pageCount - 1
	}
	return page
}
