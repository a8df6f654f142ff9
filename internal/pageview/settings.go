// Package pageview implements a paged content view for Bubble Tea programs.
//
// Panes are laid out contiguously along one axis. A mouse drag along that
// axis translates the strip, and on release a threshold rule decides whether
// the selection moves to the neighbouring pane before the strip settles back
// to rest. A row (or column) of dots shows the position within the sequence.
package pageview

import (
	"math"
	"time"

	"charm.land/lipgloss/v2"
)

// Axis is the single direction along which an instance pages.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseAxis maps a config value to an Axis. Unknown values are horizontal.
func ParseAxis(s string) Axis {
	if s == "vertical" || s == "v" {
		return Vertical
	}
	return Horizontal
}

// GesturePriority controls how the paging drag competes with mouse handling
// inside the panes.
type GesturePriority int

const (
	// PriorityStandard lets the pane claim a press before the pager does.
	PriorityStandard GesturePriority = iota
	// PrioritySimultaneous delivers every event to both the pane and the pager.
	PrioritySimultaneous
	// PriorityHigh gives the pager the first claim; panes only see gestures
	// the edge filter rejected.
	PriorityHigh
	// PriorityDisabled never recognizes paging drags.
	PriorityDisabled
)

var priorityNames = map[GesturePriority]string{
	PriorityStandard:     "standard",
	PrioritySimultaneous: "simultaneous",
	PriorityHigh:         "high",
	PriorityDisabled:     "disabled",
}

func (p GesturePriority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePriority maps a config value to a GesturePriority.
// Returns false for unknown names.
func ParsePriority(s string) (GesturePriority, bool) {
	switch s {
	case "standard":
		return PriorityStandard, true
	case "simultaneous":
		return PrioritySimultaneous, true
	case "high", "highPriority", "high_priority":
		return PriorityHigh, true
	case "disabled", "none":
		return PriorityDisabled, true
	}
	return PriorityHigh, false
}

// PointerKind selects the default switch threshold.
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

// DefaultSwitchThreshold returns the fraction of the page extent a drag has
// to cover to commit a page change for the given pointer.
func DefaultSwitchThreshold(kind PointerKind) float64 {
	if kind == PointerTouch {
		return 0.3
	}
	return 0.5
}

// Alignment places the indicator inside the container.
type Alignment struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
}

// DefaultAlignment returns bottom-center for horizontal paging and
// left-center for vertical paging.
func DefaultAlignment(axis Axis) Alignment {
	if axis == Vertical {
		return Alignment{Horizontal: lipgloss.Left, Vertical: lipgloss.Center}
	}
	return Alignment{Horizontal: lipgloss.Center, Vertical: lipgloss.Bottom}
}

const (
	DefaultEdgeSwipeThreshold = 0.5
	DefaultMinimumDistance    = 1
	DefaultSettleDuration     = 200 * time.Millisecond
	DefaultIndicatorOffset    = 1
)

// Settings is the immutable configuration of one page view.
// Build it with NewSettings so thresholds are normalized.
type Settings struct {
	Axis               Axis
	SwitchThreshold    float64
	EdgeSwipeThreshold float64
	GesturePriority    GesturePriority
	DragEnabled        bool
	// MinimumDistance is the travel in cells before a press becomes a drag.
	MinimumDistance    int
	SettleDuration     time.Duration
	IndicatorAlignment Alignment
	IndicatorOffset    int
	Theme              Theme
}

// DefaultSettings returns settings for a mouse driven view along axis.
func DefaultSettings(axis Axis) Settings {
	return Settings{
		Axis:               axis,
		SwitchThreshold:    DefaultSwitchThreshold(PointerMouse),
		EdgeSwipeThreshold: DefaultEdgeSwipeThreshold,
		GesturePriority:    PriorityHigh,
		DragEnabled:        true,
		MinimumDistance:    DefaultMinimumDistance,
		SettleDuration:     DefaultSettleDuration,
		IndicatorAlignment: DefaultAlignment(axis),
		IndicatorOffset:    DefaultIndicatorOffset,
		Theme:              DefaultTheme(),
	}
}

// NewSettings returns s with its values normalized. A switch threshold
// outside [0,1) wraps to the fractional part of its absolute value.
func NewSettings(s Settings) Settings {
	s.SwitchThreshold = NormalizeThreshold(s.SwitchThreshold)
	s.EdgeSwipeThreshold = clamp(s.EdgeSwipeThreshold, 0, 1)
	if math.IsNaN(s.EdgeSwipeThreshold) {
		s.EdgeSwipeThreshold = DefaultEdgeSwipeThreshold
	}
	s.MinimumDistance = max(s.MinimumDistance, 0)
	if s.SettleDuration < 0 {
		s.SettleDuration = 0
	}
	s.IndicatorOffset = max(s.IndicatorOffset, 0)
	return s
}

// NormalizeThreshold maps v into [0,1) by taking the fractional part of |v|.
func NormalizeThreshold(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	_, frac := math.Modf(math.Abs(v))
	return frac
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
