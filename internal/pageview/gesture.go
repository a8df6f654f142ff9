package pageview

import "math"

// Gesture is one drag as seen along the paging axis. Start is the press
// position relative to the page origin, Translation the cumulative movement
// since the press.
type Gesture struct {
	Start       float64
	Translation float64
}

// Accepts reports whether a drag that began at start should page at all.
// The drag must begin within extent*edgeThreshold of either edge of the
// visible page. With edgeThreshold >= 0.5 every start inside the page passes.
func Accepts(start, extent, edgeThreshold float64, dragEnabled bool) bool {
	if !dragEnabled {
		return false
	}
	allowed := extent * edgeThreshold
	if start >= 0 && start <= allowed {
		return true
	}
	return start >= extent-allowed && start <= extent
}

// recognizer turns the raw mouse stream into Gestures along one axis.
// A press becomes a drag once it travels minDistance cells.
type recognizer struct {
	axis        Axis
	minDistance int

	pressed    bool
	recognized bool
	claimed    bool // a pane took the press
	startX     int
	startY     int
	lastX      int
	lastY      int
}

func (r *recognizer) press(x, y int) {
	*r = recognizer{
		axis:        r.axis,
		minDistance: r.minDistance,
		pressed:     true,
		startX:      x,
		startY:      y,
		lastX:       x,
		lastY:       y,
	}
}

// move records the pointer position and reports whether the press is now
// a recognized drag.
func (r *recognizer) move(x, y int) bool {
	if !r.pressed {
		return false
	}
	r.lastX, r.lastY = x, y
	if !r.recognized && math.Abs(r.gesture().Translation) >= float64(r.minDistance) && r.moved() {
		r.recognized = true
	}
	return r.recognized
}

func (r *recognizer) moved() bool {
	return r.lastX != r.startX || r.lastY != r.startY
}

func (r *recognizer) gesture() Gesture {
	if r.axis == Vertical {
		return Gesture{Start: float64(r.startY), Translation: float64(r.lastY - r.startY)}
	}
	return Gesture{Start: float64(r.startX), Translation: float64(r.lastX - r.startX)}
}

func (r *recognizer) clear() {
	r.pressed = false
	r.recognized = false
	r.claimed = false
}
