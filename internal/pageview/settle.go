package pageview

import (
	"math"
	"time"
)

// frameInterval is the tick rate of a settle animation.
const frameInterval = time.Second / 60

// Settle interpolates the strip offset from where a gesture left it to the
// resting offset of the committed page.
type Settle struct {
	Generation uint64
	From       float64
	To         float64
	Start      time.Time
	Duration   time.Duration
}

// Progress returns the linear progress in [0,1] at now.
func (s Settle) Progress(now time.Time) float64 {
	if s.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(s.Start)) / float64(s.Duration)
	return math.Min(math.Max(p, 0), 1)
}

// Value returns the eased offset at now.
func (s Settle) Value(now time.Time) float64 {
	return s.From + (s.To-s.From)*easeInOut(s.Progress(now))
}

// Done reports whether the animation has reached its target at now.
func (s Settle) Done(now time.Time) bool {
	return s.Progress(now) >= 1
}

// easeInOut is the cubic ease-in-out curve.
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}
