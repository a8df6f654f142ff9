package pageview

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeThreshold(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.3, 0.3},
		{0, 0},
		{0.5, 0.5},
		{1, 0},
		{1.3, 0.3},
		{-0.4, 0.4},
		{2.75, 0.75},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		got := NormalizeThreshold(tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "NormalizeThreshold(%v)", tt.in)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 1.0)
	}
}

func TestNewSettingsNormalizes(t *testing.T) {
	s := DefaultSettings(Horizontal)
	s.SwitchThreshold = 1.3
	s.EdgeSwipeThreshold = 1.5
	s.MinimumDistance = -2
	s.SettleDuration = -time.Second
	s.IndicatorOffset = -1

	got := NewSettings(s)
	assert.InDelta(t, 0.3, got.SwitchThreshold, 1e-9)
	assert.Equal(t, 1.0, got.EdgeSwipeThreshold)
	assert.Equal(t, 0, got.MinimumDistance)
	assert.Equal(t, time.Duration(0), got.SettleDuration)
	assert.Equal(t, 0, got.IndicatorOffset)

	s.EdgeSwipeThreshold = math.NaN()
	assert.Equal(t, DefaultEdgeSwipeThreshold, NewSettings(s).EdgeSwipeThreshold)
	s.EdgeSwipeThreshold = -1
	assert.Equal(t, 0.0, NewSettings(s).EdgeSwipeThreshold)
}

func TestDefaultSettings(t *testing.T) {
	h := DefaultSettings(Horizontal)
	assert.Equal(t, 0.5, h.SwitchThreshold)
	assert.Equal(t, 0.5, h.EdgeSwipeThreshold)
	assert.Equal(t, PriorityHigh, h.GesturePriority)
	assert.True(t, h.DragEnabled)
	assert.Equal(t, DefaultAlignment(Horizontal), h.IndicatorAlignment)

	v := DefaultSettings(Vertical)
	assert.Equal(t, Vertical, v.Axis)
	assert.Equal(t, DefaultAlignment(Vertical), v.IndicatorAlignment)

	assert.Equal(t, 0.3, DefaultSwitchThreshold(PointerTouch))
}

func TestParsePriority(t *testing.T) {
	for _, p := range []GesturePriority{PriorityStandard, PrioritySimultaneous, PriorityHigh, PriorityDisabled} {
		got, ok := ParsePriority(p.String())
		assert.True(t, ok)
		assert.Equal(t, p, got)
	}
	_, ok := ParsePriority("urgent")
	assert.False(t, ok)
}

func TestParseAxis(t *testing.T) {
	assert.Equal(t, Vertical, ParseAxis("vertical"))
	assert.Equal(t, Horizontal, ParseAxis("horizontal"))
	assert.Equal(t, Horizontal, ParseAxis("diagonal"))
}
