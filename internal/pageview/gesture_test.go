package pageview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccepts(t *testing.T) {
	tests := []struct {
		name    string
		start   float64
		extent  float64
		edge    float64
		enabled bool
		want    bool
	}{
		{"near leading edge", 30, 300, 0.2, true, true},
		{"middle rejected", 150, 300, 0.2, true, false},
		{"near trailing edge", 270, 300, 0.2, true, true},
		{"on the boundary", 60, 300, 0.2, true, true},
		{"whole page at half", 150, 300, 0.5, true, true},
		{"outside the page", 301, 300, 0.5, true, false},
		{"disabled", 30, 300, 0.2, false, false},
		{"zero edge keeps the borders", 0, 300, 0, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Accepts(tt.start, tt.extent, tt.edge, tt.enabled))
		})
	}
}

func TestRecognizer(t *testing.T) {
	r := recognizer{axis: Horizontal, minDistance: 2}

	assert.False(t, r.move(5, 5), "move before press")

	r.press(10, 4)
	assert.False(t, r.move(11, 4))
	assert.True(t, r.move(7, 9))
	assert.Equal(t, Gesture{Start: 10, Translation: -3}, r.gesture())

	// once recognized it stays recognized
	assert.True(t, r.move(10, 4))

	r.clear()
	assert.False(t, r.pressed)
	assert.False(t, r.recognized)
}

func TestRecognizerVertical(t *testing.T) {
	r := recognizer{axis: Vertical, minDistance: 1}
	r.press(3, 8)
	assert.False(t, r.move(9, 8), "cross-axis movement is not a drag")
	assert.True(t, r.move(9, 6))
	assert.Equal(t, Gesture{Start: 8, Translation: -2}, r.gesture())
}
