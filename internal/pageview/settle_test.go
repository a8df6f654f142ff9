package pageview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEaseInOut(t *testing.T) {
	assert.Equal(t, 0.0, easeInOut(0))
	assert.Equal(t, 0.5, easeInOut(0.5))
	assert.Equal(t, 1.0, easeInOut(1))
	assert.InDelta(t, 0.0625, easeInOut(0.25), 1e-9)
	assert.InDelta(t, 0.9375, easeInOut(0.75), 1e-9)

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := easeInOut(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestSettleValue(t *testing.T) {
	start := time.Unix(100, 0)
	s := Settle{From: 300, To: 0, Start: start, Duration: 200 * time.Millisecond}

	assert.Equal(t, 300.0, s.Value(start))
	assert.Equal(t, 150.0, s.Value(start.Add(100*time.Millisecond)))
	assert.Equal(t, 0.0, s.Value(start.Add(200*time.Millisecond)))
	assert.Equal(t, 0.0, s.Value(start.Add(time.Second)))
	assert.Equal(t, 300.0, s.Value(start.Add(-time.Second)))

	assert.False(t, s.Done(start.Add(199*time.Millisecond)))
	assert.True(t, s.Done(start.Add(200*time.Millisecond)))
}

func TestSettleZeroDuration(t *testing.T) {
	s := Settle{From: 10, To: 20, Start: time.Unix(0, 0)}
	assert.True(t, s.Done(time.Unix(0, 0)))
	assert.Equal(t, 20.0, s.Value(time.Unix(0, 0)))
}
