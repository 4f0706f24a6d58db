package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framewise/reframe/geom"
)

func TestPredictTooFewPositions(t *testing.T) {
	p := NewPredictor()

	_, ok := p.Predict(1920, 1080)
	assert.False(t, ok, "no positions, no prediction")

	p.Push(geom.Rect{X: 10, Y: 10, Width: 20, Height: 20})
	_, ok = p.Predict(1920, 1080)
	assert.False(t, ok, "one position is not enough")
}

func TestPredictLinear(t *testing.T) {
	tests := []struct {
		name       string
		prev, last geom.Rect
		wantX      float64
		wantY      float64
	}{
		{
			name:  "horizontal motion",
			prev:  geom.Rect{X: 0, Y: 0, Width: 10, Height: 10},
			last:  geom.Rect{X: 5, Y: 0, Width: 10, Height: 10},
			wantX: 10, wantY: 0,
		},
		{
			name:  "diagonal motion",
			prev:  geom.Rect{X: 0, Y: 0, Width: 10, Height: 10},
			last:  geom.Rect{X: 3, Y: 4, Width: 10, Height: 10},
			wantX: 6, wantY: 8,
		},
		{
			name:  "stationary object",
			prev:  geom.Rect{X: 40, Y: 40, Width: 10, Height: 10},
			last:  geom.Rect{X: 40, Y: 40, Width: 10, Height: 10},
			wantX: 40, wantY: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPredictor()
			p.Push(tt.prev)
			p.Push(tt.last)

			got, ok := p.Predict(1920, 1080)

			require.True(t, ok)
			assert.InDelta(t, tt.wantX, got.X, 1e-9)
			assert.InDelta(t, tt.wantY, got.Y, 1e-9)
			assert.Equal(t, tt.last.Width, got.Width)
			assert.Equal(t, tt.last.Height, got.Height)
		})
	}
}

func TestPredictQuadratic(t *testing.T) {
	p := NewPredictor()
	// Accelerating to the right: velocity 10 then 20 per frame.
	p.Push(geom.Rect{X: 0, Y: 100, Width: 10, Height: 10})
	p.Push(geom.Rect{X: 10, Y: 100, Width: 10, Height: 10})
	p.Push(geom.Rect{X: 30, Y: 100, Width: 10, Height: 10})

	got, ok := p.Predict(1920, 1080)

	require.True(t, ok)
	assert.InDelta(t, 55, got.X, 1e-9, "30 + 20 + half the acceleration of 10")
	assert.InDelta(t, 100, got.Y, 1e-9)
}

func TestPredictKeepsLastSize(t *testing.T) {
	p := NewPredictor()
	p.Push(geom.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	p.Push(geom.Rect{X: 5, Y: 5, Width: 24, Height: 32})

	got, ok := p.Predict(1920, 1080)

	require.True(t, ok)
	assert.Equal(t, 24.0, got.Width)
	assert.Equal(t, 32.0, got.Height)
}

func TestPredictClampsToBounds(t *testing.T) {
	t.Run("leaving right edge", func(t *testing.T) {
		p := NewPredictor()
		p.Push(geom.Rect{X: 90, Y: 0, Width: 10, Height: 10})
		p.Push(geom.Rect{X: 100, Y: 0, Width: 10, Height: 10})

		got, ok := p.Predict(100, 100)

		require.True(t, ok)
		assert.InDelta(t, 100, got.X, 1e-9)
	})

	t.Run("leaving left edge", func(t *testing.T) {
		p := NewPredictor()
		p.Push(geom.Rect{X: 10, Y: 5, Width: 10, Height: 10})
		p.Push(geom.Rect{X: 0, Y: 5, Width: 10, Height: 10})

		got, ok := p.Predict(100, 100)

		require.True(t, ok)
		assert.InDelta(t, 0, got.X, 1e-9)
	})
}

func TestPushEvictsOldest(t *testing.T) {
	p := NewPredictor()
	p.Push(geom.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	p.Push(geom.Rect{X: 100, Y: 0, Width: 10, Height: 10})
	p.Push(geom.Rect{X: 110, Y: 0, Width: 10, Height: 10})
	p.Push(geom.Rect{X: 120, Y: 0, Width: 10, Height: 10})

	require.Equal(t, maxPositions, p.Len())

	// Constant velocity over the surviving three positions; the evicted
	// first position would have implied heavy deceleration.
	got, ok := p.Predict(1920, 1080)
	require.True(t, ok)
	assert.InDelta(t, 130, got.X, 1e-9)
}

func TestClear(t *testing.T) {
	p := NewPredictor()
	p.Push(geom.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	p.Push(geom.Rect{X: 5, Y: 0, Width: 10, Height: 10})

	p.Clear()

	assert.Equal(t, 0, p.Len())
	_, ok := p.Predict(1920, 1080)
	assert.False(t, ok)
}
