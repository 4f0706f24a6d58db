package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounding(t *testing.T) {
	tests := []struct {
		name  string
		boxes []Rect
		want  Rect
	}{
		{
			name:  "single box",
			boxes: []Rect{{X: 300, Y: 300, Width: 100, Height: 100}},
			want:  Rect{X: 300, Y: 300, Width: 100, Height: 100},
		},
		{
			name: "two boxes side by side",
			boxes: []Rect{
				{X: 300, Y: 300, Width: 100, Height: 100},
				{X: 1000, Y: 300, Width: 100, Height: 100},
			},
			want: Rect{X: 300, Y: 300, Width: 800, Height: 100},
		},
		{
			name: "box touching the right frame edge",
			boxes: []Rect{
				FromEdges(1063.6982, 335.45892, 1262.3218, 646.60675),
				FromEdges(1846.0652, 228.14204, 1919.9954, 533.70746),
			},
			want: FromEdges(1063.6982, 228.14204, 1919.9954, 646.60675),
		},
		{
			name: "three boxes in a triangle",
			boxes: []Rect{
				{X: 300, Y: 300, Width: 100, Height: 100},
				{X: 1000, Y: 300, Width: 100, Height: 100},
				{X: 1000, Y: 1000, Width: 100, Height: 100},
			},
			want: Rect{X: 300, Y: 300, Width: 800, Height: 800},
		},
		{
			name:  "empty input yields zero rect",
			boxes: nil,
			want:  Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bounding(tt.boxes)
			assert.InDelta(t, tt.want.X, got.X, 1e-4)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-4)
			assert.InDelta(t, tt.want.Width, got.Width, 1e-4)
			assert.InDelta(t, tt.want.Height, got.Height, 1e-4)
		})
	}
}

func TestRectAccessors(t *testing.T) {
	r := Rect{X: 100, Y: 50, Width: 200, Height: 80}

	assert.Equal(t, 200.0, r.CenterX())
	assert.Equal(t, 90.0, r.CenterY())
	assert.Equal(t, 300.0, r.MaxX())
	assert.Equal(t, 130.0, r.MaxY())
	assert.Equal(t, 16000.0, r.Area())
	assert.False(t, r.Empty())
	assert.True(t, Rect{}.Empty())
	assert.True(t, Rect{Width: 10}.Empty())
}

func TestFromEdges(t *testing.T) {
	r := FromEdges(10, 20, 110, 70)
	assert.Equal(t, Rect{X: 10, Y: 20, Width: 100, Height: 50}, r)
}

func TestContainsX(t *testing.T) {
	outer := Rect{X: 100, Y: 0, Width: 400, Height: 100}

	assert.True(t, outer.ContainsX(Rect{X: 150, Width: 100, Height: 10}))
	assert.True(t, outer.ContainsX(Rect{X: 100, Width: 400, Height: 10}))
	assert.False(t, outer.ContainsX(Rect{X: 50, Width: 100, Height: 10}))
	assert.False(t, outer.ContainsX(Rect{X: 450, Width: 100, Height: 10}))
}

func TestOverlapX(t *testing.T) {
	a := Rect{X: 100, Width: 200}

	assert.Equal(t, 100.0, a.OverlapX(Rect{X: 200, Width: 300}))
	assert.Equal(t, 200.0, a.OverlapX(Rect{X: 0, Width: 1000}))
	assert.Equal(t, 0.0, a.OverlapX(Rect{X: 300, Width: 50}))
	assert.Equal(t, 0.0, a.OverlapX(Rect{X: 0, Width: 50}))
}

func TestWithinPercentReflexive(t *testing.T) {
	r := Rect{X: 712.5, Y: 0, Width: 810, Height: 1080}

	for _, threshold := range []float64{0, 0.1, 5, 100} {
		assert.True(t, r.WithinPercent(r, 1920, threshold),
			"rect must always match itself at threshold %v", threshold)
	}
}

func TestWithinPercentMonotonic(t *testing.T) {
	a := Rect{X: 100, Y: 0, Width: 810, Height: 1080}
	b := Rect{X: 196, Y: 0, Width: 810, Height: 1080}

	// 96px difference on a 1920px frame is 5%.
	assert.False(t, a.WithinPercent(b, 1920, 1))
	assert.True(t, a.WithinPercent(b, 1920, 5))
	assert.True(t, a.WithinPercent(b, 1920, 10))
}

func TestWithinPercentBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Rect
		threshold float64
		want      bool
	}{
		{
			name:      "exactly at threshold passes",
			a:         Rect{X: 0},
			b:         Rect{X: 192},
			threshold: 10,
			want:      true,
		},
		{
			name:      "just past threshold fails",
			a:         Rect{X: 0},
			b:         Rect{X: 193},
			threshold: 10,
			want:      false,
		},
		{
			name:      "two zero fields always equal",
			a:         Rect{},
			b:         Rect{},
			threshold: 0,
			want:      true,
		},
		{
			name:      "zero vs small non-zero inside tolerance",
			a:         Rect{Y: 0},
			b:         Rect{Y: 100},
			threshold: 10,
			want:      true,
		},
		{
			name:      "zero vs non-zero outside tolerance",
			a:         Rect{Y: 0},
			b:         Rect{Y: 400},
			threshold: 10,
			want:      false,
		},
		{
			name:      "single differing field fails the pair",
			a:         Rect{X: 0, Y: 0, Width: 810, Height: 1080},
			b:         Rect{X: 0, Y: 0, Width: 1400, Height: 1080},
			threshold: 10,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.WithinPercent(tt.b, 1920, tt.threshold)
			assert.Equal(t, tt.want, got)
		})
	}
}

func BenchmarkBounding(b *testing.B) {
	boxes := []Rect{
		{X: 300, Y: 300, Width: 100, Height: 100},
		{X: 1000, Y: 300, Width: 100, Height: 100},
		{X: 1000, Y: 1000, Width: 100, Height: 100},
		{X: 50, Y: 700, Width: 80, Height: 90},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Bounding(boxes)
	}
}
