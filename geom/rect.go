package geom

// epsilon absorbs float rounding when comparing normalized differences
// against a threshold.
const epsilon = 1e-9

// Rect is an axis-aligned rectangle in frame-relative pixel units.
// Width and Height are never negative for well-formed values.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// FromEdges builds a Rect from its left/top and right/bottom edges.
func FromEdges(minX, minY, maxX, maxY float64) Rect {
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 {
	return r.X + r.Width
}

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 {
	return r.Y + r.Height
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Empty reports whether the rectangle has no extent.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ContainsX reports whether the horizontal span of inner lies fully
// inside the horizontal span of r.
func (r Rect) ContainsX(inner Rect) bool {
	return inner.X >= r.X && inner.MaxX() <= r.MaxX()
}

// OverlapX returns the length of the horizontal overlap between r and
// other, or zero when the spans are disjoint.
func (r Rect) OverlapX(other Rect) float64 {
	left := r.X
	if other.X > left {
		left = other.X
	}
	right := r.MaxX()
	if other.MaxX() < right {
		right = other.MaxX()
	}
	if right <= left {
		return 0
	}
	return right - left
}

// WithinPercent reports whether every field of r differs from the
// corresponding field of other by at most thresholdPercent percent of
// frameWidth. The tolerance is absolute per field: two equal zero values
// always pass, and a zero field only matches a non-zero one when the
// non-zero value itself is within the tolerance.
func (r Rect) WithinPercent(other Rect, frameWidth, thresholdPercent float64) bool {
	threshold := thresholdPercent / 100
	within := func(a, b float64) bool {
		diff := a - b
		if diff < 0 {
			diff = -diff
		}
		return diff/frameWidth <= threshold+epsilon
	}
	return within(r.X, other.X) &&
		within(r.Y, other.Y) &&
		within(r.Width, other.Width) &&
		within(r.Height, other.Height)
}

// Bounding returns the minimal rectangle containing every input box.
// An empty input yields a zero rectangle at the origin, which is a
// defined result rather than an error.
func Bounding(boxes []Rect) Rect {
	if len(boxes) == 0 {
		return Rect{}
	}
	minX, minY := boxes[0].X, boxes[0].Y
	maxX, maxY := boxes[0].MaxX(), boxes[0].MaxY()
	for _, b := range boxes[1:] {
		if b.X < minX {
			minX = b.X
		}
		if b.Y < minY {
			minY = b.Y
		}
		if b.MaxX() > maxX {
			maxX = b.MaxX()
		}
		if b.MaxY() > maxY {
			maxY = b.MaxY()
		}
	}
	return FromEdges(minX, minY, maxX, maxY)
}
