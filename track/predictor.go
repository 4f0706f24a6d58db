package track

import (
	"github.com/sirupsen/logrus"

	"github.com/framewise/reframe/geom"
)

// maxPositions is how many recent positions the predictor keeps.
const maxPositions = 3

// Predictor estimates the next position of a moving object from its
// recent ones. Positions are remembered oldest first; pushing beyond
// capacity evicts the oldest. Not safe for concurrent use.
type Predictor struct {
	positions []geom.Rect
}

// NewPredictor returns an empty predictor.
func NewPredictor() *Predictor {
	return &Predictor{positions: make([]geom.Rect, 0, maxPositions)}
}

// Push records an observed position.
func (p *Predictor) Push(r geom.Rect) {
	if len(p.positions) == maxPositions {
		copy(p.positions, p.positions[1:])
		p.positions[len(p.positions)-1] = r
		return
	}
	p.positions = append(p.positions, r)
}

// Clear forgets all recorded positions.
func (p *Predictor) Clear() {
	p.positions = p.positions[:0]
}

// Len reports how many positions are recorded.
func (p *Predictor) Len() int {
	return len(p.positions)
}

// Predict extrapolates the next position. With two recorded positions
// the motion is assumed linear; with three, constant acceleration. The
// predicted size is the last observed size, and the top-left corner is
// clamped into [0, maxX] x [0, maxY]. Predict reports false when fewer
// than two positions are recorded.
func (p *Predictor) Predict(maxX, maxY float64) (geom.Rect, bool) {
	n := len(p.positions)
	if n < 2 {
		return geom.Rect{}, false
	}

	last := p.positions[n-1]
	var nextX, nextY float64
	if n == 2 {
		prev := p.positions[0]
		nextX = last.X + (last.X - prev.X)
		nextY = last.Y + (last.Y - prev.Y)
	} else {
		p1, p2, p3 := p.positions[0], p.positions[1], p.positions[2]
		vx1, vy1 := p2.X-p1.X, p2.Y-p1.Y
		vx2, vy2 := p3.X-p2.X, p3.Y-p2.Y
		nextX = p3.X + vx2 + 0.5*(vx2-vx1)
		nextY = p3.Y + vy2 + 0.5*(vy2-vy1)
	}

	next := geom.Rect{
		X:      clamp(nextX, 0, maxX),
		Y:      clamp(nextY, 0, maxY),
		Width:  last.Width,
		Height: last.Height,
	}

	logrus.WithFields(logrus.Fields{
		"function":  "Predict",
		"positions": n,
		"x":         next.X,
		"y":         next.Y,
	}).Debug("Predicted object position")

	return next, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
