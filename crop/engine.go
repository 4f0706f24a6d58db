package crop

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/framewise/reframe/geom"
)

const (
	// singleWidthRatio is the width of a single-region crop relative to
	// the frame height (3:4 width to height).
	singleWidthRatio = 3.0 / 4.0
	// stackHeightRatio is the height of a half-stack region relative to
	// its width (8:9).
	stackHeightRatio = 8.0 / 9.0
	// trioHeightRatio is the height of both trio regions relative to the
	// frame height.
	trioHeightRatio = 0.8
	// trioWideAspect is the width of the trio pair region relative to its
	// height (9:6).
	trioWideAspect = 1.5
	// trioNarrowAspect is the width of the trio solo region relative to
	// its height (9:10).
	trioNarrowAspect = 0.9
	// trioPairOffsetRatio and trioSoloOffsetRatio place the trio regions
	// vertically as fractions of the frame height.
	trioPairOffsetRatio = 0.1
	trioSoloOffsetRatio = 0.15
)

// Config carries the tunable thresholds of the layout rules. The ratios
// are empirically chosen; zero fields adopt the defaults.
type Config struct {
	// DominantAreaRatio is how much larger (by area) an object must be
	// than every other before the crowd rule singles it out.
	DominantAreaRatio float64
	// TrioAreaRatio is the maximum max/min area ratio under which three
	// objects count as similar in size.
	TrioAreaRatio float64
	// TrioSpacingRatio is the maximum ratio between the two consecutive
	// center gaps under which three objects count as evenly spaced.
	TrioSpacingRatio float64
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		DominantAreaRatio: 2.5,
		TrioAreaRatio:     2.5,
		TrioSpacingRatio:  2.0,
	}
}

// Engine computes crop decisions from detected bounding boxes. It holds
// only configuration, carries no per-frame state, and is safe to share
// across streams.
type Engine struct {
	cfg Config
}

// NewEngine builds an engine, filling zero Config fields with defaults.
func NewEngine(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.DominantAreaRatio == 0 {
		cfg.DominantAreaRatio = def.DominantAreaRatio
	}
	if cfg.TrioAreaRatio == 0 {
		cfg.TrioAreaRatio = def.TrioAreaRatio
	}
	if cfg.TrioSpacingRatio == 0 {
		cfg.TrioSpacingRatio = def.TrioSpacingRatio
	}
	return &Engine{cfg: cfg}
}

// Compute maps the detected boxes and frame size to a crop decision.
// It is a total function: for well-formed input it always returns a
// decision and never panics. allowStacked permits two-region layouts;
// isGraphic marks slide-like frames and is only consulted when no
// objects were detected.
func (e *Engine) Compute(boxes []geom.Rect, frameWidth, frameHeight float64, allowStacked, isGraphic bool) Decision {
	var d Decision
	switch {
	case len(boxes) == 0:
		d = e.emptyLayout(frameWidth, frameHeight, isGraphic)
	case len(boxes) == 1:
		d = Single(singleCropAt(boxes[0].CenterX(), frameWidth, frameHeight))
	case len(boxes) == 2:
		d = e.pairLayout(boxes, frameWidth, frameHeight, allowStacked)
	case len(boxes) == 3:
		d = e.trioLayout(boxes, frameWidth, frameHeight, allowStacked)
	case len(boxes) <= 5:
		d = e.groupLayout(boxes, frameWidth, frameHeight, allowStacked)
	default:
		d = e.crowdLayout(boxes, frameWidth, frameHeight, allowStacked)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Compute",
		"objects":  len(boxes),
		"decision": d.String(),
	}).Debug("Crop decision computed")

	return d
}

// emptyLayout handles frames with no detected objects.
func (e *Engine) emptyLayout(frameWidth, frameHeight float64, isGraphic bool) Decision {
	if isGraphic {
		return Resize(geom.Rect{Width: frameWidth, Height: frameHeight})
	}
	return Single(singleCropAt(frameWidth/2, frameWidth, frameHeight))
}

// pairLayout handles exactly two objects.
func (e *Engine) pairLayout(boxes []geom.Rect, frameWidth, frameHeight float64, allowStacked bool) Decision {
	bbox := geom.Bounding(boxes)
	if bbox.Width <= frameHeight*singleWidthRatio {
		return Single(singleCropAt(bbox.CenterX(), frameWidth, frameHeight))
	}
	if !allowStacked {
		return largestSingle(boxes, frameWidth, frameHeight)
	}

	cropW, cropH, defaultY := halfStackDims(frameWidth, frameHeight)

	left, right := boxes[0], boxes[1]
	if left.CenterX() > right.CenterX() {
		left, right = right, left
	}

	topY := bandY([]geom.Rect{left}, defaultY, frameHeight, cropH)
	bottomY := bandY([]geom.Rect{right}, defaultY, frameHeight, cropH)

	x1, x2 := 0.0, cropW

	// An object straddling the split line forces the half that holds
	// more of it to shift until it holds all of it.
	leftHalf := geom.Rect{X: x1, Width: cropW, Height: frameHeight}
	rightHalf := geom.Rect{X: x2, Width: cropW, Height: frameHeight}
	leftSpans := left.OverlapX(leftHalf) > 0 && left.OverlapX(rightHalf) > 0
	rightSpans := right.OverlapX(leftHalf) > 0 && right.OverlapX(rightHalf) > 0

	if leftSpans || rightSpans {
		if left.MaxX() > x1+cropW {
			x1 = left.MaxX() - cropW
		}
		if left.X < x1 {
			x1 = left.X
		}
		x1 = clamp(x1, 0, cropW)

		if right.X < x2 {
			x2 = right.X
		}
		if right.MaxX() > x2+cropW {
			x2 = right.MaxX() - cropW
		}
		x2 = clamp(x2, 0, cropW)
	}

	return Stacked(
		geom.Rect{X: x1, Y: topY, Width: cropW, Height: cropH},
		geom.Rect{X: x2, Y: bottomY, Width: cropW, Height: cropH},
	)
}

// trioLayout handles exactly three objects. Three similarly sized,
// evenly spaced objects get a bespoke two-region layout; anything else
// falls through to the group rule.
func (e *Engine) trioLayout(boxes []geom.Rect, frameWidth, frameHeight float64, allowStacked bool) Decision {
	minArea, maxArea := boxes[0].Area(), boxes[0].Area()
	for _, b := range boxes[1:] {
		minArea = math.Min(minArea, b.Area())
		maxArea = math.Max(maxArea, b.Area())
	}
	similarSize := maxArea/minArea <= e.cfg.TrioAreaRatio

	sorted := make([]geom.Rect, len(boxes))
	copy(sorted, boxes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CenterX() < sorted[j].CenterX()
	})

	gap1 := sorted[1].CenterX() - sorted[0].CenterX()
	gap2 := sorted[2].CenterX() - sorted[1].CenterX()
	spacingRatio := math.Max(gap1, gap2) / math.Min(gap1, gap2)
	evenlySpaced := spacingRatio <= e.cfg.TrioSpacingRatio

	if !similarSize || !evenlySpaced || !allowStacked {
		return e.groupLayout(boxes, frameWidth, frameHeight, allowStacked)
	}

	pairH := frameHeight * trioHeightRatio
	pairW := pairH * trioWideAspect
	pairY := frameHeight * trioPairOffsetRatio

	soloH := frameHeight * trioHeightRatio
	soloW := soloH * trioNarrowAspect
	soloY := frameHeight * trioSoloOffsetRatio

	pairMinX := math.Min(sorted[0].X, sorted[1].X)
	pairMaxX := math.Max(sorted[0].MaxX(), sorted[1].MaxX())
	pairX := clamp((pairMinX+pairMaxX)/2-pairW/2, 0, frameWidth-pairW)

	soloX := clamp(sorted[2].CenterX()-soloW/2, 0, frameWidth-soloW)

	return Stacked(
		geom.Rect{X: pairX, Y: pairY, Width: pairW, Height: pairH},
		geom.Rect{X: soloX, Y: soloY, Width: soloW, Height: soloH},
	)
}

// groupLayout handles four to five objects and the trio fallback.
func (e *Engine) groupLayout(boxes []geom.Rect, frameWidth, frameHeight float64, allowStacked bool) Decision {
	bbox := geom.Bounding(boxes)
	if bbox.Width <= frameHeight*singleWidthRatio {
		return Single(singleCropAt(bbox.CenterX(), frameWidth, frameHeight))
	}
	if !allowStacked {
		return largestSingle(boxes, frameWidth, frameHeight)
	}

	cropW, cropH, defaultY := halfStackDims(frameWidth, frameHeight)

	defaultLeft := geom.Rect{X: 0, Width: cropW, Height: frameHeight}
	defaultRight := geom.Rect{X: cropW, Width: cropW, Height: frameHeight}

	allContained := true
	for _, b := range boxes {
		if !defaultLeft.ContainsX(b) && !defaultRight.ContainsX(b) {
			allContained = false
			break
		}
	}

	frameCenter := frameWidth / 2
	var leftBoxes, rightBoxes []geom.Rect
	for _, b := range boxes {
		if b.CenterX() < frameCenter {
			leftBoxes = append(leftBoxes, b)
		} else {
			rightBoxes = append(rightBoxes, b)
		}
	}

	if allContained {
		// Keep the default horizontal split; only the vertical band moves.
		leftY := bandY(leftBoxes, defaultY, frameHeight, cropH)
		rightY := bandY(rightBoxes, defaultY, frameHeight, cropH)
		return Stacked(
			geom.Rect{X: 0, Y: leftY, Width: cropW, Height: cropH},
			geom.Rect{X: cropW, Y: rightY, Width: cropW, Height: cropH},
		)
	}

	x1, x2 := 0.0, cropW
	topY, bottomY := defaultY, defaultY

	if len(leftBoxes) > 0 {
		topY = bandY(leftBoxes, defaultY, frameHeight, cropH)
		minX, maxX := spanX(leftBoxes)
		if maxX-minX > cropW {
			x1 = (minX + maxX - cropW) / 2
		} else {
			x1 = minX
		}
		x1 = clamp(x1, 0, cropW)
	}

	if len(rightBoxes) > 0 {
		bottomY = bandY(rightBoxes, defaultY, frameHeight, cropH)
		minX, maxX := spanX(rightBoxes)
		if maxX-minX > cropW {
			x2 = (minX + maxX - cropW) / 2
		} else {
			x2 = maxX - cropW
		}
		x2 = clamp(x2, 0, cropW)
	}

	top := geom.Rect{X: x1, Y: topY, Width: cropW, Height: cropH}
	bottom := geom.Rect{X: x2, Y: bottomY, Width: cropW, Height: cropH}

	// Post-construction containment check: any object left outside both
	// regions pulls the nearer region over itself.
	for _, b := range boxes {
		if top.ContainsX(b) || bottom.ContainsX(b) {
			continue
		}
		distTop := math.Abs(b.CenterX() - top.CenterX())
		distBottom := math.Abs(b.CenterX() - bottom.CenterX())
		if distTop <= distBottom {
			x1 = clamp(b.X, 0, cropW)
			top = geom.Rect{X: x1, Y: topY, Width: cropW, Height: cropH}
		} else {
			x2 = clamp(b.MaxX()-cropW, 0, cropW)
			bottom = geom.Rect{X: x2, Y: bottomY, Width: cropW, Height: cropH}
		}
	}

	return Stacked(top, bottom)
}

// crowdLayout handles six or more objects.
func (e *Engine) crowdLayout(boxes []geom.Rect, frameWidth, frameHeight float64, allowStacked bool) Decision {
	bbox := geom.Bounding(boxes)
	if bbox.Width <= frameHeight*singleWidthRatio {
		return Single(singleCropAt(bbox.CenterX(), frameWidth, frameHeight))
	}

	dominant := -1
	for i, b := range boxes {
		isDominant := true
		for j, other := range boxes {
			if i == j {
				continue
			}
			if b.Area() < other.Area()*e.cfg.DominantAreaRatio {
				isDominant = false
				break
			}
		}
		if isDominant {
			dominant = i
			break
		}
	}

	if dominant < 0 {
		// A crowd with no standout framing target is treated like an
		// empty frame.
		return e.emptyLayout(frameWidth, frameHeight, false)
	}

	big := boxes[dominant]
	if !allowStacked {
		return Single(singleCropAt(big.CenterX(), frameWidth, frameHeight))
	}

	cropW, cropH, cropY := halfStackDims(frameWidth, frameHeight)

	x1 := clamp(big.CenterX()-cropW/2, 0, frameWidth-cropW)

	rest := make([]geom.Rect, 0, len(boxes)-1)
	for i, b := range boxes {
		if i != dominant {
			rest = append(rest, b)
		}
	}
	x2 := clamp(geom.Bounding(rest).CenterX()-cropW/2, 0, frameWidth-cropW)

	// Overlapping regions would show the dominant object twice; push the
	// remainder region to the far side instead.
	if math.Abs(x1-x2) < cropW*0.5 {
		if x1 < frameWidth/2 {
			x2 = frameWidth - cropW
		} else {
			x2 = 0
		}
	}

	return Stacked(
		geom.Rect{X: x1, Y: cropY, Width: cropW, Height: cropH},
		geom.Rect{X: x2, Y: cropY, Width: cropW, Height: cropH},
	)
}

// largestSingle centers a single region on the largest object by area.
func largestSingle(boxes []geom.Rect, frameWidth, frameHeight float64) Decision {
	largest := boxes[0]
	for _, b := range boxes[1:] {
		if b.Area() > largest.Area() {
			largest = b
		}
	}
	return Single(singleCropAt(largest.CenterX(), frameWidth, frameHeight))
}

// singleCropAt builds the shared single-region shape: full frame
// height, 3:4 width, horizontally centered on centerX and clamped so
// the region never leaves the frame.
func singleCropAt(centerX, frameWidth, frameHeight float64) geom.Rect {
	width := frameHeight * singleWidthRatio
	x := centerX - width/2
	if x < 0 {
		x = 0
	} else if x+width > frameWidth {
		x = frameWidth - width
	}
	return geom.Rect{X: x, Y: 0, Width: width, Height: frameHeight}
}

// halfStackDims returns the shared dimensions of a half-stack region:
// half the frame width, 8:9 height, vertically centered by default.
func halfStackDims(frameWidth, frameHeight float64) (cropW, cropH, defaultY float64) {
	cropW = frameWidth * 0.5
	cropH = cropW * stackHeightRatio
	defaultY = (frameHeight - cropH) / 2
	return cropW, cropH, defaultY
}

// bandY picks the vertical position of a half-stack region: the default
// centered band, nudged to the top edge when an object pokes above it
// or to the bottom edge when one pokes below.
func bandY(boxes []geom.Rect, defaultY, frameHeight, cropH float64) float64 {
	if len(boxes) == 0 {
		return defaultY
	}
	top := boxes[0].Y
	bottom := boxes[0].MaxY()
	for _, b := range boxes[1:] {
		top = math.Min(top, b.Y)
		bottom = math.Max(bottom, b.MaxY())
	}
	switch {
	case top < defaultY:
		return 0
	case bottom > defaultY+cropH:
		return frameHeight - cropH
	default:
		return defaultY
	}
}

// spanX returns the leftmost and rightmost edges over the boxes.
func spanX(boxes []geom.Rect) (minX, maxX float64) {
	minX = boxes[0].X
	maxX = boxes[0].MaxX()
	for _, b := range boxes[1:] {
		minX = math.Min(minX, b.X)
		maxX = math.Max(maxX, b.MaxX())
	}
	return minX, maxX
}

// clamp restricts v to [lo, hi], applying the bounds in that order.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
