package crop

import (
	"fmt"

	"github.com/framewise/reframe/geom"
)

// Kind identifies the shape of a crop decision.
type Kind uint8

const (
	// KindSingle is one region to be resized into the output frame.
	KindSingle Kind = iota
	// KindStacked is two regions vertically concatenated, first-on-top.
	KindStacked
	// KindResize is the entire source frame, used for graphic content.
	KindResize
)

// String returns a human-readable name for the decision kind.
func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindStacked:
		return "stacked"
	case KindResize:
		return "resize"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Decision is the chosen output layout for one frame. It is immutable
// once produced and applies to exactly one frame (or one buffered run
// of frames under smoothing).
//
// Primary is the only region for KindSingle and KindResize, and the top
// region for KindStacked. Secondary is the bottom region of a stacked
// layout and is the zero Rect otherwise.
type Decision struct {
	Kind      Kind
	Primary   geom.Rect
	Secondary geom.Rect
}

// Single builds a one-region decision.
func Single(region geom.Rect) Decision {
	return Decision{Kind: KindSingle, Primary: region}
}

// Stacked builds a two-region decision with top above bottom.
func Stacked(top, bottom geom.Rect) Decision {
	return Decision{Kind: KindStacked, Primary: top, Secondary: bottom}
}

// Resize builds a full-frame decision for graphic content.
func Resize(frame geom.Rect) Decision {
	return Decision{Kind: KindResize, Primary: frame}
}

// Similar reports whether two decisions are equivalent within the
// tolerance: both must have the same shape, and every constituent
// rectangle pair must stay within thresholdPercent percent of
// frameWidth on each field. Mismatched shapes are never similar.
func (d Decision) Similar(other Decision, frameWidth, thresholdPercent float64) bool {
	if d.Kind != other.Kind {
		return false
	}
	if !d.Primary.WithinPercent(other.Primary, frameWidth, thresholdPercent) {
		return false
	}
	if d.Kind == KindStacked {
		return d.Secondary.WithinPercent(other.Secondary, frameWidth, thresholdPercent)
	}
	return true
}

// String renders the decision compactly for logging.
func (d Decision) String() string {
	switch d.Kind {
	case KindStacked:
		return fmt.Sprintf("stacked[%.0f,%.0f %.0fx%.0f | %.0f,%.0f %.0fx%.0f]",
			d.Primary.X, d.Primary.Y, d.Primary.Width, d.Primary.Height,
			d.Secondary.X, d.Secondary.Y, d.Secondary.Width, d.Secondary.Height)
	default:
		return fmt.Sprintf("%s[%.0f,%.0f %.0fx%.0f]",
			d.Kind, d.Primary.X, d.Primary.Y, d.Primary.Width, d.Primary.Height)
	}
}
