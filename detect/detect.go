package detect

import (
	"github.com/sirupsen/logrus"

	"github.com/framewise/reframe/geom"
)

// Object is a single detection reported by the external model for one
// frame. Confidence is zero when the detector supplied no score; a zero
// score fails any positive confidence threshold. Label is empty when the
// detector supplied no class name.
type Object struct {
	Box        geom.Rect
	Label      string
	Confidence float64
}

// Filter selects the detections that participate in layout.
type Filter struct {
	// Label is the class name objects must carry, e.g. "face". Empty
	// accepts any class.
	Label string
	// MinConfidence rejects objects scored below it. Unscored objects
	// (confidence zero) are rejected whenever MinConfidence is positive.
	MinConfidence float64
	// MinAreaFraction rejects boxes smaller than this fraction of the
	// frame area. Zero disables the size check.
	MinAreaFraction float64
}

// Apply returns the objects that pass every enabled check, preserving
// input order. The input slice is never modified.
func (f Filter) Apply(objects []Object, frameWidth, frameHeight float64) []Object {
	kept := make([]Object, 0, len(objects))
	minArea := f.MinAreaFraction * frameWidth * frameHeight
	for _, obj := range objects {
		if f.Label != "" && obj.Label != f.Label {
			continue
		}
		if obj.Confidence < f.MinConfidence {
			continue
		}
		if f.MinAreaFraction > 0 && obj.Box.Area() < minArea {
			continue
		}
		kept = append(kept, obj)
	}

	if len(kept) != len(objects) {
		logrus.WithFields(logrus.Fields{
			"function": "Apply",
			"label":    f.Label,
			"incoming": len(objects),
			"kept":     len(kept),
		}).Debug("Detections filtered")
	}

	return kept
}

// Boxes extracts the bounding boxes of the given objects in order.
func Boxes(objects []Object) []geom.Rect {
	boxes := make([]geom.Rect, len(objects))
	for i, obj := range objects {
		boxes[i] = obj.Box
	}
	return boxes
}

// HighestConfidence returns the index of the object with the highest
// confidence, or -1 for an empty slice. Ties keep the earliest object.
func HighestConfidence(objects []Object) int {
	best := -1
	for i, obj := range objects {
		if best < 0 || obj.Confidence > objects[best].Confidence {
			best = i
		}
	}
	return best
}
