package cut

import (
	"fmt"
	"image"

	"github.com/sirupsen/logrus"
)

// hardCutFloor is the similarity below which a frame is always ruled a
// cut, regardless of the score history.
const hardCutFloor = 0.08

// Detector rules on scene cuts between consecutive frames of one
// stream. Beyond the hard floor, a frame is a cut when it scores below
// the similarity threshold while the previous comparison scored above
// the high-water threshold. Not safe for concurrent use; give each
// stream its own Detector.
type Detector struct {
	simThreshold  float64
	prevThreshold float64

	prevScore float64
	scored    bool
}

// NewDetector builds a detector. simThreshold is the similarity below
// which a frame is a cut candidate; prevThreshold is the score the
// previous comparison must have exceeded for the candidate to fire.
// Both are expected in (0, 1].
func NewDetector(simThreshold, prevThreshold float64) *Detector {
	return &Detector{
		simThreshold:  simThreshold,
		prevThreshold: prevThreshold,
	}
}

// IsCut reports whether curr starts a new scene relative to prev.
// Scoring errors are returned as-is and record nothing.
func (d *Detector) IsCut(prev, curr image.Image) (bool, error) {
	score, err := Similarity(prev, curr)
	if err != nil {
		return false, fmt.Errorf("scoring frame similarity: %w", err)
	}

	cut := d.observe(score)
	logrus.WithFields(logrus.Fields{
		"function": "IsCut",
		"score":    score,
		"cut":      cut,
	}).Debug("Scored consecutive frames")
	return cut, nil
}

// observe applies the cut policy to one similarity score and records
// the score for the next call. The very first score has no history and
// is judged against the similarity threshold alone.
func (d *Detector) observe(score float64) bool {
	var cut bool
	switch {
	case score < hardCutFloor:
		cut = true
	case !d.scored:
		cut = score < d.simThreshold
	default:
		cut = score < d.simThreshold && d.prevScore > d.prevThreshold
	}
	d.prevScore = score
	d.scored = true
	return cut
}
