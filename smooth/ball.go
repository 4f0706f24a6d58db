package smooth

import (
	"fmt"
	"image"

	"github.com/sirupsen/logrus"

	"github.com/framewise/reframe/crop"
	"github.com/framewise/reframe/cut"
	"github.com/framewise/reframe/detect"
	"github.com/framewise/reframe/geom"
	"github.com/framewise/reframe/track"
)

// ball implements PolicyBall: the framing follows one fast-moving
// object. With several detections it follows the most confident one;
// with none it extrapolates the object's recent motion so the framing
// keeps moving through short detection gaps. Scene cuts reset the
// motion history.
type ball struct {
	cfg       Config
	renderer  Renderer
	engine    *crop.Engine
	detector  *cut.Detector
	predictor *track.Predictor

	prev      crop.Decision
	prevSet   bool
	lastImage image.Image
}

func (s *ball) Process(img image.Image, candidate crop.Decision, objects []detect.Object) error {
	isCut := true
	if s.lastImage != nil {
		var err error
		isCut, err = s.detector.IsCut(s.lastImage, img)
		if err != nil {
			return fmt.Errorf("detecting cut: %w", err)
		}
	}

	var use crop.Decision
	switch {
	case isCut:
		s.predictor.Clear()
		use = candidate
	case len(objects) == 1:
		use = s.follow(objects[0].Box)
	case len(objects) >= 2:
		best := objects[detect.HighestConfidence(objects)]
		use = s.follow(best.Box)
	case s.predictor.Len() >= 2:
		// No detection this frame; frame where the object should be.
		// The prediction itself is not recorded, so a long gap keeps
		// extrapolating from real observations only.
		predicted, _ := s.predictor.Predict(s.cfg.FrameWidth, s.cfg.FrameHeight)
		logrus.WithFields(logrus.Fields{
			"function": "Process",
			"x":        predicted.X,
			"y":        predicted.Y,
		}).Debug("Framing predicted object position")
		use = s.singleOn(predicted)
	case s.prevSet:
		use = s.prev
	default:
		use = candidate
	}

	s.prev, s.prevSet = use, true
	s.lastImage = img
	return s.renderer.Render(img, use)
}

// follow records an observed position and frames it.
func (s *ball) follow(box geom.Rect) crop.Decision {
	s.predictor.Push(box)
	return s.singleOn(box)
}

func (s *ball) singleOn(box geom.Rect) crop.Decision {
	return s.engine.Compute([]geom.Rect{box}, s.cfg.FrameWidth, s.cfg.FrameHeight, false, false)
}

func (s *ball) Flush() error {
	return nil
}
