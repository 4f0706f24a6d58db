package smooth

import (
	"image"

	"github.com/sirupsen/logrus"

	"github.com/framewise/reframe/crop"
	"github.com/framewise/reframe/detect"
)

// hold keeps the previous decision while the candidate stays within
// tolerance of it, killing small jitter. Any larger change is adopted
// immediately.
type hold struct {
	cfg      Config
	renderer Renderer

	prev    crop.Decision
	prevSet bool
}

func (s *hold) Process(img image.Image, candidate crop.Decision, _ []detect.Object) error {
	use := candidate
	if s.prevSet && s.prev.Similar(candidate, s.cfg.FrameWidth, s.cfg.SimilarityPercent) {
		use = s.prev
		logrus.WithFields(logrus.Fields{
			"function": "Process",
			"decision": use.String(),
		}).Debug("Holding previous decision")
	}
	s.prev, s.prevSet = use, true
	return s.renderer.Render(img, use)
}

func (s *hold) Flush() error {
	return nil
}
