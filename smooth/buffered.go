package smooth

import (
	"fmt"
	"image"

	"github.com/sirupsen/logrus"

	"github.com/framewise/reframe/crop"
	"github.com/framewise/reframe/cut"
	"github.com/framewise/reframe/detect"
)

// buffered implements PolicyHistory. A changed candidate decision is
// not rendered immediately; the frame is held back and later
// candidates must keep agreeing with it for a full confirmation window
// before the output moves. Held-back frames are replayed with whatever
// decision wins. Scene cuts bypass the window: the new decision is
// adopted at once.
type buffered struct {
	cfg      Config
	renderer Renderer
	detector *cut.Detector

	prev      crop.Decision
	prevCount int
	prevSet   bool
	lastImage image.Image
	pending   history
}

func (s *buffered) Process(img image.Image, candidate crop.Decision, objects []detect.Object) error {
	count := len(objects)

	if !s.prevSet {
		s.prev, s.prevCount, s.prevSet = candidate, count, true
		s.lastImage = img
		return s.renderer.Render(img, candidate)
	}

	// A frame that cannot be compared to its predecessor is treated as
	// the start of a new scene.
	isCut := true
	if s.lastImage != nil {
		var err error
		isCut, err = s.detector.IsCut(s.lastImage, img)
		if err != nil {
			return fmt.Errorf("detecting cut: %w", err)
		}
	}

	sameClass := crop.SameClass(s.prevCount, count)
	similar := s.prev.Similar(candidate, s.cfg.FrameWidth, s.cfg.SimilarityPercent)

	var err error
	switch {
	case isCut:
		err = s.handleCut(img, candidate, count)
	case sameClass && similar:
		err = s.handleStable(img)
	default:
		err = s.handleChange(img, candidate, count)
	}
	if err != nil {
		return err
	}

	s.lastImage = img
	return nil
}

// handleCut abandons any pending hypothesis and adopts the candidate.
// Held-back frames predate the cut, so they are replayed with the
// decision that was current when they were captured.
func (s *buffered) handleCut(img image.Image, candidate crop.Decision, count int) error {
	logrus.WithFields(logrus.Fields{
		"function": "handleCut",
		"decision": candidate.String(),
		"pending":  s.pending.size(),
	}).Debug("Scene cut, adopting candidate")

	if err := s.flushWith(s.prev); err != nil {
		return err
	}
	s.prev, s.prevCount = candidate, count
	return s.renderer.Render(img, candidate)
}

// handleStable keeps the current decision. A pending hypothesis that
// existed is abandoned, since the stream came back to the old framing.
func (s *buffered) handleStable(img image.Image) error {
	if err := s.flushWith(s.prev); err != nil {
		return err
	}
	return s.renderer.Render(img, s.prev)
}

// handleChange runs the confirmation window. The frame is held back;
// nothing is rendered until the changed decision is confirmed,
// rejected, or overtaken by a cut or a reversion.
func (s *buffered) handleChange(img image.Image, candidate crop.Decision, count int) error {
	front, ok := s.pending.front()
	if !ok {
		logrus.WithFields(logrus.Fields{
			"function": "handleChange",
			"decision": candidate.String(),
		}).Debug("New hypothesis, holding frame back")
		s.pending.push(frameRecord{decision: candidate, img: img, objectCount: count})
		return nil
	}

	agreesClass := crop.SameClass(front.objectCount, count)
	agreesShape := front.decision.Similar(candidate, s.cfg.FrameWidth, s.cfg.SimilarityPercent)

	if agreesClass && agreesShape {
		if s.pending.size() >= s.cfg.DurationFrames {
			return s.confirmHypothesis(img, front)
		}
		// Still inside the window; keep holding frames under the
		// hypothesis.
		s.pending.push(frameRecord{decision: front.decision, img: img, objectCount: front.objectCount})
		return nil
	}

	return s.rejectHypothesis(img, candidate, count, front)
}

// confirmHypothesis promotes the pending decision: the held-back
// frames and the current one are all rendered with it.
func (s *buffered) confirmHypothesis(img image.Image, front frameRecord) error {
	logrus.WithFields(logrus.Fields{
		"function": "confirmHypothesis",
		"decision": front.decision.String(),
		"pending":  s.pending.size(),
	}).Debug("Hypothesis confirmed, switching decision")

	if err := s.flushWith(front.decision); err != nil {
		return err
	}
	s.prev, s.prevCount = front.decision, front.objectCount
	return s.renderer.Render(img, front.decision)
}

// rejectHypothesis releases the held-back frames when the candidate
// stops agreeing with the pending decision. The frames are rendered
// with the steadier of the two framings: a single-region hypothesis
// beats a stacked or resize incumbent, otherwise the incumbent stays.
// The disagreeing candidate becomes the next hypothesis.
func (s *buffered) rejectHypothesis(img image.Image, candidate crop.Decision, count int, front frameRecord) error {
	use, useCount := s.prev, s.prevCount
	if (s.prev.Kind == crop.KindStacked || s.prev.Kind == crop.KindResize) && front.decision.Kind == crop.KindSingle {
		use, useCount = front.decision, front.objectCount
	}

	logrus.WithFields(logrus.Fields{
		"function": "rejectHypothesis",
		"decision": use.String(),
		"pending":  s.pending.size(),
	}).Debug("Hypothesis rejected, releasing held frames")

	if err := s.flushWith(use); err != nil {
		return err
	}
	s.prev, s.prevCount = use, useCount
	s.pending.push(frameRecord{decision: candidate, img: img, objectCount: count})
	return nil
}

// Flush renders any frames still held back at end of stream with the
// current decision.
func (s *buffered) Flush() error {
	return s.flushWith(s.prev)
}

// flushWith renders all held-back frames, oldest first, with d. On a
// render error the failing record and everything behind it stay
// buffered, so a later flush can retry instead of dropping frames.
func (s *buffered) flushWith(d crop.Decision) error {
	for {
		rec, ok := s.pending.front()
		if !ok {
			return nil
		}
		if err := s.renderer.Render(rec.img, d); err != nil {
			return fmt.Errorf("rendering held frame: %w", err)
		}
		s.pending.popFront()
	}
}
