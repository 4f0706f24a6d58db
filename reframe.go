package reframe

import (
	"errors"
	"fmt"
	"image"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/framewise/reframe/crop"
	"github.com/framewise/reframe/detect"
	"github.com/framewise/reframe/metrics"
	"github.com/framewise/reframe/progress"
	"github.com/framewise/reframe/render"
	"github.com/framewise/reframe/smooth"
)

// ErrPipelineFinished is returned by ProcessFrame after Finish was called.
var ErrPipelineFinished = errors.New("pipeline already finished")

// Pipeline processes one video stream. It filters the caller's detections,
// computes a framing decision per frame, stabilizes decisions over time, and
// composites the chosen regions onto a vertical canvas. A Pipeline is not
// safe for concurrent use; frames must arrive in stream order.
type Pipeline struct {
	id       string
	opts     *Options
	filter   detect.Filter
	engine   *crop.Engine
	smoother smooth.Smoother
	tracker  *progress.Tracker
	metrics  *metrics.Metrics

	frames   int
	finished bool
}

// New creates a Pipeline writing vertical frames to w. A nil opts uses
// NewOptions; a nil m disables metrics collection.
func New(opts *Options, w render.FrameWriter, m *metrics.Metrics) (*Pipeline, error) {
	if opts == nil {
		opts = NewOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// Derive the output canvas unless the caller fixed it.
	outW, outH := opts.OutputWidth, opts.OutputHeight
	if outW == 0 {
		outW, outH = render.OutputSize(opts.FrameHeight)
	}
	compositor, err := render.NewCompositor(outW, outH, w)
	if err != nil {
		return nil, fmt.Errorf("creating compositor: %w", err)
	}

	var renderer smooth.Renderer = compositor
	if m != nil {
		renderer = &countingRenderer{inner: compositor, metrics: m}
	}

	engine := crop.NewEngine(crop.Config{
		DominantAreaRatio: opts.DominantAreaRatio,
		TrioAreaRatio:     opts.TrioAreaRatio,
		TrioSpacingRatio:  opts.TrioSpacingRatio,
	})

	smoother, err := smooth.New(opts.SmoothingPolicy, smooth.Config{
		FrameWidth:        float64(opts.FrameWidth),
		FrameHeight:       float64(opts.FrameHeight),
		SimilarityPercent: opts.SmoothingPercent,
		DurationFrames:    opts.durationFrames(),
		CutSimilarity:     opts.CutSimilarity,
		CutPrevSimilarity: opts.CutPrevSimilarity,
	}, renderer, engine)
	if err != nil {
		return nil, fmt.Errorf("creating smoother: %w", err)
	}

	p := &Pipeline{
		id:   uuid.New().String(),
		opts: opts,
		filter: detect.Filter{
			Label:           opts.ObjectLabel,
			MinConfidence:   opts.MinConfidence,
			MinAreaFraction: opts.MinAreaFraction,
		},
		engine:   engine,
		smoother: smoother,
		tracker:  progress.NewTracker(opts.TotalFrames, opts.FrameRate, opts.Clock),
		metrics:  m,
	}

	if m != nil {
		m.StreamStarted()
	}
	logrus.WithFields(logrus.Fields{
		"function": "New",
		"stream":   p.id,
		"policy":   opts.SmoothingPolicy.String(),
		"input":    fmt.Sprintf("%dx%d@%g", opts.FrameWidth, opts.FrameHeight, opts.FrameRate),
		"output":   fmt.Sprintf("%dx%d", outW, outH),
	}).Info("Pipeline created")

	return p, nil
}

// ID returns the unique stream identifier.
func (p *Pipeline) ID() string {
	return p.id
}

// ProcessFrame ingests one frame together with its detections. isGraphic
// marks slide-like frames that should be letterboxed when nothing usable is
// detected. Depending on the smoothing policy the frame may be rendered
// immediately, held back, or rendered along with earlier held frames.
func (p *Pipeline) ProcessFrame(img image.Image, objects []detect.Object, isGraphic bool) error {
	if p.finished {
		return ErrPipelineFinished
	}
	if p.metrics != nil {
		p.metrics.FrameIn()
	}

	kept := p.filter.Apply(objects, float64(p.opts.FrameWidth), float64(p.opts.FrameHeight))
	candidate := p.engine.Compute(detect.Boxes(kept),
		float64(p.opts.FrameWidth), float64(p.opts.FrameHeight),
		p.opts.AllowStacked, isGraphic)
	if p.metrics != nil {
		p.metrics.Decision(candidate.Kind)
	}

	if err := p.smoother.Process(img, candidate, kept); err != nil {
		if p.metrics != nil {
			p.metrics.StreamError()
		}
		return fmt.Errorf("stream %s: frame %d: %w", p.id, p.frames, err)
	}

	p.frames++
	p.tracker.Observe()
	return nil
}

// Finish releases frames held back by smoothing and closes the stream.
// Further ProcessFrame calls return ErrPipelineFinished. Finish is
// idempotent.
func (p *Pipeline) Finish() error {
	if p.finished {
		return nil
	}
	p.finished = true

	if err := p.smoother.Flush(); err != nil {
		if p.metrics != nil {
			p.metrics.StreamError()
		}
		return fmt.Errorf("stream %s: flushing: %w", p.id, err)
	}

	stats := p.tracker.Snapshot()
	logrus.WithFields(logrus.Fields{
		"function": "Finish",
		"stream":   p.id,
		"frames":   stats.Frames,
		"elapsed":  progress.FormatDuration(stats.Elapsed),
		"fps":      fmt.Sprintf("%.1f", stats.FPS),
	}).Info("Pipeline finished")
	return nil
}

// Stats reports processing progress so far.
func (p *Pipeline) Stats() progress.Stats {
	return p.tracker.Snapshot()
}

// countingRenderer counts rendered frames on the way to the compositor.
type countingRenderer struct {
	inner   *render.Compositor
	metrics *metrics.Metrics
}

func (r *countingRenderer) Render(img image.Image, d crop.Decision) error {
	if err := r.inner.Render(img, d); err != nil {
		return err
	}
	r.metrics.FrameRendered()
	return nil
}
