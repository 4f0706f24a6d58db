package smooth

import (
	"errors"
	"fmt"
	"image"

	"github.com/framewise/reframe/crop"
	"github.com/framewise/reframe/cut"
	"github.com/framewise/reframe/detect"
	"github.com/framewise/reframe/track"
)

var (
	// ErrUnknownPolicy is returned when New receives a policy it does
	// not implement.
	ErrUnknownPolicy = errors.New("unknown smoothing policy")
	// ErrNoRenderer is returned when New receives a nil renderer.
	ErrNoRenderer = errors.New("renderer must not be nil")
	// ErrNoEngine is returned when a policy that recomputes crops is
	// built without a crop engine.
	ErrNoEngine = errors.New("crop engine must not be nil")
	// ErrInvalidFrameSize is returned when the configured frame
	// dimensions are not positive.
	ErrInvalidFrameSize = errors.New("frame dimensions must be positive")
)

// Policy selects how decisions are stabilized over time.
type Policy uint8

const (
	// PolicyNone renders every candidate decision unchanged.
	PolicyNone Policy = iota
	// PolicyHold keeps the previous decision while the candidate stays
	// within tolerance of it.
	PolicyHold
	// PolicyHistory holds changed decisions back until they persist for
	// a confirmation window.
	PolicyHistory
	// PolicyBall follows one fast-moving object, extrapolating through
	// detection gaps.
	PolicyBall
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case PolicyNone:
		return "none"
	case PolicyHold:
		return "hold"
	case PolicyHistory:
		return "history"
	case PolicyBall:
		return "ball"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(p))
	}
}

// Config carries the tunables shared by the smoothing policies.
type Config struct {
	// FrameWidth and FrameHeight are the source frame dimensions in
	// pixels. FrameWidth also normalizes the similarity tolerance.
	FrameWidth  float64
	FrameHeight float64
	// SimilarityPercent is the tolerance, as a percentage of the frame
	// width, under which two decisions count as the same.
	SimilarityPercent float64
	// DurationFrames is the confirmation window of PolicyHistory: how
	// many frames a changed decision is held back before the output
	// moves. Zero disables holding entirely.
	DurationFrames int
	// CutSimilarity and CutPrevSimilarity configure scene-cut
	// detection; see cut.NewDetector.
	CutSimilarity     float64
	CutPrevSimilarity float64
}

// Renderer consumes a frame together with the decision to apply to it.
// Smoothers may call it zero or more times per processed frame.
type Renderer interface {
	Render(img image.Image, d crop.Decision) error
}

// Smoother owns the rendering schedule of one stream. Process accepts
// each frame in order with its candidate decision and the objects the
// candidate was computed from; Flush must be called once after the
// last frame to release any held-back frames.
type Smoother interface {
	Process(img image.Image, candidate crop.Decision, objects []detect.Object) error
	Flush() error
}

// New builds the smoother for a policy. The engine is only required by
// policies that recompute crops themselves (PolicyBall).
func New(policy Policy, cfg Config, renderer Renderer, engine *crop.Engine) (Smoother, error) {
	if renderer == nil {
		return nil, ErrNoRenderer
	}
	if cfg.FrameWidth <= 0 || cfg.FrameHeight <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidFrameSize, cfg.FrameWidth, cfg.FrameHeight)
	}

	switch policy {
	case PolicyNone:
		return &passthrough{renderer: renderer}, nil
	case PolicyHold:
		return &hold{cfg: cfg, renderer: renderer}, nil
	case PolicyHistory:
		if cfg.DurationFrames <= 0 {
			// Without a confirmation window there is nothing to hold
			// back; candidates pass straight through.
			return &passthrough{renderer: renderer}, nil
		}
		return &buffered{
			cfg:      cfg,
			renderer: renderer,
			detector: cut.NewDetector(cfg.CutSimilarity, cfg.CutPrevSimilarity),
		}, nil
	case PolicyBall:
		if engine == nil {
			return nil, ErrNoEngine
		}
		return &ball{
			cfg:       cfg,
			renderer:  renderer,
			engine:    engine,
			detector:  cut.NewDetector(cfg.CutSimilarity, cfg.CutPrevSimilarity),
			predictor: track.NewPredictor(),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPolicy, policy)
	}
}
