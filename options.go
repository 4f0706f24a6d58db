package reframe

import (
	"errors"
	"fmt"
	"math"

	"github.com/framewise/reframe/progress"
	"github.com/framewise/reframe/smooth"
)

// ErrInvalidOptions is returned by New when the options are inconsistent.
var ErrInvalidOptions = errors.New("invalid options")

// Options contains configuration for creating a Pipeline.
type Options struct {
	FrameWidth  int
	FrameHeight int
	FrameRate   float64
	TotalFrames int // 0 when the stream length is unknown

	ObjectLabel     string // empty accepts any class
	MinConfidence   float64
	MinAreaFraction float64

	AllowStacked bool

	SmoothingPolicy   smooth.Policy
	SmoothingPercent  float64 // similarity tolerance, percent of frame width
	SmoothingDuration float64 // confirmation window in seconds
	CutSimilarity     float64
	CutPrevSimilarity float64

	DominantAreaRatio float64
	TrioAreaRatio     float64
	TrioSpacingRatio  float64

	OutputWidth  int // 0 derives a 9:16 size from FrameHeight
	OutputHeight int

	Clock progress.Clock // nil uses the wall clock
}

// NewOptions creates a new default Options: 1080p30 input, history
// smoothing with a 1.5 second confirmation window.
func NewOptions() *Options {
	return &Options{
		FrameWidth:        1920,
		FrameHeight:       1080,
		FrameRate:         30,
		MinConfidence:     0.5,
		AllowStacked:      true,
		SmoothingPolicy:   smooth.PolicyHistory,
		SmoothingPercent:  10,
		SmoothingDuration: 1.5,
		CutSimilarity:     0.3,
		CutPrevSimilarity: 0.8,
		DominantAreaRatio: 2.5,
		TrioAreaRatio:     2.5,
		TrioSpacingRatio:  2.0,
	}
}

// Validate checks the options for inconsistencies.
func (o *Options) Validate() error {
	if o.FrameWidth <= 0 || o.FrameHeight <= 0 {
		return fmt.Errorf("%w: frame size must be positive, got %dx%d", ErrInvalidOptions, o.FrameWidth, o.FrameHeight)
	}
	if o.FrameRate <= 0 {
		return fmt.Errorf("%w: frame rate must be positive, got %g", ErrInvalidOptions, o.FrameRate)
	}
	if o.TotalFrames < 0 {
		return fmt.Errorf("%w: total frames must not be negative, got %d", ErrInvalidOptions, o.TotalFrames)
	}
	if o.MinConfidence < 0 || o.MinConfidence > 1 {
		return fmt.Errorf("%w: min confidence must be in [0,1], got %g", ErrInvalidOptions, o.MinConfidence)
	}
	if o.MinAreaFraction < 0 || o.MinAreaFraction >= 1 {
		return fmt.Errorf("%w: min area fraction must be in [0,1), got %g", ErrInvalidOptions, o.MinAreaFraction)
	}
	if o.SmoothingPercent < 0 || o.SmoothingPercent > 100 {
		return fmt.Errorf("%w: smoothing percent must be in [0,100], got %g", ErrInvalidOptions, o.SmoothingPercent)
	}
	if o.SmoothingDuration < 0 {
		return fmt.Errorf("%w: smoothing duration must not be negative, got %g", ErrInvalidOptions, o.SmoothingDuration)
	}
	if o.CutSimilarity < 0 || o.CutSimilarity > 1 {
		return fmt.Errorf("%w: cut similarity must be in [0,1], got %g", ErrInvalidOptions, o.CutSimilarity)
	}
	if o.CutPrevSimilarity < 0 || o.CutPrevSimilarity > 1 {
		return fmt.Errorf("%w: cut previous similarity must be in [0,1], got %g", ErrInvalidOptions, o.CutPrevSimilarity)
	}
	if o.DominantAreaRatio < 0 || o.TrioAreaRatio < 0 || o.TrioSpacingRatio < 0 {
		return fmt.Errorf("%w: layout ratios must not be negative", ErrInvalidOptions)
	}
	if o.OutputWidth < 0 || o.OutputHeight < 0 {
		return fmt.Errorf("%w: output size must not be negative, got %dx%d", ErrInvalidOptions, o.OutputWidth, o.OutputHeight)
	}
	if (o.OutputWidth > 0) != (o.OutputHeight > 0) {
		return fmt.Errorf("%w: output width and height must be set together, got %dx%d", ErrInvalidOptions, o.OutputWidth, o.OutputHeight)
	}
	return nil
}

// durationFrames converts the smoothing window from seconds to whole frames
// at the configured frame rate.
func (o *Options) durationFrames() int {
	return int(math.Round(o.SmoothingDuration * o.FrameRate))
}
