package cut

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/stat"
)

const (
	// thumbSize is the side of the square grayscale thumbnail both
	// frames are reduced to before scoring. Scoring on thumbnails keeps
	// the cost independent of the source resolution and suppresses
	// pixel-level noise.
	thumbSize = 64
	// windowSize is the side of the local windows used for structural
	// scoring.
	windowSize = 8
	// histogramBins is the number of luminance buckets compared between
	// the two thumbnails.
	histogramBins = 32

	// ssimC1 and ssimC2 stabilize the structural score on flat windows,
	// for a unit dynamic range.
	ssimC1 = 0.01 * 0.01
	ssimC2 = 0.03 * 0.03

	// structureWeight and distributionWeight blend the two components
	// of the final score.
	structureWeight    = 0.5
	distributionWeight = 0.5
)

var (
	// ErrNilImage is returned when either frame is nil.
	ErrNilImage = errors.New("image is nil")
	// ErrEmptyImage is returned when either frame has no pixels.
	ErrEmptyImage = errors.New("image has no pixels")
	// ErrSizeMismatch is returned when the frames have different
	// dimensions. Frames of one stream always share a size, so a
	// mismatch means the caller compared frames of different streams.
	ErrSizeMismatch = errors.New("image dimensions differ")
)

// Similarity scores how alike two frames look, from 0 to 1. Identical
// frames score 1. The score is symmetric in its arguments.
func Similarity(a, b image.Image) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilImage
	}
	aw, ah := a.Bounds().Dx(), a.Bounds().Dy()
	bw, bh := b.Bounds().Dx(), b.Bounds().Dy()
	if aw <= 0 || ah <= 0 || bw <= 0 || bh <= 0 {
		return 0, ErrEmptyImage
	}
	if aw != bw || ah != bh {
		return 0, fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, aw, ah, bw, bh)
	}

	ga := grayThumbnail(a)
	gb := grayThumbnail(b)

	score := structureWeight*structuralScore(ga, gb) + distributionWeight*histogramScore(ga, gb)
	return clampUnit(score), nil
}

// grayThumbnail reduces a frame to the shared scoring size.
func grayThumbnail(src image.Image) *image.Gray {
	thumb := image.NewGray(image.Rect(0, 0, thumbSize, thumbSize))
	draw.BiLinear.Scale(thumb, thumb.Bounds(), src, src.Bounds(), draw.Src, nil)
	return thumb
}

// structuralScore averages the structural similarity of the aligned
// local windows of the two thumbnails.
func structuralScore(a, b *image.Gray) float64 {
	scores := make([]float64, 0, (thumbSize/windowSize)*(thumbSize/windowSize))
	for wy := 0; wy < thumbSize; wy += windowSize {
		for wx := 0; wx < thumbSize; wx += windowSize {
			pa := windowPixels(a, wx, wy)
			pb := windowPixels(b, wx, wy)
			scores = append(scores, windowSSIM(pa, pb))
		}
	}
	return stat.Mean(scores, nil)
}

// windowPixels collects one window as normalized luminance values.
func windowPixels(img *image.Gray, x0, y0 int) []float64 {
	px := make([]float64, 0, windowSize*windowSize)
	for y := y0; y < y0+windowSize; y++ {
		for x := x0; x < x0+windowSize; x++ {
			px = append(px, float64(img.GrayAt(x, y).Y)/255)
		}
	}
	return px
}

// windowSSIM computes the structural similarity of two aligned
// windows. The result is 1 for identical windows and can go slightly
// negative for anti-correlated ones.
func windowSSIM(a, b []float64) float64 {
	meanA := stat.Mean(a, nil)
	meanB := stat.Mean(b, nil)
	varA := stat.Variance(a, nil)
	varB := stat.Variance(b, nil)
	cov := stat.Covariance(a, b, nil)

	num := (2*meanA*meanB + ssimC1) * (2*cov + ssimC2)
	den := (meanA*meanA + meanB*meanB + ssimC1) * (varA + varB + ssimC2)
	return num / den
}

// histogramScore is the intersection of the luminance histograms of
// the two thumbnails, normalized to [0, 1].
func histogramScore(a, b *image.Gray) float64 {
	ha := histogram(a)
	hb := histogram(b)
	shared := 0
	for i := range ha {
		if ha[i] < hb[i] {
			shared += ha[i]
		} else {
			shared += hb[i]
		}
	}
	return float64(shared) / float64(thumbSize*thumbSize)
}

func histogram(img *image.Gray) [histogramBins]int {
	var bins [histogramBins]int
	for _, p := range img.Pix {
		bins[int(p)*histogramBins/256]++
	}
	return bins
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
