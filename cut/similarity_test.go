package cut

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarityIdentical(t *testing.T) {
	img := gradientImage(640, 360)

	score, err := Similarity(img, img)

	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestSimilarityOpposite(t *testing.T) {
	black := solidImage(320, 180, color.RGBA{A: 255})
	white := solidImage(320, 180, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	score, err := Similarity(black, white)

	require.NoError(t, err)
	assert.Less(t, score, 0.1)
}

func TestSimilarityOrdering(t *testing.T) {
	base := gradientImage(640, 360)
	slight := withPatch(base, image.Rect(0, 0, 60, 60), color.RGBA{R: 255, G: 255, B: 255, A: 255})
	white := solidImage(640, 360, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	black := solidImage(640, 360, color.RGBA{A: 255})

	sIdentical, err := Similarity(base, base)
	require.NoError(t, err)
	sSlight, err := Similarity(base, slight)
	require.NoError(t, err)
	sOpposite, err := Similarity(black, white)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, sIdentical, sSlight)
	assert.Greater(t, sSlight, sOpposite)
	assert.Greater(t, sSlight, 0.7, "a small patch must not wreck the score")
	assert.Less(t, sSlight, 1.0, "a visible change must lower the score")

	for _, s := range []float64{sIdentical, sSlight, sOpposite} {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	a := gradientImage(320, 180)
	b := withPatch(a, image.Rect(100, 40, 220, 140), color.RGBA{R: 200, A: 255})

	sAB, err := Similarity(a, b)
	require.NoError(t, err)
	sBA, err := Similarity(b, a)
	require.NoError(t, err)

	assert.InDelta(t, sAB, sBA, 1e-12)
}

func TestSimilarityNilImage(t *testing.T) {
	img := gradientImage(64, 64)

	_, err := Similarity(nil, img)
	assert.ErrorIs(t, err, ErrNilImage)

	_, err = Similarity(img, nil)
	assert.ErrorIs(t, err, ErrNilImage)
}

func TestSimilarityEmptyImage(t *testing.T) {
	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	img := gradientImage(64, 64)

	_, err := Similarity(empty, img)
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestSimilaritySizeMismatch(t *testing.T) {
	a := gradientImage(640, 360)
	b := gradientImage(320, 180)

	_, err := Similarity(a, b)

	require.ErrorIs(t, err, ErrSizeMismatch)
	assert.Contains(t, err.Error(), "640x360")
}

func BenchmarkSimilarity(b *testing.B) {
	prev := gradientImage(640, 360)
	curr := withPatch(prev, image.Rect(200, 100, 320, 220), color.RGBA{R: 255, A: 255})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Similarity(prev, curr); err != nil {
			b.Fatal(err)
		}
	}
}

// gradientImage builds a deterministic non-uniform test frame.
func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8((x*255/w + y*255/h) / 2)
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// withPatch copies src and paints one rectangle over the copy.
func withPatch(src *image.RGBA, patch image.Rectangle, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(src.Bounds())
	copy(img.Pix, src.Pix)
	for y := patch.Min.Y; y < patch.Max.Y; y++ {
		for x := patch.Min.X; x < patch.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}
