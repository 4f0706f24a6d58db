package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/framewise/reframe/crop"
	"github.com/framewise/reframe/geom"
)

var (
	// ErrNilWriter is returned when a compositor is built without a
	// frame writer.
	ErrNilWriter = errors.New("frame writer must not be nil")
	// ErrInvalidOutputSize is returned when the output dimensions are
	// not positive.
	ErrInvalidOutputSize = errors.New("output dimensions must be positive")
	// ErrNilFrame is returned when Render receives a nil source frame.
	ErrNilFrame = errors.New("source frame is nil")
	// ErrEmptyCrop is returned when a decision region has no pixels
	// after clipping to the source frame.
	ErrEmptyCrop = errors.New("crop region has no pixels")
)

// OutputSize returns the vertical output dimensions for a source
// frame height: the full height is kept and the width is the 9:16
// complement, rounded up to an even pixel count for the encoder.
func OutputSize(frameHeight int) (width, height int) {
	w := int(math.Round(float64(frameHeight) * 9.0 / 16.0))
	if w%2 == 1 {
		w++
	}
	return w, frameHeight
}

// Compositor renders crop decisions onto a fixed-size vertical canvas.
// It allocates a fresh canvas per frame and is safe to reuse across
// frames of one stream.
type Compositor struct {
	width  int
	height int
	scaler draw.Scaler
	writer FrameWriter
}

// NewCompositor builds a compositor producing outputWidth by
// outputHeight frames, handing each to w.
func NewCompositor(outputWidth, outputHeight int, w FrameWriter) (*Compositor, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	if outputWidth <= 0 || outputHeight <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidOutputSize, outputWidth, outputHeight)
	}
	return &Compositor{
		width:  outputWidth,
		height: outputHeight,
		scaler: draw.CatmullRom,
		writer: w,
	}, nil
}

// Render composes one output frame from src per the decision and
// writes it out.
func (c *Compositor) Render(src image.Image, d crop.Decision) error {
	if src == nil {
		return ErrNilFrame
	}

	canvas := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	var err error
	switch d.Kind {
	case crop.KindSingle:
		err = c.drawSingle(canvas, src, d.Primary)
	case crop.KindStacked:
		err = c.drawStacked(canvas, src, d.Primary, d.Secondary)
	case crop.KindResize:
		err = c.drawLetterboxed(canvas, src, d.Primary)
	default:
		err = fmt.Errorf("rendering decision: unknown kind %s", d.Kind)
	}
	if err != nil {
		return err
	}

	return c.writer.WriteFrame(canvas)
}

// drawSingle scales the region to the full output width and places it
// near the top of the canvas, leaving a small margin for headroom.
func (c *Compositor) drawSingle(canvas *image.RGBA, src image.Image, region geom.Rect) error {
	sr, err := sourceRect(src, region)
	if err != nil {
		return err
	}
	scaledH := scaledHeight(c.width, sr)
	y0 := c.height / 16
	c.scaler.Scale(canvas, image.Rect(0, y0, c.width, y0+scaledH), src, sr, draw.Src, nil)
	return nil
}

// drawStacked fills the top and bottom canvas halves with the two
// regions. On a 9:16 canvas each half is exactly the 8:9 shape the
// regions were cut for.
func (c *Compositor) drawStacked(canvas *image.RGBA, src image.Image, top, bottom geom.Rect) error {
	srTop, err := sourceRect(src, top)
	if err != nil {
		return err
	}
	srBottom, err := sourceRect(src, bottom)
	if err != nil {
		return err
	}
	mid := c.height / 2
	c.scaler.Scale(canvas, image.Rect(0, 0, c.width, mid), src, srTop, draw.Src, nil)
	c.scaler.Scale(canvas, image.Rect(0, mid, c.width, c.height), src, srBottom, draw.Src, nil)
	return nil
}

// drawLetterboxed scales the region to the output width and centers it
// vertically, leaving black bars above and below.
func (c *Compositor) drawLetterboxed(canvas *image.RGBA, src image.Image, region geom.Rect) error {
	sr, err := sourceRect(src, region)
	if err != nil {
		return err
	}
	scaledH := scaledHeight(c.width, sr)
	y0 := (c.height - scaledH) / 2
	if y0 < 0 {
		y0 = 0
	}
	c.scaler.Scale(canvas, image.Rect(0, y0, c.width, y0+scaledH), src, sr, draw.Src, nil)
	return nil
}

// sourceRect converts a frame-relative region to pixel coordinates,
// clipped to the source bounds.
func sourceRect(src image.Image, region geom.Rect) (image.Rectangle, error) {
	r := image.Rect(
		int(math.Round(region.X)),
		int(math.Round(region.Y)),
		int(math.Round(region.MaxX())),
		int(math.Round(region.MaxY())),
	)
	r = r.Add(src.Bounds().Min).Intersect(src.Bounds())
	if r.Empty() {
		return image.Rectangle{}, fmt.Errorf("%w: %v", ErrEmptyCrop, region)
	}
	return r, nil
}

// scaledHeight preserves the region aspect ratio at the output width.
func scaledHeight(outputWidth int, sr image.Rectangle) int {
	return int(math.Round(float64(outputWidth) * float64(sr.Dy()) / float64(sr.Dx())))
}
