package smooth

import (
	"image"

	"github.com/framewise/reframe/crop"
	"github.com/framewise/reframe/detect"
)

// passthrough renders every candidate decision unchanged.
type passthrough struct {
	renderer Renderer
}

func (s *passthrough) Process(img image.Image, candidate crop.Decision, _ []detect.Object) error {
	return s.renderer.Render(img, candidate)
}

func (s *passthrough) Flush() error {
	return nil
}
