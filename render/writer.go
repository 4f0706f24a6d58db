package render

import "image"

// FrameWriter consumes finished output frames in stream order.
type FrameWriter interface {
	WriteFrame(img *image.RGBA) error
}

// FrameWriterFunc adapts a function to the FrameWriter interface.
type FrameWriterFunc func(img *image.RGBA) error

// WriteFrame calls f(img).
func (f FrameWriterFunc) WriteFrame(img *image.RGBA) error {
	return f(img)
}
