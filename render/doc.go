// Package render turns crop decisions into vertical output frames.
//
// A Compositor applies a decision to a source frame and produces one
// 9:16 canvas: single-region decisions are scaled to the output width
// and placed near the top, stacked decisions fill the top and bottom
// halves, and resize decisions letterbox the whole frame in the
// middle. Finished canvases are handed to a FrameWriter, typically an
// encoder pipe.
package render
