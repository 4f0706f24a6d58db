// Package cut detects scene changes between consecutive video frames.
//
// Frames are scored for visual similarity on a 0 (nothing in common)
// to 1 (identical) scale, using local structural similarity blended
// with a global luminance histogram comparison. The Detector turns a
// stream of scores into cut decisions with hysteresis: a cut fires
// when similarity drops while it was high until now, so sustained
// dissimilarity such as fast motion or flashing lights registers at
// most once.
package cut
