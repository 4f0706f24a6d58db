// Package crop turns per-frame object detections into crop decisions
// for vertically-oriented output.
//
// The Engine is a pure layout function: given the detected bounding
// boxes and the frame size it selects one of three decision shapes:
//
//   - Single: one region, full frame height at a 3:4 width-to-height
//     ratio, resized into the output frame.
//   - Stacked: two regions vertically concatenated, first-on-top.
//   - Resize: the whole source frame, used for graphic/slide content.
//
// Layout dispatch is purely by object count. Each count bucket (0, 1,
// 2, 3, 4-5, 6 and more) has its own rule; buckets also define the
// class equivalence used by the temporal smoothing layer to decide
// whether two frames call for "the same kind" of layout.
//
// The package additionally provides the tolerance comparators the
// smoothing layer uses to judge decision stability between frames.
// Everything here is deterministic, allocation-light, and free of I/O.
package crop
