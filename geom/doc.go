// Package geom provides the rectangle primitive shared by the crop
// decision pipeline.
//
// Rectangles are axis-aligned, use frame-relative pixel units, and are
// represented with float64 fields so layout math stays in one precision
// end to end. A Rect produced by a layout rule is not guaranteed to lie
// inside the frame until the rule clamps it explicitly.
//
// The package also provides the bounding-region union used by the
// multi-object layout rules and the tolerance comparison used by the
// temporal smoothing layer.
package geom
