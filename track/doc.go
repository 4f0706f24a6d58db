// Package track extrapolates object motion across frames.
//
// A Predictor remembers the last few observed positions of one object
// and estimates where the object will be next, so framing can follow
// it through short detection gaps. With two positions the estimate is
// linear; with three it also accounts for acceleration.
package track
