// Package detect defines the detection input consumed by the crop
// decision pipeline and the pre-filter applied before layout.
//
// Detections come from an external model; this package never runs
// inference. Objects are read-only once handed in: the pipeline consumes
// geometry, label, and confidence and mutates nothing.
//
// The Filter mirrors the thresholds a caller configures per stream: a
// target label, a minimum confidence, and a minimum box area expressed
// as a fraction of the frame area. Objects failing any enabled check
// never reach the layout engine.
package detect
