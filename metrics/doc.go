// Package metrics exposes pipeline counters in Prometheus format.
//
// A Metrics value aggregates counts across any number of streams and
// is the only shared object in the pipeline; all methods are safe for
// concurrent use. Handler serves the standard text exposition; the
// package never opens a listener itself.
package metrics
