// Package progress tracks per-stream processing throughput.
//
// A Tracker counts processed frames against the wall clock and reports
// frames per second, the realtime factor (processed video time over
// wall time), completion and an estimated time to finish. Time is read
// through a Clock so tests can drive it deterministically.
package progress
