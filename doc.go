// Package reframe converts landscape video into vertical 9:16 output by
// choosing, stabilizing, and rendering crop regions around detected objects.
//
// The caller owns decoding and object detection; reframe owns the framing.
// A Pipeline consumes decoded frames together with their detections and
// writes finished vertical frames to a FrameWriter. Depending on how many
// objects are visible, each frame is framed as a single centered crop, a
// stacked pair of crops, or a letterboxed resize of the whole frame.
//
// # Getting Started
//
// Create a Pipeline with options and feed it frames in stream order:
//
//	options := reframe.NewOptions()
//	options.ObjectLabel = "face"
//
//	pipe, err := reframe.New(options, writer, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for frame, objects := range source {
//	    if err := pipe.ProcessFrame(frame, objects, false); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	// Release any frames held back by smoothing.
//	if err := pipe.Finish(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Core Types
//
// The package defines the integration surface:
//
//   - [Pipeline]: per-stream processor tying detection filtering, layout,
//     smoothing, and rendering together
//   - [Options]: configuration for creating a new Pipeline
//
// Finished frames go to a [render.FrameWriter]; callers typically adapt an
// encoder or a file sink with [render.FrameWriterFunc].
//
// # Layout Decisions
//
// The number of detected objects selects the layout rule: one object gets a
// single 3:4 portrait crop centered on it, two distant objects get a stacked
// half layout, three objects may get a two-plus-one stack, and larger counts
// fall back to dominant-object or whole-frame handling. Graphic frames such
// as slides are letterboxed rather than cropped. See the crop package for
// the full rules and their tunables.
//
// # Temporal Smoothing
//
// Raw per-frame decisions jitter as detections wobble. The smoothing policy
// decides how to stabilize them:
//
//	options.SmoothingPolicy = smooth.PolicyHistory
//	options.SmoothingDuration = 1.5 // seconds a new framing must persist
//
// PolicyHistory holds frames back until a changed framing has persisted long
// enough to be trusted, then re-renders the held frames with the winning
// decision. PolicyBall instead follows the most confident object and bridges
// detection gaps with motion prediction. PolicyHold and PolicyNone are
// cheaper variants for previews. See the smooth package.
//
// # Scene Cuts
//
// Smoothing must not bleed a framing across a hard cut. Consecutive frames
// are compared with a blend of structural similarity and histogram
// intersection; a low score releases held frames and adopts the new framing
// immediately:
//
//	options.CutSimilarity = 0.3     // below this, frames differ
//	options.CutPrevSimilarity = 0.8 // previous pair must have been stable
//
// # Output Rendering
//
// Finished frames are composited onto a 9:16 canvas sized from the source
// height, or an explicit override:
//
//	options.OutputWidth = 1080
//	options.OutputHeight = 1920
//
// Crop regions are scaled with Catmull-Rom interpolation; stacked layouts
// fill the top and bottom canvas halves exactly.
//
// # Progress and Metrics
//
// Pipeline.Stats reports throughput and, when the stream length is known,
// completion and ETA. Passing a non-nil *metrics.Metrics to New additionally
// maintains Prometheus counters for frames, decisions, and errors:
//
//	m := metrics.New()
//	pipe, err := reframe.New(options, writer, m)
//	http.Handle("/metrics", m.Handler())
//
// # Deterministic Testing
//
// Progress reporting depends on the wall clock. Tests inject a fake clock
// through Options:
//
//	options.Clock = fakeClock
//
// All other components are deterministic functions of their inputs.
//
// # Integration Architecture
//
// This package is the integration point, orchestrating:
//
//   - [geom]: axis-aligned rectangle arithmetic
//   - [detect]: detection records and confidence/area filtering
//   - [crop]: count-based layout rules producing framing decisions
//   - [cut]: scene-cut detection from frame similarity
//   - [track]: short-horizon motion prediction
//   - [smooth]: temporal stabilization policies
//   - [render]: 9:16 canvas composition
//   - [progress]: throughput and ETA tracking
//   - [metrics]: Prometheus instrumentation
package reframe
