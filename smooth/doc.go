// Package smooth stabilizes crop decisions over time.
//
// Raw per-frame decisions jitter: detections wobble, objects blink in
// and out, and a naive renderer would follow every twitch. A Smoother
// sits between the decision engine and the renderer and owns when each
// frame is rendered and with which decision. Four policies are
// provided:
//
//   - PolicyNone renders every candidate decision as-is.
//   - PolicyHold keeps the previous decision while the candidate stays
//     within tolerance of it.
//   - PolicyHistory additionally demands that a changed decision prove
//     itself over a confirmation window before the output moves, holding
//     the pending frames back and replaying them once the change is
//     confirmed or rejected.
//   - PolicyBall follows a single fast-moving object, bridging short
//     detection gaps by extrapolating its motion.
//
// Smoothers are single-stream state machines and are not safe for
// concurrent use.
package smooth
