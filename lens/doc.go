// Package lens computes and smooths a camera's lens scalar (field of view or
// orthographic half-height) so a tracked target keeps a roughly constant
// on-screen size.
//
// Each frame a controller derives a raw measurement from camera/target
// geometry or motion (Measure), smooths it with a time-aware exponential
// filter (Damp), maps it through an authored breakpoint curve (Curve), and
// clamps the result into the configured bounds before writing it to the
// camera's lens state. A negative frame delta or an invalidated previous
// frame makes the controller snap to the raw measurement instead of
// interpolating.
//
// Curve inputs are in the same units the selected pattern produces. Note
// that the target-speed fallback (no physics body bound) measures raw
// per-frame displacement, not units per second, so curves authored against
// it are tick-rate coupled; bind a body for rate-independent input.
package lens
