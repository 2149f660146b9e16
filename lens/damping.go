package lens

import "math"

// Damp returns the portion of delta that should be applied after dt seconds,
// given an exponential smoothing time constant. A larger timeConstant means a
// slower, heavier response. With timeConstant <= 0 damping is disabled and
// the full delta passes through unchanged. A negative dt signals a time
// discontinuity; the full delta passes through so callers snap instead of
// interpolating.
//
// The output magnitude never exceeds |delta| and grows monotonically toward
// delta as dt increases, so the filter cannot overshoot or oscillate.
func Damp(delta, timeConstant, dt float64) float64 {
	if timeConstant <= 0 || dt < 0 {
		return delta
	}
	return delta * (1 - math.Exp(-dt/timeConstant))
}
