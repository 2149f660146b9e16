package lens

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Pattern selects how the raw zoom signal is measured each frame. The set is
// closed; configuration parsing rejects anything else up front so the
// per-frame path never sees an unknown value.
type Pattern int

const (
	// PatternDistance measures the distance between the camera and the
	// look-at point.
	PatternDistance Pattern = iota
	// PatternDistanceDelta measures how much the camera-to-target distance
	// changed since the previous frame.
	PatternDistanceDelta
	// PatternTargetSpeed measures the target's own speed, preferring the
	// bound physics body's velocity and falling back to the look-at point's
	// per-frame displacement.
	PatternTargetSpeed
)

var patternNames = map[Pattern]string{
	PatternDistance:      "distance",
	PatternDistanceDelta: "distance_delta",
	PatternTargetSpeed:   "target_speed",
}

func (p Pattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return fmt.Sprintf("pattern(%d)", int(p))
}

// ParsePattern converts an authored pattern name into a Pattern. Unknown
// names are a configuration error.
func ParsePattern(name string) (Pattern, error) {
	for p, n := range patternNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("lens: unknown measurement pattern %q", name)
}

// Observation is the per-frame input supplied by the host. DeltaTime may be
// negative to signal a time discontinuity (pause, seek); PrevValid is false
// on the first frame after the camera becomes live.
type Observation struct {
	CameraPos cp.Vector
	LookAt    cp.Vector
	DeltaTime float64
	PrevValid bool
	Target    *cp.Body
}

// Measure computes the frame's raw scalar for the given pattern and records
// this frame's distance and look-at position into st for the next frame.
// With no usable previous state, delta-style patterns report zero.
func Measure(p Pattern, obs Observation, st *State) float64 {
	dist := obs.CameraPos.Distance(obs.LookAt)
	switch p {
	case PatternDistance:
		st.Distance = dist
		return dist
	case PatternDistanceDelta:
		prev := st.Distance
		hadPrev := st.Valid
		st.Distance = dist
		if !hadPrev {
			return 0
		}
		delta := dist - prev
		if delta < 0 {
			delta = -delta
		}
		return delta
	case PatternTargetSpeed:
		prev := st.LookAt
		hadPrev := st.Valid
		st.Distance = dist
		st.LookAt = obs.LookAt
		if obs.Target != nil {
			return obs.Target.Velocity().Length()
		}
		if !hadPrev {
			return 0
		}
		// Raw per-frame displacement, deliberately not divided by
		// DeltaTime; see the authored-curve units in the package docs.
		return obs.LookAt.Distance(prev)
	}
	return 0
}
