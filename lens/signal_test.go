package lens

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestParsePattern(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    Pattern
		wantErr bool
	}{
		{"distance", "distance", PatternDistance, false},
		{"distance_delta", "distance_delta", PatternDistanceDelta, false},
		{"target_speed", "target_speed", PatternTargetSpeed, false},
		{"unknown", "warp_factor", 0, true},
		{"empty", "", 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParsePattern(c.in)
			if (err != nil) != c.wantErr {
				t.Fatalf("ParsePattern(%q) error = %v, wantErr %v", c.in, err, c.wantErr)
			}
			if err == nil && got != c.want {
				t.Fatalf("ParsePattern(%q) = %v, want %v", c.in, got, c.want)
			}
			if err == nil && got.String() != c.in {
				t.Fatalf("round trip mismatch: %q != %q", got.String(), c.in)
			}
		})
	}
}

func TestMeasureDistance(t *testing.T) {
	obs := Observation{
		CameraPos: cp.Vector{X: 0, Y: 0},
		LookAt:    cp.Vector{X: 3, Y: 4},
	}
	st := &State{}
	got := Measure(PatternDistance, obs, st)
	if got != 5 {
		t.Fatalf("expected distance 5, got %g", got)
	}
	if st.Distance != 5 {
		t.Fatalf("expected recorded distance 5, got %g", st.Distance)
	}
}

func TestMeasureDistanceDelta(t *testing.T) {
	cases := []struct {
		name     string
		prev     float64
		prevOK   bool
		lookAt   cp.Vector
		want     float64
		wantDist float64
	}{
		{"no_previous_frame", 0, false, cp.Vector{X: 5, Y: 0}, 0, 5},
		{"unchanged_distance", 5, true, cp.Vector{X: 5, Y: 0}, 0, 5},
		{"closing_in", 5, true, cp.Vector{X: 3, Y: 0}, 2, 3},
		{"pulling_away", 5, true, cp.Vector{X: 9, Y: 0}, 4, 9},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			st := &State{Distance: c.prev, Valid: c.prevOK}
			obs := Observation{CameraPos: cp.Vector{}, LookAt: c.lookAt}
			got := Measure(PatternDistanceDelta, obs, st)
			if got != c.want {
				t.Fatalf("expected raw %g, got %g", c.want, got)
			}
			if st.Distance != c.wantDist {
				t.Fatalf("expected recorded distance %g, got %g", c.wantDist, st.Distance)
			}
		})
	}
}

func TestMeasureTargetSpeedFromBody(t *testing.T) {
	body := cp.NewKinematicBody()
	body.SetVelocity(6, 8)

	obs := Observation{
		LookAt: cp.Vector{X: 1, Y: 1},
		Target: body,
	}
	st := &State{}
	if got := Measure(PatternTargetSpeed, obs, st); math.Abs(got-10) > 1e-12 {
		t.Fatalf("expected body speed 10, got %g", got)
	}
}

func TestMeasureTargetSpeedFallback(t *testing.T) {
	t.Run("no_previous_frame", func(t *testing.T) {
		st := &State{}
		got := Measure(PatternTargetSpeed, Observation{LookAt: cp.Vector{X: 2, Y: 0}}, st)
		if got != 0 {
			t.Fatalf("expected 0 with no previous look-at, got %g", got)
		}
		if st.LookAt.X != 2 {
			t.Fatalf("expected look-at recorded, got %v", st.LookAt)
		}
	})

	t.Run("per_frame_displacement", func(t *testing.T) {
		st := &State{LookAt: cp.Vector{X: 1, Y: 1}, Valid: true}
		got := Measure(PatternTargetSpeed, Observation{LookAt: cp.Vector{X: 4, Y: 5}}, st)
		if got != 5 {
			t.Fatalf("expected displacement 5, got %g", got)
		}
	})
}
