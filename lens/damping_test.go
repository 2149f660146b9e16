package lens

import (
	"math"
	"testing"
)

func TestDampDisabled(t *testing.T) {
	cases := []struct {
		name         string
		delta        float64
		timeConstant float64
		dt           float64
	}{
		{"zero_constant", 3.5, 0, 0.016},
		{"negative_constant", -2, -1, 0.016},
		{"zero_constant_zero_dt", 1, 0, 0},
		{"zero_constant_large_dt", 1, 0, 100},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Damp(c.delta, c.timeConstant, c.dt)
			if got != c.delta {
				t.Fatalf("expected full delta %g, got %g", c.delta, got)
			}
		})
	}
}

func TestDampMonotonicInTime(t *testing.T) {
	const delta = 4.0
	const timeConstant = 0.5

	prev := -1.0
	for _, dt := range []float64{0, 0.004, 0.016, 0.033, 0.1, 0.5, 1, 5, 30} {
		got := Damp(delta, timeConstant, dt)
		if got < prev {
			t.Fatalf("damped delta decreased at dt=%g: %g < %g", dt, got, prev)
		}
		if math.Abs(got) > math.Abs(delta) {
			t.Fatalf("damped delta overshoots at dt=%g: |%g| > |%g|", dt, got, delta)
		}
		prev = got
	}

	if got := Damp(delta, timeConstant, 1e6); math.Abs(got-delta) > 1e-9 {
		t.Fatalf("expected convergence to %g for huge dt, got %g", delta, got)
	}
}

func TestDampZeroTimeAdvance(t *testing.T) {
	if got := Damp(2, 1, 0); got != 0 {
		t.Fatalf("expected no movement with dt=0, got %g", got)
	}
}

func TestDampNegativeDeltaSymmetry(t *testing.T) {
	up := Damp(2, 0.25, 0.016)
	down := Damp(-2, 0.25, 0.016)
	if math.Abs(up+down) > 1e-12 {
		t.Fatalf("expected symmetric response, got %g and %g", up, down)
	}
	if up <= 0 || up >= 2 {
		t.Fatalf("expected partial positive step, got %g", up)
	}
}
