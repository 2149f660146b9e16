package lens

import "testing"

func TestCurveEvaluate(t *testing.T) {
	curve := Curve{{In: 0, Out: -1}, {In: 2, Out: 2}, {In: 5, Out: 2.5}}

	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"at_first_breakpoint", 0, -1},
		{"at_middle_breakpoint", 2, 2},
		{"at_last_breakpoint", 5, 2.5},
		{"interpolated", 1, 0.5},
		{"interpolated_second_span", 3.5, 2.25},
		{"below_range_flat", -10, -1},
		{"above_range_flat", 40, 2.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := curve.Evaluate(c.in)
			if got != c.want {
				t.Fatalf("Evaluate(%g) = %g, want %g", c.in, got, c.want)
			}
		})
	}
}

func TestCurveEmpty(t *testing.T) {
	var curve Curve
	if got := curve.Evaluate(3); got != 0 {
		t.Fatalf("empty curve should evaluate to 0, got %g", got)
	}
}

func TestCurveDuplicateBreakpoint(t *testing.T) {
	// A vertical step: both breakpoints share an input coordinate. The later
	// one wins for inputs past the step.
	curve := Curve{{In: 0, Out: 0}, {In: 1, Out: 1}, {In: 1, Out: 5}, {In: 2, Out: 6}}
	if got := curve.Evaluate(1.5); got != 5.5 {
		t.Fatalf("Evaluate(1.5) = %g, want 5.5", got)
	}
}

func TestCurveValidate(t *testing.T) {
	cases := []struct {
		name    string
		curve   Curve
		wantErr bool
	}{
		{"empty", nil, false},
		{"ordered", Curve{{0, 0}, {1, 2}}, false},
		{"equal_inputs", Curve{{1, 0}, {1, 2}}, false},
		{"out_of_order", Curve{{2, 0}, {1, 2}}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.curve.Validate()
			if (err != nil) != c.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestCurveSort(t *testing.T) {
	curve := Curve{{3, 1}, {0, 0}, {2, 5}}
	curve.Sort()
	if err := curve.Validate(); err != nil {
		t.Fatalf("sorted curve should validate: %v", err)
	}
	if curve[0].In != 0 || curve[2].In != 3 {
		t.Fatalf("unexpected order after sort: %v", curve)
	}
}
