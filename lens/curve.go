package lens

import (
	"fmt"
	"sort"

	"github.com/milk9111/followzoom/common"
)

// Breakpoint is one vertex of an authored response curve: an input coordinate
// and the lens offset produced there.
type Breakpoint struct {
	In  float64
	Out float64
}

// Curve maps a measured scalar to a lens-size offset by piecewise-linear
// interpolation between breakpoints. Outside the authored range the boundary
// value is returned flat; an empty curve always evaluates to zero.
type Curve []Breakpoint

// Sort orders breakpoints by input coordinate. Evaluation assumes this order.
func (c Curve) Sort() {
	sort.SliceStable(c, func(i, j int) bool { return c[i].In < c[j].In })
}

// Validate reports whether the breakpoints are ordered by non-decreasing
// input coordinate.
func (c Curve) Validate() error {
	for i := 1; i < len(c); i++ {
		if c[i].In < c[i-1].In {
			return fmt.Errorf("lens: curve breakpoint %d out of order (%g < %g)", i, c[i].In, c[i-1].In)
		}
	}
	return nil
}

// Evaluate returns the curve's offset at the given input. Pure.
func (c Curve) Evaluate(in float64) float64 {
	if len(c) == 0 {
		return 0
	}
	if in <= c[0].In {
		return c[0].Out
	}
	last := c[len(c)-1]
	if in >= last.In {
		return last.Out
	}
	for i := 1; i < len(c); i++ {
		if in > c[i].In {
			continue
		}
		a, b := c[i-1], c[i]
		span := b.In - a.In
		if span <= 0 {
			return b.Out
		}
		return common.Lerp(a.Out, b.Out, (in-a.In)/span)
	}
	return last.Out
}
