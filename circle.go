package polycurve

import (
	"iter"
	"math"
	"slices"
)

// Circle is a circle, used as a smooth closed test outline.
type Circle struct {
	Center Point
	Radius float64
}

// Path returns the circle approximated by n cubic arcs.
func (c Circle) Path(n int) BezPath { return slices.Collect(c.PathElements(n)) }

// PathElements approximates the circle with n cubic arcs, starting at angle 0
// and running counter-clockwise in a y-up coordinate system. Values of n
// below 1 select four arcs.
func (c Circle) PathElements(n int) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		var armLength float64
		if n < 1 || n == 4 {
			// Solution from http://spencermortensen.com/articles/bezier-circle/
			n = 4
			armLength = 0.551915024494
		} else {
			armLength = (4.0 / 3.0) * math.Tan(math.Pi/2/float64(n))
		}

		x, y := c.Center.Splat()
		r := c.Radius
		if !yield(MoveTo(Pt(x+r, y))) {
			return
		}
		deltaTh := 2.0 * math.Pi / float64(n)
		for ix := 1; ix <= n; ix++ {
			a := armLength
			th1 := deltaTh * float64(ix)
			th0 := th1 - deltaTh
			s0, c0 := math.Sincos(th0)
			var s1, c1 float64
			if ix == n {
				s1 = 0.0
				c1 = 1.0
			} else {
				s1, c1 = math.Sincos(th1)
			}
			if !yield(CubicTo(
				Pt(x+r*(c0-a*s0), y+r*(s0+a*c0)),
				Pt(x+r*(c1+a*s1), y+r*(s1-a*c1)),
				Pt(x+r*c1, y+r*s1),
			)) {
				return
			}
		}
		yield(ClosePath())
	}
}
