package polycurve

import (
	"fmt"
	"math"
	"math/big"
)

// Point is a location in the plane, in the path's own coordinate space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// BigPoint is a point with arbitrary-precision coordinates. Samples fed to the
// fit solver are BigPoints so that the scale division does not round them to
// float64.
type BigPoint struct {
	X *big.Float
	Y *big.Float
}

// Big converts pt to a BigPoint of the given precision. The conversion is
// exact.
func (pt Point) Big(prec uint) BigPoint {
	return BigPoint{
		X: new(big.Float).SetPrec(prec).SetFloat64(pt.X),
		Y: new(big.Float).SetPrec(prec).SetFloat64(pt.Y),
	}
}

// Float returns the nearest float64 point.
func (bp BigPoint) Float() Point {
	x, _ := bp.X.Float64()
	y, _ := bp.Y.Float64()
	return Point{X: x, Y: y}
}

func (bp BigPoint) String() string {
	return fmt.Sprintf("(%s, %s)", bp.X.Text('g', 10), bp.Y.Text('g', 10))
}
