package polycurve

import "math/big"

// CubicBez is a cubic Bézier segment from P0 to P3 with control points P1
// and P2.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// LineCubic returns a cubic Bézier tracing the straight line from p0 to p1
// at uniform speed.
func LineCubic(p0, p1 Point) CubicBez {
	return CubicBez{p0, p0.Lerp(p1, 1.0/3.0), p0.Lerp(p1, 2.0/3.0), p1}
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval evaluates the curve at t in float64 arithmetic.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Transform applies aff to all four control points.
func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		c.P0.Transform(aff),
		c.P1.Transform(aff),
		c.P2.Transform(aff),
		c.P3.Transform(aff),
	}
}

// BoundingBox returns the bounding box of the control polygon, which
// contains the curve.
func (c CubicBez) BoundingBox() Rect {
	return NewRectFromPoints(c.P0, c.P0).
		UnionPoint(c.P1).
		UnionPoint(c.P2).
		UnionPoint(c.P3)
}

// Bernstein returns the four cubic Bernstein basis polynomials
// (1−t)³, 3t(1−t)², 3t²(1−t) and t³ in monomial form.
func Bernstein(prec uint) [4]Polynomial {
	t := NewPolynomial(prec, 0, 1)
	mt := NewPolynomial(prec, 1, -1)
	return [4]Polynomial{
		mt.Pow(3),
		t.Mul(mt.Pow(2)).ScaleFloat(3),
		t.Pow(2).Mul(mt).ScaleFloat(3),
		t.Pow(3),
	}
}

// Polynomials expands the segment into explicit coordinate polynomials x(t)
// and y(t), t ∈ [0, 1], by weighting the Bernstein basis with the control
// points. Both have four coefficients.
func (c CubicBez) Polynomials(prec uint) (x, y Polynomial) {
	basis := Bernstein(prec)
	pts := [4]Point{c.P0, c.P1, c.P2, c.P3}
	x = Polynomial{prec: precOrDefault(prec)}
	y = Polynomial{prec: precOrDefault(prec)}
	for i, b := range basis {
		x = x.Add(b.ScaleFloat(pts[i].X))
		y = y.Add(b.ScaleFloat(pts[i].Y))
	}
	return x, y
}

// EvalBig evaluates the expanded polynomials of the segment at t.
func (c CubicBez) EvalBig(t *big.Float, prec uint) BigPoint {
	x, y := c.Polynomials(prec)
	return BigPoint{X: x.Eval(t), Y: y.Eval(t)}
}
