package polycurve

import "math/big"

const (
	// DefaultSteps is the number of points the evaluator produces.
	DefaultSteps = 1000
	// DefaultCanvasSize is the side of the default output square.
	DefaultCanvasSize = 1024
)

// DefaultClamp is the output range points are clamped into.
var DefaultClamp = Rect{0, 0, DefaultCanvasSize, DefaultCanvasSize}

// Evaluator samples a [FittedCurve] over its canonical domain [0, 1). The
// zero value uses [DefaultSteps], [DefaultScale] and [DefaultClamp].
type Evaluator struct {
	// Steps is the number of evaluation points, at t = i/Steps.
	Steps int
	// Scale multiplies the fitted values. It undoes the sampler's division.
	Scale float64
	// Clamp is the output range.
	Clamp Rect
}

// Evaluate returns the curve's points at t = i/Steps for i in [0, Steps),
// rescaled and clamped into the output range. The polynomials are evaluated
// at full precision; only the final values are rounded to float64.
func (e Evaluator) Evaluate(c FittedCurve) []Point {
	steps := e.Steps
	if steps <= 0 {
		steps = DefaultSteps
	}
	scale := e.Scale
	if scale == 0 {
		scale = DefaultScale
	}
	clampTo := e.Clamp
	if clampTo == (Rect{}) {
		clampTo = DefaultClamp
	}

	prec := max(c.X.Prec(), c.Y.Prec())
	den := newFloat(prec).SetInt64(int64(steps))
	bigScale := newFloat(prec).SetFloat64(scale)
	t := newFloat(prec)
	out := make([]Point, steps)
	for i := range out {
		t.SetInt64(int64(i))
		t.Quo(t, den)
		out[i] = clampTo.Clamp(scaled(c.Eval(t), bigScale))
	}
	Logger().Debug("evaluated curve", "steps", steps, "scale", scale)
	return out
}

func scaled(bp BigPoint, s *big.Float) Point {
	x, _ := bp.X.Mul(bp.X, s).Float64()
	y, _ := bp.Y.Mul(bp.Y, s).Float64()
	return Pt(x, y)
}
