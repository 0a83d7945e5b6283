package polycurve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/big"

	"gonum.org/v1/gonum/mat"
)

// DefaultReplication is the number of copies of the sample sequence that the
// fit is computed over. The fitted polynomial is only used on the central
// copy; the outer copies absorb the distortion that a polynomial shows near
// the ends of its data.
const DefaultReplication = 7

// SolveMethod selects how [Fitter] solves the linear system.
type SolveMethod int

const (
	// SolveAuto solves square systems directly and uses the normal
	// equations for over-determined ones.
	SolveAuto SolveMethod = iota
	// SolveNormal always solves (XᵗX) a = Xᵗ y.
	SolveNormal
	// SolveDirect solves X a = y and requires a square system.
	SolveDirect
	// SolveQR64 uses a float64 Householder QR factorization. It is fast
	// but only usable for small systems, as the Vandermonde matrix quickly
	// exceeds what double precision can represent.
	SolveQR64
)

func (m SolveMethod) String() string {
	switch m {
	case SolveAuto:
		return "auto"
	case SolveNormal:
		return "normal"
	case SolveDirect:
		return "direct"
	case SolveQR64:
		return "qr64"
	default:
		return fmt.Sprintf("SolveMethod(%d)", int(m))
	}
}

// ParseSolveMethod parses the names returned by [SolveMethod.String].
func ParseSolveMethod(s string) (SolveMethod, error) {
	switch s {
	case "", "auto":
		return SolveAuto, nil
	case "normal":
		return SolveNormal, nil
	case "direct":
		return SolveDirect, nil
	case "qr64":
		return SolveQR64, nil
	default:
		return 0, fmt.Errorf("%w: unknown solve method %q", ErrInvalidConfig, s)
	}
}

// FittedCurve is a closed-form approximation of a path: one polynomial per
// axis over the parameter t, with the original path traced for t ∈ [0, 1).
type FittedCurve struct {
	X Polynomial
	Y Polynomial
}

// Eval evaluates the curve at t.
func (c FittedCurve) Eval(t *big.Float) BigPoint {
	return BigPoint{X: c.X.Eval(t), Y: c.Y.Eval(t)}
}

// EvalFloat evaluates the curve at t and rounds the result to float64.
func (c FittedCurve) EvalFloat(t float64) Point {
	return Pt(c.X.EvalFloat(t), c.Y.EvalFloat(t))
}

// Seam returns the distance between the curve's points at t=0 and t=1, in
// sample units. For a closed path it measures how well the fit closes.
func (c FittedCurve) Seam() float64 {
	return c.EvalFloat(0).Distance(c.EvalFloat(1))
}

// Fitter fits a single polynomial pair to a closed sample sequence. The zero
// value uses [DefaultReplication], a square system, [SolveAuto] and
// [DefaultPrecision].
type Fitter struct {
	// Replication is the number of copies K of the samples. It must be odd
	// so that one copy sits in the middle.
	Replication int
	// Unknowns is the number of coefficients per axis. Zero means one per
	// replicated sample, which makes the system square. Fewer unknowns than
	// samples give a least-squares fit.
	Unknowns int
	Method   SolveMethod
	// Prec is the working precision in bits.
	Prec uint
	// TrimBits controls how trailing coefficients are dropped: a coefficient
	// is dropped when its largest contribution on the replicated domain is
	// below 2^-TrimBits. Zero means Prec/4.
	TrimBits uint
	// KeepDegree disables trimming, so both polynomials have exactly
	// Unknowns coefficients.
	KeepDegree bool
}

func (f Fitter) replication() int {
	if f.Replication == 0 {
		return DefaultReplication
	}
	return f.Replication
}

// ReplicatedParams returns the parameters t_i = (i − (K div 2)·n) / n for the
// K·n entries of the replicated sample sequence. The central copy covers
// [0, 1).
func ReplicatedParams(n, k int, prec uint) []*big.Float {
	prec = precOrDefault(prec)
	den := newFloat(prec).SetInt64(int64(n))
	ts := make([]*big.Float, k*n)
	for i := range ts {
		ts[i] = newFloat(prec).SetInt64(int64(i - (k/2)*n))
		ts[i].Quo(ts[i], den)
	}
	return ts
}

// Fit fits the polynomial pair to samples, treating them as one period of a
// closed curve.
func (f Fitter) Fit(samples SampleSet) (FittedCurve, error) {
	n := len(samples)
	k := f.replication()
	prec := precOrDefault(f.Prec)
	if n == 0 {
		return FittedCurve{}, &DegenerateInputError{What: "samples", Have: 0, Need: 1}
	}
	if k < 1 || k%2 == 0 {
		return FittedCurve{}, fmt.Errorf("%w: replication must be a positive odd number, got %d", ErrInvalidConfig, k)
	}
	rows := k * n
	cols := f.Unknowns
	if cols == 0 {
		cols = rows
	}
	if cols < 1 || cols > rows {
		return FittedCurve{}, fmt.Errorf("%w: need between 1 and %d unknowns, got %d", ErrInvalidConfig, rows, cols)
	}
	if f.Method == SolveDirect && cols != rows {
		return FittedCurve{}, fmt.Errorf("%w: direct solve needs a square system, have %d×%d", ErrInvalidConfig, rows, cols)
	}

	ts := ReplicatedParams(n, k, prec)
	y := NewMatrix(rows, 2, prec)
	for i := range rows {
		s := samples[i%n]
		y.Set(i, 0, s.X)
		y.Set(i, 1, s.Y)
	}

	log := Logger()
	log.Debug("fitting samples",
		"samples", n, "replication", k, "rows", rows, "unknowns", cols,
		"method", f.Method, "prec", prec)
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("design matrix condition", "cond", condition64(ts, cols))
	}

	var sol *Matrix
	var err error
	switch f.Method {
	case SolveQR64:
		sol, err = solveQR64(ts, y, cols, prec)
	case SolveNormal:
		sol, err = solveNormal(Vandermonde(ts, cols, prec), y)
	case SolveAuto:
		x := Vandermonde(ts, cols, prec)
		if cols == rows {
			sol, err = x.Solve(y)
		} else {
			sol, err = solveNormal(x, y)
		}
	case SolveDirect:
		sol, err = Vandermonde(ts, cols, prec).Solve(y)
	default:
		return FittedCurve{}, fmt.Errorf("%w: unknown solve method %v", ErrInvalidConfig, f.Method)
	}
	if err != nil {
		return FittedCurve{}, err
	}

	c := FittedCurve{
		X: PolynomialFromBig(prec, sol.Col(0)),
		Y: PolynomialFromBig(prec, sol.Col(1)),
	}
	if !f.KeepDegree {
		bits := f.TrimBits
		if bits == 0 {
			bits = prec / 4
		}
		radius := max(absFloat(ts[0]), absFloat(ts[len(ts)-1]))
		c.X = c.X.Trim(radius, bits)
		c.Y = c.Y.Trim(radius, bits)
	}
	log.Debug("fitted curve", "x_coeffs", c.X.Len(), "y_coeffs", c.Y.Len(), "seam", c.Seam())
	return c, nil
}

// solveNormal computes the least-squares solution (XᵗX)⁻¹ Xᵗ y.
func solveNormal(x, y *Matrix) (*Matrix, error) {
	xt := x.T()
	return xt.Mul(x).Solve(xt.Mul(y))
}

func solveQR64(ts []*big.Float, y *Matrix, cols int, prec uint) (*Matrix, error) {
	rows := len(ts)
	a := vandermonde64(ts, cols)
	b := mat.NewDense(rows, 2, nil)
	for i := range rows {
		bx, _ := y.at(i, 0).Float64()
		by, _ := y.at(i, 1).Float64()
		b.Set(i, 0, bx)
		b.Set(i, 1, by)
	}

	var qr mat.QR
	qr.Factorize(a)
	var c mat.Dense
	if err := qr.SolveTo(&c, false, b); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, &SingularSystemError{Column: -1, Size: cols, Prec: 53}
		}
		return nil, fmt.Errorf("could not solve QR: %w", err)
	}

	sol := NewMatrix(cols, 2, prec)
	for i := range cols {
		sol.SetFloat64(i, 0, c.At(i, 0))
		sol.SetFloat64(i, 1, c.At(i, 1))
	}
	return sol, nil
}

func vandermonde64(ts []*big.Float, cols int) *mat.Dense {
	x := mat.NewDense(len(ts), cols, nil)
	for i, tb := range ts {
		t, _ := tb.Float64()
		for j, p := 0, 1.0; j < cols; j, p = j+1, p*t {
			x.Set(i, j, p)
		}
	}
	return x
}

// condition64 estimates the condition number of the design matrix in double
// precision. Large systems overflow and report +Inf.
func condition64(ts []*big.Float, cols int) float64 {
	x := vandermonde64(ts, cols)
	for _, v := range x.RawMatrix().Data {
		if math.IsInf(v, 0) {
			return math.Inf(1)
		}
	}
	return mat.Cond(x, 1)
}

func absFloat(x *big.Float) float64 {
	v, _ := x.Float64()
	if v < 0 {
		return -v
	}
	return v
}
