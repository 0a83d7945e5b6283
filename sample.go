package polycurve

import (
	"fmt"
	"math"
	"math/big"
)

const (
	// DefaultDivisions is the number of samples taken per segment.
	DefaultDivisions = 2
	// DefaultScale divides path coordinates before fitting, keeping sample
	// values near unit magnitude.
	DefaultScale = 1000.0
)

// SampleSet is a sequence of points in path order.
type SampleSet []BigPoint

// Points rounds the samples to float64.
func (s SampleSet) Points() []Point {
	out := make([]Point, len(s))
	for i, bp := range s {
		out[i] = bp.Float()
	}
	return out
}

// Sampler walks a [Path] and samples each segment at a fixed density.
// The zero value uses [DefaultDivisions], [DefaultScale] and
// [DefaultPrecision].
type Sampler struct {
	// Divisions is the number of samples per segment, taken at t = i/Divisions
	// for i in [0, Divisions). The end of a segment is left out because it is
	// the start of the next one.
	Divisions int
	// Scale divides every coordinate.
	Scale float64
	// Prec is the working precision in bits.
	Prec uint
}

func (s Sampler) divisions() int {
	if s.Divisions == 0 {
		return DefaultDivisions
	}
	return s.Divisions
}

func (s Sampler) scale() float64 {
	if s.Scale == 0 {
		return DefaultScale
	}
	return s.Scale
}

// Sample evaluates the expanded polynomials of every segment of path. The
// result has Divisions × len(path) entries. An empty path is a
// [*DegenerateInputError].
func (s Sampler) Sample(path Path) (SampleSet, error) {
	div := s.divisions()
	scale := s.scale()
	prec := precOrDefault(s.Prec)
	if div < 1 {
		return nil, fmt.Errorf("%w: divisions must be positive, got %d", ErrInvalidConfig, div)
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: scale must be finite and non-zero, got %g", ErrInvalidConfig, scale)
	}
	if len(path) == 0 {
		return nil, &DegenerateInputError{What: "path segments", Have: 0, Need: 1}
	}

	params := make([]*big.Float, div)
	for i := range params {
		params[i] = newFloat(prec).Quo(
			newFloat(prec).SetInt64(int64(i)),
			newFloat(prec).SetInt64(int64(div)))
	}
	bigScale := newFloat(prec).SetFloat64(scale)

	out := make(SampleSet, 0, div*len(path))
	for _, seg := range path {
		x, y := seg.Polynomials(prec)
		for _, t := range params {
			px, py := x.Eval(t), y.Eval(t)
			out = append(out, BigPoint{
				X: px.Quo(px, bigScale),
				Y: py.Quo(py, bigScale),
			})
		}
	}
	Logger().Debug("sampled path", "segments", len(path), "divisions", div, "samples", len(out))
	return out, nil
}
