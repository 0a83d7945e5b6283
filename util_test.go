package polycurve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// squarePath returns the axis-aligned square with corners (100, 100) and
// (900, 900), traced with straight cubics.
func squarePath() Path {
	return Path{
		LineCubic(Pt(100, 100), Pt(900, 100)),
		LineCubic(Pt(900, 100), Pt(900, 900)),
		LineCubic(Pt(900, 900), Pt(100, 900)),
		LineCubic(Pt(100, 900), Pt(100, 100)),
	}
}

// squareSamples are the samples of squarePath at two divisions per segment,
// in sample units.
var squareSamples = []Point{
	{0.1, 0.1}, {0.5, 0.1},
	{0.9, 0.1}, {0.9, 0.5},
	{0.9, 0.9}, {0.5, 0.9},
	{0.1, 0.9}, {0.1, 0.5},
}

func constantSamples(n int, pt Point, prec uint) SampleSet {
	s := make(SampleSet, n)
	for i := range s {
		s[i] = pt.Big(prec)
	}
	return s
}
