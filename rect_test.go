package polycurve

import (
	"math"
	"testing"
)

func TestRectClamp(t *testing.T) {
	r := Rect{0, 0, 1024, 1024}
	tests := []struct {
		in, want Point
	}{
		{Pt(10, 20), Pt(10, 20)},
		{Pt(-5, 2000), Pt(0, 1024)},
		{Pt(1024, 0), Pt(1024, 0)},
		{Pt(math.NaN(), math.Inf(1)), Pt(0, 1024)},
		{Pt(math.Inf(-1), 3), Pt(0, 3)},
	}
	for _, tt := range tests {
		got := r.Clamp(tt.in)
		diff(t, tt.want, got)
		if !r.Contains(got) {
			t.Errorf("clamped point %s is outside of %v", got, r)
		}
	}
}

func TestRectFromPoints(t *testing.T) {
	r := NewRectFromPoints(Pt(10, -5), Pt(-2, 8))
	diff(t, Rect{-2, -5, 10, 8}, r)
	diff(t, 12.0, r.Width())
	diff(t, 13.0, r.Height())
	diff(t, Rect{-2, -5, 20, 8}, r.UnionPoint(Pt(20, 0)))
	if r.IsNaN() {
		t.Error("finite rectangle reported as NaN")
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{-5, 2, 3, 20}
	diff(t, Rect{-5, 0, 10, 20}, a.Union(b))
	diff(t, a.Union(b), b.Union(a))
}
