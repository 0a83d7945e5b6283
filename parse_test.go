package polycurve

import (
	"errors"
	"strings"
	"testing"
)

func TestParseAbsolute(t *testing.T) {
	got, err := ParsePath("M 0,0 C 1,0 2,0 3,0 3,1 3,2 3,3")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Path{
		{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)},
		{Pt(3, 0), Pt(3, 1), Pt(3, 2), Pt(3, 3)},
	}, got)
}

func TestParseRelative(t *testing.T) {
	got, err := ParsePath("m 10,10 c 1,0 2,0 3,0 1,1 2,2 3,3")
	if err != nil {
		t.Fatal(err)
	}
	// Each triple is relative to the pen at its start.
	diff(t, Path{
		{Pt(10, 10), Pt(11, 10), Pt(12, 10), Pt(13, 10)},
		{Pt(13, 10), Pt(14, 11), Pt(15, 12), Pt(16, 13)},
	}, got)
}

func TestParseRelativeMoveAfterCurve(t *testing.T) {
	got, err := ParsePath("M 10,10 C 11,10 12,10 13,10 m 5,5 C 1,1 2,2 3,3")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d segments, want 2", len(got))
	}
	diff(t, Pt(18, 15), got[1].P0)
}

func TestParseClose(t *testing.T) {
	const d = "M 0,0 C 1,0 2,0 3,0 Z"
	ignored, err := ParsePath(d)
	if err != nil {
		t.Fatal(err)
	}
	if len(ignored) != 1 {
		t.Errorf("got %d segments, want 1", len(ignored))
	}

	lined, err := Parser{Close: CloseLine}.Parse(strings.Fields(d))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Path{
		{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)},
		LineCubic(Pt(3, 0), Pt(0, 0)),
	}, lined)
}

func TestParsePenAfterClose(t *testing.T) {
	const d = "M 0,0 c 1,0 2,0 3,0 z c 0,1 0,2 0,3"
	ignored, err := ParsePath(d)
	if err != nil {
		t.Fatal(err)
	}
	// The pen stays at the end of the curve.
	diff(t, Pt(3, 3), ignored[1].P3)

	lined, err := Parser{Close: CloseLine}.Parse(strings.Fields(d))
	if err != nil {
		t.Fatal(err)
	}
	// The pen returns to the start of the subpath.
	diff(t, Pt(0, 3), lined[2].P3)
}

func TestParseUnknownCommand(t *testing.T) {
	var warnings []Warning
	p := Parser{Warn: func(w Warning) { warnings = append(warnings, w) }}
	got, err := p.Parse(strings.Fields("M 0,0 Q C 1,0 2,0 3,0"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("got %d segments, want 1", len(got))
	}
	diff(t, []Warning{{Pos: 2, Token: "Q"}}, warnings)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		d   string
		pos int
	}{
		{"C 1,0 2,0 3,0", 0},
		{"M 0,0 C 1,0 2,0", 3},
		{"M 0,0 C 1,0 2,0 3,0 4,0", 6},
		{"M x,0", 1},
		{"M 0,y", 1},
		{"M 0;0", 1},
		{"M 0,0 C 1,0 Inf,0 3,0", 4},
		{"M 0,0 C", 3},
		{"M 0,0 C Z", 3},
		{"M", 1},
		{"M C 1,0 2,0 3,0", 1},
		{"M 0,0 C nan,0 1,1 2,2", 3},
		{"M 0,0 C 1,1 2,2 3,3 Inf,1 1,1 2,2", 6},
		{"M 0,0 C 1,1 2,2 3,3 NaN", 6},
	}
	for _, tt := range tests {
		_, err := ParsePath(tt.d)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%q: got error %v, want *ParseError", tt.d, err)
			continue
		}
		if perr.Pos != tt.pos {
			t.Errorf("%q: got error at token %d, want %d (%v)", tt.d, perr.Pos, tt.pos, err)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	for _, d := range []string{"", "M 0,0", "M 0,0 Z"} {
		got, err := ParsePath(d)
		if err != nil {
			t.Errorf("%q: unexpected error %v", d, err)
		}
		if len(got) != 0 {
			t.Errorf("%q: got %d segments, want 0", d, len(got))
		}
	}
}

func TestFormatPathRoundTrip(t *testing.T) {
	want := Path{
		{Pt(0, 0), Pt(1.5, 0), Pt(2, -0.25), Pt(3, 0)},
		{Pt(3, 0), Pt(3, 1), Pt(3, 2), Pt(3, 3)},
		{Pt(10, 10), Pt(11, 10), Pt(12, 10), Pt(13, 10)},
	}
	got, err := ParsePath(FormatPath(want))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want, got)
}

func TestParsePoints(t *testing.T) {
	got, err := ParsePoints([]string{"0,0", "1.5,-2", "1e2,3"})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{{0, 0}, {1.5, -2}, {100, 3}}, got)

	if _, err := ParsePoints([]string{"0,0", "1"}); err == nil {
		t.Error("expected error")
	}
}

func TestParseSingleCurve(t *testing.T) {
	got, err := Parser{}.Parse([]string{"M", "0,0", "C", "1,0", "1,1", "2,1"})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Path{{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(2, 1)}}, got)

	_, err = Parser{}.Parse([]string{"C", "1,0", "1,1", "2,1"})
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("got error %v, want *ParseError", err)
	}
}
