package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"honnef.co/go/polycurve"
	"honnef.co/go/polycurve/internal/svgfile"
)

func TestRunPoints(t *testing.T) {
	var buf bytes.Buffer
	if err := runPoints(&buf, []string{"0,0", "30,40", "60,0"}, polycurve.DefaultAlpha, false); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "M 0,0 C 0,0 5,40 30,40 C 55,40 60,0 60,0\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Closing repeats the first point, adding a segment back to it.
	buf.Reset()
	if err := runPoints(&buf, []string{"0,0", "30,40", "60,0"}, polycurve.DefaultAlpha, true); err != nil {
		t.Fatal(err)
	}
	p, err := polycurve.ParsePath(buf.String())
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 3 || p[2].P3 != polycurve.Pt(0, 0) {
		t.Errorf("got %v, want three segments ending at the start", p)
	}

	if err := runPoints(&buf, []string{"0,0", "1,1"}, polycurve.DefaultAlpha, false); err == nil {
		t.Error("expected error for two points")
	}
	if err := runPoints(&buf, []string{"0,0", "1;1", "2,2"}, polycurve.DefaultAlpha, false); err == nil {
		t.Error("expected error for malformed point")
	}
}

const squareSVG = `<svg xmlns="http://www.w3.org/2000/svg">
  <path d="M 0,0 C 0,0 10,0 10,0 C 10,0 10,10 10,10 C 10,10 0,10 0,10 Z"/>
</svg>`

func TestSmoothDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := smoothDocument(&buf, strings.NewReader(squareSVG), polycurve.DefaultAlpha); err != nil {
		t.Fatal(err)
	}
	ds, err := svgfile.PathData(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(ds) != 2 {
		t.Fatalf("got %d paths, want the original and its smoothed copy", len(ds))
	}
	if want := "M 0,0 C 0,0 10,0 10,0 C 10,0 10,10 10,10 C 10,10 0,10 0,10 Z"; ds[0] != want {
		t.Errorf("got original %q, want %q", ds[0], want)
	}

	sm, err := polycurve.ParsePath(ds[1])
	if err != nil {
		t.Fatal(err)
	}
	// The close command contributes the fourth node, and the copy is
	// shifted down.
	want := []polycurve.Point{{X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 20}, {X: 0, Y: 20}, {X: 0, Y: 10}}
	if d := cmp.Diff(want, sm.Nodes()); d != "" {
		t.Errorf("unexpected nodes (-want +got):\n%s", d)
	}
	// Every node of a closed shape gets handles, including the first.
	for i, seg := range sm {
		if seg.P1 == seg.P0 || seg.P2 == seg.P3 {
			t.Errorf("segment %d has no handles: %v", i, seg)
		}
	}
}

func TestSmoothDocumentErrors(t *testing.T) {
	tests := []struct {
		doc  string
		want error
	}{
		{`<svg><rect/></svg>`, svgfile.ErrNoPath},
		{`<svg><path d="M 0,0 C 1,1 2,2 3,3"/></svg>`, nil},
		{`<svg><path d="C 1,1 2,2 3,3"/></svg>`, nil},
	}
	for _, tt := range tests {
		err := smoothDocument(&bytes.Buffer{}, strings.NewReader(tt.doc), polycurve.DefaultAlpha)
		if err == nil {
			t.Errorf("%s: expected error", tt.doc)
			continue
		}
		if tt.want != nil && !errors.Is(err, tt.want) {
			t.Errorf("%s: got error %v, want %v", tt.doc, err, tt.want)
		}
	}
}
