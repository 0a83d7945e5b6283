// Command autosmooth replaces the nodes of every path in an SVG document
// with a smooth chain of cubic Béziers. The output document holds the
// original paths followed by their smoothed copies, shifted down by 10
// units.
//
// With -points, it instead smooths the x,y pairs given on the command line
// and prints the resulting path data.
package main

import (
	"flag"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"honnef.co/go/polycurve"
	"honnef.co/go/polycurve/internal/atomicfile"
	"honnef.co/go/polycurve/internal/svgfile"
)

var cli struct {
	alpha   float64
	points  bool
	closed  bool
	verbose bool
}

// shift is applied to smoothed copies so they do not cover the originals.
var shift = polycurve.Translate(polycurve.Vec(0, 10))

func main() {
	flag.Float64Var(&cli.alpha, "alpha", polycurve.DefaultAlpha, "handle length relative to the node distance")
	flag.BoolVar(&cli.points, "points", false, "smooth the x,y pairs given as arguments and print path data")
	flag.BoolVar(&cli.closed, "closed", false, "with -points, close the shape by repeating the first point")
	flag.BoolVar(&cli.verbose, "v", false, "verbose operation")
	flag.Usage = func() {
		name := filepath.Base(os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] input.svg output.svg\n", name)
		fmt.Fprintf(flag.CommandLine.Output(), "       %s [flags] -points x,y x,y x,y...\n", name)
		flag.PrintDefaults()
	}
	flag.Parse()

	if cli.verbose {
		polycurve.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var err error
	if cli.points {
		err = runPoints(os.Stdout, flag.Args(), cli.alpha, cli.closed)
	} else {
		if flag.NArg() != 2 {
			flag.Usage()
			os.Exit(2)
		}
		err = runFile(flag.Arg(0), flag.Arg(1))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runPoints(w io.Writer, args []string, alpha float64, closed bool) error {
	pts, err := polycurve.ParsePoints(args)
	if err != nil {
		return err
	}
	if closed && len(pts) > 0 && pts[0] != pts[len(pts)-1] {
		pts = append(pts, pts[0])
	}
	path, err := polycurve.AutoSmooth(pts, alpha)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, polycurve.FormatPath(path))
	return err
}

func runFile(in, out string) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()
	return atomicfile.Write(out, func(w io.Writer) error {
		return smoothDocument(w, f, cli.alpha)
	})
}

// smoothDocument reads every path of the SVG document in r and writes a
// document with the originals and their shifted, smoothed copies to w.
//
// Close commands become straight segments back to the subpath start, so a
// closed outline ends on its first node and is smoothed as a closed shape.
func smoothDocument(w io.Writer, r io.Reader, alpha float64) error {
	ds, err := svgfile.PathData(r)
	if err != nil {
		return err
	}

	var (
		originals []polycurve.BezPath
		smoothed  []polycurve.Path
		box       polycurve.Rect
	)
	for i, d := range ds {
		els, err := polycurve.Parser{}.ParseElements(strings.Fields(d))
		if err != nil {
			return fmt.Errorf("path %d: %w", i+1, err)
		}
		segs := els.Path(polycurve.CloseLine)
		sm, err := polycurve.AutoSmooth(segs.Nodes(), alpha)
		if err != nil {
			return fmt.Errorf("path %d: %w", i+1, err)
		}
		sm = sm.Transform(shift)

		bb := segs.BoundingBox().Union(sm.BoundingBox())
		if i == 0 {
			box = bb
		} else {
			box = box.Union(bb)
		}
		originals = append(originals, els)
		smoothed = append(smoothed, sm)
	}
	polycurve.Logger().Debug("smoothed document", "paths", len(ds), "alpha", alpha)

	var seqs []iter.Seq[polycurve.PathElement]
	for _, p := range originals {
		seqs = append(seqs, p.Elements())
	}
	for _, p := range smoothed {
		seqs = append(seqs, p.Elements())
	}
	return svgfile.Write(w, box, seqs...)
}
