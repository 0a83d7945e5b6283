// Command parametrize converts the first path of an SVG document into a
// periodic polynomial pair. It writes the coefficients to a text file and a
// plot of the fitted curve to a PNG image.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"honnef.co/go/polycurve"
	"honnef.co/go/polycurve/internal/atomicfile"
	"honnef.co/go/polycurve/internal/svgfile"
)

var cli struct {
	config  string
	out     string
	png     string
	data    string
	verbose bool
}

func main() {
	flag.StringVar(&cli.config, "config", "polycurve.yaml", "configuration `file`")
	flag.StringVar(&cli.out, "o", "polynomial.txt", "coefficient output `file`")
	flag.StringVar(&cli.png, "png", "output.png", "preview image `file`, empty to disable")
	flag.StringVar(&cli.data, "d", "", "path `data` to use instead of an SVG document")
	flag.BoolVar(&cli.verbose, "v", false, "verbose operation")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file.svg]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if cli.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	polycurve.SetLogger(logger)

	if err := run(logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := polycurve.LoadConfig(cli.config)
	if err != nil {
		return err
	}

	d := cli.data
	if d == "" {
		d, err = readPathData(flag.Arg(0))
		if err != nil {
			return err
		}
	}

	res, err := polycurve.Run(d, cfg)
	if err != nil {
		return err
	}
	logger.Info("fitted curve",
		"segments", len(res.Path),
		"samples", len(res.Samples),
		"degree", max(res.Curve.X.Degree(), res.Curve.Y.Degree()),
		"seam", res.Curve.Seam())

	if err := atomicfile.Write(cli.out, func(w io.Writer) error {
		return polycurve.WriteCoefficients(w, res.Curve)
	}); err != nil {
		return err
	}

	if cli.png != "" {
		opts := cfg.PreviewOptions()
		opts.Caption = fmt.Sprintf("%d segments, %d samples", len(res.Path), len(res.Samples))
		img := polycurve.RenderPreview(res.Points, opts)
		if err := atomicfile.Write(cli.png, func(w io.Writer) error {
			return polycurve.WritePNG(w, img)
		}); err != nil {
			return err
		}
	}
	return nil
}

// readPathData extracts path data from the named SVG document, or from
// standard input if name is empty or "-".
func readPathData(name string) (string, error) {
	if name == "" || name == "-" {
		d, err := svgfile.FirstPathData(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return d, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	d, err := svgfile.FirstPathData(f)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return d, nil
}
