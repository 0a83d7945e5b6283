// Package svgfile reads path data out of SVG documents and writes small
// documents made of stroked paths.
package svgfile

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"strings"

	"honnef.co/go/polycurve"
)

var ErrNoPath = errors.New("document contains no <path> element with path data")

// PathData returns the d attributes of all path elements, in document order.
func PathData(r io.Reader) ([]string, error) {
	var ds []string
	err := walkPaths(r, func(d string) bool {
		ds = append(ds, d)
		return true
	})
	if err != nil {
		return nil, err
	}
	if len(ds) == 0 {
		return nil, ErrNoPath
	}
	return ds, nil
}

// FirstPathData returns the d attribute of the first path element.
func FirstPathData(r io.Reader) (string, error) {
	var first string
	err := walkPaths(r, func(d string) bool {
		first = d
		return false
	})
	if err != nil {
		return "", err
	}
	if first == "" {
		return "", ErrNoPath
	}
	return first, nil
}

// walkPaths calls fn with the trimmed path data of each path element until
// fn returns false or the document ends. Paths without data are skipped.
func walkPaths(r io.Reader, fn func(d string) bool) error {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		e, ok := tok.(xml.StartElement)
		if !ok || e.Name.Local != "path" {
			continue
		}
		v, _ := findattr(e, "d")
		if v = strings.TrimSpace(v); v == "" {
			continue
		}
		if !fn(v) {
			return nil
		}
	}
}

func findattr(e xml.StartElement, name string) (string, bool) {
	for _, a := range e.Attr {
		if a.Name.Local == name && a.Name.Space == "" {
			return a.Value, true
		}
	}
	return "", false
}

// Write writes an SVG document that strokes every path in black. The view
// box is box grown by a margin of 5% of its larger side.
func Write(w io.Writer, box polycurve.Rect, paths ...iter.Seq[polycurve.PathElement]) error {
	box = box.Abs()
	margin := math.Max(box.Width(), box.Height()) / 20
	if margin == 0 {
		margin = 1
	}

	bw := bufio.NewWriter(w)
	// Errors are sticky in bufio.Writer and reported by Flush.
	fmt.Fprintf(bw, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"%g %g %g %g\">\n",
		box.X0-margin, box.Y0-margin, box.Width()+2*margin, box.Height()+2*margin)
	for _, p := range paths {
		bw.WriteString("  <path d=\"")
		// Path data is digits, signs, dots, commas, spaces and command
		// letters, none of which need escaping.
		polycurve.WriteSVG(bw, p)
		fmt.Fprintf(bw, "\" fill=\"none\" stroke=\"black\" stroke-width=\"%g\"/>\n", margin/10)
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}
