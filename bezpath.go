package polycurve

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the subpath.
	ClosePathKind
)

// PathElement is one drawing command of a [BezPath]. Only the points
// meaningful for Kind are set: P0 for MoveTo, P0 through P2 for CubicTo.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// ClosePolicy decides what a ClosePath element contributes to the segments
// of a path.
type ClosePolicy int

const (
	// CloseIgnore drops ClosePath elements. The pen stays where it is.
	CloseIgnore ClosePolicy = iota
	// CloseLine emits a straight cubic back to the start of the subpath when
	// the pen is elsewhere, and moves the pen there.
	CloseLine
)

func (p ClosePolicy) String() string {
	switch p {
	case CloseIgnore:
		return "ignore"
	case CloseLine:
		return "line"
	default:
		return fmt.Sprintf("ClosePolicy(%d)", int(p))
	}
}

// ParseClosePolicy parses the names returned by [ClosePolicy.String].
func ParseClosePolicy(s string) (ClosePolicy, error) {
	switch s {
	case "", "ignore":
		return CloseIgnore, nil
	case "line":
		return CloseLine, nil
	default:
		return 0, fmt.Errorf("%w: unknown close policy %q", ErrInvalidConfig, s)
	}
}

// BezPath is a sequence of drawing commands. A valid path starts each
// subpath with a MoveTo.
type BezPath []PathElement

func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a MoveTo element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// CubicTo pushes a CubicTo element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a ClosePath element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Segments converts the path to cubic segments, resolving ClosePath
// elements according to policy.
func (p BezPath) Segments(policy ClosePolicy) iter.Seq[CubicBez] {
	return Segments(p.Elements(), policy)
}

// Path returns the path's segments as a [Path].
func (p BezPath) Path(policy ClosePolicy) Path {
	return slices.Collect(p.Segments(policy))
}

// Segments converts a sequence of path elements to a sequence of cubic
// segments.
func Segments(seq iter.Seq[PathElement], policy ClosePolicy) iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		var start, last Point
		for el := range seq {
			switch el.Kind {
			case MoveToKind:
				start = el.P0
				last = el.P0
			case CubicToKind:
				p := last
				last = el.P2
				if !yield(CubicBez{p, el.P0, el.P1, el.P2}) {
					return
				}
			case ClosePathKind:
				if policy != CloseLine {
					continue
				}
				if last != start {
					p := last
					last = start
					if !yield(LineCubic(p, start)) {
						return
					}
				}
			default:
				panic(fmt.Sprintf("unhandled case %v", el.Kind))
			}
		}
	}
}

// Path is a piecewise cubic path in drawing order. It is the program that
// the sampler walks.
type Path []CubicBez

// Elements converts the segments back to drawing commands, starting a new
// subpath whenever a segment does not begin where the previous one ended.
func (p Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, seg := range p {
			if i == 0 || p[i-1].End() != seg.Start() {
				if !yield(MoveTo(seg.Start())) {
					return
				}
			}
			if !yield(CubicTo(seg.P1, seg.P2, seg.P3)) {
				return
			}
		}
	}
}

// Nodes returns the points the path passes through at segment boundaries:
// the start of every segment followed by the end of the last one.
func (p Path) Nodes() []Point {
	if len(p) == 0 {
		return nil
	}
	nodes := make([]Point, 0, len(p)+1)
	for _, seg := range p {
		nodes = append(nodes, seg.Start())
	}
	return append(nodes, p[len(p)-1].End())
}

// Transform applies aff to every segment.
func (p Path) Transform(aff Affine) Path {
	out := make(Path, len(p))
	for i, seg := range p {
		out[i] = seg.Transform(aff)
	}
	return out
}

// BoundingBox returns the union of the segments' control boxes.
func (p Path) BoundingBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := p[0].BoundingBox()
	for _, seg := range p[1:] {
		r = r.Union(seg.BoundingBox())
	}
	return r
}

// SVG converts a sequence of path elements to path data that [ParsePath]
// accepts: commands and coordinate pairs are separated by single spaces.
func SVG(seq iter.Seq[PathElement]) string {
	sb := &strings.Builder{}
	// strings.Builder never fails.
	_ = WriteSVG(sb, seq)
	return sb.String()
}

// WriteSVG is like [SVG] but writes to w.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement]) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	pair := func(pt Point) string {
		return strconv.FormatFloat(pt.X, 'f', -1, 64) + "," + strconv.FormatFloat(pt.Y, 'f', -1, 64)
	}
	first := true
	for el := range seq {
		if !first {
			writef(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M %s", pair(el.P0))
		case CubicToKind:
			writef("C %s %s %s", pair(el.P0), pair(el.P1), pair(el.P2))
		case ClosePathKind:
			writef("Z")
		default:
			panic("unreachable")
		}
		if err != nil {
			return err
		}
	}
	return err
}
