package polycurve

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Warning describes a token that the parser skipped.
type Warning struct {
	Pos   int
	Token string
}

func (w Warning) String() string {
	return fmt.Sprintf("unknown path command %q at token %d", w.Token, w.Pos)
}

// Parser turns whitespace-separated path data into cubic segments. It
// understands absolute and relative moves (M, m), absolute and relative
// cubic curves (C, c) and closing commands (z, Z). Coordinate pairs are
// written as "x,y".
//
// The zero value is ready to use and drops close commands, as the path data
// produced by common editors already ends where it starts.
type Parser struct {
	// Close decides what z and Z contribute.
	Close ClosePolicy
	// Warn, if non-nil, is called for every skipped token in addition to
	// the warning logged through [Logger].
	Warn func(Warning)
}

// ParsePath parses path data with the default [Parser].
func ParsePath(d string) (Path, error) {
	return Parser{}.Parse(strings.Fields(d))
}

// Parse parses a token sequence into a [Path].
func (p Parser) Parse(tokens []string) (Path, error) {
	els, err := p.ParseElements(tokens)
	if err != nil {
		return nil, err
	}
	return els.Path(p.Close), nil
}

// FormatPath writes p as path data that [ParsePath] reads back.
func FormatPath(p Path) string {
	return SVG(p.Elements())
}

type parseState int

const (
	stateIdle parseState = iota
	stateExpectMove
	stateCurveGroup
	stateClose
)

// ParseElements parses a token sequence into drawing commands, keeping
// close commands as [ClosePath] elements regardless of p.Close.
func (p Parser) ParseElements(tokens []string) (BezPath, error) {
	var (
		path     BezPath
		state    = stateIdle
		rel      bool
		pen      Point
		subStart Point
		havePen  bool
		triples  int
	)

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch state {
		case stateIdle:
			switch tok {
			case "M", "m":
				rel = tok == "m"
				state = stateExpectMove
			case "C", "c":
				if !havePen {
					return nil, &ParseError{Pos: i, Token: tok, Msg: "curve command before any move"}
				}
				rel = tok == "c"
				triples = 0
				state = stateCurveGroup
			case "z", "Z":
				state = stateClose
				continue
			default:
				p.warn(Warning{Pos: i, Token: tok})
			}
			i++

		case stateExpectMove:
			pt, err := parsePair(tokens, i)
			if err != nil {
				return nil, err
			}
			if rel {
				pen = pen.Translate(Vec2(pt))
			} else {
				pen = pt
			}
			havePen = true
			subStart = pen
			path.MoveTo(pen)
			state = stateIdle
			i++

		case stateCurveGroup:
			if isCommand(tok) {
				if triples == 0 {
					return nil, &ParseError{Pos: i, Token: tok, Msg: "expected coordinate pair"}
				}
				state = stateIdle
				continue
			}
			if i+2 >= len(tokens) {
				return nil, &ParseError{Pos: i, Token: tok, Msg: "incomplete curve: need three coordinate pairs"}
			}
			var pts [3]Point
			for j := range pts {
				pt, err := parsePair(tokens, i+j)
				if err != nil {
					return nil, err
				}
				if rel {
					pt = pen.Translate(Vec2(pt))
				}
				pts[j] = pt
			}
			path.CubicTo(pts[0], pts[1], pts[2])
			pen = pts[2]
			triples++
			i += 3

		case stateClose:
			path.ClosePath()
			if p.Close == CloseLine {
				pen = subStart
			}
			state = stateIdle
			i++
		}
	}

	switch state {
	case stateExpectMove:
		return nil, &ParseError{Pos: len(tokens), Msg: "missing coordinate pair after move"}
	case stateCurveGroup:
		if triples == 0 {
			return nil, &ParseError{Pos: len(tokens), Msg: "missing coordinate pairs after curve"}
		}
	}
	return path, nil
}

func (p Parser) warn(w Warning) {
	Logger().Warn("skipping unknown path command", "token", w.Token, "pos", w.Pos)
	if p.Warn != nil {
		p.Warn(w)
	}
}

// isCommand reports whether tok is a command rather than a coordinate.
// Commands are single ASCII letters, so that tokens like "nan,0" are
// rejected as coordinates instead of ending a curve group.
func isCommand(tok string) bool {
	if len(tok) != 1 {
		return false
	}
	c := tok[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func parsePair(tokens []string, pos int) (Point, error) {
	if pos >= len(tokens) {
		return Point{}, &ParseError{Pos: pos, Msg: "missing coordinate pair"}
	}
	tok := tokens[pos]
	if isCommand(tok) {
		return Point{}, &ParseError{Pos: pos, Token: tok, Msg: "expected coordinate pair"}
	}
	xs, ys, ok := strings.Cut(tok, ",")
	if !ok {
		return Point{}, &ParseError{Pos: pos, Token: tok, Msg: "coordinate pair must be written as x,y"}
	}
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return Point{}, &ParseError{Pos: pos, Token: tok, Msg: fmt.Sprintf("malformed x coordinate %q", xs)}
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return Point{}, &ParseError{Pos: pos, Token: tok, Msg: fmt.Sprintf("malformed y coordinate %q", ys)}
	}
	if math.IsInf(x, 0) || math.IsNaN(x) || math.IsInf(y, 0) || math.IsNaN(y) {
		return Point{}, &ParseError{Pos: pos, Token: tok, Msg: "coordinate is not finite"}
	}
	return Pt(x, y), nil
}

// ParsePoints parses a list of "x,y" coordinate pairs.
func ParsePoints(tokens []string) ([]Point, error) {
	pts := make([]Point, len(tokens))
	for i := range tokens {
		pt, err := parsePair(tokens, i)
		if err != nil {
			return nil, err
		}
		pts[i] = pt
	}
	return pts, nil
}
