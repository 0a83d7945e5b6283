package polycurve

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

// WriteCoefficients writes the curve in the coefficient file format:
//
//	x <N>
//	<coefficient 0>
//	...
//	<coefficient N-1>
//	y <N>
//	<coefficient 0>
//	...
//
// Coefficients are written as the shortest decimal text that reads back to
// the identical value at the coefficient's precision.
func WriteCoefficients(w io.Writer, c FittedCurve) error {
	bw := bufio.NewWriter(w)
	writeAxis(bw, "x", c.X)
	writeAxis(bw, "y", c.Y)
	return bw.Flush()
}

func writeAxis(w *bufio.Writer, label string, p Polynomial) {
	// Errors are sticky in bufio.Writer and reported by Flush.
	fmt.Fprintf(w, "%s %d\n", label, p.Len())
	for _, c := range p.coeffs {
		w.WriteString(c.Text('g', -1))
		w.WriteByte('\n')
	}
}

// ReadCoefficients parses a coefficient file written by [WriteCoefficients].
// Coefficients are rounded to prec bits; a prec of 0 selects
// [DefaultPrecision].
func ReadCoefficients(r io.Reader, prec uint) (FittedCurve, error) {
	prec = precOrDefault(prec)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return strings.TrimSpace(sc.Text()), true
	}

	readAxis := func(label string) (Polynomial, error) {
		header, ok := next()
		if !ok {
			return Polynomial{}, fmt.Errorf("line %d: missing %q header", line+1, label)
		}
		fields := strings.Fields(header)
		if len(fields) != 2 || fields[0] != label {
			return Polynomial{}, fmt.Errorf("line %d: expected %q header, got %q", line, label+" <count>", header)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return Polynomial{}, fmt.Errorf("line %d: invalid coefficient count %q", line, fields[1])
		}
		// The count is untrusted; grow as lines arrive.
		var coeffs []*big.Float
		for i := 0; i < n; i++ {
			s, ok := next()
			if !ok {
				return Polynomial{}, fmt.Errorf("line %d: %s has %d of %d coefficients", line+1, label, i, n)
			}
			v, _, err := big.ParseFloat(s, 10, prec, big.ToNearestEven)
			if err != nil {
				return Polynomial{}, fmt.Errorf("line %d: invalid coefficient %q: %w", line, s, err)
			}
			coeffs = append(coeffs, v)
		}
		return Polynomial{coeffs: coeffs, prec: prec}, nil
	}

	x, err := readAxis("x")
	if err != nil {
		return FittedCurve{}, err
	}
	y, err := readAxis("y")
	if err != nil {
		return FittedCurve{}, err
	}
	if err := sc.Err(); err != nil {
		return FittedCurve{}, err
	}
	return FittedCurve{X: x, Y: y}, nil
}
