package polycurve

import (
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelWork is the number of multiply-adds below which row operations
// run on the calling goroutine.
const parallelWork = 1 << 14

// Matrix is a dense row-major matrix of arbitrary-precision floats. Its
// methods mirror the shape conventions of gonum's mat.Dense and panic on
// mismatched dimensions.
//
// Operations that touch many rows spread the rows over goroutines. Each
// element is still computed by one goroutine in a fixed order, so results do
// not depend on scheduling.
type Matrix struct {
	rows, cols int
	prec       uint
	data       []*big.Float
}

// NewMatrix returns a rows×cols zero matrix.
func NewMatrix(rows, cols int, prec uint) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic("polycurve: zero length in matrix dimension")
	}
	prec = precOrDefault(prec)
	data := make([]*big.Float, rows*cols)
	for i := range data {
		data[i] = newFloat(prec)
	}
	return &Matrix{rows: rows, cols: cols, prec: prec, data: data}
}

// NewMatrixFromFloat64 returns a rows×cols matrix holding vals in row-major
// order.
func NewMatrixFromFloat64(rows, cols int, prec uint, vals []float64) *Matrix {
	if len(vals) != rows*cols {
		panic("polycurve: dimension mismatch")
	}
	m := NewMatrix(rows, cols, prec)
	for i, v := range vals {
		m.data[i].SetFloat64(v)
	}
	return m
}

// Vandermonde returns the len(ts)×cols matrix whose element (i, j) is ts[i]^j.
func Vandermonde(ts []*big.Float, cols int, prec uint) *Matrix {
	m := NewMatrix(len(ts), cols, prec)
	parallelRows(m.rows, m.rows*cols, func(i int) {
		row := m.data[i*cols : (i+1)*cols]
		row[0].SetInt64(1)
		for j := 1; j < cols; j++ {
			row[j].Mul(row[j-1], ts[i])
		}
	})
	return m
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (r, c int) {
	return m.rows, m.cols
}

// Prec returns the precision of the matrix elements in bits.
func (m *Matrix) Prec() uint {
	return m.prec
}

// At returns a copy of element (i, j).
func (m *Matrix) At(i, j int) *big.Float {
	return newFloat(m.prec).Set(m.at(i, j))
}

// Set sets element (i, j) to v, rounded to the matrix precision.
func (m *Matrix) Set(i, j int, v *big.Float) {
	m.at(i, j).Set(v)
}

// SetFloat64 sets element (i, j) to v.
func (m *Matrix) SetFloat64(i, j int, v float64) {
	m.at(i, j).SetFloat64(v)
}

func (m *Matrix) at(i, j int) *big.Float {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("polycurve: index out of range")
	}
	return m.data[i*m.cols+j]
}

// Col returns copies of the elements of column j.
func (m *Matrix) Col(j int) []*big.Float {
	out := make([]*big.Float, m.rows)
	for i := range out {
		out[i] = m.At(i, j)
	}
	return out
}

// T returns the transpose of m as a new matrix.
func (m *Matrix) T() *Matrix {
	t := NewMatrix(m.cols, m.rows, m.prec)
	for i := range m.rows {
		for j := range m.cols {
			t.data[j*t.cols+i].Set(m.data[i*m.cols+j])
		}
	}
	return t
}

// Mul returns the product m·o.
func (m *Matrix) Mul(o *Matrix) *Matrix {
	if m.cols != o.rows {
		panic("polycurve: dimension mismatch")
	}
	prec := max(m.prec, o.prec)
	out := NewMatrix(m.rows, o.cols, prec)
	parallelRows(m.rows, m.rows*m.cols*o.cols, func(i int) {
		term := newFloat(prec)
		for j := range o.cols {
			acc := out.data[i*out.cols+j]
			for k := range m.cols {
				term.Mul(m.data[i*m.cols+k], o.data[k*o.cols+j])
				acc.Add(acc, term)
			}
		}
	})
	return out
}

// Solve solves m·x = b for x using Gaussian elimination with partial
// pivoting. m must be square and b must have as many rows as m; every column
// of b is a separate right-hand side.
//
// A pivot that is zero, or smaller than the largest element of m by more than
// seven eighths of the working precision, makes the system singular and
// Solve returns a [*SingularSystemError].
func (m *Matrix) Solve(b *Matrix) (*Matrix, error) {
	if m.rows != m.cols || b.rows != m.rows {
		panic("polycurve: dimension mismatch")
	}
	n, k := m.rows, b.cols
	prec := max(m.prec, b.prec)

	a := m.clone(prec)
	x := b.clone(prec)

	threshold := newFloat(prec)
	for _, v := range a.data {
		if cmpAbs(v, threshold) > 0 {
			threshold.Abs(v)
		}
	}
	if threshold.Sign() == 0 {
		return nil, &SingularSystemError{Column: 0, Size: n, Prec: prec}
	}
	threshold.SetMantExp(threshold, -int(prec-prec/8))

	for c := range n {
		p := c
		for r := c + 1; r < n; r++ {
			if cmpAbs(a.data[r*n+c], a.data[p*n+c]) > 0 {
				p = r
			}
		}
		pivot := a.data[p*n+c]
		if cmpAbs(pivot, threshold) <= 0 {
			return nil, &SingularSystemError{Column: c, Size: n, Prec: prec}
		}
		if p != c {
			a.swapRows(p, c)
			x.swapRows(p, c)
		}
		pivot = a.data[c*n+c]

		below := n - c - 1
		parallelRows(below, below*(n-c+k), func(ri int) {
			r := c + 1 + ri
			f := a.data[r*n+c]
			if f.Sign() == 0 {
				return
			}
			f = newFloat(prec).Quo(f, pivot)
			term := newFloat(prec)
			for j := c + 1; j < n; j++ {
				term.Mul(f, a.data[c*n+j])
				a.data[r*n+j].Sub(a.data[r*n+j], term)
			}
			for j := range k {
				term.Mul(f, x.data[c*k+j])
				x.data[r*k+j].Sub(x.data[r*k+j], term)
			}
			a.data[r*n+c].SetInt64(0)
		})
	}

	// Back substitution, one right-hand side per column.
	parallelRows(k, n*n*k/2, func(j int) {
		term := newFloat(prec)
		for i := n - 1; i >= 0; i-- {
			v := x.data[i*k+j]
			for l := i + 1; l < n; l++ {
				term.Mul(a.data[i*n+l], x.data[l*k+j])
				v.Sub(v, term)
			}
			v.Quo(v, a.data[i*n+i])
		}
	})
	return x, nil
}

// cmpAbs compares |x| and |y|.
func cmpAbs(x, y *big.Float) int {
	var ax, ay big.Float
	return ax.Abs(x).Cmp(ay.Abs(y))
}

func (m *Matrix) clone(prec uint) *Matrix {
	out := NewMatrix(m.rows, m.cols, prec)
	for i, v := range m.data {
		out.data[i].Set(v)
	}
	return out
}

func (m *Matrix) swapRows(i, j int) {
	ri := m.data[i*m.cols : (i+1)*m.cols]
	rj := m.data[j*m.cols : (j+1)*m.cols]
	for c := range ri {
		ri[c], rj[c] = rj[c], ri[c]
	}
}

// parallelRows calls fn for every row index in [0, n). When work is large
// enough, rows are processed concurrently.
func parallelRows(n, work int, fn func(i int)) {
	if n <= 1 || work < parallelWork {
		for i := range n {
			fn(i)
		}
		return
	}
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range n {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	// fn cannot fail.
	_ = g.Wait()
}
