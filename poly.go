package polycurve

import (
	"math/big"
	"strconv"
	"strings"
)

// DefaultPrecision is the working precision, in bits, used when none is
// given. Fitting polynomials of degree in the hundreds in the monomial basis
// loses hundreds of bits to cancellation, so this is far beyond float64.
const DefaultPrecision uint = 2000

// Polynomial is a polynomial in one variable with arbitrary-precision
// coefficients. Coefficient i belongs to t^i.
//
// Polynomials are immutable values: every operation returns a new
// Polynomial and operands are never modified. The zero value is the empty
// polynomial, which evaluates to 0 everywhere.
type Polynomial struct {
	coeffs []*big.Float
	prec   uint
}

// NewPolynomial returns the polynomial with the given coefficients, lowest
// degree first. A prec of 0 selects [DefaultPrecision].
func NewPolynomial(prec uint, coeffs ...float64) Polynomial {
	prec = precOrDefault(prec)
	cs := make([]*big.Float, len(coeffs))
	for i, c := range coeffs {
		cs[i] = newFloat(prec).SetFloat64(c)
	}
	return Polynomial{coeffs: cs, prec: prec}
}

// PolynomialFromBig returns the polynomial with the given coefficients,
// rounded to prec bits. The coefficients are copied.
func PolynomialFromBig(prec uint, coeffs []*big.Float) Polynomial {
	prec = precOrDefault(prec)
	cs := make([]*big.Float, len(coeffs))
	for i, c := range coeffs {
		cs[i] = newFloat(prec).Set(c)
	}
	return Polynomial{coeffs: cs, prec: prec}
}

// Prec returns the working precision of p in bits.
func (p Polynomial) Prec() uint {
	return precOrDefault(p.prec)
}

// Len returns the number of coefficients, which is the degree plus one.
func (p Polynomial) Len() int {
	return len(p.coeffs)
}

// Degree returns the nominal degree of p, or -1 for the empty polynomial.
// Trailing zero coefficients count towards the degree; see [Polynomial.Trim].
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coeff returns a copy of the coefficient of t^i. Coefficients beyond the
// degree are zero.
func (p Polynomial) Coeff(i int) *big.Float {
	if i < 0 || i >= len(p.coeffs) {
		return newFloat(p.Prec())
	}
	return newFloat(p.Prec()).Set(p.coeffs[i])
}

// Coeffs returns copies of all coefficients, lowest degree first.
func (p Polynomial) Coeffs() []*big.Float {
	out := make([]*big.Float, len(p.coeffs))
	for i := range p.coeffs {
		out[i] = p.Coeff(i)
	}
	return out
}

// Eval evaluates p at t using Horner's scheme.
func (p Polynomial) Eval(t *big.Float) *big.Float {
	prec := p.Prec()
	acc := newFloat(prec)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc.Mul(acc, t)
		acc.Add(acc, p.coeffs[i])
	}
	return acc
}

// EvalFloat evaluates p at t and rounds the result to the nearest float64.
// The evaluation itself happens at full precision.
func (p Polynomial) EvalFloat(t float64) float64 {
	v, _ := p.Eval(newFloat(p.Prec()).SetFloat64(t)).Float64()
	return v
}

// Add returns p+o. The result has as many coefficients as the longer
// operand.
func (p Polynomial) Add(o Polynomial) Polynomial {
	prec := max(p.Prec(), o.Prec())
	out := make([]*big.Float, max(len(p.coeffs), len(o.coeffs)))
	for i := range out {
		c := newFloat(prec)
		if i < len(p.coeffs) {
			c.Add(c, p.coeffs[i])
		}
		if i < len(o.coeffs) {
			c.Add(c, o.coeffs[i])
		}
		out[i] = c
	}
	return Polynomial{coeffs: out, prec: prec}
}

// AddConst returns p+c.
func (p Polynomial) AddConst(c float64) Polynomial {
	return p.Add(NewPolynomial(p.Prec(), c))
}

// Mul returns the product p·o. The result has len(p)+len(o)−1 coefficients;
// the product with the empty polynomial is empty.
func (p Polynomial) Mul(o Polynomial) Polynomial {
	prec := max(p.Prec(), o.Prec())
	if len(p.coeffs) == 0 || len(o.coeffs) == 0 {
		return Polynomial{prec: prec}
	}
	out := make([]*big.Float, len(p.coeffs)+len(o.coeffs)-1)
	for i := range out {
		out[i] = newFloat(prec)
	}
	term := newFloat(prec)
	for i, a := range p.coeffs {
		for j, b := range o.coeffs {
			term.Mul(a, b)
			out[i+j].Add(out[i+j], term)
		}
	}
	return Polynomial{coeffs: out, prec: prec}
}

// Pow returns p raised to the n-th power by repeated multiplication, starting
// from the constant 1. Pow(0) is the constant 1 for every p.
func (p Polynomial) Pow(n int) Polynomial {
	if n < 0 {
		panic("negative polynomial power")
	}
	out := NewPolynomial(p.Prec(), 1)
	for range n {
		out = out.Mul(p)
	}
	return out
}

// Scale returns s·p.
func (p Polynomial) Scale(s *big.Float) Polynomial {
	prec := p.Prec()
	out := make([]*big.Float, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = newFloat(prec).Mul(c, s)
	}
	return Polynomial{coeffs: out, prec: prec}
}

// ScaleFloat returns f·p.
func (p Polynomial) ScaleFloat(f float64) Polynomial {
	return p.Scale(newFloat(p.Prec()).SetFloat64(f))
}

// Equal reports whether p and o have the same coefficients. Missing high
// coefficients compare equal to zero.
func (p Polynomial) Equal(o Polynomial) bool {
	for i := range max(len(p.coeffs), len(o.coeffs)) {
		if p.Coeff(i).Cmp(o.Coeff(i)) != 0 {
			return false
		}
	}
	return true
}

// Trim drops trailing coefficients whose largest contribution for |t| ≤
// radius is below 2^-bits. At least the constant term is kept. Trim is how
// rounding noise in the high-order coefficients of a fit is discarded
// without touching coefficients that matter on the fitted domain.
func (p Polynomial) Trim(radius float64, bits uint) Polynomial {
	if len(p.coeffs) <= 1 {
		return p
	}
	prec := p.Prec()
	threshold := newFloat(prec).SetMantExp(big.NewFloat(1), -int(bits))

	// powers[k] = radius^k
	r := newFloat(prec).SetFloat64(radius)
	powers := make([]*big.Float, len(p.coeffs))
	powers[0] = newFloat(prec).SetInt64(1)
	for k := 1; k < len(powers); k++ {
		powers[k] = newFloat(prec).Mul(powers[k-1], r)
	}

	n := len(p.coeffs)
	term := newFloat(prec)
	for n > 1 {
		term.Abs(p.coeffs[n-1])
		term.Mul(term, powers[n-1])
		if term.Cmp(threshold) >= 0 {
			break
		}
		n--
	}
	return Polynomial{coeffs: p.coeffs[:n:n], prec: prec}
}

// String formats p highest degree first, with coefficients rounded to six
// significant digits.
func (p Polynomial) String() string {
	if len(p.coeffs) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if i != len(p.coeffs)-1 {
			sb.WriteString(" + ")
		}
		sb.WriteString(p.coeffs[i].Text('g', 6))
		switch i {
		case 0:
		case 1:
			sb.WriteString("t")
		default:
			sb.WriteString("t^")
			sb.WriteString(strconv.Itoa(i))
		}
	}
	return sb.String()
}

func precOrDefault(prec uint) uint {
	if prec == 0 {
		return DefaultPrecision
	}
	return prec
}

func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}
