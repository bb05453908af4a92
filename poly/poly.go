package poly

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvlnum/cplx"
)

// ErrZeroDivision is returned by Div and GCD when the divisor is the zero
// polynomial.
var ErrZeroDivision = errors.New("poly: division by zero polynomial")

// polyErrorf wraps err with an operation tag; the underlying sentinel stays
// matchable via errors.Is.
func polyErrorf(op string, err error) error {
	return fmt.Errorf("poly.%s: %w", op, err)
}

// coeffTol truncates near-zero coefficients produced by inexact remainder
// arithmetic in GCD so the Euclidean loop terminates.
const coeffTol = 1e-12

// Polynomial is an immutable univariate polynomial over float64.
// coeffs[i] multiplies x^i; the slice carries no trailing zeros, so
// len(coeffs)-1 is the degree and the zero polynomial holds nil.
type Polynomial struct {
	coeffs []float64
}

// New builds a polynomial from coefficients in ascending degree order,
// copying the input and trimming trailing zeros. New() with no arguments
// yields the zero polynomial.
func New(coeffs ...float64) Polynomial {
	end := len(coeffs)
	for end > 0 && coeffs[end-1] == 0 {
		end--
	}
	if end == 0 {
		return Polynomial{}
	}
	out := make([]float64, end)
	copy(out, coeffs[:end])

	return Polynomial{coeffs: out}
}

// Degree returns the degree of the polynomial, -1 for the zero polynomial.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.coeffs) == 0 }

// Coeff returns the coefficient of x^i, zero beyond the degree.
func (p Polynomial) Coeff(i int) float64 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}

	return p.coeffs[i]
}

// Coeffs returns a copy of the coefficient slice, ascending degree order.
// Empty for the zero polynomial.
func (p Polynomial) Coeffs() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial { return p.addScaled(q, 1) }

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial { return p.addScaled(q, -1) }

func (p Polynomial) addScaled(q Polynomial, sign float64) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	sum := make([]float64, n)
	for i := range sum {
		sum[i] = p.Coeff(i) + sign*q.Coeff(i)
	}

	return New(sum...)
}

// Mul returns the product p·q. O(deg p · deg q).
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Polynomial{}
	}
	prod := make([]float64, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		if a == 0 {
			continue
		}
		for j, b := range q.coeffs {
			prod[i+j] += a * b
		}
	}

	return New(prod...)
}

// Scale returns s·p.
func (p Polynomial) Scale(s float64) Polynomial {
	out := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = s * c
	}

	return New(out...)
}

// Derivative returns dp/dx. The derivative of a constant is the zero
// polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p.coeffs) <= 1 {
		return Polynomial{}
	}
	out := make([]float64, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		out[i-1] = float64(i) * p.coeffs[i]
	}

	return New(out...)
}

// Eval evaluates p at x by Horner's method. O(deg p), no allocation.
func (p Polynomial) Eval(x float64) float64 {
	acc := 0.0
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc*x + p.coeffs[i]
	}

	return acc
}

// EvalComplex evaluates p at the complex point z by Horner's method.
func (p Polynomial) EvalComplex(z cplx.Complex) cplx.Complex {
	acc := cplx.Zero
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(z).Add(cplx.FromReal(p.coeffs[i]))
	}

	return acc
}

// Div returns the quotient and remainder of synthetic division p = q·d + r
// with deg r < deg d.
// Errors: ErrZeroDivision when d is the zero polynomial.
func (p Polynomial) Div(d Polynomial) (q, r Polynomial, err error) {
	if d.IsZero() {
		return Polynomial{}, Polynomial{}, polyErrorf("Div", ErrZeroDivision)
	}
	if p.Degree() < d.Degree() {
		return Polynomial{}, p, nil
	}

	rem := p.Coeffs()
	lead := d.coeffs[len(d.coeffs)-1]
	quot := make([]float64, p.Degree()-d.Degree()+1)
	for k := len(quot) - 1; k >= 0; k-- {
		quot[k] = rem[k+d.Degree()] / lead
		for j, c := range d.coeffs {
			rem[k+j] -= quot[k] * c
		}
	}

	return New(quot...), New(rem[:d.Degree()]...), nil
}

// GCD returns the monic greatest common divisor of p and q via the
// Euclidean algorithm. Remainder coefficients within coeffTol of zero are
// truncated so inexact float arithmetic cannot stall the loop.
// GCD with the zero polynomial is the other argument made monic; GCD of
// two zero polynomials is zero.
func (p Polynomial) GCD(q Polynomial) Polynomial {
	a, b := p, q
	for !b.IsZero() {
		_, r, _ := a.Div(b) // b nonzero here, Div cannot fail
		a, b = b, r.truncate(coeffTol)
	}

	return a.monic()
}

// monic scales the polynomial so its leading coefficient is 1.
func (p Polynomial) monic() Polynomial {
	if p.IsZero() {
		return p
	}

	return p.Scale(1 / p.coeffs[len(p.coeffs)-1])
}

// truncate zeroes coefficients with magnitude at most tol and renormalizes.
func (p Polynomial) truncate(tol float64) Polynomial {
	out := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		if math.Abs(c) > tol {
			out[i] = c
		}
	}

	return New(out...)
}

// String renders the polynomial in conventional descending order,
// "2x^2 + 6x + 4"; the zero polynomial renders as "0".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c == 0 {
			continue
		}
		if sb.Len() > 0 {
			if c > 0 {
				sb.WriteString(" + ")
			} else {
				sb.WriteString(" - ")
				c = -c
			}
		}
		switch {
		case i == 0:
			fmt.Fprintf(&sb, "%g", c)
		case i == 1:
			if c == 1 {
				sb.WriteString("x")
			} else {
				fmt.Fprintf(&sb, "%gx", c)
			}
		default:
			if c == 1 {
				fmt.Fprintf(&sb, "x^%d", i)
			} else {
				fmt.Fprintf(&sb, "%gx^%d", c, i)
			}
		}
	}

	return sb.String()
}
