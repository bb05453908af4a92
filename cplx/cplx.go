package cplx

import (
	"fmt"
	"math"
)

// Complex is a complex number with float64 real and imaginary parts.
// It is a value type: all methods return derived copies and never mutate
// the receiver.
type Complex struct {
	Re, Im float64
}

// Shared well-known values. Complex is a value type, so callers receive
// copies and cannot mutate these.
var (
	// Zero is the additive identity 0+0i.
	Zero = Complex{}
	// One is the multiplicative identity 1+0i.
	One = Complex{Re: 1}
	// I is the imaginary unit 0+1i.
	I = Complex{Im: 1}
)

// New constructs a Complex from real and imaginary parts.
func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// FromReal constructs the Complex re+0i.
func FromReal(re float64) Complex {
	return Complex{Re: re}
}

// FromC128 converts a built-in complex128 into a Complex.
func FromC128(z complex128) Complex {
	return Complex{Re: real(z), Im: imag(z)}
}

// C128 converts the Complex into a built-in complex128.
func (z Complex) C128() complex128 {
	return complex(z.Re, z.Im)
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

// Mul returns z * w.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Div returns z / w using Smith's scaled algorithm: the branch on the larger
// of |w.Re| and |w.Im| avoids overflow in the intermediate products where the
// textbook formula would blow up.
func (z Complex) Div(w Complex) Complex {
	if math.Abs(w.Re) >= math.Abs(w.Im) {
		r := w.Im / w.Re
		d := w.Re + r*w.Im

		return Complex{Re: (z.Re + r*z.Im) / d, Im: (z.Im - r*z.Re) / d}
	}
	r := w.Re / w.Im
	d := w.Im + r*w.Re

	return Complex{Re: (r*z.Re + z.Im) / d, Im: (r*z.Im - z.Re) / d}
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{Re: -z.Re, Im: -z.Im}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{Re: z.Re, Im: -z.Im}
}

// Scale returns s * z for a real scalar s.
func (z Complex) Scale(s float64) Complex {
	return Complex{Re: s * z.Re, Im: s * z.Im}
}

// Abs returns the modulus |z|, computed via Hypot to avoid intermediate
// overflow and underflow.
func (z Complex) Abs() float64 {
	return math.Hypot(z.Re, z.Im)
}

// Arg returns the argument of z in (-π, π].
func (z Complex) Arg() float64 {
	return math.Atan2(z.Im, z.Re)
}

// Sqrt returns the principal square root of z.
// Implemented in polar form: √|z| · (cos(θ/2) + i·sin(θ/2)).
func (z Complex) Sqrt() Complex {
	if z.Re == 0 && z.Im == 0 {
		return Zero
	}
	r := math.Sqrt(z.Abs())
	half := z.Arg() / 2

	return Complex{Re: r * math.Cos(half), Im: r * math.Sin(half)}
}

// Exp returns e^z.
func (z Complex) Exp() Complex {
	r := math.Exp(z.Re)

	return Complex{Re: r * math.Cos(z.Im), Im: r * math.Sin(z.Im)}
}

// Log returns the principal natural logarithm of z.
func (z Complex) Log() Complex {
	return Complex{Re: math.Log(z.Abs()), Im: z.Arg()}
}

// Pow returns z raised to the real power p, via the principal branch of
// exp(p·log z). Pow of Zero returns Zero for p > 0 and One for p == 0.
func (z Complex) Pow(p float64) Complex {
	if z.IsZero() {
		if p == 0 {
			return One
		}

		return Zero
	}

	return z.Log().Scale(p).Exp()
}

// IsZero reports whether both parts are exactly zero.
func (z Complex) IsZero() bool {
	return z.Re == 0 && z.Im == 0
}

// Equal reports whether z and w differ by at most tol in both parts.
func (z Complex) Equal(w Complex, tol float64) bool {
	return math.Abs(z.Re-w.Re) <= tol && math.Abs(z.Im-w.Im) <= tol
}

// String implements fmt.Stringer in the conventional a+bi form.
func (z Complex) String() string {
	if z.Im < 0 {
		return fmt.Sprintf("%g-%gi", z.Re, -z.Im)
	}

	return fmt.Sprintf("%g+%gi", z.Re, z.Im)
}
