package cplx

import "math"

// SolveLinear returns the root of a·x + b = 0.
// A degenerate equation (a == 0) has no finite root and yields an empty
// slice; callers treat that as "constant, nothing to solve".
func SolveLinear(a, b float64) []Complex {
	if a == 0 {
		return nil
	}

	return []Complex{{Re: -b / a}}
}

// SolveQuadratic returns both roots of a·x² + b·x + c = 0.
// A repeated root is reported twice so the result always carries the full
// multiplicity. For a negative discriminant the conjugate pair is returned
// with the +i member first.
// Degenerate inputs (a == 0) fall back to SolveLinear.
func SolveQuadratic(a, b, c float64) []Complex {
	if a == 0 {
		return SolveLinear(b, c)
	}

	disc := b*b - 4*a*c
	switch {
	case disc > 0:
		s := math.Sqrt(disc)

		return []Complex{
			{Re: (-b + s) / (2 * a)},
			{Re: (-b - s) / (2 * a)},
		}
	case disc == 0:
		r := -b / (2 * a)

		return []Complex{{Re: r}, {Re: r}}
	default:
		// Magnitude from |2a| so the +i member leads for either sign of a.
		s := math.Sqrt(-disc) / math.Abs(2*a)

		return []Complex{
			{Re: -b / (2 * a), Im: s},
			{Re: -b / (2 * a), Im: -s},
		}
	}
}

// SolveCubic returns all three roots of a·x³ + b·x² + c·x + d = 0.
//
// The equation is reduced to the depressed form t³ + p·t + q via
// x = t − b/(3a); the discriminant Δ = (q/2)² + (p/3)³ then classifies the
// root structure. Both vanishing-discriminant conditions get closed forms of
// their own — the triple root (p = q = 0) and the double root (Δ = 0, p ≠ 0)
// — so no branch divides by a discriminant that is exactly zero:
//
//	Δ > 0: one real root (Cardano) and a conjugate pair
//	Δ = 0: repeated real roots in closed form
//	Δ < 0: three distinct real roots (trigonometric method)
//
// Degenerate inputs (a == 0) fall back to SolveQuadratic.
func SolveCubic(a, b, c, d float64) []Complex {
	if a == 0 {
		return SolveQuadratic(b, c, d)
	}

	// Normalize to monic x³ + B·x² + C·x + D.
	B := b / a
	C := c / a
	D := d / a

	// Depress: x = t − B/3 ⇒ t³ + p·t + q.
	shift := B / 3
	p := C - B*B/3
	q := 2*B*B*B/27 - B*C/3 + D

	// Triple root: t³ = 0.
	if p == 0 && q == 0 {
		r := Complex{Re: -shift}

		return []Complex{r, r, r}
	}

	disc := q*q/4 + p*p*p/27
	switch {
	case disc == 0:
		// Double root; p != 0 here since p == 0 with Δ == 0 forces q == 0.
		single := 3 * q / p
		double := -3 * q / (2 * p)

		return []Complex{
			{Re: single - shift},
			{Re: double - shift},
			{Re: double - shift},
		}
	case disc > 0:
		// One real root via Cardano, plus a conjugate pair.
		s := math.Sqrt(disc)
		u := math.Cbrt(-q/2 + s)
		v := math.Cbrt(-q/2 - s)
		re := -(u+v)/2 - shift
		im := math.Sqrt(3) / 2 * (u - v)

		return []Complex{
			{Re: u + v - shift},
			{Re: re, Im: im},
			{Re: re, Im: -im},
		}
	default:
		// Three distinct real roots via the trigonometric method.
		m := 2 * math.Sqrt(-p/3)
		theta := math.Acos(3*q/(2*p)*math.Sqrt(-3/p)) / 3
		roots := make([]Complex, 0, 3)
		for k := 0; k < 3; k++ {
			t := m * math.Cos(theta-2*math.Pi*float64(k)/3)
			roots = append(roots, Complex{Re: t - shift})
		}

		return roots
	}
}
