// Package poly implements univariate polynomials with real coefficients,
// indexed by degree: coefficient 0 is the constant term. Construction trims
// trailing zero coefficients, so Degree always reflects the true degree and
// the zero polynomial reports degree -1.
//
// Evaluation uses Horner's method, real and complex. Root-finding dispatches
// on degree: closed forms up to the cubic, companion-matrix eigenvalues
// beyond that.
//
// Uses:
//
//	p := poly.New(4, 6, 2)          // 2x² + 6x + 4
//	roots := p.Roots()              // {-1, -2}
//	y := p.Eval(1.5)                // Horner
//	q, r, err := p.Div(d)           // synthetic division
package poly
