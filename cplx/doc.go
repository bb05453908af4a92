// Package cplx provides the complex-number value type consumed and produced
// throughout lvlnum, together with closed-form root solvers for linear,
// quadratic and cubic polynomials with real coefficients.
//
// Complex is a plain value type: every operation returns a derived copy and
// no operation mutates its receiver, which makes the shared values Zero, One
// and I trivially safe to use from any goroutine.
//
// The solvers are the degree ≤ 3 fast path of poly.Roots: they special-case
// the vanishing-discriminant conditions (triple and double cubic roots) so
// that no branch ever divides by a discriminant that is exactly zero.
//
// Interop: C128 and FromC128 convert to and from the built-in complex128 for
// callers living in the rest of the Go ecosystem.
package cplx
