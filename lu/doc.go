// Package lu implements the partial-pivoted LU decomposition of a dense
// matrix: for an m×n matrix A with m ≥ n, it produces a unit lower
// triangular L, an upper triangular U and a row permutation piv such that
// A[piv] = L·U.
//
// The factorization runs once, at construction, on a snapshot of the input;
// later mutation of the source matrix does not affect the decomposition.
// Wide input (m < n) is rejected with matrix.ErrBadShape at construction.
// Construction itself never fails on singular input — singularity surfaces
// when it matters, as ErrSingularMatrix from Solve, and can be probed
// beforehand via IsNonsingular.
//
// Uses:
//
//	dec, _ := lu.New(a)
//	if dec.IsNonsingular() {
//	    x, err := dec.Solve(b) // A·x = b via forward + back substitution
//	    ...
//	}
//	det, err := dec.Det()      // square matrices only
//
// An exact decimal mirror of the same control flow lives in
// DecimalDecomposition, for callers whose result correctness must not depend
// on floating-point rounding (e.g. verifying a nearly singular system).
package lu
