// Package eigen implements the eigendecomposition of a dense square matrix:
// eigenvalues as paired real/imaginary arrays and an eigenvector matrix V
// with A·V ≈ V·D, where D is diagonal with 2×2 blocks for complex pairs.
//
// Construction picks one of two paths, once, by testing symmetry:
//
//   - Symmetric: Householder tridiagonalization followed by implicit-shift
//     QL iteration. Eigenvalues come out real and sorted ascending, with V
//     orthogonal and eigenvector columns permuted to match.
//   - Nonsymmetric: Householder reduction to Hessenberg form followed by
//     double-shift QR iteration to real Schur form, then back substitution
//     for the eigenvectors. Complex conjugate pairs appear with the +i
//     member first and matching ±imag parts.
//
// The iteration runs on a snapshot of the input and never fails: on an
// exhausted iteration budget the best available approximation is kept and
// Converged reports false. Adjust the budget via WithMaxIterations.
//
// Uses:
//
//	dec, err := eigen.New(a)
//	re, im := dec.RealValues(), dec.ImagValues()
//	v, d := dec.V(), dec.D() // a·v ≈ v·d
package eigen
