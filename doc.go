// Package lvlnum is your dense numerical toolbox for linear algebra and
// polynomial root-finding — from flat-buffer matrices to full
// eigendecompositions.
//
// 🚀 What is lvlnum?
//
//	A compact numerical core that brings together:
//		• Matrix primitives: dense row-major matrices over one flat buffer
//		• LU: partial-pivoted factorization, linear solve, determinant
//		• QR: Householder factorization, least-squares solve, rank test
//		• Eigen: symmetric QL and nonsymmetric Schur paths, A·V ≈ V·D
//		• Complex: value-type arithmetic + closed-form root solvers
//		• Polynomials: Horner evaluation, division, gcd, root-finding
//
// ✨ Why choose lvlnum?
//
//   - Predictable numerics – the classic, well-tuned decomposition kernels
//   - Explicit errors – sentinel errors per package, matchable with errors.Is
//   - Snapshot semantics – decompositions never observe later mutation
//   - Exact when needed – a decimal LU mirror for rounding-free solves
//
// Under the hood, everything is organized per concern:
//
//	matrix/ — dense Matrix type, arithmetic, shape validators
//	lu/     — LU decomposition (float64 + exact decimal mirror)
//	qr/     — QR decomposition and least squares
//	eigen/  — eigenvalues and eigenvectors, both symmetry paths
//	cplx/   — complex values and linear/quadratic/cubic solvers
//	poly/   — univariate polynomials and root-finding
//
// Quick taste:
//
//	a, _ := matrix.NewDenseData(2, 2, []float64{2, 1, 1, 2})
//	dec, _ := eigen.New(a)
//	fmt.Println(dec.RealValues()) // [1 3]
//
// Dive into examples/ for circuit solving, least-squares fitting, modal
// analysis and stability screening, and cmd/lvlnum-spectrum for plotting
// spectra on the complex plane.
//
//	go get github.com/katalvlaran/lvlnum
package lvlnum
