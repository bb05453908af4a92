package poly

import (
	"github.com/katalvlaran/lvlnum/cplx"
	"github.com/katalvlaran/lvlnum/eigen"
	"github.com/katalvlaran/lvlnum/matrix"
)

// Roots returns all complex roots of p, with multiplicity, degree entries
// in total. Dispatch is by degree:
//
//	≤ 0:  no finite roots, empty result
//	1:    closed-form linear root
//	2, 3: closed-form quadratic/cubic via cplx
//	≥ 4:  eigenvalues of the companion matrix
//
// The companion path inherits the eigendecomposition's robustness for
// complex conjugate pairs; on a pathological spectrum the values are the
// best approximation the iteration budget allows.
func (p Polynomial) Roots() []cplx.Complex {
	switch p.Degree() {
	case -1, 0:
		return nil
	case 1:
		return cplx.SolveLinear(p.coeffs[1], p.coeffs[0])
	case 2:
		return cplx.SolveQuadratic(p.coeffs[2], p.coeffs[1], p.coeffs[0])
	case 3:
		return cplx.SolveCubic(p.coeffs[3], p.coeffs[2], p.coeffs[1], p.coeffs[0])
	default:
		return p.companionRoots()
	}
}

// companionRoots reduces root-finding to an eigenvalue problem: the
// companion matrix of the monic form of p has p as its characteristic
// polynomial, so its spectrum is exactly the root set.
func (p Polynomial) companionRoots() []cplx.Complex {
	n := p.Degree()
	lead := p.coeffs[n]

	c, _ := matrix.NewDense(n, n) // shape is valid, error unreachable
	buf := c.Data()
	for i := 0; i < n; i++ {
		buf[i*n+n-1] = -p.coeffs[i] / lead
		if i > 0 {
			buf[i*n+i-1] = 1
		}
	}

	dec, _ := eigen.New(c) // square by construction, error unreachable

	return dec.Values()
}
