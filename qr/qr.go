package qr

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlnum/matrix"
)

// ErrRankDeficient is returned by Solve when the factored matrix is not of
// full column rank — some diagonal entry of R is exactly zero. Probe with
// IsFullRank first to avoid the error path.
var ErrRankDeficient = errors.New("qr: rank deficient matrix")

// qrErrorf wraps err with an operation tag; the underlying sentinel stays
// matchable via errors.Is.
func qrErrorf(op string, err error) error {
	return fmt.Errorf("qr.%s: %w", op, err)
}

// Decomposition holds the packed Householder factorization of an m×n matrix.
// The upper triangle of qr stores R without its diagonal; the lower trapezoid
// stores the reflector vectors; rdiag carries R's diagonal with the
// anti-cancellation sign already applied.
type Decomposition struct {
	qr    []float64 // packed reflectors + R, row-major m×n
	m, n  int
	rdiag []float64
}

// New computes the QR decomposition of a by column-wise Householder
// reflections: each step builds a reflector from the remaining column,
// normalized by the column norm with sign chosen against cancellation, and
// applies it to every following column.
//
// Errors: matrix.ErrNilMatrix for nil input. Rank deficiency is not an
// error here; only Solve refuses it.
// Complexity: O(m·n²) time, O(m·n) space.
func New(a *matrix.Dense) (*Decomposition, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, qrErrorf("New", err)
	}

	m, n := a.Rows(), a.Cols()
	d := &Decomposition{
		qr:    a.ArrayCopy(), // snapshot: decomposition never observes later mutation
		m:     m,
		n:     n,
		rdiag: make([]float64, n),
	}

	var i, j, k int
	var nrm, s float64
	for k = 0; k < n; k++ {
		// 2-norm of the k-th column below the diagonal, via Hypot to dodge
		// under/overflow in the squares.
		nrm = 0
		for i = k; i < m; i++ {
			nrm = math.Hypot(nrm, d.qr[i*n+k])
		}

		if nrm != 0 {
			// Form the reflector v = x/‖x‖ + e_k, with the sign of ‖x‖
			// matching x_k so v never cancels.
			if d.qr[k*n+k] < 0 {
				nrm = -nrm
			}
			for i = k; i < m; i++ {
				d.qr[i*n+k] /= nrm
			}
			d.qr[k*n+k] += 1

			// Apply the reflector to the remaining columns.
			for j = k + 1; j < n; j++ {
				s = 0
				for i = k; i < m; i++ {
					s += d.qr[i*n+k] * d.qr[i*n+j]
				}
				s = -s / d.qr[k*n+k]
				for i = k; i < m; i++ {
					d.qr[i*n+j] += s * d.qr[i*n+k]
				}
			}
		}
		d.rdiag[k] = -nrm
	}

	return d, nil
}

// IsFullRank reports whether every diagonal entry of R is nonzero.
// False iff Solve would return ErrRankDeficient. O(n).
func (d *Decomposition) IsFullRank() bool {
	for j := 0; j < d.n; j++ {
		if d.rdiag[j] == 0 {
			return false
		}
	}

	return true
}

// H returns the m×n lower trapezoid holding the Householder reflector
// vectors, as a fresh matrix.
func (d *Decomposition) H() *matrix.Dense {
	out, _ := matrix.NewDense(d.m, d.n)
	buf := out.Data()
	for i := 0; i < d.m; i++ {
		for j := 0; j <= i && j < d.n; j++ {
			buf[i*d.n+j] = d.qr[i*d.n+j]
		}
	}

	return out
}

// R returns the n×n upper triangular factor as a fresh matrix.
func (d *Decomposition) R() *matrix.Dense {
	out, _ := matrix.NewDense(d.n, d.n)
	buf := out.Data()
	for i := 0; i < d.n; i++ {
		buf[i*d.n+i] = d.rdiag[i]
		for j := i + 1; j < d.n; j++ {
			buf[i*d.n+j] = d.qr[i*d.n+j]
		}
	}

	return out
}

// Q reconstructs the explicit m×n orthogonal factor by accumulating the
// packed reflectors back to front.
// Complexity: O(m·n²).
func (d *Decomposition) Q() *matrix.Dense {
	out, _ := matrix.NewDense(d.m, d.n)
	q := out.Data()

	var i, j, k int
	var s float64
	for k = d.n - 1; k >= 0; k-- {
		for i = 0; i < d.m; i++ {
			q[i*d.n+k] = 0
		}
		q[k*d.n+k] = 1
		for j = k; j < d.n; j++ {
			if d.qr[k*d.n+k] != 0 {
				s = 0
				for i = k; i < d.m; i++ {
					s += d.qr[i*d.n+k] * q[i*d.n+j]
				}
				s = -s / d.qr[k*d.n+k]
				for i = k; i < d.m; i++ {
					q[i*d.n+j] += s * d.qr[i*d.n+k]
				}
			}
		}
	}

	return out
}

// Solve returns the least-squares solution X minimizing ‖A·X − B‖: the
// packed reflectors apply Qᵀ to a copy of B in place, then back substitution
// against R yields the first n rows.
//
// Errors: matrix.ErrDimensionMismatch when B.Rows() != A.Rows(),
// ErrRankDeficient when R has a zero diagonal entry.
// Complexity: O(m·n·nx) for nx right-hand-side columns.
func (d *Decomposition) Solve(b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateSameRows(b, d.m); err != nil {
		return nil, qrErrorf("Solve", err)
	}
	if !d.IsFullRank() {
		return nil, qrErrorf("Solve", ErrRankDeficient)
	}

	nx := b.Cols()
	y := b.ArrayCopy() // working copy, m×nx

	var i, j, k int
	var s float64
	// Y = Qᵀ·B, one reflector at a time.
	for k = 0; k < d.n; k++ {
		for j = 0; j < nx; j++ {
			s = 0
			for i = k; i < d.m; i++ {
				s += d.qr[i*d.n+k] * y[i*nx+j]
			}
			s = -s / d.qr[k*d.n+k]
			for i = k; i < d.m; i++ {
				y[i*nx+j] += s * d.qr[i*d.n+k]
			}
		}
	}
	// Back substitution: R·X = Y.
	for k = d.n - 1; k >= 0; k-- {
		for j = 0; j < nx; j++ {
			y[k*nx+j] /= d.rdiag[k]
		}
		for i = 0; i < k; i++ {
			for j = 0; j < nx; j++ {
				y[i*nx+j] -= y[k*nx+j] * d.qr[i*d.n+k]
			}
		}
	}

	// The solution is the first n rows of the transformed B.
	x, _ := matrix.NewDense(d.n, nx)
	copy(x.Data(), y[:d.n*nx])

	return x, nil
}
