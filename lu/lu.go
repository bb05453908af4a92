package lu

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlnum/matrix"
)

// ErrSingularMatrix is returned by Solve when the factored matrix has an
// exactly zero pivot on the diagonal of U. Probe with IsNonsingular first
// to avoid the error path.
var ErrSingularMatrix = errors.New("lu: singular matrix")

// luErrorf wraps err with an operation tag; the underlying sentinel stays
// matchable via errors.Is.
func luErrorf(op string, err error) error {
	return fmt.Errorf("lu.%s: %w", op, err)
}

// Decomposition holds the packed LU factors of an m×n matrix.
// The strictly lower triangle of lu stores L (unit diagonal implied), the
// upper triangle including the diagonal stores U. piv records the row
// permutation and sign its parity (+1/-1), used for the determinant.
//
// All buffers are owned by the Decomposition; nothing references the source
// matrix after New returns.
type Decomposition struct {
	lu   []float64 // packed factors, row-major m×n
	m, n int
	piv  []int
	sign int
}

// New computes the LU decomposition of a using Crout-style column-by-column
// elimination with partial pivoting: each column is reduced by dot products
// against the already-computed factors, the largest remaining entry is
// swapped onto the diagonal, and the subdiagonal is scaled by the pivot.
//
// Errors: matrix.ErrNilMatrix for nil input, matrix.ErrBadShape for a wide
// input (m < n) — the factorization needs m ≥ n so U's diagonal exists.
// Singular input is not an error here — the factors are still well defined;
// only Solve refuses them.
// Complexity: O(m·n²) time, O(m·n) space.
func New(a *matrix.Dense) (*Decomposition, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, luErrorf("New", err)
	}

	m, n := a.Rows(), a.Cols()
	if m < n {
		return nil, luErrorf("New", matrix.ErrBadShape)
	}
	d := &Decomposition{
		lu:   a.ArrayCopy(), // snapshot: decomposition never observes later mutation
		m:    m,
		n:    n,
		piv:  make([]int, m),
		sign: 1,
	}
	for i := range d.piv {
		d.piv[i] = i
	}

	colj := make([]float64, m) // working copy of column j
	var i, j, k, kmax, p int
	var s float64
	for j = 0; j < n; j++ {
		for i = 0; i < m; i++ {
			colj[i] = d.lu[i*n+j]
		}

		// Apply previous transformations: colj[i] -= Σ_{k<min(i,j)} L[i,k]·colj[k].
		for i = 0; i < m; i++ {
			kmax = i
			if j < kmax {
				kmax = j
			}
			s = 0
			for k = 0; k < kmax; k++ {
				s += d.lu[i*n+k] * colj[k]
			}
			colj[i] -= s
			d.lu[i*n+j] = colj[i]
		}

		// Find pivot: largest magnitude at or below the diagonal.
		p = j
		for i = j + 1; i < m; i++ {
			if math.Abs(colj[i]) > math.Abs(colj[p]) {
				p = i
			}
		}
		if p != j {
			for k = 0; k < n; k++ {
				d.lu[p*n+k], d.lu[j*n+k] = d.lu[j*n+k], d.lu[p*n+k]
			}
			d.piv[p], d.piv[j] = d.piv[j], d.piv[p]
			d.sign = -d.sign
		}

		// Scale the subdiagonal by the pivot.
		if j < m && d.lu[j*n+j] != 0 {
			for i = j + 1; i < m; i++ {
				d.lu[i*n+j] /= d.lu[j*n+j]
			}
		}
	}

	return d, nil
}

// IsNonsingular reports whether every diagonal pivot of U is nonzero.
// False iff Solve would return ErrSingularMatrix. O(n).
func (d *Decomposition) IsNonsingular() bool {
	for j := 0; j < d.n; j++ {
		if d.lu[j*d.n+j] == 0 {
			return false
		}
	}

	return true
}

// L returns the m×n unit lower triangular factor as a fresh matrix.
func (d *Decomposition) L() *matrix.Dense {
	out, _ := matrix.NewDense(d.m, d.n)
	buf := out.Data()
	for i := 0; i < d.m; i++ {
		for j := 0; j < d.n; j++ {
			switch {
			case i > j:
				buf[i*d.n+j] = d.lu[i*d.n+j]
			case i == j:
				buf[i*d.n+j] = 1
			}
		}
	}

	return out
}

// U returns the n×n upper triangular factor as a fresh matrix.
func (d *Decomposition) U() *matrix.Dense {
	out, _ := matrix.NewDense(d.n, d.n)
	buf := out.Data()
	for i := 0; i < d.n; i++ {
		for j := i; j < d.n; j++ {
			buf[i*d.n+j] = d.lu[i*d.n+j]
		}
	}

	return out
}

// Pivot returns a copy of the row permutation applied during factorization.
func (d *Decomposition) Pivot() []int {
	out := make([]int, len(d.piv))
	copy(out, d.piv)

	return out
}

// Det returns the determinant of the factored matrix: the pivot-permutation
// sign times the product of U's diagonal.
// Errors: matrix.ErrNonSquare when the input was not square. O(n).
func (d *Decomposition) Det() (float64, error) {
	if d.m != d.n {
		return 0, luErrorf("Det", matrix.ErrNonSquare)
	}

	det := float64(d.sign)
	for j := 0; j < d.n; j++ {
		det *= d.lu[j*d.n+j]
	}

	return det, nil
}

// Solve returns X such that A·X = B, using the permuted right-hand side
// followed by forward substitution against L and back substitution
// against U.
//
// Errors: matrix.ErrDimensionMismatch when B.Rows() != A.Rows(),
// ErrSingularMatrix when a diagonal pivot of U is exactly zero.
// Complexity: O(n²·nx) for nx right-hand-side columns.
func (d *Decomposition) Solve(b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateSameRows(b, d.m); err != nil {
		return nil, luErrorf("Solve", err)
	}
	if !d.IsNonsingular() {
		return nil, luErrorf("Solve", ErrSingularMatrix)
	}

	// Copy the pivoted right-hand side: X = B[piv, :].
	nx := b.Cols()
	x, _ := matrix.NewDense(d.n, nx)
	xd := x.Data()
	bd := b.Data()
	for i := 0; i < d.n; i++ {
		copy(xd[i*nx:(i+1)*nx], bd[d.piv[i]*nx:d.piv[i]*nx+nx])
	}

	var i, j, k int
	// Forward: solve L·Y = B[piv].
	for k = 0; k < d.n; k++ {
		for i = k + 1; i < d.n; i++ {
			for j = 0; j < nx; j++ {
				xd[i*nx+j] -= xd[k*nx+j] * d.lu[i*d.n+k]
			}
		}
	}
	// Backward: solve U·X = Y.
	for k = d.n - 1; k >= 0; k-- {
		for j = 0; j < nx; j++ {
			xd[k*nx+j] /= d.lu[k*d.n+k]
		}
		for i = 0; i < k; i++ {
			for j = 0; j < nx; j++ {
				xd[i*nx+j] -= xd[k*nx+j] * d.lu[i*d.n+k]
			}
		}
	}

	return x, nil
}
