package lu

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvlnum/matrix"
)

// DecimalDecomposition mirrors Decomposition over shopspring decimals for
// callers whose correctness must not depend on floating-point rounding —
// typically verifying a nearly singular system where float64 pivots lose
// their sign. The control flow is identical to New, entry for entry; only
// the arithmetic type changes.
//
// Additions and multiplications are exact. Division is carried to
// decimal.DivisionPrecision digits, which the caller may raise before
// factoring when more digits are needed.
type DecimalDecomposition struct {
	lu   []decimal.Decimal
	m, n int
	piv  []int
	sign int
}

// NewDecimal computes the partial-pivoted LU decomposition of the m×n
// row-major decimal buffer data. The buffer is copied; the caller keeps
// ownership of its slice.
//
// Errors: matrix.ErrBadShape when dimensions are non-positive, when
// rows < cols, or when len(data) != m*n. Complexity matches New.
func NewDecimal(rows, cols int, data []decimal.Decimal) (*DecimalDecomposition, error) {
	if rows <= 0 || cols <= 0 || rows < cols || len(data) != rows*cols {
		return nil, luErrorf("NewDecimal", matrix.ErrBadShape)
	}

	d := &DecimalDecomposition{
		lu:   make([]decimal.Decimal, len(data)),
		m:    rows,
		n:    cols,
		piv:  make([]int, rows),
		sign: 1,
	}
	copy(d.lu, data)
	for i := range d.piv {
		d.piv[i] = i
	}

	colj := make([]decimal.Decimal, rows)
	var i, j, k, kmax, p int
	var s decimal.Decimal
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			colj[i] = d.lu[i*cols+j]
		}

		// Apply previous transformations, exactly as in the float64 path.
		for i = 0; i < rows; i++ {
			kmax = i
			if j < kmax {
				kmax = j
			}
			s = decimal.Zero
			for k = 0; k < kmax; k++ {
				s = s.Add(d.lu[i*cols+k].Mul(colj[k]))
			}
			colj[i] = colj[i].Sub(s)
			d.lu[i*cols+j] = colj[i]
		}

		// Partial pivot on exact magnitudes.
		p = j
		for i = j + 1; i < rows; i++ {
			if colj[i].Abs().Cmp(colj[p].Abs()) > 0 {
				p = i
			}
		}
		if p != j {
			for k = 0; k < cols; k++ {
				d.lu[p*cols+k], d.lu[j*cols+k] = d.lu[j*cols+k], d.lu[p*cols+k]
			}
			d.piv[p], d.piv[j] = d.piv[j], d.piv[p]
			d.sign = -d.sign
		}

		if j < rows && !d.lu[j*cols+j].IsZero() {
			for i = j + 1; i < rows; i++ {
				d.lu[i*cols+j] = d.lu[i*cols+j].Div(d.lu[j*cols+j])
			}
		}
	}

	return d, nil
}

// IsNonsingular reports whether every diagonal pivot of U is nonzero.
// Exact: no epsilon is involved. O(n).
func (d *DecimalDecomposition) IsNonsingular() bool {
	for j := 0; j < d.n; j++ {
		if d.lu[j*d.n+j].IsZero() {
			return false
		}
	}

	return true
}

// Det returns the determinant: the pivot sign times the product of U's
// diagonal. Errors: matrix.ErrNonSquare for rectangular input.
func (d *DecimalDecomposition) Det() (decimal.Decimal, error) {
	if d.m != d.n {
		return decimal.Zero, luErrorf("Det", matrix.ErrNonSquare)
	}

	det := decimal.NewFromInt(int64(d.sign))
	for j := 0; j < d.n; j++ {
		det = det.Mul(d.lu[j*d.n+j])
	}

	return det, nil
}

// Solve returns the n×nx row-major solution X of A·X = B for the m×nx
// row-major right-hand side b, by permuted forward and back substitution —
// the same two loops as Decomposition.Solve over decimals.
//
// Errors: matrix.ErrBadShape when len(b) is not a multiple of the row count,
// matrix.ErrDimensionMismatch on row mismatch, ErrSingularMatrix for a zero
// pivot.
func (d *DecimalDecomposition) Solve(b []decimal.Decimal, rows, nx int) ([]decimal.Decimal, error) {
	if rows <= 0 || nx <= 0 || len(b) != rows*nx {
		return nil, luErrorf("Solve", matrix.ErrBadShape)
	}
	if rows != d.m {
		return nil, luErrorf("Solve", matrix.ErrDimensionMismatch)
	}
	if !d.IsNonsingular() {
		return nil, luErrorf("Solve", ErrSingularMatrix)
	}

	x := make([]decimal.Decimal, d.n*nx)
	for i := 0; i < d.n; i++ {
		copy(x[i*nx:(i+1)*nx], b[d.piv[i]*nx:d.piv[i]*nx+nx])
	}

	var i, j, k int
	for k = 0; k < d.n; k++ {
		for i = k + 1; i < d.n; i++ {
			for j = 0; j < nx; j++ {
				x[i*nx+j] = x[i*nx+j].Sub(x[k*nx+j].Mul(d.lu[i*d.n+k]))
			}
		}
	}
	for k = d.n - 1; k >= 0; k-- {
		for j = 0; j < nx; j++ {
			x[k*nx+j] = x[k*nx+j].Div(d.lu[k*d.n+k])
		}
		for i = 0; i < k; i++ {
			for j = 0; j < nx; j++ {
				x[i*nx+j] = x[i*nx+j].Sub(x[k*nx+j].Mul(d.lu[i*d.n+k]))
			}
		}
	}

	return x, nil
}
