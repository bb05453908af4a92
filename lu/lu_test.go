package lu_test

import (
	"testing"

	"github.com/katalvlaran/lvlnum/lu"
	"github.com/katalvlaran/lvlnum/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-10

// mustDense builds a Dense from row-major data, failing the test on error.
func mustDense(t *testing.T, rows, cols int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseData(rows, cols, data)
	require.NoError(t, err)

	return m
}

// assertApprox compares two matrices elementwise within tol.
func assertApprox(t *testing.T, want, got *matrix.Dense, msg string) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), msg)
	require.Equal(t, want.Cols(), got.Cols(), msg)
	wd, gd := want.Data(), got.Data()
	for i := range wd {
		assert.InDelta(t, wd[i], gd[i], tol, "%s: flat index %d", msg, i)
	}
}

// TestNew_ReconstructsPivotedInput verifies L·U == A[piv] — the defining
// identity of the factorization.
func TestNew_ReconstructsPivotedInput(t *testing.T) {
	a := mustDense(t, 3, 3, []float64{
		2, -1, 3,
		4, 2, 1,
		-6, 1, 2,
	})

	dec, err := lu.New(a)
	require.NoError(t, err)

	prod, err := matrix.Mul(dec.L(), dec.U())
	require.NoError(t, err)

	// Rebuild A[piv, :] and compare.
	piv := dec.Pivot()
	permuted, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := a.At(piv[i], j)
			require.NoError(t, err)
			require.NoError(t, permuted.Set(i, j, v))
		}
	}
	assertApprox(t, permuted, prod, "L·U must equal the pivoted input")
}

// TestSolve_RoundTrip verifies A · Solve(B) ≈ B for a nonsingular system
// with multiple right-hand sides.
func TestSolve_RoundTrip(t *testing.T) {
	a := mustDense(t, 3, 3, []float64{
		2, 1, 1,
		4, -6, 0,
		-2, 7, 2,
	})
	b := mustDense(t, 3, 2, []float64{
		5, 1,
		-2, 0,
		9, -3,
	})

	dec, err := lu.New(a)
	require.NoError(t, err)
	require.True(t, dec.IsNonsingular())

	x, err := dec.Solve(b)
	require.NoError(t, err)

	back, err := matrix.Mul(a, x)
	require.NoError(t, err)
	assertApprox(t, b, back, "A·X must round-trip to B")
}

// TestSolve_Singular verifies the ErrSingularMatrix sentinel and that it
// agrees with IsNonsingular for every right-hand side.
func TestSolve_Singular(t *testing.T) {
	// Second row is a multiple of the first.
	a := mustDense(t, 2, 2, []float64{1, 2, 2, 4})
	dec, err := lu.New(a)
	require.NoError(t, err, "construction must not fail on singular input")
	assert.False(t, dec.IsNonsingular())

	for _, rhs := range [][]float64{{1, 1}, {0, 0}, {-3, 7}} {
		b := mustDense(t, 2, 1, rhs)
		_, err = dec.Solve(b)
		assert.ErrorIs(t, err, lu.ErrSingularMatrix, "rhs %v", rhs)
	}
}

// TestSolve_DimensionMismatch verifies the row-count guard on B.
func TestSolve_DimensionMismatch(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := mustDense(t, 3, 1, []float64{1, 2, 3})

	dec, err := lu.New(a)
	require.NoError(t, err)
	_, err = dec.Solve(b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDet verifies determinant sign handling through pivoting and the
// non-square guard.
func TestDet(t *testing.T) {
	// Pivoting swaps the rows once; det is -6.
	a := mustDense(t, 2, 2, []float64{4, 3, 6, 3})
	dec, err := lu.New(a)
	require.NoError(t, err)

	det, err := dec.Det()
	require.NoError(t, err)
	assert.InDelta(t, -6.0, det, tol)

	rect := mustDense(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})
	decRect, err := lu.New(rect)
	require.NoError(t, err)
	_, err = decRect.Det()
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestNew_SnapshotsInput verifies the decomposition copies its input: a
// later mutation of the source must not change Solve's result.
func TestNew_SnapshotsInput(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{2, 0, 0, 2})
	dec, err := lu.New(a)
	require.NoError(t, err)

	require.NoError(t, a.Set(0, 0, 1e9)) // mutate after construction

	b := mustDense(t, 2, 1, []float64{4, 6})
	x, err := dec.Solve(b)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, x.Data()[0], tol)
	assert.InDelta(t, 3.0, x.Data()[1], tol)
}

// TestBoundary_OneByOne verifies the trivial 1×1 decomposition equals the
// scalar itself.
func TestBoundary_OneByOne(t *testing.T) {
	a := mustDense(t, 1, 1, []float64{7})
	dec, err := lu.New(a)
	require.NoError(t, err)

	assert.Equal(t, []float64{1}, dec.L().Data())
	assert.Equal(t, []float64{7}, dec.U().Data())
	det, err := dec.Det()
	require.NoError(t, err)
	assert.Equal(t, 7.0, det)
}

// TestBoundary_AllZero verifies the all-zero matrix is singular.
func TestBoundary_AllZero(t *testing.T) {
	a := mustDense(t, 3, 3, make([]float64, 9))
	dec, err := lu.New(a)
	require.NoError(t, err)
	assert.False(t, dec.IsNonsingular())

	det, err := dec.Det()
	require.NoError(t, err)
	assert.Zero(t, det)
}

// TestNew_NilInput verifies the nil guard.
func TestNew_NilInput(t *testing.T) {
	_, err := lu.New(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestNew_WideInput verifies a wide matrix is rejected at construction:
// with m < n there is no full U diagonal for IsNonsingular and U to read,
// so the shape fails fast instead of faulting later.
func TestNew_WideInput(t *testing.T) {
	wide := mustDense(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	_, err := lu.New(wide)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNew_TallInput verifies the tall case still factors and probes cleanly.
func TestNew_TallInput(t *testing.T) {
	tall := mustDense(t, 3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})
	dec, err := lu.New(tall)
	require.NoError(t, err)
	assert.True(t, dec.IsNonsingular())
	assert.Equal(t, 2, dec.U().Rows())
}
