// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlnum/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense from rows×cols row-major data, failing the test
// on construction errors.
func mustDense(t *testing.T, rows, cols int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseData(rows, cols, data)
	require.NoError(t, err)

	return m
}

// TestAddSub_RoundTrip verifies (A+B)-B == A elementwise.
func TestAddSub_RoundTrip(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := mustDense(t, 2, 2, []float64{5, -6, 7, 0.5})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	back, err := matrix.Sub(sum, b)
	require.NoError(t, err)
	assert.Equal(t, a.Data(), back.Data())
}

// TestAdd_DimensionMismatch verifies the sentinel on shape conflict.
func TestAdd_DimensionMismatch(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	_, err := matrix.Add(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestAdd_NilOperand verifies ErrNilMatrix on nil inputs.
func TestAdd_NilOperand(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 2, 3, 4})

	_, err := matrix.Add(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Add(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_KnownProduct checks a hand-computed 2×3 · 3×2 product.
func TestMul_KnownProduct(t *testing.T) {
	a := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mustDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Data())
}

// TestMul_InnerMismatch verifies the sentinel when a.Cols != b.Rows.
func TestMul_InnerMismatch(t *testing.T) {
	a := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mustDense(t, 2, 2, []float64{1, 2, 3, 4})

	_, err := matrix.Mul(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul_Identity verifies A·I == A.
func TestMul_Identity(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	id, err := matrix.Identity(2)
	require.NoError(t, err)

	c, err := matrix.Mul(a, id)
	require.NoError(t, err)
	assert.Equal(t, a.Data(), c.Data())
}

// TestTranspose_Involution verifies (Aᵀ)ᵀ == A and the shape flip.
func TestTranspose_Involution(t *testing.T) {
	a := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, 3, at.Rows())
	assert.Equal(t, 2, at.Cols())

	back, err := matrix.Transpose(at)
	require.NoError(t, err)
	assert.Equal(t, a.Data(), back.Data())
}

// TestScale verifies elementwise scaling, including the zero matrix case.
func TestScale(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, -2, 3, -4})

	s, err := matrix.Scale(a, -0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.5, 1, -1.5, 2}, s.Data())

	z, err := matrix.Scale(a, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, z.Data())
}

// TestMatVec verifies y = A·x and the vector-length guard.
func TestMatVec(t *testing.T) {
	a := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(a, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestValidateSquare verifies the ErrNonSquare sentinel used by the
// determinant and eigendecomposition guards.
func TestValidateSquare(t *testing.T) {
	rect := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	assert.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)

	sq := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	assert.NoError(t, matrix.ValidateSquare(sq))
}

// TestValidateSameRows verifies the right-hand-side row guard shared by the
// lu and qr solvers.
func TestValidateSameRows(t *testing.T) {
	b := mustDense(t, 3, 1, []float64{1, 2, 3})
	assert.NoError(t, matrix.ValidateSameRows(b, 3))
	assert.ErrorIs(t, matrix.ValidateSameRows(b, 2), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateSameRows(nil, 2), matrix.ErrNilMatrix)
}
