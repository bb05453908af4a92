package cplx_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/lvlnum/cplx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// sortRoots orders roots by real part, then imaginary part, so tests can
// compare against expected sets without caring about solver ordering.
func sortRoots(rs []cplx.Complex) []cplx.Complex {
	out := make([]cplx.Complex, len(rs))
	copy(out, rs)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Re != out[j].Re {
			return out[i].Re < out[j].Re
		}

		return out[i].Im < out[j].Im
	})

	return out
}

// TestComplex_Arithmetic covers the derived-copy operation family against
// hand-computed values.
func TestComplex_Arithmetic(t *testing.T) {
	z := cplx.New(3, 4)
	w := cplx.New(1, -2)

	assert.Equal(t, cplx.New(4, 2), z.Add(w))
	assert.Equal(t, cplx.New(2, 6), z.Sub(w))
	assert.Equal(t, cplx.New(11, -2), z.Mul(w)) // (3+4i)(1-2i) = 11-2i
	assert.Equal(t, cplx.New(3, -4), z.Conj())
	assert.Equal(t, cplx.New(-3, -4), z.Neg())
	assert.Equal(t, cplx.New(1.5, 2), z.Scale(0.5))
	assert.Equal(t, 5.0, z.Abs())
}

// TestComplex_Div verifies division against multiplication round-trip and
// the scaled-branch behavior for a dominant imaginary denominator.
func TestComplex_Div(t *testing.T) {
	z := cplx.New(3, 4)
	w := cplx.New(1, -2)

	q := z.Div(w)
	back := q.Mul(w)
	assert.True(t, back.Equal(z, tol), "z/w*w should round-trip to z, got %v", back)

	// Dominant imaginary part exercises the second Smith branch.
	q2 := cplx.One.Div(cplx.New(0, 2))
	assert.True(t, q2.Equal(cplx.New(0, -0.5), tol))
}

// TestComplex_SqrtExpLog verifies the polar-form functions on known points.
func TestComplex_SqrtExpLog(t *testing.T) {
	// √(-1) = i
	assert.True(t, cplx.New(-1, 0).Sqrt().Equal(cplx.I, tol))
	// √(2i) = 1+i
	assert.True(t, cplx.New(0, 2).Sqrt().Equal(cplx.New(1, 1), tol))
	// e^{iπ} = -1
	assert.True(t, cplx.New(0, math.Pi).Exp().Equal(cplx.New(-1, 0), tol))
	// log(i) = iπ/2
	assert.True(t, cplx.I.Log().Equal(cplx.New(0, math.Pi/2), tol))
	// (1+i)^2 = 2i
	assert.True(t, cplx.New(1, 1).Pow(2).Equal(cplx.New(0, 2), 1e-9))
	// Zero stays put under Sqrt.
	assert.True(t, cplx.Zero.Sqrt().IsZero())
}

// TestSolveLinear verifies the closed-form linear root and the degenerate case.
func TestSolveLinear(t *testing.T) {
	roots := cplx.SolveLinear(2, -6)
	require.Len(t, roots, 1)
	assert.True(t, roots[0].Equal(cplx.FromReal(3), tol))

	assert.Empty(t, cplx.SolveLinear(0, 5), "constant equation has no finite roots")
}

// TestSolveQuadratic_RealPair checks 2x²+6x+4 = 0 → {-1, -2}.
func TestSolveQuadratic_RealPair(t *testing.T) {
	roots := sortRoots(cplx.SolveQuadratic(2, 6, 4))
	require.Len(t, roots, 2)
	assert.True(t, roots[0].Equal(cplx.FromReal(-2), tol))
	assert.True(t, roots[1].Equal(cplx.FromReal(-1), tol))
}

// TestSolveQuadratic_ConjugatePair checks x²+1 = 0 → {i, -i} with +i first.
func TestSolveQuadratic_ConjugatePair(t *testing.T) {
	roots := cplx.SolveQuadratic(1, 0, 1)
	require.Len(t, roots, 2)
	assert.True(t, roots[0].Equal(cplx.I, tol), "expected +i first, got %v", roots[0])
	assert.True(t, roots[1].Equal(cplx.I.Neg(), tol))
}

// TestSolveQuadratic_ConjugatePairNegativeLead checks -x²+2x-2 = 0
// (x²-2x+2 = 0 → {1±i}): the +i member must lead even when the leading
// coefficient is negative.
func TestSolveQuadratic_ConjugatePairNegativeLead(t *testing.T) {
	roots := cplx.SolveQuadratic(-1, 2, -2)
	require.Len(t, roots, 2)
	assert.True(t, roots[0].Equal(cplx.New(1, 1), tol), "expected 1+i first, got %v", roots[0])
	assert.True(t, roots[1].Equal(cplx.New(1, -1), tol))
}

// TestSolveQuadratic_RepeatedRoot checks x²-2x+1 = 0 → {1, 1} with full
// multiplicity.
func TestSolveQuadratic_RepeatedRoot(t *testing.T) {
	roots := cplx.SolveQuadratic(1, -2, 1)
	require.Len(t, roots, 2)
	assert.True(t, roots[0].Equal(cplx.One, tol))
	assert.True(t, roots[1].Equal(cplx.One, tol))
}

// TestSolveCubic_TripleRoot checks (x-1)³ = x³-3x²+3x-1 → {1, 1, 1}.
func TestSolveCubic_TripleRoot(t *testing.T) {
	roots := cplx.SolveCubic(1, -3, 3, -1)
	require.Len(t, roots, 3)
	for _, r := range roots {
		assert.True(t, r.Equal(cplx.One, tol), "triple root must be 1, got %v", r)
	}
}

// TestSolveCubic_DoubleRoot checks (x-1)²(x+2) = x³-3x+2 → {-2, 1, 1}.
func TestSolveCubic_DoubleRoot(t *testing.T) {
	roots := sortRoots(cplx.SolveCubic(1, 0, -3, 2))
	require.Len(t, roots, 3)
	assert.True(t, roots[0].Equal(cplx.FromReal(-2), tol))
	assert.True(t, roots[1].Equal(cplx.One, tol))
	assert.True(t, roots[2].Equal(cplx.One, tol))
}

// TestSolveCubic_ThreeRealRoots checks (x-1)(x-2)(x-3) via the
// trigonometric branch.
func TestSolveCubic_ThreeRealRoots(t *testing.T) {
	roots := sortRoots(cplx.SolveCubic(1, -6, 11, -6))
	require.Len(t, roots, 3)
	assert.True(t, roots[0].Equal(cplx.FromReal(1), 1e-9))
	assert.True(t, roots[1].Equal(cplx.FromReal(2), 1e-9))
	assert.True(t, roots[2].Equal(cplx.FromReal(3), 1e-9))
}

// TestSolveCubic_ConjugatePair checks x³-1 = 0 → {1, -½±i√3/2} via Cardano.
func TestSolveCubic_ConjugatePair(t *testing.T) {
	roots := sortRoots(cplx.SolveCubic(1, 0, 0, -1))
	require.Len(t, roots, 3)
	assert.True(t, roots[0].Equal(cplx.New(-0.5, -math.Sqrt(3)/2), 1e-9))
	assert.True(t, roots[1].Equal(cplx.New(-0.5, math.Sqrt(3)/2), 1e-9))
	assert.True(t, roots[2].Equal(cplx.One, 1e-9))
}

// TestSolveCubic_DegenerateFallthrough checks that a == 0 degrades to the
// quadratic solver.
func TestSolveCubic_DegenerateFallthrough(t *testing.T) {
	roots := sortRoots(cplx.SolveCubic(0, 2, 6, 4))
	require.Len(t, roots, 2)
	assert.True(t, roots[0].Equal(cplx.FromReal(-2), tol))
	assert.True(t, roots[1].Equal(cplx.FromReal(-1), tol))
}
