package lu_test

import (
	"testing"

	"github.com/katalvlaran/lvlnum/lu"
	"github.com/katalvlaran/lvlnum/matrix"
)

// benchDense builds a diagonally dominant n×n matrix so the factorization
// stays nonsingular regardless of size.
func benchDense(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				data[i*n+j] = float64(n)
			} else {
				data[i*n+j] = float64((i+j)%5) - 2
			}
		}
	}
	m, err := matrix.NewDenseData(n, n, data)
	if err != nil {
		b.Fatalf("NewDenseData failed: %v", err)
	}

	return m
}

// BenchmarkNew_64 benchmarks the Crout factorization on 64×64 inputs.
func BenchmarkNew_64(b *testing.B) {
	a := benchDense(b, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lu.New(a); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkSolve_64 benchmarks the substitution passes against a fixed
// factorization.
func BenchmarkSolve_64(b *testing.B) {
	a := benchDense(b, 64)
	rhs, err := matrix.NewDense(64, 1)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}
	for i := 0; i < 64; i++ {
		if err = rhs.Set(i, 0, float64(i)); err != nil {
			b.Fatalf("Set failed: %v", err)
		}
	}
	dec, err := lu.New(a)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dec.Solve(rhs); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}
