package qr_test

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/matrix"
	"github.com/katalvlaran/lvlnum/qr"
)

// ExampleDecomposition_Solve solves a square full-rank system, the least
// squares problem with zero residual.
func ExampleDecomposition_Solve() {
	a, _ := matrix.NewDenseData(2, 2, []float64{
		3, 0,
		0, 3,
	})
	b, _ := matrix.NewDenseData(2, 1, []float64{6, 9})

	dec, _ := qr.New(a)
	x, err := dec.Solve(b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(x.Data())
	// Output:
	// [2 3]
}
