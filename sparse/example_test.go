package sparse_test

import (
	"fmt"

	"github.com/bradbohme-sys/meshwarp/sparse"
)

// ExampleNew demonstrates building a small CSR matrix from COO triples.
// Duplicate coordinates are summed, and seeded zero diagonals keep the
// slots mutable for later SetDiagonal calls.
func ExampleNew() {
	m, err := sparse.New(3, []sparse.Entry{
		{Row: 0, Col: 0, Val: 0}, // seed the diagonal
		{Row: 1, Col: 1, Val: 0},
		{Row: 2, Col: 2, Val: 0},
		{Row: 0, Col: 1, Val: -1},
		{Row: 1, Col: 0, Val: -1},
		{Row: 0, Col: 0, Val: 2}, // summed into the seed
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	m.SetDiagonal(1, 2)

	y := make([]float64, 3)
	_ = m.MulVec(y, []float64{1, 2, 3})
	fmt.Printf("nnz=%d diag0=%g y=%v\n", m.NNZ(), m.Diagonal(0), y)
	// Output: nnz=5 diag0=2 y=[0 3 0]
}
