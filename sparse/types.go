// Package sparse defines the CSR matrix type, its COO input form, and
// sentinel errors shared across the package.
package sparse

import "errors"

// Sentinel errors for sparse matrix construction and use.
var (
	// ErrBadDimension indicates a negative matrix dimension.
	ErrBadDimension = errors.New("sparse: dimension must be non-negative")

	// ErrIndexOutOfRange indicates a COO triple outside [0,n) in row or column.
	ErrIndexOutOfRange = errors.New("sparse: entry index out of range")

	// ErrNotFinite indicates a NaN or ±Inf coefficient in a COO triple.
	ErrNotFinite = errors.New("sparse: entry value must be finite")

	// ErrDimensionMismatch indicates vector lengths incompatible with the matrix.
	ErrDimensionMismatch = errors.New("sparse: vector length does not match dimension")
)

// Entry is one COO (coordinate-format) triple fed to New.
// Entries sharing the same (Row, Col) are summed during construction.
type Entry struct {
	Row, Col int
	Val      float64
}

// Matrix is a square n×n matrix in compressed sparse row form.
// The column structure is fixed at construction; only stored coefficients
// may change afterwards, and only through SetDiagonal.
//
// Invariants (established by New, relied upon by every method):
//   - len(rowPtr) == n+1, rowPtr[0] == 0, rowPtr[n] == len(val),
//     rowPtr is monotonically non-decreasing.
//   - Within each row, column indices are strictly increasing; no
//     duplicate (row, col) pair is stored.
type Matrix struct {
	n      int
	rowPtr []int
	colInd []int
	val    []float64
}
