// Package sparse provides a compressed sparse row (CSR) matrix store for
// the square, symmetric systems assembled by the warp solver.
//
// What:
//
//   - Matrix is built once from an unordered collection of COO triples
//     (row, col, value); duplicate coordinates are summed, not overwritten.
//   - MulVec computes dense matrix-vector products row by row.
//   - Diagonal / SetDiagonal give O(log k) access to stored (i,i) slots,
//     the only in-place mutation the format allows.
//
// Why:
//
//   - ARAP global steps re-assemble only the right-hand side and the pin
//     diagonal each iteration; the column structure of the Laplacian is
//     fixed for a given mesh. CSR makes the hot multiply cache-friendly
//     while keeping diagonal injection cheap.
//   - Summation of duplicate triples lets every mesh cell contribute its
//     stencil independently during assembly.
//
// Complexity:
//
//   - New:         O(nnz log nnz) time (sort), O(nnz) memory.
//   - MulVec:      O(nnz) time.
//   - Diagonal / SetDiagonal: O(log k) with k = non-zeros in the row.
//
// Errors:
//
//   - ErrBadDimension:      n < 0 at construction.
//   - ErrIndexOutOfRange:   a triple references a row/col outside [0,n).
//   - ErrNotFinite:         a triple carries NaN or ±Inf.
//   - ErrDimensionMismatch: MulVec vector lengths differ from n.
//
// SetDiagonal on an absent slot is not an error: it returns false and
// leaves the matrix unchanged. Callers that rely on diagonal mutation must
// seed an explicit (i,i,0) triple per row at build time.
package sparse
