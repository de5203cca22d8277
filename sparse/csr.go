package sparse

import (
	"math"
	"sort"
)

// New builds an n×n CSR matrix from an unordered collection of COO triples.
// Triples are ordered by (row, col) ascending with a stable sort, so ties
// keep their insertion order before being summed; the sum itself is
// order-independent. An empty entry set yields a valid matrix with zero
// stored coefficients.
//
// Returns ErrBadDimension when n < 0, ErrIndexOutOfRange when a triple
// references a coordinate outside [0,n), and ErrNotFinite when a triple
// carries NaN or ±Inf.
//
// Complexity: O(nnz log nnz) time, O(nnz) memory.
func New(n int, entries []Entry) (*Matrix, error) {
	if n < 0 {
		return nil, ErrBadDimension
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= n || e.Col < 0 || e.Col >= n {
			return nil, ErrIndexOutOfRange
		}
		if math.IsNaN(e.Val) || math.IsInf(e.Val, 0) {
			return nil, ErrNotFinite
		}
	}

	// Work on a copy: callers may reuse their COO buffer across assemblies.
	coo := make([]Entry, len(entries))
	copy(coo, entries)
	sort.SliceStable(coo, func(a, b int) bool {
		if coo[a].Row != coo[b].Row {
			return coo[a].Row < coo[b].Row
		}

		return coo[a].Col < coo[b].Col
	})

	m := &Matrix{
		n:      n,
		rowPtr: make([]int, n+1),
		colInd: make([]int, 0, len(coo)),
		val:    make([]float64, 0, len(coo)),
	}

	// Collapse duplicate coordinates while counting per-row occupancy.
	for i := 0; i < len(coo); {
		j := i + 1
		sum := coo[i].Val
		for j < len(coo) && coo[j].Row == coo[i].Row && coo[j].Col == coo[i].Col {
			sum += coo[j].Val
			j++
		}
		m.colInd = append(m.colInd, coo[i].Col)
		m.val = append(m.val, sum)
		m.rowPtr[coo[i].Row+1]++
		i = j
	}
	// Prefix-sum row counts into row pointers.
	for i := 0; i < n; i++ {
		m.rowPtr[i+1] += m.rowPtr[i]
	}

	return m, nil
}

// Dim returns the matrix dimension n.
func (m *Matrix) Dim() int { return m.n }

// NNZ returns the number of stored coefficients, read from the final
// row pointer.
func (m *Matrix) NNZ() int { return m.rowPtr[m.n] }

// MulVec computes dst = A·x, overwriting dst. Each output element is an
// independent dot product over one row's non-zero run, so rows never
// interact; dst and x must not alias.
//
// Returns ErrDimensionMismatch unless len(dst) == len(x) == Dim().
//
// Complexity: O(nnz).
func (m *Matrix) MulVec(dst, x []float64) error {
	if len(dst) != m.n || len(x) != m.n {
		return ErrDimensionMismatch
	}
	for i := 0; i < m.n; i++ {
		var sum float64
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			sum += m.val[k] * x[m.colInd[k]]
		}
		dst[i] = sum
	}

	return nil
}

// Diagonal returns the stored coefficient at (i,i), or 0 when the
// structure holds no such slot. Indices outside [0,n) also report 0.
func (m *Matrix) Diagonal(i int) float64 {
	k, ok := m.find(i, i)
	if !ok {
		return 0
	}

	return m.val[k]
}

// SetDiagonal overwrites the (i,i) coefficient in place and reports
// whether a stored slot existed. When it does not, the matrix is left
// unchanged — the column structure is never extended after New, so
// callers needing guaranteed diagonal mutation must seed (i,i,0) triples
// at build time.
func (m *Matrix) SetDiagonal(i int, v float64) bool {
	k, ok := m.find(i, i)
	if !ok {
		return false
	}
	m.val[k] = v

	return true
}

// Row exposes one row's column indices and coefficients as read-only
// views into the matrix. Mutating the returned slices corrupts the
// matrix; they are valid until the matrix is released.
func (m *Matrix) Row(i int) (cols []int, vals []float64) {
	if i < 0 || i >= m.n {
		return nil, nil
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]

	return m.colInd[lo:hi], m.val[lo:hi]
}

// find locates the storage index of (r, c) via binary search over the
// row's sorted column run.
func (m *Matrix) find(r, c int) (int, bool) {
	if r < 0 || r >= m.n || c < 0 || c >= m.n {
		return 0, false
	}
	lo, hi := m.rowPtr[r], m.rowPtr[r+1]
	k := lo + sort.SearchInts(m.colInd[lo:hi], c)
	if k < hi && m.colInd[k] == c {
		return k, true
	}

	return 0, false
}
