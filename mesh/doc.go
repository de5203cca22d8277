// Package mesh provides the immutable 2D mesh model consumed by the warp
// solver: rest vertex positions plus cells referencing them.
//
// What:
//
//   - Vec2 is a plain 2D float64 vector with the handful of operations
//     the solver needs (add, subtract, scale, dot, cross, length).
//   - Cell references either 2 (edge) or 3 (triangle) vertex indices;
//     its edges are iterated index-pair by index-pair, ring-closed for
//     triangles.
//   - Mesh deep-copies its inputs at construction and never changes
//     afterwards; deformation state lives in the solver, not here.
//   - NewGrid builds a regular grid mesh with quads split into triangle
//     pairs — the standard fixture for tests, examples, and benchmarks.
//
// Why:
//
//   - A warp session pins one topology for its whole lifetime; freezing
//     the mesh at construction removes a whole class of mid-solve
//     invalidation bugs.
//   - Validation up front (index ranges, cell arity, finite coordinates)
//     keeps the numeric code free of per-iteration checks.
//
// Errors:
//
//   - ErrEmptyMesh:   no vertices or no cells.
//   - ErrBadCell:     a cell with wrong arity or a repeated vertex index.
//   - ErrVertexIndex: a cell referencing a vertex outside [0, NumVertices).
//   - ErrNotFinite:   a vertex coordinate that is NaN or ±Inf.
//   - ErrBadGrid:     NewGrid called with cols<2, rows<2, or spacing≤0.
package mesh
