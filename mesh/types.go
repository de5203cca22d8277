// Package mesh defines core types and sentinel errors for the mesh model.
package mesh

import (
	"errors"
	"math"
)

// Sentinel errors for mesh construction.
var (
	// ErrEmptyMesh indicates a mesh with no vertices or no cells.
	ErrEmptyMesh = errors.New("mesh: mesh must have at least one vertex and one cell")

	// ErrBadCell indicates a cell with an unsupported vertex count or a repeated index.
	ErrBadCell = errors.New("mesh: cell must reference 2 or 3 distinct vertices")

	// ErrVertexIndex indicates a cell referencing a vertex outside the mesh.
	ErrVertexIndex = errors.New("mesh: cell vertex index out of range")

	// ErrNotFinite indicates a NaN or ±Inf vertex coordinate.
	ErrNotFinite = errors.New("mesh: vertex coordinates must be finite")

	// ErrBadGrid indicates invalid NewGrid parameters.
	ErrBadGrid = errors.New("mesh: grid needs cols ≥ 2, rows ≥ 2 and positive spacing")
)

// Vec2 is a 2D vector or point with float64 components.
type Vec2 struct {
	X, Y float64
}

// Add returns v + u.
func (v Vec2) Add(u Vec2) Vec2 { return Vec2{v.X + u.X, v.Y + u.Y} }

// Sub returns v − u.
func (v Vec2) Sub(u Vec2) Vec2 { return Vec2{v.X - u.X, v.Y - u.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the scalar product v·u.
func (v Vec2) Dot(u Vec2) float64 { return v.X*u.X + v.Y*u.Y }

// Cross returns the 2D cross product (the z component of v×u).
func (v Vec2) Cross(u Vec2) float64 { return v.X*u.Y - v.Y*u.X }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// finite reports whether both components are finite numbers.
func (v Vec2) finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Cell references the vertices of one mesh element: two indices for an
// edge element, three for a triangle.
type Cell []int

// EdgeCount returns the number of edges the cell contributes: 1 for an
// edge element, 3 for a triangle (its ring).
func (c Cell) EdgeCount() int {
	if len(c) == 2 {
		return 1
	}

	return len(c)
}

// Edge returns the k-th edge of the cell as an ordered vertex index
// pair; triangles close the ring (2 → 0).
func (c Cell) Edge(k int) (int, int) {
	return c[k], c[(k+1)%len(c)]
}

// Mesh is an immutable 2D mesh: rest positions plus the cells that
// reference them. Construct with New or NewGrid; a nil or zero Mesh is
// not usable.
type Mesh struct {
	verts []Vec2
	cells []Cell
}
