package mesh

// New constructs a Mesh from rest positions and cells, deep-copying both
// so later caller mutations cannot reach the mesh.
//
// Returns ErrEmptyMesh when verts or cells is empty, ErrNotFinite on
// NaN/±Inf coordinates, ErrBadCell on wrong cell arity or repeated
// indices, and ErrVertexIndex on out-of-range references.
//
// Complexity: O(V + C) time and memory.
func New(verts []Vec2, cells []Cell) (*Mesh, error) {
	if len(verts) == 0 || len(cells) == 0 {
		return nil, ErrEmptyMesh
	}
	for _, v := range verts {
		if !v.finite() {
			return nil, ErrNotFinite
		}
	}
	for _, c := range cells {
		if len(c) != 2 && len(c) != 3 {
			return nil, ErrBadCell
		}
		for i, vi := range c {
			if vi < 0 || vi >= len(verts) {
				return nil, ErrVertexIndex
			}
			for _, vj := range c[:i] {
				if vi == vj {
					return nil, ErrBadCell
				}
			}
		}
	}

	m := &Mesh{
		verts: make([]Vec2, len(verts)),
		cells: make([]Cell, len(cells)),
	}
	copy(m.verts, verts)
	for i, c := range cells {
		m.cells[i] = make(Cell, len(c))
		copy(m.cells[i], c)
	}

	return m, nil
}

// NumVertices returns the vertex count.
func (m *Mesh) NumVertices() int { return len(m.verts) }

// NumCells returns the cell count.
func (m *Mesh) NumCells() int { return len(m.cells) }

// Rest returns the rest position of vertex i.
func (m *Mesh) Rest(i int) Vec2 { return m.verts[i] }

// Cell returns cell c. The returned slice is the mesh's own storage and
// must be treated as read-only.
func (m *Mesh) Cell(c int) Cell { return m.cells[c] }

// RestPositions returns a fresh copy of all rest positions, sized for
// use as a solver position buffer.
func (m *Mesh) RestPositions() []Vec2 {
	out := make([]Vec2, len(m.verts))
	copy(out, m.verts)

	return out
}
