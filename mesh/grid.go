package mesh

// NewGrid builds a regular cols×rows vertex grid with the given spacing,
// each quad split into two triangles:
//
//	v01────v11        ▲ y
//	 │ ╲    │         │
//	 │   ╲  │         └───▶ x
//	v00────v10
//
// Vertex (c, r) sits at (c·spacing, r·spacing) and has index r·cols + c.
// Returns ErrBadGrid for cols < 2, rows < 2, or spacing ≤ 0.
//
// Complexity: O(cols·rows) time and memory.
func NewGrid(cols, rows int, spacing float64) (*Mesh, error) {
	if cols < 2 || rows < 2 || spacing <= 0 {
		return nil, ErrBadGrid
	}

	verts := make([]Vec2, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			verts = append(verts, Vec2{X: float64(c) * spacing, Y: float64(r) * spacing})
		}
	}

	cells := make([]Cell, 0, 2*(cols-1)*(rows-1))
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			v00 := r*cols + c
			v10 := v00 + 1
			v01 := v00 + cols
			v11 := v01 + 1
			cells = append(cells,
				Cell{v00, v10, v11},
				Cell{v00, v11, v01},
			)
		}
	}

	return New(verts, cells)
}
