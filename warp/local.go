package warp

import "math"

// fitRotations — ARAP local step.
//
// For every cell, fit the pure rotation that best maps the cell's rest
// edges onto its current deformed edges in the least-squares sense: the
// 2D orthogonal-Procrustes angle
//
//	θ = atan2(Σ cross(e_rest, e_cur), Σ dot(e_rest, e_cur))
//
// summed over the cell's edges. No scale or shear is extracted — holding
// edge lengths rigid is what makes the deformation "as rigid as
// possible". Cells are independent of one another, so the loop is
// parallelizable by cell; the solver runs it synchronously.
//
// rot is overwritten with one angle per cell.
//
// Complexity: O(total cell edges).
func (s *Solver) fitRotations() {
	for c := 0; c < s.mesh.NumCells(); c++ {
		cell := s.mesh.Cell(c)
		var dot, cross float64
		for k := 0; k < cell.EdgeCount(); k++ {
			i, j := cell.Edge(k)
			er := s.mesh.Rest(i).Sub(s.mesh.Rest(j))
			ec := s.pos[i].Sub(s.pos[j])
			dot += er.Dot(ec)
			cross += er.Cross(ec)
		}
		if dot == 0 && cross == 0 {
			s.rot[c] = 0 // collapsed cell; keep identity

			continue
		}
		s.rot[c] = math.Atan2(cross, dot)
	}
}
