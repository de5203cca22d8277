package warp

import (
	"math"

	"github.com/bradbohme-sys/meshwarp/cg"
	"github.com/bradbohme-sys/meshwarp/mesh"
	"github.com/bradbohme-sys/meshwarp/sparse"
)

// cgTolerance is the fixed relative residual target for inner global
// solves. ARAP tolerates approximate inner results, so this trades
// exactness for bounded latency together with the CG iteration cap.
const cgTolerance = 1e-6

// buildSystem assembles the stiffness-weighted Laplacian in CSR form for
// one solve. Per edge (i,j) with weight w the stencil adds w to both
// diagonals and −w to both off-diagonals; edges shared between cells sum
// naturally through COO construction. Every row gets an explicit (i,i,0)
// seed so pin injection can never hit a missing diagonal slot.
//
// The column structure is fixed for the rest of the solve; iterations
// only rewrite the diagonal and the right-hand side.
func (s *Solver) buildSystem(edgeW float64) error {
	n := s.mesh.NumVertices()
	s.entries = s.entries[:0]
	for i := 0; i < n; i++ {
		s.entries = append(s.entries, sparse.Entry{Row: i, Col: i, Val: 0})
	}
	for c := 0; c < s.mesh.NumCells(); c++ {
		cell := s.mesh.Cell(c)
		for k := 0; k < cell.EdgeCount(); k++ {
			i, j := cell.Edge(k)
			s.entries = append(s.entries,
				sparse.Entry{Row: i, Col: i, Val: edgeW},
				sparse.Entry{Row: j, Col: j, Val: edgeW},
				sparse.Entry{Row: i, Col: j, Val: -edgeW},
				sparse.Entry{Row: j, Col: i, Val: -edgeW},
			)
		}
	}

	m, err := sparse.New(n, s.entries)
	if err != nil {
		return err
	}
	s.mat = m
	for i := 0; i < n; i++ {
		s.baseDiag[i] = m.Diagonal(i)
	}

	return nil
}

// globalStep — ARAP global step.
//
// Rebuilds the right-hand side from the current per-cell rotations plus
// pin penalties, refreshes the pin diagonal on the fixed-structure
// matrix, and solves the x and y coordinate systems independently with
// CG, warm-started from the current positions. Returns the total CG
// step count and the combined residual of the two solves.
func (s *Solver) globalStep(pins []Pin, prof profile, cgOpts cg.Options) (int, float64, error) {
	n := s.mesh.NumVertices()
	for i := 0; i < n; i++ {
		s.bx[i], s.by[i], s.diagAdd[i] = 0, 0, 0
	}

	// ARAP term: per cell edge, the rest edge rotated by the cell's
	// fitted angle, weighted by the material edge stiffness.
	for c := 0; c < s.mesh.NumCells(); c++ {
		cell := s.mesh.Cell(c)
		cosA, sinA := math.Cos(s.rot[c]), math.Sin(s.rot[c])
		for k := 0; k < cell.EdgeCount(); k++ {
			i, j := cell.Edge(k)
			er := s.mesh.Rest(i).Sub(s.mesh.Rest(j))
			rx := cosA*er.X - sinA*er.Y
			ry := sinA*er.X + cosA*er.Y
			s.bx[i] += prof.edge * rx
			s.by[i] += prof.edge * ry
			s.bx[j] -= prof.edge * rx
			s.by[j] -= prof.edge * ry
		}
	}

	// Pin penalties: soft constraints on the diagonal and the rhs.
	for _, p := range pins {
		s.applyPin(p, prof.pin)
	}
	for i := 0; i < n; i++ {
		s.mat.SetDiagonal(i, s.baseDiag[i]+s.diagAdd[i])
	}

	// Two independent coordinate systems over the same matrix, started
	// from the current deformed positions.
	for i := 0; i < n; i++ {
		s.px[i], s.py[i] = s.pos[i].X, s.pos[i].Y
	}
	resX, err := cg.Solve(s.mat, s.bx, s.px, cgOpts)
	if err != nil {
		return 0, 0, err
	}
	resY, err := cg.Solve(s.mat, s.by, s.py, cgOpts)
	if err != nil {
		return 0, 0, err
	}
	for i := 0; i < n; i++ {
		s.pos[i] = mesh.Vec2{X: s.px[i], Y: s.py[i]}
	}

	return resX.Iterations + resY.Iterations, math.Hypot(resX.Residual, resY.Residual), nil
}

// applyPin folds one pin into the pending diagonal additions and rhs.
// The switch over PinKind is exhaustive; validatePins has already
// rejected unknown kinds, so the default is a pure contract guard.
func (s *Solver) applyPin(p Pin, pinW float64) {
	switch p.Kind {
	case Anchor:
		off := p.Target.Sub(p.Pos)
		s.pinNeighborhood(p, pinW, func(v int) mesh.Vec2 {
			return s.mesh.Rest(v).Add(off)
		})
	case Pose:
		cosA, sinA := math.Cos(p.Angle), math.Sin(p.Angle)
		s.pinNeighborhood(p, pinW, func(v int) mesh.Vec2 {
			r := s.mesh.Rest(v).Sub(p.Pos)

			return p.Target.Add(mesh.Vec2{X: cosA*r.X - sinA*r.Y, Y: sinA*r.X + cosA*r.Y})
		})
	case Rail:
		// Re-run the nearest-vertex search against *current* positions:
		// as the mesh deforms, the constrained vertex and its projected
		// target can move between outer iterations.
		handle, handleDist := 0, math.Inf(1)
		for v := range s.pos {
			if _, d := closestOnPath(p.Path, s.pos[v]); d < handleDist {
				handle, handleDist = v, d
			}
		}
		target, _ := closestOnPath(p.Path, s.pos[handle])
		s.addPinTerm(handle, pinW, target)
	default:
		panic("warp: unhandled pin kind")
	}
}

// pinNeighborhood constrains every vertex within the pin's influence
// radius (rest-shape distances) with linear falloff, plus the handle
// vertex — the one nearest the pin — at full weight so a pin between
// mesh vertices still grabs something.
func (s *Solver) pinNeighborhood(p Pin, pinW float64, targetOf func(int) mesh.Vec2) {
	handle, handleDist := 0, math.Inf(1)
	for v := 0; v < s.mesh.NumVertices(); v++ {
		d := s.mesh.Rest(v).Sub(p.Pos).Len()
		if d < handleDist {
			handle, handleDist = v, d
		}
		if d < p.Radius {
			if f := 1 - d/p.Radius; f > 0 {
				s.addPinTerm(v, pinW*f, targetOf(v))
			}
		}
	}
	s.addPinTerm(handle, pinW, targetOf(handle))
}

// addPinTerm accumulates one soft positional penalty: weight onto the
// diagonal, weight×target onto the rhs.
func (s *Solver) addPinTerm(v int, w float64, target mesh.Vec2) {
	s.diagAdd[v] += w
	s.bx[v] += w * target.X
	s.by[v] += w * target.Y
}
