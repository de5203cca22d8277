package warp_test

import (
	"fmt"

	"github.com/bradbohme-sys/meshwarp/mesh"
	"github.com/bradbohme-sys/meshwarp/warp"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleSolver_Solve
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 3×3 grid layer. One pin holds the lower-left corner in place and a
//	second pin drags the upper-right corner one unit to the right. The
//	solver bends the mesh between them, each triangle staying as rigid
//	as the pins allow.
//
// Options: Rigid material, default budgets, cold start.
func ExampleSolver_Solve() {
	m, err := mesh.NewGrid(3, 3, 1.0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	s, err := warp.NewSolver(m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	corner := m.Rest(m.NumVertices() - 1)
	pins := []warp.Pin{
		warp.NewAnchor("hold", m.Rest(0), m.Rest(0), 1),
		warp.NewAnchor("drag", corner, corner.Add(mesh.Vec2{X: 1}), 1),
	}

	pos, err := s.Solve(pins, warp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	heldDrift := pos[0].Sub(m.Rest(0)).Len()
	fmt.Printf("state=%s heldDrift=%.2f dragged=(%.1f, %.1f)\n",
		s.State(), heldDrift, pos[8].X, pos[8].Y)
	// Output: state=Solved heldDrift=0.00 dragged=(3.0, 2.0)
}

// ExampleSolver_Reset shows discarding a deformation and returning to
// the rest shape.
func ExampleSolver_Reset() {
	m, _ := mesh.NewGrid(2, 2, 1.0)
	s, _ := warp.NewSolver(m)

	pins := []warp.Pin{
		warp.NewAnchor("a", m.Rest(0), m.Rest(0), 1),
		warp.NewAnchor("b", m.Rest(3), m.Rest(3).Add(mesh.Vec2{Y: 0.5}), 1),
	}
	if _, err := s.Solve(pins, warp.DefaultOptions()); err != nil {
		fmt.Println("error:", err)

		return
	}

	s.Reset()
	fmt.Printf("state=%s corner=(%.0f, %.0f)\n", s.State(), s.Positions()[3].X, s.Positions()[3].Y)
	// Output: state=Ready corner=(1, 1)
}
