package warp

import (
	"fmt"

	"github.com/bradbohme-sys/meshwarp/cg"
	"github.com/bradbohme-sys/meshwarp/mesh"
	"github.com/bradbohme-sys/meshwarp/sparse"
)

// Solver drives the ARAP local/global alternation for one mesh. It owns
// all deformation state: current positions, per-cell rotations, and the
// pre-sized matrix/vector buffers reused across iterations and solves.
// A Solver is single-threaded; a Solve call runs to completion on the
// calling goroutine with no suspension and no cancellation — bound
// Iterations and CGIterations instead when latency matters.
type Solver struct {
	mesh  *mesh.Mesh
	state State

	pos    []mesh.Vec2 // current deformed positions
	rot    []float64   // per-cell fitted rotation angle
	solved bool        // a completed solve exists for warm-starting

	// Buffers sized once per mesh and overwritten in place.
	mat      *sparse.Matrix
	entries  []sparse.Entry
	baseDiag []float64
	diagAdd  []float64
	bx, by   []float64
	px, py   []float64

	stats Stats
}

// NewSolver builds a solver for the given mesh, pre-sizing every buffer
// the solve loop needs. The mesh is held for the solver's lifetime and
// must not be swapped; build a new Solver for a new mesh.
func NewSolver(m *mesh.Mesh) (*Solver, error) {
	if m == nil {
		return nil, ErrNilMesh
	}

	n := m.NumVertices()
	edges := 0
	for c := 0; c < m.NumCells(); c++ {
		edges += m.Cell(c).EdgeCount()
	}

	return &Solver{
		mesh:     m,
		state:    Ready,
		pos:      m.RestPositions(),
		rot:      make([]float64, m.NumCells()),
		entries:  make([]sparse.Entry, 0, n+4*edges),
		baseDiag: make([]float64, n),
		diagAdd:  make([]float64, n),
		bx:       make([]float64, n),
		by:       make([]float64, n),
		px:       make([]float64, n),
		py:       make([]float64, n),
	}, nil
}

// Solve computes new vertex positions for the given pins and options,
// running exactly opts.Iterations local/global alternations — a fixed
// budget with no outer convergence exit, so latency stays predictable.
//
// Cold solves start from the rest shape with identity rotations; with
// opts.WarmStart and a previous completed solve, positions and rotations
// are seeded from that solve's final state instead.
//
// Validation failures (bad options, fewer than two pins, malformed pins)
// leave the solver state untouched and return the current positions
// alongside the sentinel — the rest shape if nothing was solved yet.
// Inner CG non-convergence is not a failure; its best iterate is used.
//
// The returned slice is a copy and stays valid after further solves.
func (s *Solver) Solve(pins []Pin, opts Options) ([]mesh.Vec2, error) {
	if s.mesh == nil {
		return nil, ErrUninitialized
	}
	if err := opts.validate(); err != nil {
		return s.Positions(), err
	}
	if err := validatePins(pins); err != nil {
		return s.Positions(), err
	}

	prof := profiles[opts.Material]
	s.state = Solving

	if !(opts.WarmStart && s.solved) {
		for i := range s.pos {
			s.pos[i] = s.mesh.Rest(i)
		}
		for i := range s.rot {
			s.rot[i] = 0
		}
	}

	if err := s.buildSystem(prof.edge); err != nil {
		s.state = Ready

		return s.Positions(), err
	}

	cgOpts := cg.Options{MaxIterations: opts.CGIterations, Tolerance: cgTolerance}
	s.stats = Stats{}
	for it := 0; it < opts.Iterations; it++ {
		steps, residual, err := s.globalStep(pins, prof, cgOpts)
		if err != nil {
			s.state = Ready

			return s.Positions(), err
		}
		s.fitRotations()

		s.stats.OuterIterations = it + 1
		s.stats.CGIterations += steps
		s.stats.Residual = residual
		if opts.Verbose {
			fmt.Printf("warp: iteration %d/%d cg=%d residual=%.3e\n",
				it+1, opts.Iterations, steps, residual)
		}
	}

	s.solved = true
	s.state = Solved

	return s.Positions(), nil
}

// Positions returns a copy of the current vertex positions: the rest
// shape before the first solve or after Reset, otherwise the latest
// solve's result.
func (s *Solver) Positions() []mesh.Vec2 {
	out := make([]mesh.Vec2, len(s.pos))
	copy(out, s.pos)

	return out
}

// State returns the solver lifecycle state.
func (s *Solver) State() State { return s.state }

// Stats returns diagnostics from the most recent solve. Zero before the
// first solve and after Reset.
func (s *Solver) Stats() Stats { return s.stats }

// Reset discards all deformation state: positions return to the rest
// shape, rotations to identity, and the warm-start snapshot is dropped.
func (s *Solver) Reset() {
	if s.mesh == nil {
		return
	}
	for i := range s.pos {
		s.pos[i] = s.mesh.Rest(i)
	}
	for i := range s.rot {
		s.rot[i] = 0
	}
	s.solved = false
	s.stats = Stats{}
	s.state = Ready
}
