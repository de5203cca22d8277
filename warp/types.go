// Package warp defines pins, material presets, solver options, and
// sentinel errors for the ARAP deformation driver.
package warp

import "errors"

// Sentinel errors for warp solving.
var (
	// ErrNilMesh indicates a nil *mesh.Mesh passed to NewSolver.
	ErrNilMesh = errors.New("warp: mesh is nil")

	// ErrUninitialized indicates a Solver that was not built with NewSolver.
	ErrUninitialized = errors.New("warp: solver not initialized; use NewSolver")

	// ErrTooFewPins indicates fewer than two pins: a single pin leaves
	// global rotation unconstrained and the solve numerically meaningless.
	ErrTooFewPins = errors.New("warp: at least two pins are required")

	// ErrBadPin indicates an invalid pin: empty ID, unknown kind,
	// non-finite coordinates, non-positive radius, or a rail path with
	// fewer than two points.
	ErrBadPin = errors.New("warp: invalid pin")

	// ErrDuplicatePin indicates two pins sharing an ID.
	ErrDuplicatePin = errors.New("warp: duplicate pin id")

	// ErrBadMaterial indicates a Material outside the preset table.
	ErrBadMaterial = errors.New("warp: unknown material preset")

	// ErrBadIterations indicates Iterations outside [1, 20].
	ErrBadIterations = errors.New("warp: Iterations must be in [1, 20]")

	// ErrBadCGIterations indicates CGIterations outside [10, 100].
	ErrBadCGIterations = errors.New("warp: CGIterations must be in [10, 100]")
)

// State tracks the solver lifecycle.
type State int

const (
	// Uninitialized is the zero Solver; only NewSolver leaves this state.
	Uninitialized State = iota
	// Ready means the mesh is loaded and no deformation has been computed.
	Ready
	// Solving means a Solve call is running on the calling goroutine.
	Solving
	// Solved means at least one solve completed and its state is retained.
	Solved
)

// String returns the state name for diagnostics.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Ready:
		return "Ready"
	case Solving:
		return "Solving"
	case Solved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// Material selects a stiffness preset for the deformed layer.
type Material int

const (
	// Rigid resists bending strongly; pins act almost like hard constraints.
	Rigid Material = iota
	// Rubber is stiff but noticeably elastic.
	Rubber
	// Cloth drapes: low bending resistance, moderate pin pull.
	Cloth
	// Gel is the softest preset, wobbling freely between pins.
	Gel
)

// profile is one row of the closed material→stiffness table:
// edge weights the Laplacian, pin is the soft-constraint penalty weight.
type profile struct {
	edge float64
	pin  float64
}

// profiles is the preset table; soft pin weights scale with edge
// stiffness so system conditioning stays comparable across presets.
var profiles = [...]profile{
	Rigid:  {edge: 1.0, pin: 1e4},
	Rubber: {edge: 0.4, pin: 4e3},
	Cloth:  {edge: 0.15, pin: 1.5e3},
	Gel:    {edge: 0.05, pin: 5e2},
}

// Options configures one Solve call.
//
// Fields:
//   - Material     — stiffness preset (Rigid, Rubber, Cloth, Gel).
//   - Iterations   — outer local/global alternation count, in [1, 20].
//     The budget is fixed: there is no outer early exit, keeping solve
//     latency predictable for interactive use.
//   - CGIterations — inner conjugate-gradient cap per global step,
//     in [10, 100].
//   - WarmStart    — seed positions and rotations from the previous
//     solve's final state instead of the rest shape. Faster for small
//     incremental pin edits, and for non-convex configurations it can
//     change the result, not just the speed.
//   - Verbose      — print per-iteration diagnostics.
type Options struct {
	Material     Material
	Iterations   int
	CGIterations int
	WarmStart    bool
	Verbose      bool
}

// DefaultOptions returns Options with default settings:
// Material=Rigid, Iterations=6, CGIterations=40, cold start, quiet.
func DefaultOptions() Options {
	return Options{
		Material:     Rigid,
		Iterations:   6,
		CGIterations: 40,
	}
}

// validate checks option ranges against the documented bounds.
func (o Options) validate() error {
	if o.Material < Rigid || int(o.Material) >= len(profiles) {
		return ErrBadMaterial
	}
	if o.Iterations < 1 || o.Iterations > 20 {
		return ErrBadIterations
	}
	if o.CGIterations < 10 || o.CGIterations > 100 {
		return ErrBadCGIterations
	}

	return nil
}

// Stats reports diagnostics from the most recent solve.
type Stats struct {
	// OuterIterations is the number of local/global alternations run.
	OuterIterations int

	// CGIterations is the total conjugate-gradient step count across
	// all global steps and both coordinate systems.
	CGIterations int

	// Residual is the combined CG residual of the final global step.
	Residual float64
}
