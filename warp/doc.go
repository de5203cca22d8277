// Package warp computes As-Rigid-As-Possible (ARAP) 2D mesh deformations
// from user-placed constraint pins.
//
// What:
//
//   - Solver alternates a local step (per-cell optimal-rotation fit) and
//     a global step (stiffness-weighted Laplacian solve with soft pin
//     penalties) for a fixed iteration budget, then returns new vertex
//     positions.
//   - Pins come in three kinds: Anchor (position), Pose (position +
//     rotation), and Rail (nearest vertex held to a polyline, re-projected
//     every iteration as the mesh moves).
//   - Material presets (Rigid, Rubber, Cloth, Gel) map to a closed
//     stiffness table; softer presets wobble more between pins.
//   - Warm starts reuse the previous solve's positions and rotations,
//     speeding up incremental pin edits — and, for non-convex
//     configurations, possibly settling on a different local optimum
//     than a cold start.
//
// Why:
//
//   - Interactive image warping: drag a few pins, keep the rest of the
//     layer as rigid as the constraints allow, at frame-rate budgets.
//   - Soft penalties instead of hard constraints keep the system
//     well-conditioned and always solvable; a pin pulls strongly but
//     never infinitely.
//
// Lifecycle: Uninitialized → Ready (NewSolver) → Solving (inside Solve)
// → Solved; Reset returns to Ready with rest positions.
//
// Complexity per solve: O(Iterations · (cells + CG·nnz)) time; all
// matrix and vector buffers are sized once per mesh and reused, so the
// steady-state solve loop does not allocate.
//
// Errors:
//
//   - ErrNilMesh, ErrUninitialized — construction misuse.
//   - ErrTooFewPins — fewer than two pins; a single pin leaves global
//     rotation unconstrained, so the solve is refused and state kept.
//   - ErrBadPin, ErrDuplicatePin — malformed pin list.
//   - ErrBadMaterial, ErrBadIterations, ErrBadCGIterations — option
//     ranges.
//
// Numerical non-convergence of the inner CG is never an error: the best
// iterate feeds the next outer iteration, matching ARAP's
// iterative-refinement philosophy.
package warp
