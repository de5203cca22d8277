// Package cg defines options, the solve report, and sentinel errors for
// the conjugate-gradient solver.
package cg

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrNilMatrix indicates a nil *sparse.Matrix argument.
	ErrNilMatrix = errors.New("cg: matrix is nil")

	// ErrDimensionMismatch indicates b or x length differs from the matrix dimension.
	ErrDimensionMismatch = errors.New("cg: vector length does not match matrix dimension")

	// ErrBadMaxIterations indicates MaxIterations < 1.
	ErrBadMaxIterations = errors.New("cg: MaxIterations must be at least 1")

	// ErrBadTolerance indicates a non-positive or non-finite Tolerance.
	ErrBadTolerance = errors.New("cg: Tolerance must be positive and finite")
)

// Options configures the conjugate-gradient iteration.
//
// Fields:
//   - MaxIterations — hard cap on CG steps; the best iterate so far is
//     kept when the cap is reached without convergence.
//   - Tolerance     — relative residual target: iteration stops once
//     ‖r‖ ≤ Tolerance·‖r₀‖.
type Options struct {
	MaxIterations int
	Tolerance     float64
}

// DefaultOptions returns Options with default settings:
// MaxIterations=50, Tolerance=1e-8.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 50,
		Tolerance:     1e-8,
	}
}

// Result reports how a Solve call ended. Non-convergence is not an
// error; inspect Converged when exactness matters.
type Result struct {
	// Iterations is the number of CG steps actually taken.
	Iterations int

	// Residual is ‖b − A·x‖ for the returned iterate.
	Residual float64

	// Converged reports whether the relative tolerance was met.
	Converged bool
}
