package cg

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/bradbohme-sys/meshwarp/sparse"
)

// Solve — Jacobi-preconditioned conjugate gradient.
//
// Description:
//
//	Refines x toward the solution of A·x = b for a symmetric
//	positive-(semi)definite matrix A. x carries the starting guess on
//	entry (rest positions, or a previous solution when warm-starting)
//	and the best iterate found on return.
//
// Algorithm outline:
//  1. r = b − A·x, keep ‖r₀‖ as the convergence reference.
//  2. z = M⁻¹·r with M = diag(A) (rows with a non-positive stored
//     diagonal fall back to unit scaling), p = z, ρ = r·z.
//  3. Per step: α = ρ / (p·A·p); x += α·p; r −= α·A·p;
//     z = M⁻¹·r; β = ρ′/ρ; p = z + β·p.
//  4. Stop when ‖r‖ ≤ Tolerance·‖r₀‖ or after MaxIterations steps.
//
// A breakdown of the p·A·p denominator (zero or negative, i.e. the
// matrix was not positive-definite after all) also stops the iteration;
// the iterate accumulated so far is returned as-is.
//
// Complexity:
//
//	Time   = O(k·nnz) for k steps
//	Memory = O(n)
func Solve(a *sparse.Matrix, b, x []float64, opts Options) (Result, error) {
	if a == nil {
		return Result{}, ErrNilMatrix
	}
	n := a.Dim()
	if len(b) != n || len(x) != n {
		return Result{}, ErrDimensionMismatch
	}
	if opts.MaxIterations < 1 {
		return Result{}, ErrBadMaxIterations
	}
	if opts.Tolerance <= 0 || math.IsNaN(opts.Tolerance) || math.IsInf(opts.Tolerance, 0) {
		return Result{}, ErrBadTolerance
	}

	// Work vectors, reused across all steps of this call.
	var (
		r       = make([]float64, n)
		z       = make([]float64, n)
		p       = make([]float64, n)
		ap      = make([]float64, n)
		invDiag = make([]float64, n)
	)
	for i := 0; i < n; i++ {
		if d := a.Diagonal(i); d > 0 {
			invDiag[i] = 1 / d
		} else {
			invDiag[i] = 1
		}
	}

	// r = b − A·x
	if err := a.MulVec(r, x); err != nil {
		return Result{}, err
	}
	for i := range r {
		r[i] = b[i] - r[i]
	}
	norm0 := floats.Norm(r, 2)
	if norm0 == 0 {
		return Result{Iterations: 0, Residual: 0, Converged: true}, nil
	}

	for i := range z {
		z[i] = invDiag[i] * r[i]
	}
	copy(p, z)
	rho := floats.Dot(r, z)

	var (
		steps int
		res   = norm0
	)
	for steps < opts.MaxIterations && res > opts.Tolerance*norm0 {
		if err := a.MulVec(ap, p); err != nil {
			return Result{}, err
		}
		den := floats.Dot(p, ap)
		if den <= 0 {
			break // PD assumption violated; keep the best iterate
		}
		alpha := rho / den
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, ap)
		steps++
		res = floats.Norm(r, 2)

		for i := range z {
			z[i] = invDiag[i] * r[i]
		}
		rhoNext := floats.Dot(r, z)
		beta := rhoNext / rho
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
		rho = rhoNext
	}

	return Result{
		Iterations: steps,
		Residual:   res,
		Converged:  res <= opts.Tolerance*norm0,
	}, nil
}
