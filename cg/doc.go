// Package cg solves symmetric positive-(semi)definite linear systems in
// CSR form with a Jacobi-preconditioned conjugate-gradient iteration.
//
// What:
//
//   - Solve refines a caller-supplied starting guess in place using the
//     standard CG recurrence (residual, search direction, Rayleigh-style
//     step sizes) with the matrix diagonal as an implicit preconditioner.
//   - Iteration stops at MaxIterations or once the residual norm drops
//     below Tolerance relative to the initial residual, whichever first.
//
// Why:
//
//   - ARAP's global step produces Laplacian-plus-penalty systems whose
//     spectrum is often poorly conditioned; Jacobi scaling is cheap and
//     recovers most of the lost convergence rate.
//   - Running out of iterations is not a failure: the outer ARAP loop
//     tolerates approximate inner solves, so Solve always keeps the best
//     iterate and reports Converged=false instead of erroring.
//
// Complexity:
//
//   - Time:  O(k·nnz) for k iterations.
//   - Space: O(n) work vectors, allocated once per call and reused
//     across iterations.
//
// Errors:
//
//   - ErrNilMatrix:        a nil *sparse.Matrix was supplied.
//   - ErrDimensionMismatch: len(b) or len(x) differs from the dimension.
//   - ErrBadMaxIterations: MaxIterations < 1.
//   - ErrBadTolerance:     Tolerance is not a positive finite number.
package cg
