// Package meshwarp deforms 2D meshes with constraint pins — an
// As-Rigid-As-Possible (ARAP) solver core for interactive image warping.
//
// 🚀 What is meshwarp?
//
//	A compact numerical toolkit that brings together:
//		• Sparse storage: compressed sparse row (CSR) matrices built from COO triples
//		• Linear solving: Jacobi-preconditioned conjugate gradient
//		• Rotation fitting: per-cell 2D orthogonal-Procrustes local step
//		• System assembly: stiffness-weighted Laplacian with soft pin penalties
//		• Driver: bounded local/global ARAP alternation with warm starts
//
// ✨ Why choose meshwarp?
//
//   - Interactive by design – fixed iteration budgets, no unbounded loops
//   - Allocation-aware – matrix and vector buffers are sized once and reused
//   - Predictable failures – sentinel errors, best-effort numeric results
//   - Pure CPU – no GPU, no cgo
//
// Everything is organized under four subpackages:
//
//	sparse/ — CSR matrix store: build, multiply, diagonal access
//	cg/     — conjugate-gradient solver over CSR systems
//	mesh/   — immutable 2D mesh model (vertices + cells) and grid builder
//	warp/   — pins (anchor/pose/rail), material presets, ARAP solver driver
//
// Quick ASCII example:
//
//	●───○───○        pin ● dragged right, pin ◎ held fixed:
//	│ ╲ │ ╲ │        the mesh between them bends smoothly,
//	○───○───◎        each triangle staying as rigid as it can.
//
// The caller supplies a fixed mesh topology and a pin list; meshwarp
// returns new vertex positions. Rendering and pin-placement UI live
// elsewhere.
//
//	go get github.com/bradbohme-sys/meshwarp
package meshwarp
