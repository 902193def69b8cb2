// Package lvlath is a rectangular linear sum assignment (LSAP) solver built
// around a shortest-augmenting-path engine with dual-variable maintenance.
//
// 🚀 What is lvlath?
//
//	A thread-safe toolkit that brings together:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Dense matrices: cost-table storage with a configurable NaN/+Inf policy
//		• Builders: deterministic bipartite graph generators for fixtures
//		• lsap: Augment/Solve, the SAP engine, plus SolveMatrix/SolveGraph
//		  convenience wrappers over *matrix.Dense and *core.Graph
//
// ✨ Why choose lvlath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, in-code docs & hooks
//   - Pure Go – no cgo
//   - Generic over index/cost element kind (int32/int64, float32/float64)
//
// Under the hood, everything is organized under four subpackages:
//
//	builder/ — deterministic graph constructors (CompleteBipartite, ...)
//	core/    — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	matrix/  — dense cost-matrix storage, numeric policy, bipartite bridge
//	lsap/    — the assignment solver: Augment, Solve, SolveMatrix, SolveGraph
//
// Quick example:
//
//	m, _ := matrix.NewDense(3, 3)
//	// ... m.Set(i, j, cost) ...
//	res, err := lsap.SolveMatrix(m)
//	// res.Col4Row[i] is the column assigned to row i.
//
// cmd/lsapctl wraps this in a CLI for ad-hoc solving from JSON/CSV cost
// tables and for generating random bipartite fixtures.
package lvlath
