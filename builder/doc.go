// Package builder provides reusable "functional-options"-style building blocks
// for constructing core.Graph fixtures. It lives alongside core and matrix
// packages to centralize common configuration, ID schemes, and weight
// generation, keeping implementations DRY, testable, and consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID-scheme, weight function, bipartite prefixes.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//   - Topology factories:
//     – CompleteBipartite: builds K_{n1,n2}, the canonical source of
//       randomized rectangular cost matrices for assignment-problem fixtures.
//   - Shared constants:
//     – DefaultEdgeWeight, MinPartition.
//     – MethodCompleteBipartite token for error context.
//
// Guarantees:
//
//   - Vertex insertion is idempotent: re-running the same builder on g does not
//     duplicate vertices. Edges are added on every run, so re-running it on the
//     same g adds a second copy of each edge.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Documented algorithmic complexity per constructor.
//   - Fully testable: BuilderOption and topology behavior are covered by unit tests.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
