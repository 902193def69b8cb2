// Package matrix provides dense numeric storage for rectangular cost
// matrices and the functional options that govern their numeric policy.
//
// The package offers:
//
//   - Dense: a row-major float64 matrix with O(1) At/Set and O(r*c) Clone,
//     guarded by a configurable NaN/Inf policy.
//   - Option/Options: functional configuration (WithEpsilon,
//     WithValidateNaNInf/WithNoValidateNaNInf, WithAllowInfDistances/
//     WithDisallowInfDistances) resolved once via gatherOptions.
//   - FromBipartite: a bridge from a core.Graph bipartite structure to a
//     Dense cost matrix, mapping missing edges to +Inf when the matrix is
//     configured with WithAllowInfDistances.
//
// Matrices are best for dense or small problem instances where O(r*c)
// memory and build time are acceptable — the natural fit for assignment
// problems, where the instance itself is already a dense cost table.
package matrix
