// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across topology constructors.
package builder

// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor,
// used to prefix errors with constructor context.
const MethodCompleteBipartite = "CompleteBipartite"

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom weight function is provided.
const DefaultEdgeWeight int64 = 1

// MinPartition is the minimum size allowed for either side of K_{n1,n2}.
const MinPartition = 1
