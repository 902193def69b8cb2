// SPDX-License-Identifier: MIT
// Package: lvlath/matrix
//
// bipartite.go — bridge between a core.Graph bipartite structure and a
// Dense cost matrix, the input shape the assignment solver operates on.
//
// Contract:
//   - rowIDs and colIDs name the two partitions; order fixes row/column
//     index assignment (rowIDs[i] -> row i, colIDs[j] -> col j).
//   - Edge weight rowIDs[i]->colIDs[j] becomes cost[i][j].
//   - A missing edge becomes +Inf, which requires the result to carry
//     WithAllowInfDistances; without it, a missing edge is ErrUnknownVertex's
//     sibling condition and is reported via ErrNaNInf from the guarded Set.
//
// Determinism:
//   - Edge lookup is built once as a map keyed by (from,to), O(E) lookups
//     then O(1) reads; loop order is the caller-supplied rowIDs/colIDs order.
package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/core"
)

// FromBipartite builds a Dense cost matrix from a bipartite core.Graph,
// with rowIDs and colIDs naming the two partitions in the order they should
// occupy matrix rows and columns respectively.
//
// MAIN DESCRIPTION:
//   - Translate a sparse bipartite graph into the dense cost table the
//     assignment solver expects, treating absent edges as unreachable.
//
// Implementation:
//   - Stage 1: reject a nil graph and empty partitions up front.
//   - Stage 2: index g.Edges() once into a (from,to)->weight map.
//   - Stage 3: allocate a Dense via NewDenseWithOptions so the caller's
//     numeric policy (notably WithAllowInfDistances) governs ingestion.
//   - Stage 4: for each (i,j), look up the edge; write its weight, or +Inf
//     when absent.
//
// Inputs:
//   - g: source graph; must contain every ID in rowIDs and colIDs.
//   - rowIDs, colIDs: partition vertex IDs, fixing row/column order.
//   - opts: numeric policy; pass WithAllowInfDistances to permit missing
//     edges (else Set rejects the +Inf sentinel with ErrNaNInf).
//
// Returns:
//   - *Dense sized len(rowIDs) x len(colIDs).
//
// Errors:
//   - ErrGraphNil when g is nil.
//   - ErrInvalidDimensions when either partition is empty.
//   - ErrUnknownVertex when an ID in rowIDs/colIDs is absent from g.
//   - ErrNaNInf (wrapped) when a missing edge is encountered without
//     WithAllowInfDistances.
//
// Complexity:
//   - Time O(E + r*c), Space O(E + r*c).
func FromBipartite(g *core.Graph, rowIDs, colIDs []string, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(rowIDs) == 0 || len(colIDs) == 0 {
		return nil, ErrInvalidDimensions
	}
	for _, id := range rowIDs {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("matrix.FromBipartite: row %q: %w", id, ErrUnknownVertex)
		}
	}
	for _, id := range colIDs {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("matrix.FromBipartite: col %q: %w", id, ErrUnknownVertex)
		}
	}

	// Index every edge weight once, keyed by (from,to); SolveGraph's
	// convention is row -> col, so a single direction is all FromBipartite
	// ever looks up.
	weights := make(map[[2]string]int64, g.EdgeCount())
	for _, e := range g.Edges() {
		weights[[2]string{e.From, e.To}] = e.Weight
	}

	m, err := NewDenseWithOptions(len(rowIDs), len(colIDs), opts...)
	if err != nil {
		return nil, err
	}

	for i, u := range rowIDs {
		for j, v := range colIDs {
			w, ok := weights[[2]string{u, v}]
			cost := math.Inf(1)
			if ok {
				cost = float64(w)
			}
			if err := m.Set(i, j, cost); err != nil {
				return nil, fmt.Errorf("matrix.FromBipartite: (%s,%s): %w", u, v, err)
			}
		}
	}

	return m, nil
}
