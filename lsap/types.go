// SPDX-License-Identifier: MIT
// Package: lvlath/lsap
//
// types.go — numeric constraints, the CostMatrix view, and the scratch
// state for the assignment solver.
//
// Design:
//   - Index and Number mirror the matrix/core convention of small, named
//     constraint interfaces rather than a single sprawling generic bound.
//   - CostMatrix[C] decouples Augment/Solve from matrix.Dense's concrete
//     float64 storage, so the engine can be driven by any dense-like source
//     a caller already has in memory.

package lsap

import "math"

// Index is the constraint for row/column indices and the assignment arrays
// (row4col, col4row). -1 is the sentinel for "unassigned" across both
// instantiations used by this package.
type Index interface {
	~int32 | ~int64
}

// Number is the constraint for cost entries and dual variables.
type Number interface {
	~float32 | ~float64
}

// unassigned is the sentinel value stored in row4col/col4row for an
// index that has no counterpart yet. It is -1 in every Index instantiation.
const unassigned = -1

// CostMatrix is a read-only dense view over a cost matrix of CostT values.
// Augment and Solve depend only on this interface, not on matrix.Dense,
// so any caller-owned rectangular buffer can drive the engine directly.
type CostMatrix[CostT Number] interface {
	// Rows returns nr, the number of rows (must be <= Cols() for Solve/Augment).
	Rows() int
	// Cols returns nc, the number of columns.
	Cols() int
	// At returns C[i][j]. Implementations need not bounds-check; the engine
	// only ever calls At with in-range (i,j).
	At(i, j int) CostT
}

// denseCost adapts a plain [][]CostT slice-of-slices to CostMatrix, the
// shape every package-level test fixture and the brute-force verifier use.
type denseCost[CostT Number] struct {
	rows [][]CostT
}

// NewCostMatrix wraps a rectangular [][]CostT as a CostMatrix. All rows
// must share the same length; this is not checked, and Cols() reports the
// length of the first row. Solve itself checks only the nr <= nc shape.
func NewCostMatrix[CostT Number](rows [][]CostT) CostMatrix[CostT] {
	return &denseCost[CostT]{rows: rows}
}

func (d *denseCost[CostT]) Rows() int { return len(d.rows) }
func (d *denseCost[CostT]) Cols() int {
	if len(d.rows) == 0 {
		return 0
	}
	return len(d.rows[0])
}
func (d *denseCost[CostT]) At(i, j int) CostT { return d.rows[i][j] }

// infinity returns +Inf narrowed/widened to CostT.
func infinity[CostT Number]() CostT {
	return CostT(math.Inf(1))
}

// scratchState holds the five per-augmentation scratch vectors, hoisted by
// Solve and reused across all nr calls to Augment (see SPEC_FULL §9).
type scratchState[IndexT Index, CostT Number] struct {
	pred      []IndexT // π: predecessor row for each column on the SAP tree
	dist      []CostT  // d: shortest reduced-cost distance to each column
	rowInTree []bool   // SR
	colInTree []bool   // SC
	remaining []IndexT // unscanned columns, unordered, swap-remove on pop
}

// newScratchState allocates scratch vectors sized for an nc-column problem.
func newScratchState[IndexT Index, CostT Number](nc int) *scratchState[IndexT, CostT] {
	return &scratchState[IndexT, CostT]{
		pred:      make([]IndexT, nc),
		dist:      make([]CostT, nc),
		rowInTree: make([]bool, 0), // sized per-call against nr in reset
		colInTree: make([]bool, nc),
		remaining: make([]IndexT, nc),
	}
}

// reset reinitializes the scratch vectors for a fresh augmentation round:
// d <- +Inf, SR/SC <- false, remaining <- [0, nc) in descending fill order,
// pred <- -1.
//
// The descending fill (remaining[k] = nc-1-k, so the first swap-remove pops
// column 0 last) is the pinned choice between the two variants the source
// carries: combined with the unassigned-column tie-break, it is what
// produces the identity-like solution on constant matrices (SPEC_FULL §8
// scenario 2); the ascending fill instead resolves to the reverse
// permutation on that same input. Either is a correct SAP implementation —
// this is a pinned-for-tests choice, not a correctness requirement.
func (s *scratchState[IndexT, CostT]) reset(nr, nc int) {
	if cap(s.rowInTree) < nr {
		s.rowInTree = make([]bool, nr)
	} else {
		s.rowInTree = s.rowInTree[:nr]
		for i := range s.rowInTree {
			s.rowInTree[i] = false
		}
	}
	for j := 0; j < nc; j++ {
		s.pred[j] = unassigned
		s.dist[j] = infinity[CostT]()
		s.colInTree[j] = false
		s.remaining[j] = IndexT(nc - 1 - j)
	}
}
