// SPDX-License-Identifier: MIT
// Package: lvlath/lsap
//
// augment.go — the shortest-augmenting-path engine: one Dijkstra-style
// search in the reduced-cost graph from a single free row to the nearest
// unassigned column, followed by dual updates and path rewiring.
//
// Grounded on Crouse (2016) / Jonker-Volgenant, via
// original_source/src/clapsolver/dynamic_lsap.py's augment(); ported to
// Go generics with the scratch vectors hoisted by the caller instead of
// allocated per call (SPEC_FULL §9).

package lsap

// Augment executes one shortest-augmenting-path step for freeRow against
// the partial solution in row4col/col4row/u/v, mutating them in place.
//
// Preconditions: 0 <= freeRow < nr; col4row[freeRow] == -1; the four state
// arrays are mutually consistent with a valid partial dual-feasible
// solution. scratch must come from newScratchState(nc); Augment resets it
// at the start of every call, so one scratch is reused across augmenting
// calls exactly as Solve does.
//
// On success, col4row[freeRow] is bound to some column, one additional
// column becomes assigned in row4col, and u/v are updated so complementary
// slackness holds for every row/column visited by the augmenting path tree.
// Rows never entered into SR (and columns never entered into SC) are left
// untouched.
//
// Returns *Infeasible when no unassigned column is reachable through
// finite-cost edges from the rows visited so far.
func Augment[IndexT Index, CostT Number](
	c CostMatrix[CostT],
	freeRow IndexT,
	row4col, col4row []IndexT,
	u, v []CostT,
	scratch *scratchState[IndexT, CostT],
) error {
	nr, nc := c.Rows(), c.Cols()
	if err := validateAugmentInputs(nr, nc, freeRow, row4col, col4row, u, v); err != nil {
		return err
	}

	scratch.reset(nr, nc)
	pred, dist := scratch.pred, scratch.dist
	rowInTree, colInTree := scratch.rowInTree, scratch.colInTree
	remaining := scratch.remaining
	nRemaining := nc

	var minVal CostT
	rowIdx := freeRow
	sink := IndexT(unassigned)

	for sink == unassigned {
		rowInTree[rowIdx] = true

		// Scan every still-unsettled column, relaxing its reduced-cost
		// distance via the current frontier row, then pick the minimum
		// with the unassigned-column tie-break (step 2-3 of SPEC_FULL §4.1).
		bestIdxInRemaining := -1
		lowest := infinity[CostT]()
		for k := 0; k < nRemaining; k++ {
			col := remaining[k]
			r := minVal + c.At(int(rowIdx), int(col)) - u[rowIdx] - v[col]
			if r < dist[col] {
				dist[col] = r
				pred[col] = rowIdx
			}
			if dist[col] < lowest || (dist[col] == lowest && row4col[col] == unassigned) {
				lowest = dist[col]
				bestIdxInRemaining = k
			}
		}

		minVal = lowest
		if isInf(minVal) {
			return &Infeasible{FreeRow: int(freeRow)}
		}

		colStar := remaining[bestIdxInRemaining]
		colInTree[colStar] = true
		// Unordered swap-remove colStar out of remaining.
		nRemaining--
		remaining[bestIdxInRemaining] = remaining[nRemaining]

		if row4col[colStar] == unassigned {
			sink = colStar
		} else {
			rowIdx = row4col[colStar]
		}
	}

	// Dual update: freeRow absorbs the full minVal; every other row in the
	// tree absorbs minVal minus the distance to the column it was already
	// matched to (SPEC_FULL §4.1 "Dual update").
	for i := 0; i < nr; i++ {
		if !rowInTree[i] {
			continue
		}
		if IndexT(i) == freeRow {
			u[i] += minVal
		} else {
			u[i] += minVal - dist[col4row[i]]
		}
	}
	for j := 0; j < nc; j++ {
		if colInTree[j] {
			v[j] -= minVal - dist[j]
		}
	}

	// Path rewiring: walk the predecessor chain from sink back to freeRow,
	// installing each new edge and detaching the one it displaces.
	colIdx := sink
	for {
		rowIdx = pred[colIdx]
		row4col[colIdx] = rowIdx
		col4row[rowIdx], colIdx = colIdx, col4row[rowIdx]
		if rowIdx == freeRow {
			break
		}
	}

	return nil
}

// isInf reports whether cost equals the CostT +Inf sentinel used throughout
// this package to mark unreachable reduced-cost distances.
func isInf[CostT Number](cost CostT) bool {
	return cost == infinity[CostT]()
}
