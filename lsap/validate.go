// SPDX-License-Identifier: MIT
// Package: lvlath/lsap
//
// validate.go — boundary-layer shape checks, run before the engine ever
// mutates a buffer. Mirrors matrix's "fail with a sentinel, never panic on
// user-triggered conditions" convention.

package lsap

// validateShape rejects the rectangular-assumption violation and negative
// dimensions before Solve allocates any state array.
func validateShape(nr, nc int) error {
	if nr < 0 || nc < 0 {
		return &ShapeError{Rows: nr, Cols: nc, Reason: "dimensions must be non-negative"}
	}
	if nr > nc {
		return &ShapeError{Rows: nr, Cols: nc, Reason: "nr must be <= nc (rectangular assumption)"}
	}
	return nil
}

// validateAugmentInputs checks the length invariants Augment depends on
// before touching row4col/col4row/u/v, so a caller-assembled partial state
// fails loudly instead of panicking on an out-of-range slice access.
func validateAugmentInputs[IndexT Index, CostT Number](
	nr, nc int, freeRow IndexT, row4col, col4row []IndexT, u, v []CostT,
) error {
	if err := validateShape(nr, nc); err != nil {
		return err
	}
	if int(freeRow) < 0 || int(freeRow) >= nr {
		return &ShapeError{Rows: nr, Cols: nc, Reason: "freeRow out of range"}
	}
	if len(col4row) != nr {
		return &ShapeError{Rows: nr, Cols: nc, Reason: "col4row length must equal nr"}
	}
	if len(row4col) != nc {
		return &ShapeError{Rows: nr, Cols: nc, Reason: "row4col length must equal nc"}
	}
	if len(u) != nr {
		return &ShapeError{Rows: nr, Cols: nc, Reason: "u length must equal nr"}
	}
	if len(v) != nc {
		return &ShapeError{Rows: nr, Cols: nc, Reason: "v length must equal nc"}
	}
	if col4row[freeRow] != unassigned {
		return &ShapeError{Rows: nr, Cols: nc, Reason: "freeRow must be unassigned (col4row[freeRow] == -1)"}
	}
	return nil
}
