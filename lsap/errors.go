// SPDX-License-Identifier: MIT
// Package: lvlath/lsap
//
// errors.go — the three error kinds of the assignment solver's boundary
// and engine layers. Sentinel-plus-wrap, checked via errors.Is/errors.As,
// mirroring the convention already used by matrix and core.

package lsap

import (
	"errors"
	"fmt"
)

// ErrInfeasible is the sentinel wrapped by every Infeasible value, so
// callers that only care about "could it be solved" can use a single
// errors.Is(err, lsap.ErrInfeasible) check without unwrapping the struct.
var ErrInfeasible = errors.New("lsap: cost matrix is infeasible")

// Infeasible reports that no unassigned column was reachable through
// finite-cost edges from the current row set during an augmentation step.
// All mutations performed on row4col/col4row/u/v prior to detection are
// left as-is; per SPEC_FULL §7, output buffers are unspecified on failure.
type Infeasible struct {
	FreeRow int // the row that could not be augmented
}

func (e *Infeasible) Error() string {
	return fmt.Sprintf("lsap: no augmenting path from row %d: %v", e.FreeRow, ErrInfeasible)
}

func (e *Infeasible) Unwrap() error { return ErrInfeasible }

// ErrShape is the sentinel wrapped by every ShapeError value.
var ErrShape = errors.New("lsap: shape precondition violated")

// ShapeError reports a boundary-layer precondition violation detected
// before any mutation — a malformed matrix, an out-of-range row, or a
// mismatched state-array length.
type ShapeError struct {
	Rows, Cols int    // matrix dimensions observed
	Reason     string // human-readable cause
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("lsap: shape error (rows=%d, cols=%d): %s: %v", e.Rows, e.Cols, e.Reason, ErrShape)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

// ErrType is the sentinel wrapped by every TypeError value.
var ErrType = errors.New("lsap: element kind mismatch")

// TypeError reports that a foreign numeric array's element kind could not
// be matched to the engine's (IndexT, CostT) instantiation. matrix.Dense is
// always float64 so SolveMatrix never raises this today; TypeError exists
// so the exported error surface matches SPEC_FULL §7 and a future narrower
// ingestion path (e.g. float32 buffers) has a sentinel to attach to without
// an API break.
type TypeError struct {
	Want, Got string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("lsap: type error: want %s, got %s: %v", e.Want, e.Got, ErrType)
}

func (e *TypeError) Unwrap() error { return ErrType }
