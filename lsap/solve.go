// SPDX-License-Identifier: MIT
// Package: lvlath/lsap
//
// solve.go — the solver driver: allocates state arrays, augments every
// row in ascending order, and exposes the ergonomic matrix/graph entry
// points that supplement the two-operation core (SPEC_FULL §10).

package lsap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/matrix"
)

// Solve computes an optimal assignment for c, returning the four state
// arrays row4col, col4row, u, v. The caller derives the optimal cost as
// sum(c.At(i, col4row[i])) over i (Solve does not compute it, per
// SPEC_FULL's Non-goals).
//
// Preconditions: c.Rows() <= c.Cols(). Violating this returns *ShapeError
// without allocating. Calling Solve twice on the same c yields bit-identical
// outputs (SPEC_FULL §8 round-trip property).
func Solve[IndexT Index, CostT Number](c CostMatrix[CostT]) (row4col, col4row []IndexT, u, v []CostT, err error) {
	nr, nc := c.Rows(), c.Cols()
	if err = validateShape(nr, nc); err != nil {
		return nil, nil, nil, nil, err
	}

	u = make([]CostT, nr)
	v = make([]CostT, nc)
	col4row = make([]IndexT, nr)
	row4col = make([]IndexT, nc)
	for i := range col4row {
		col4row[i] = unassigned
	}
	for j := range row4col {
		row4col[j] = unassigned
	}

	if nr == 0 || nc == 0 {
		return row4col, col4row, u, v, nil
	}

	scratch := newScratchState[IndexT, CostT](nc)
	for freeRow := 0; freeRow < nr; freeRow++ {
		if err = Augment(c, IndexT(freeRow), row4col, col4row, u, v, scratch); err != nil {
			return row4col, col4row, u, v, err
		}
	}

	return row4col, col4row, u, v, nil
}

// solveTraced is Solve's (int64, float64) instantiation with a per-row
// logAugment call interleaved, the form SolveMatrix drives so WithVerbose()
// traces every augmentation rather than only the final outcome.
func solveTraced(c CostMatrix[float64], tr *tracer) (row4col, col4row []int64, u, v []float64, err error) {
	nr, nc := c.Rows(), c.Cols()
	if err = validateShape(nr, nc); err != nil {
		return nil, nil, nil, nil, err
	}

	u = make([]float64, nr)
	v = make([]float64, nc)
	col4row = make([]int64, nr)
	row4col = make([]int64, nc)
	for i := range col4row {
		col4row[i] = unassigned
	}
	for j := range row4col {
		row4col[j] = unassigned
	}

	if nr == 0 || nc == 0 {
		return row4col, col4row, u, v, nil
	}

	scratch := newScratchState[int64, float64](nc)
	for freeRow := 0; freeRow < nr; freeRow++ {
		if err = Augment(c, int64(freeRow), row4col, col4row, u, v, scratch); err != nil {
			return row4col, col4row, u, v, err
		}
		tr.logAugment(freeRow, u, v, row4col, col4row)
	}

	return row4col, col4row, u, v, nil
}

// Result is the ergonomic, non-generic outcome of SolveMatrix/SolveGraph:
// int-indexed and float64-valued, the (int64, float64) instantiation most
// callers want without spelling out type parameters.
type Result struct {
	Row4Col []int     // Row4Col[j] = row assigned to column j, or -1
	Col4Row []int     // Col4Row[i] = column assigned to row i, or -1
	U       []float64 // row duals
	V       []float64 // column duals
}

// Options configures SolveMatrix/SolveGraph. See WithVerbose, WithMaximize,
// WithForceDoubles.
type Options struct {
	verbose      bool
	maximize     bool
	forceDoubles bool
}

// Option mutates Options. Functional-options pattern, matching matrix's
// and builder's Option/BuilderOption conventions.
type Option func(*Options)

// WithVerbose enables a structured trace (via logrus) of dual vectors and
// assignment arrays after each augmentation. Diagnostic only; never affects
// the result.
func WithVerbose() Option { return func(o *Options) { o.verbose = true } }

// WithMaximize negates the cost matrix before solving, turning the
// assignment into a maximization problem; ported from the original
// implementation's linear_sum_assignment(maximize=True).
func WithMaximize() Option { return func(o *Options) { o.maximize = true } }

// WithForceDoubles is a documented no-op retained for interface parity with
// the source boundary layer (SPEC_FULL §6): matrix.Dense is always
// float64, so there is nothing to narrow. Reserved for a future float32
// ingestion path.
func WithForceDoubles() Option { return func(o *Options) { o.forceDoubles = true } }

// SolveMatrix solves the assignment problem for m, transposing internally
// when m.Rows() > m.Cols() so any rectangular shape is accepted — the
// convenience the original implementation's linear_sum_assignment wrapper
// provided around solve_lsap (SPEC_FULL §10).
func SolveMatrix(m *matrix.Dense, opts ...Option) (Result, error) {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	transposed := m.Rows() > m.Cols()
	view := costMatrixFromDense(m, transposed, cfg.maximize)
	tr := newTracer(cfg.verbose)

	row4col, col4row, u, v, err := solveTraced(view, tr)
	tr.logSolve(m.Rows(), m.Cols(), transposed, err)
	if err != nil {
		return Result{}, err
	}

	if transposed {
		// The engine solved C^T (cols<=rows became rows<=cols); row4col and
		// col4row are exactly swapped relative to the caller's orientation.
		return Result{
			Row4Col: toIntSlice(col4row),
			Col4Row: toIntSlice(row4col),
			U:       v,
			V:       u,
		}, nil
	}

	return Result{
		Row4Col: toIntSlice(row4col),
		Col4Row: toIntSlice(col4row),
		U:       u,
		V:       v,
	}, nil
}

// SolveGraph solves the assignment problem for a bipartite core.Graph,
// bridging it to a Dense cost matrix via matrix.FromBipartite. rowIDs and
// colIDs fix the partition each side occupies; a missing edge is treated as
// unreachable (+Inf), which requires WithAllowInfDistances-equivalent
// tolerance — FromBipartite is always called with that policy enabled here
// since "no edge" is exactly the LSAP "forbidden pair" semantics.
func SolveGraph(g *core.Graph, rowIDs, colIDs []string, opts ...Option) (Result, error) {
	m, err := matrix.FromBipartite(g, rowIDs, colIDs, matrix.WithAllowInfDistances())
	if err != nil {
		return Result{}, fmt.Errorf("lsap.SolveGraph: %w", err)
	}

	return SolveMatrix(m, opts...)
}

// costMatrixFromDense adapts a *matrix.Dense to CostMatrix[float64],
// optionally transposed and/or negated (for WithMaximize).
type denseView struct {
	m          *matrix.Dense
	transposed bool
	negate     bool
}

func costMatrixFromDense(m *matrix.Dense, transposed, negate bool) CostMatrix[float64] {
	return &denseView{m: m, transposed: transposed, negate: negate}
}

func (d *denseView) Rows() int {
	if d.transposed {
		return d.m.Cols()
	}
	return d.m.Rows()
}

func (d *denseView) Cols() int {
	if d.transposed {
		return d.m.Rows()
	}
	return d.m.Cols()
}

func (d *denseView) At(i, j int) float64 {
	ii, jj := i, j
	if d.transposed {
		ii, jj = j, i
	}
	v, err := d.m.At(ii, jj)
	if err != nil {
		// Unreachable: Solve only ever calls At with in-range (i,j) derived
		// from Rows()/Cols() above.
		panic(fmt.Sprintf("lsap: internal: Dense.At(%d,%d): %v", ii, jj, err))
	}
	if d.negate && !math.IsInf(v, 1) {
		// A forbidden pair stays forbidden under maximize; only finite
		// costs flip sign. Negating +Inf into -Inf would otherwise turn a
		// prohibited edge into the single most attractive one.
		return -v
	}
	return v
}

func toIntSlice(xs []int64) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = int(x)
	}
	return out
}
