// SPDX-License-Identifier: MIT
// Package: lvlath/lsap
//
// trace.go — optional logrus-backed tracing for WithVerbose(), grounded on
// gazette-core's `log "github.com/sirupsen/logrus"` / WithField style.
// The engine itself (Augment/Solve) never imports this file's symbols
// directly; only the SolveMatrix/SolveGraph boundary wires it in, so the
// hot path stays allocation-free when tracing is off.

package lsap

import (
	log "github.com/sirupsen/logrus"
)

// tracer wraps the verbose flag so call sites read naturally
// (tracer.logSolve(...)) without an if cfg.verbose guard at every call site.
type tracer struct {
	enabled bool
}

func newTracer(enabled bool) *tracer {
	return &tracer{enabled: enabled}
}

// logSolve emits a single structured line describing a completed (or
// failed) SolveMatrix call. Diagnostic only; never affects the result.
func (t *tracer) logSolve(rows, cols int, transposed bool, err error) {
	if !t.enabled {
		return
	}
	entry := log.WithFields(log.Fields{
		"rows":       rows,
		"cols":       cols,
		"transposed": transposed,
	})
	if err != nil {
		entry.WithField("err", err).Warn("lsap: solve failed")
		return
	}
	entry.Debug("lsap: solve completed")
}

// logAugment emits a per-augmentation trace line: the free row just
// resolved, the dual vectors, and both assignment arrays. Called from
// solveTraced, the (int64, float64) loop SolveMatrix drives instead of the
// generic Solve, so the allocation-free generic path stays untouched by
// tracing concerns.
func (t *tracer) logAugment(freeRow int, u, v []float64, row4col, col4row []int64) {
	if !t.enabled {
		return
	}
	log.WithFields(log.Fields{
		"free_row": freeRow,
		"u":        u,
		"v":        v,
		"row4col":  row4col,
		"col4row":  col4row,
	}).Debug("lsap: augmented")
}
