// SPDX-License-Identifier: MIT
package lsap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDenseCost_RowsColsAt(t *testing.T) {
	t.Parallel()

	c := NewCostMatrix([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 3, c.Cols())
	require.Equal(t, 5.0, c.At(1, 1))
}

func TestDenseCost_EmptyHasZeroCols(t *testing.T) {
	t.Parallel()

	c := NewCostMatrix([][]float64{})
	require.Equal(t, 0, c.Rows())
	require.Equal(t, 0, c.Cols())
}

func TestScratchState_ResetIsDescendingAndIdempotent(t *testing.T) {
	t.Parallel()

	s := newScratchState[int64, float64](3)
	s.reset(2, 3)

	require.Equal(t, []int64{2, 1, 0}, s.remaining)
	require.Len(t, s.rowInTree, 2)
	for _, col := range s.dist {
		require.True(t, math.IsInf(col, 1))
	}
	for _, p := range s.pred {
		require.Equal(t, int64(unassigned), p)
	}

	// A second reset at a larger nr must re-grow rowInTree without losing
	// the fresh-false contract.
	s.reset(5, 3)
	require.Len(t, s.rowInTree, 5)
	for _, b := range s.rowInTree {
		require.False(t, b)
	}
}

func TestInfinity(t *testing.T) {
	t.Parallel()

	require.True(t, math.IsInf(infinity[float64](), 1))
	require.True(t, math.IsInf(float64(infinity[float32]()), 1))
}
