// SPDX-License-Identifier: MIT
package lsap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInfeasible_ErrorAndUnwrap(t *testing.T) {
	t.Parallel()

	e := &Infeasible{FreeRow: 3}
	require.Contains(t, e.Error(), "row 3")
	require.True(t, errors.Is(e, ErrInfeasible))
}

func TestShapeError_ErrorAndUnwrap(t *testing.T) {
	t.Parallel()

	e := &ShapeError{Rows: 3, Cols: 2, Reason: "nr must be <= nc"}
	require.Contains(t, e.Error(), "nr must be <= nc")
	require.True(t, errors.Is(e, ErrShape))
}

func TestTypeError_ErrorAndUnwrap(t *testing.T) {
	t.Parallel()

	e := &TypeError{Want: "float64", Got: "int"}
	require.Contains(t, e.Error(), "float64")
	require.Contains(t, e.Error(), "int")
	require.True(t, errors.Is(e, ErrType))
}
