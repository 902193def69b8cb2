// Package core_test verifies core.Graph construction and option handling.
package core_test

import (
	"testing"

	"github.com/katalvlaran/lvlath/core"
	"github.com/stretchr/testify/require"
)

// TestNewGraph_Defaults verifies a default Graph starts empty and unweighted.
func TestNewGraph_Defaults(t *testing.T) {
	g := core.NewGraph()

	require.False(t, g.Weighted())
	require.Equal(t, 0, g.EdgeCount())
	require.Empty(t, g.Edges())
	require.False(t, g.HasVertex("A"))
}

// TestWithWeighted verifies the option toggles weight enforcement.
func TestWithWeighted(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.True(t, g.Weighted())

	_, err := g.AddEdge("Row0", "Col0", 42)
	require.NoError(t, err)
}

// TestEdge_Fields verifies AddEdge populates every Edge field as documented.
func TestEdge_Fields(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	id, err := g.AddEdge("Row0", "Col1", 7)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	edges := g.Edges()
	require.Len(t, edges, 1)
	require.Equal(t, id, edges[0].ID)
	require.Equal(t, "Row0", edges[0].From)
	require.Equal(t, "Col1", edges[0].To)
	require.Equal(t, int64(7), edges[0].Weight)
}
