package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlath/builder"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/matrix"
	"github.com/stretchr/testify/require"
)

func TestFromBipartite_DenseShapeAndWeights(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithWeightFn(func(r *rand.Rand) int64 { return 3 })},
		builder.CompleteBipartite(2, 3),
	)
	require.NoError(t, err)

	m, err := matrix.FromBipartite(g, []string{"L0", "L1"}, []string{"R0", "R1", "R2"})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

func TestFromBipartite_MissingEdgeRequiresAllowInfDistances(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("L0"))
	require.NoError(t, g.AddVertex("R0"))
	require.NoError(t, g.AddVertex("R1"))
	_, err := g.AddEdge("L0", "R0", 5)
	require.NoError(t, err)

	_, err = matrix.FromBipartite(g, []string{"L0"}, []string{"R0", "R1"})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.FromBipartite(g, []string{"L0"}, []string{"R0", "R1"}, matrix.WithAllowInfDistances())
	require.NoError(t, err)
	v0, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v0)
	v1, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsInf(v1, 1))
}

func TestFromBipartite_UnknownVertex(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("L0"))

	_, err := matrix.FromBipartite(g, []string{"L0"}, []string{"R0"})
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)
}

func TestFromBipartite_NilGraph(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromBipartite(nil, []string{"L0"}, []string{"R0"})
	require.ErrorIs(t, err, matrix.ErrGraphNil)
}
