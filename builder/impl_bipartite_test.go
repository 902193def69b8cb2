// Package builder_test exercises CompleteBipartite, the sole topology
// factory retained for generating randomized rectangular cost-matrix fixtures.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlath/builder"
	"github.com/katalvlaran/lvlath/core"
	"github.com/stretchr/testify/require"
)

type edgeKey struct{ U, V string }

func sortedEdgeWeights(g *core.Graph) map[edgeKey]int64 {
	m := make(map[edgeKey]int64)
	for _, e := range g.Edges() {
		m[edgeKey{U: e.From, V: e.To}] = e.Weight
	}
	return m
}

func TestCompleteBipartite_Shape(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		nil,
		builder.CompleteBipartite(2, 3),
	)
	require.NoError(t, err)

	for _, id := range []string{"L0", "L1", "R0", "R1", "R2"} {
		require.True(t, g.HasVertex(id), "expected vertex %s", id)
	}
	require.Len(t, g.Edges(), 6) // 2*3 cross edges

	edges := sortedEdgeWeights(g)
	_, ok := edges[edgeKey{"L0", "R0"}]
	require.True(t, ok, "expected L0->R0")
	_, ok = edges[edgeKey{"L1", "R2"}]
	require.True(t, ok, "expected L1->R2")
}

func TestCompleteBipartite_TooFewVertices(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(nil, nil, builder.CompleteBipartite(0, 3))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.CompleteBipartite(3, 0))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCompleteBipartite_CustomPrefixesAndWeights(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{
			builder.WithPartitionPrefix("Worker", "Task"),
			builder.WithRand(rng),
			builder.WithWeightFn(func(r *rand.Rand) int64 { return 1 + r.Int63n(10) }),
		},
		builder.CompleteBipartite(2, 2),
	)
	require.NoError(t, err)

	require.True(t, g.HasVertex("Worker0"))
	require.True(t, g.HasVertex("Task1"))
	_, ok := sortedEdgeWeights(g)[edgeKey{"Worker0", "Task1"}]
	require.True(t, ok, "expected Worker0->Task1")
}

func TestCompleteBipartite_CustomIDScheme(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithHexIDs()},
		builder.CompleteBipartite(1, 17),
	)
	require.NoError(t, err)

	// idx 16 rendered in hex is "10", not the decimal default "16".
	require.True(t, g.HasVertex("R10"))
	require.False(t, g.HasVertex("R16"))
}

func TestCompleteBipartite_Idempotent(t *testing.T) {
	t.Parallel()

	ctor := builder.CompleteBipartite(3, 2)
	opts := []core.GraphOption{core.WithWeighted()}

	g1, err := builder.BuildGraph(opts, nil, ctor)
	require.NoError(t, err)
	g2, err := builder.BuildGraph(opts, nil, ctor)
	require.NoError(t, err)

	require.Equal(t, len(g1.Edges()), len(g2.Edges()))
}
