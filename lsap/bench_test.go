// SPDX-License-Identifier: MIT
package lsap

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlath/builder"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/matrix"
)

// randomDenseFixture builds a K_{nr,nc} complete bipartite graph with a
// seeded weight draw and bridges it to a dense cost matrix via
// matrix.FromBipartite, the same path cmd/lsapctl random exercises.
func randomDenseFixture(b *testing.B, nr, nc int, seed int64) CostMatrix[float64] {
	b.Helper()

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightFn(func(r *rand.Rand) int64 { return r.Int63n(100) }),
		},
		builder.CompleteBipartite(nr, nc),
	)
	if err != nil {
		b.Fatal(err)
	}

	left := make([]string, nr)
	for i := range left {
		left[i] = fmt.Sprintf("L%d", i)
	}
	right := make([]string, nc)
	for j := range right {
		right[j] = fmt.Sprintf("R%d", j)
	}

	m, err := matrix.FromBipartite(g, left, right, matrix.WithAllowInfDistances())
	if err != nil {
		b.Fatal(err)
	}
	return costMatrixFromDense(m, false, false)
}

func BenchmarkSolve_Square50(b *testing.B) {
	c := randomDenseFixture(b, 50, 50, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, _, err := Solve[int64, float64](c)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Rectangular20x200(b *testing.B) {
	c := randomDenseFixture(b, 20, 200, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, _, err := Solve[int64, float64](c)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAugment_SingleRow200Cols(b *testing.B) {
	nc := 200
	c := randomDenseFixture(b, 1, nc, 3)
	scratch := newScratchState[int64, float64](nc)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		row4col := make([]int64, nc)
		col4row := make([]int64, 1)
		u := make([]float64, 1)
		v := make([]float64, nc)
		for j := range row4col {
			row4col[j] = unassigned
		}
		col4row[0] = unassigned
		if err := Augment(c, int64(0), row4col, col4row, u, v, scratch); err != nil {
			b.Fatal(err)
		}
	}
}
