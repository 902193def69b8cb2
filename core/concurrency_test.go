// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/lvlath/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls from many
// goroutines are safe and every edge lands in the final Edges() snapshot,
// the guarantee a parallel fixture builder depends on.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("Row", fmt.Sprintf("Col%d", id), int64(id))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	require.Equal(t, num, g.EdgeCount())
	require.Len(t, g.Edges(), num)
}

// TestConcurrentAddVertex verifies that concurrent AddVertex calls for the
// same and distinct IDs never corrupt the vertex catalog.
func TestConcurrentAddVertex(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", id%20)))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		require.True(t, g.HasVertex(fmt.Sprintf("V%d", i)))
	}
}

// TestConcurrentReadsDuringWrites validates that Edges/EdgeCount readers
// never race with concurrent AddEdge writers.
func TestConcurrentReadsDuringWrites(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	const writers = 50
	const readers = 50
	var wg sync.WaitGroup
	wg.Add(writers + readers)

	for i := 0; i < writers; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge("Row", fmt.Sprintf("Col%d", id), int64(id))
		}(i)
	}
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			_ = g.Edges()
			_ = g.EdgeCount()
		}()
	}
	wg.Wait()
}
