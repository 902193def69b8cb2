// Package core models a bipartite cost graph: two vertex partitions and the
// weighted edges between them, the shape SolveGraph needs to run the
// assignment solver over a graph instead of a dense matrix.
//
// A Graph is just enough to build that shape safely from concurrent
// goroutines (vertex and edge catalogs behind their own sync.RWMutex) and
// read it back deterministically. It has no directed/undirected mode and no
// removal/clone/view operations. AddEdge does not reject self-loops or
// parallel edges: every call is recorded as its own edge with a fresh ID.
//
// Configuration Options (GraphOption):
//
//	– WithWeighted()
//	    Permits non-zero edge weights; otherwise AddEdge(weight != 0) returns
//	    ErrBadWeight. A graph built without it only ever represents an
//	    unweighted (0-cost) bipartite topology.
//
// Core Methods:
//
//	AddVertex(id string) error                          // O(1), idempotent
//	HasVertex(id string) bool                            // O(1)
//	AddEdge(from, to string, weight int64) (string, error) // O(1) amortized
//	Edges() []*Edge                                       // O(E log E), sorted by Edge.ID
//	EdgeCount() int                                       // O(1)
//	Weighted() bool                                       // O(1)
//
// Edge struct fields:
//
//	ID     string // "e1", "e2", ...
//	From   string // source vertex ID (the row partition, by SolveGraph convention)
//	To     string // destination vertex ID (the column partition)
//	Weight int64  // assignment cost
//
// Errors:
//
//	ErrEmptyVertexID – zero-length vertex ID
//	ErrBadWeight     – non-zero weight on a graph built without WithWeighted
package core
