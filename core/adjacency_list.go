// File: adjacency_list.go
// Role: SimpleGraph storage, constructors and cloning.
//
// SimpleGraph keeps two maps: the adjacency list (vertex → neighbor set)
// and the weight map (ordered pair → weight). Directedness is fixed at
// construction; undirected graphs mirror every relation on both sides.
package core

// Unweighted is the weight placeholder for graphs that carry no weights.
type Unweighted = struct{}

// edgeKey is the ordered (From, To) pair keying the weight map.
type edgeKey[V comparable] struct {
	From V
	To   V
}

// SimpleGraph is an adjacency-list graph with set semantics: no duplicate
// edges, and no self-loops produced by the constructors. It implements
// Graph, GraphMut, WeightedGraph and WeightedGraphMut.
//
// SimpleGraph performs no internal locking. It assumes the single-owner
// discipline of one mutator at a time (any number of concurrent readers
// while no mutator is active); enforcing that discipline is the owning
// application's job.
type SimpleGraph[V comparable, W any] struct {
	adjacency map[V]map[V]struct{}
	weights   map[edgeKey[V]]W
	directed  bool
}

// Compile-time checks that SimpleGraph satisfies every capability.
var (
	_ Graph[int]                   = (*SimpleGraph[int, Unweighted])(nil)
	_ GraphMut[int]                = (*SimpleGraph[int, Unweighted])(nil)
	_ WeightedGraph[int, int64]    = (*SimpleGraph[int, int64])(nil)
	_ WeightedGraphMut[int, int64] = (*SimpleGraph[int, int64])(nil)
)

// newSimple allocates an empty SimpleGraph with the given directedness.
// Complexity: O(1)
func newSimple[V comparable, W any](directed bool) *SimpleGraph[V, W] {
	return &SimpleGraph[V, W]{
		adjacency: make(map[V]map[V]struct{}),
		weights:   make(map[edgeKey[V]]W),
		directed:  directed,
	}
}

// NewDirected creates an empty directed graph without weights.
func NewDirected[V comparable]() *SimpleGraph[V, Unweighted] {
	return newSimple[V, Unweighted](true)
}

// NewUndirected creates an empty undirected graph without weights.
func NewUndirected[V comparable]() *SimpleGraph[V, Unweighted] {
	return newSimple[V, Unweighted](false)
}

// NewWeightedDirected creates an empty directed graph with weights of type W.
func NewWeightedDirected[V comparable, W any]() *SimpleGraph[V, W] {
	return newSimple[V, W](true)
}

// NewWeightedUndirected creates an empty undirected graph with weights of type W.
func NewWeightedUndirected[V comparable, W any]() *SimpleGraph[V, W] {
	return newSimple[V, W](false)
}

// Directed reports the directedness fixed at construction.
func (g *SimpleGraph[V, W]) Directed() bool {
	return g.directed
}

// Clone returns a deep copy of the graph: adjacency sets and weight entries
// are copied, vertex and weight values are copied by assignment.
// Complexity: O(V + E)
func (g *SimpleGraph[V, W]) Clone() *SimpleGraph[V, W] {
	clone := newSimple[V, W](g.directed)
	for v, nbrs := range g.adjacency {
		set := make(map[V]struct{}, len(nbrs))
		for n := range nbrs {
			set[n] = struct{}{}
		}
		clone.adjacency[v] = set
	}
	for k, w := range g.weights {
		clone.weights[k] = w
	}

	return clone
}
