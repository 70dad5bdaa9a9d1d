// File: queries.go
// Role: Derived analytics computed from the Graph primitives.
//
// These functions are generic over the Graph capability, so every
// implementation of the interface gets them for free — the Go rendering of
// default-derived operations on the read-only contract.
package core

// Order returns the number of vertices in g.
//
// Complexity: O(V) through the Vertices snapshot.
func Order[V comparable](g Graph[V]) int {
	return len(g.Vertices())
}

// EdgeCount returns the number of edges in g.
//
// For directed graphs this is the sum of out-degrees. For undirected graphs
// every edge appears twice in the symmetric adjacency representation, so the
// degree sum is halved; the result is only meaningful while the symmetry
// invariant holds.
//
// Complexity: O(V + E).
func EdgeCount[V comparable](g Graph[V]) int {
	var total int
	for _, v := range g.Vertices() {
		if nbrs, ok := g.Neighbors(v); ok {
			total += len(nbrs)
		}
	}
	if !g.Directed() {
		total /= 2
	}

	return total
}

// Degree returns the neighbor count of v (out-degree for directed graphs)
// and true, or (0, false) when v is not in the graph.
func Degree[V comparable](g Graph[V], v V) (int, bool) {
	nbrs, ok := g.Neighbors(v)
	if !ok {
		return 0, false
	}

	return len(nbrs), true
}

// IsolatedVertices returns every vertex of g whose neighbor set is empty.
// The result is a snapshot in unspecified order; nil when none are isolated.
//
// Complexity: O(V).
func IsolatedVertices[V comparable](g Graph[V]) []V {
	var isolated []V
	for _, v := range g.Vertices() {
		if nbrs, ok := g.Neighbors(v); ok && len(nbrs) == 0 {
			isolated = append(isolated, v)
		}
	}

	return isolated
}

// HasIsolatedVertex reports whether g contains at least one vertex with an
// empty neighbor set. Short-circuits on the first hit.
func HasIsolatedVertex[V comparable](g Graph[V]) bool {
	for _, v := range g.Vertices() {
		if nbrs, ok := g.Neighbors(v); ok && len(nbrs) == 0 {
			return true
		}
	}

	return false
}
