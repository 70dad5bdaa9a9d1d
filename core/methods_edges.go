// File: methods_edges.go
// Role: SimpleGraph edge lifecycle, neighbor queries and the weight channel.
//
// Policy for the two maps: the adjacency list is the single source of truth
// for edge existence (HasEdge never consults the weight map); an unweighted
// edge simply has no weight entry. Mutations keep the maps consistent —
// RemoveEdge and RemoveVertex erase any weight entries for the relations
// they delete, mirrors included.
package core

// Neighbors returns a snapshot of v's neighbor set and true, or
// (nil, false) when v is not in the graph.
// Complexity: O(deg(v))
func (g *SimpleGraph[V, W]) Neighbors(v V) ([]V, bool) {
	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil, false
	}
	out := make([]V, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}

	return out, true
}

// HasEdge reports whether the relation u→v is stored in the adjacency list.
// Complexity: O(1) expected
func (g *SimpleGraph[V, W]) HasEdge(u, v V) bool {
	_, ok := g.adjacency[u][v]

	return ok
}

// AddEdge inserts the edge u→v, mirroring to v→u when undirected.
// Returns ErrVertexNotFound if either endpoint is absent and
// ErrEdgeAlreadyExists if the edge already exists. No weight is recorded;
// use SetEdgeWeight for the weight channel.
// Complexity: O(1) expected
func (g *SimpleGraph[V, W]) AddEdge(u, v V) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrVertexNotFound
	}
	if g.HasEdge(u, v) {
		return ErrEdgeAlreadyExists
	}

	g.adjacency[u][v] = struct{}{}
	if !g.directed {
		g.adjacency[v][u] = struct{}{}
	}

	return nil
}

// RemoveEdge deletes the edge u→v and any weight recorded for it; when
// undirected, the mirror relation v→u and its weight entry go too.
// Returns ErrEdgeNotFound if the edge is absent.
// Complexity: O(1) expected
func (g *SimpleGraph[V, W]) RemoveEdge(u, v V) error {
	if !g.HasEdge(u, v) {
		return ErrEdgeNotFound
	}

	delete(g.weights, edgeKey[V]{From: u, To: v})
	delete(g.adjacency[u], v)
	if !g.directed {
		delete(g.weights, edgeKey[V]{From: v, To: u})
		delete(g.adjacency[v], u)
	}

	return nil
}

// EdgeWeight returns the weight recorded for the ordered pair (u, v) and
// true, or (zero, false) when no weight is recorded. Adjacency is not
// consulted: an edge added through AddEdge alone has no weight.
// Complexity: O(1) expected
func (g *SimpleGraph[V, W]) EdgeWeight(u, v V) (W, bool) {
	w, ok := g.weights[edgeKey[V]{From: u, To: v}]

	return w, ok
}

// SetEdgeWeight records weight for (u, v) as an idempotent upsert. Unlike
// AddEdge it also CREATES the adjacency relation when missing, so the
// weight-implies-adjacency invariant holds on this path. When undirected,
// both the relation and the weight are mirrored to (v, u).
// Returns ErrVertexNotFound if either endpoint is absent.
// Complexity: O(1) expected
func (g *SimpleGraph[V, W]) SetEdgeWeight(u, v V, weight W) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrVertexNotFound
	}

	g.adjacency[u][v] = struct{}{}
	g.weights[edgeKey[V]{From: u, To: v}] = weight
	if !g.directed {
		g.adjacency[v][u] = struct{}{}
		g.weights[edgeKey[V]{From: v, To: u}] = weight
	}

	return nil
}
