// File: methods_vertices.go
// Role: SimpleGraph vertex lifecycle and vertex-level queries.
package core

// Vertices returns a snapshot of all vertices in unspecified order.
// Complexity: O(V)
func (g *SimpleGraph[V, W]) Vertices() []V {
	out := make([]V, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}

	return out
}

// HasVertex reports whether v exists in the graph.
// Complexity: O(1) expected
func (g *SimpleGraph[V, W]) HasVertex(v V) bool {
	_, ok := g.adjacency[v]

	return ok
}

// AddVertex inserts v with an empty neighbor set.
// Returns ErrVertexAlreadyExists if v is already present.
// Complexity: O(1) expected
func (g *SimpleGraph[V, W]) AddVertex(v V) error {
	if g.HasVertex(v) {
		return ErrVertexAlreadyExists
	}
	g.adjacency[v] = make(map[V]struct{})

	return nil
}

// RemoveVertex deletes v together with everything incident to it: v's own
// neighbor set, every reference to v in other neighbor sets, and every
// weight entry whose pair touches v. The caller never observes a partial
// removal. Returns ErrVertexNotFound if v is absent.
// Complexity: O(V + E)
func (g *SimpleGraph[V, W]) RemoveVertex(v V) error {
	if !g.HasVertex(v) {
		return ErrVertexNotFound
	}

	delete(g.adjacency, v)
	for k := range g.weights {
		if k.From == v || k.To == v {
			delete(g.weights, k)
		}
	}
	for _, nbrs := range g.adjacency {
		delete(nbrs, v)
	}

	return nil
}

// RemoveIsolatedVertices removes every vertex whose neighbor set is empty
// and returns the removed vertices in unspecified order.
// Returns ErrVertexNotFound when no vertex is isolated.
//
// The isolated set is computed up front, so each individual removal operates
// on an already-validated vertex; RemoveVertex cannot fail on this path.
// Complexity: O(V * (V + E)) worst case
func (g *SimpleGraph[V, W]) RemoveIsolatedVertices() ([]V, error) {
	isolated := IsolatedVertices[V](g)
	if len(isolated) == 0 {
		return nil, ErrVertexNotFound
	}

	for _, v := range isolated {
		if err := g.RemoveVertex(v); err != nil {
			return nil, err
		}
	}

	return isolated, nil
}
