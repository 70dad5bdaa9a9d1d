// File: api.go
// Role: Capability contracts implemented by concrete graph structures.
//
// Algorithms should be written against these interfaces, not against
// *SimpleGraph, so any structure honoring the contracts can be dropped in.
package core

// Graph is the read-only capability every graph-like structure must support.
//
// The vertex type V is an opaque, caller-supplied identifier; comparability
// gives map-key hashing and equality, the library generates no identifiers
// of its own.
//
// Vertices and Neighbors return owned snapshot slices: finite, re-enumerable
// any number of times, unspecified order (the storage is an unordered map).
// Callers may retain and re-range the slices freely; later mutation of the
// graph does not affect an already returned snapshot.
type Graph[V comparable] interface {
	// Vertices returns a snapshot of all vertices in the graph.
	Vertices() []V

	// Neighbors returns a snapshot of v's neighbor set and true, or
	// (nil, false) when v is not in the graph. Absence is signaled
	// structurally, never by an error.
	Neighbors(v V) ([]V, bool)

	// HasVertex reports whether v exists in the graph. O(1) expected.
	HasVertex(v V) bool

	// HasEdge reports whether the edge u→v exists in the adjacency
	// structure. For undirected graphs the relation is symmetric, so
	// HasEdge(u, v) == HasEdge(v, u). O(1) expected.
	HasEdge(u, v V) bool

	// Directed reports the directedness fixed at construction.
	Directed() bool
}

// GraphMut extends Graph with structural mutation.
type GraphMut[V comparable] interface {
	Graph[V]

	// AddVertex inserts v with an empty neighbor set.
	// Returns ErrVertexAlreadyExists if v is already present.
	AddVertex(v V) error

	// RemoveVertex deletes v, every neighbor-set reference to v, and every
	// weight entry incident to v, atomically from the caller's perspective.
	// Returns ErrVertexNotFound if v is absent.
	RemoveVertex(v V) error

	// AddEdge inserts the edge u→v (and the mirror v→u when undirected).
	// Returns ErrVertexNotFound if either endpoint is absent and
	// ErrEdgeAlreadyExists if the edge already exists.
	AddEdge(u, v V) error

	// RemoveEdge deletes the edge u→v (and the mirror when undirected),
	// together with any weight recorded for it.
	// Returns ErrEdgeNotFound if the edge is absent.
	RemoveEdge(u, v V) error

	// RemoveIsolatedVertices removes every vertex whose neighbor set is
	// empty and returns the removed vertices. Returns ErrVertexNotFound
	// when the graph has no isolated vertex.
	RemoveIsolatedVertices() ([]V, error)
}

// WeightedGraph extends Graph with a read-only weight channel keyed by
// ordered vertex pairs, stored independently of the adjacency relation.
type WeightedGraph[V comparable, W any] interface {
	Graph[V]

	// EdgeWeight returns the weight recorded for the ordered pair (u, v)
	// and true, or (zero, false) when no weight is recorded. It does not
	// fall back to checking adjacency.
	EdgeWeight(u, v V) (W, bool)
}

// WeightedGraphMut extends WeightedGraph and GraphMut with weight mutation.
type WeightedGraphMut[V comparable, W any] interface {
	WeightedGraph[V, W]
	GraphMut[V]

	// SetEdgeWeight records weight for (u, v) as an idempotent upsert,
	// ensuring the adjacency relation u→v exists (creating it if needed,
	// unlike AddEdge). When undirected, both the adjacency relation and the
	// weight entry are mirrored to (v, u).
	// Returns ErrVertexNotFound if either endpoint is absent.
	SetEdgeWeight(u, v V, weight W) error
}
