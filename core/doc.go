// Package core defines the capability contracts for graph-like structures —
// Graph, GraphMut, WeightedGraph, WeightedGraphMut — together with
// SimpleGraph, the adjacency-list implementation satisfying all of them.
//
// Capability model:
//
//	– Graph[V]             read-only queries: vertices, neighbors, membership,
//	                       directedness.
//	– GraphMut[V]          structural mutation: add/remove vertex, add/remove
//	                       edge, bulk isolated-vertex pruning.
//	– WeightedGraph[V, W]  read-only weight lookup keyed by ordered pairs.
//	– WeightedGraphMut[V, W] weight upsert (may create adjacency).
//
// Derived analytics — Order, EdgeCount, Degree, IsolatedVertices,
// HasIsolatedVertex — are package-level generic functions computed purely
// from the Graph[V] primitives, so every implementation of the interface
// gets them for free. Algorithm code should accept the interfaces, never
// *SimpleGraph directly.
//
// SimpleGraph invariants:
//
//	– Undirected graphs keep neighbor sets symmetric: every stored relation
//	  u→v has a mirror v→u maintained by the mutation paths.
//	– Set semantics: no duplicate edges; self-loops are never produced by
//	  the constructors (and not explicitly rejected by AddEdge).
//	– Weights live in a separate map keyed by the ordered (from, to) pair;
//	  an unweighted edge simply has no weight entry.
//	– RemoveVertex cascades: the vertex, every neighbor-set reference to it,
//	  and every weight entry touching it disappear in one call.
//
// SimpleGraph is a single-owner structure: callers are responsible for the
// exclusive-writer / shared-reader discipline, there is no internal locking.
//
// Errors (sentinel):
//
//	– ErrVertexNotFound      referenced vertex absent.
//	– ErrVertexAlreadyExists duplicate vertex insertion.
//	– ErrEdgeAlreadyExists   duplicate edge insertion.
//	– ErrEdgeNotFound        referenced edge absent.
//	– ErrInvalidOperation    malformed external input; wrapped with a reason.
//
// Complexity:
//
//	– Membership and single-edge mutation: O(1) expected.
//	– RemoveVertex: O(V + E) (neighbor-set scan + weight-map scrub).
//	– Derived analytics: O(V) to O(V + E) over the primitive queries.
package core
