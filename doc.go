// Package kambograph is an in-memory toolkit for building and querying
// directed and undirected graphs, weighted or not, behind one small set of
// capability interfaces.
//
// What is kambograph?
//
//	A minimal, pure-Go graph data-structure library built around:
//		• Capability contracts: Graph, GraphMut, WeightedGraph, WeightedGraphMut
//		• One concrete structure: SimpleGraph, an adjacency-list graph with
//		  set semantics (no duplicate edges) and an independent weight channel
//		• Derived analytics: order, edge count, degree, isolated-vertex checks,
//		  computed from the primitive queries for ANY implementation
//		• Edge-list ingestion: a line-oriented reader producing
//		  (source, target, optional weight) triples
//
// Why choose kambograph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Polymorphic – write algorithms against the interfaces, not a struct
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	core/       — error taxonomy, capability interfaces, derived analytics,
//	              and the SimpleGraph adjacency-list implementation
//	edgelist/   — line-oriented edge-list parsing and graph population
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges.
//
// Dive into each package's doc.go for complexity notes, sentinel errors and
// usage examples.
//
//	go get github.com/kambohq/kambograph
package kambograph

// Version is the current release of the library.
const Version = "0.2.0"
