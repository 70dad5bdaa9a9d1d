package core

import "errors"

// Sentinel errors for graph operations. Every fallible operation in the
// library returns one of these kinds; match with errors.Is. The
// ErrInvalidOperation kind is wrapped with a human-readable reason at the
// point of failure (fmt.Errorf("%w: reason", ErrInvalidOperation)).
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexAlreadyExists indicates an attempted duplicate vertex insertion.
	ErrVertexAlreadyExists = errors.New("core: vertex already exists")

	// ErrEdgeAlreadyExists indicates an attempted duplicate edge insertion.
	ErrEdgeAlreadyExists = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidOperation indicates malformed external input, such as an
	// unparsable edge-list line. A detailed reason is attached by wrapping.
	ErrInvalidOperation = errors.New("core: invalid operation")
)
