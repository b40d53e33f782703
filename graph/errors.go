package graph

import "errors"

// Sentinel errors returned by the graph package. Callers should branch
// on these with errors.Is rather than comparing error strings.
var (
	// ErrOutOfRange indicates a vertex identifier outside [0, N).
	ErrOutOfRange = errors.New("graph: vertex out of range")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")

	// ErrCapacityRejected indicates a construction-time capacity N
	// outside the allowed range [1, 100000].
	ErrCapacityRejected = errors.New("graph: capacity out of range")
)
