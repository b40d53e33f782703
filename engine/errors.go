package engine

import "errors"

// Sentinel errors returned by the engine package.
var (
	// ErrOutOfRange indicates a vertex identifier outside [0, N).
	ErrOutOfRange = errors.New("engine: vertex out of range")

	// ErrNoSource indicates a query was issued before SetSource.
	ErrNoSource = errors.New("engine: no source set")

	// ErrCapacityRejected indicates a construction-time capacity N
	// outside the allowed range [1, graph.MaxCapacity].
	ErrCapacityRejected = errors.New("engine: capacity out of range")
)
