package dijkstra

import "errors"

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to Run.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexOutOfRange indicates the source or target vertex lies
	// outside the graph's [0, N) range.
	ErrVertexOutOfRange = errors.New("dijkstra: vertex out of range")
)
