package bidirectional

import "errors"

var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to Query.
	ErrNilGraph = errors.New("bidirectional: graph is nil")

	// ErrVertexOutOfRange indicates source or target lies outside [0, N).
	ErrVertexOutOfRange = errors.New("bidirectional: vertex out of range")
)
