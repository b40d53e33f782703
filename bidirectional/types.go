package bidirectional

import "math"

// Result mirrors engine.Result: an unreachable target is +Inf distance,
// a nil path, and Reachable == false.
type Result struct {
	Distance  float64
	Path      []int
	Reachable bool
}

// Options configures a Query call.
type Options struct {
	Threshold float64
}

// Option follows the functional-option shape used by dijkstra.Option
// and engine.Option throughout this module.
type Option func(*Options)

// WithThreshold caps expansion to edges whose tentative distance does
// not exceed threshold. Negative or non-finite values normalize to +Inf.
func WithThreshold(threshold float64) Option {
	return func(o *Options) {
		if math.IsNaN(threshold) || threshold < 0 {
			o.Threshold = math.Inf(1)
			return
		}
		o.Threshold = threshold
	}
}

func defaultOptions() Options {
	return Options{Threshold: math.Inf(1)}
}
