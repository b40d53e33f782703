package dijkstra

import "math"

// Options configures a single Run call.
//
// Target     – if set (>= 0), Run stops as soon as Target is popped from
//
//	the heap with its final distance (target pruning). Default
//	-1 (no target; explore every reachable vertex).
//
// Threshold  – tentative distances strictly greater than Threshold are
//
//	not explored. Default +Inf (no cap).
type Options struct {
	Target    int
	Threshold float64
}

// Option is a functional option for Run, matching the shape of the
// teacher's dijkstra.Option (Source/WithReturnPath/WithMaxDistance).
type Option func(*Options)

// WithTarget enables target pruning: Run stops as soon as the given
// vertex is settled. Distances to vertices beyond the target's settled
// distance are not guaranteed to be correct.
func WithTarget(target int) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// WithThreshold caps exploration to tentative distances <= threshold.
// Negative thresholds are normalized to +Inf, matching spec.md §3's
// "threshold ≥ 0 or threshold = +∞; negative inputs are normalized".
func WithThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold < 0 {
			threshold = math.Inf(1)
		}
		o.Threshold = threshold
	}
}

func defaultOptions() Options {
	return Options{
		Target:    -1,
		Threshold: math.Inf(1),
	}
}
