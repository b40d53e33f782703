// Package dijkstra provides a single-source Dijkstra over a pathops
// graph.Graph. It is the static, non-incremental baseline the rest of
// the module is measured against: engine's property tests run this
// package on the same graph.Graph state the engine is caching and
// assert the two agree, which is precisely spec.md §1's correctness
// claim ("correctness matches a from-scratch Dijkstra run").
//
// Complexity: O((V + E) log V) time, O(V + E) space, using a min-heap
// with the lazy-decrease-key pattern (stale heap entries are discarded
// on pop rather than updated in place).
//
// Options:
//
//   - WithTarget(t):    stop once t is popped with its final distance
//     (target pruning); vertices beyond t may be left at
//     their initial +Inf even though their true distance
//     is finite.
//   - WithThreshold(d): suppress expansion to any vertex whose tentative
//     distance would exceed d.
//
// Errors (sentinel): ErrNilGraph, ErrVertexOutOfRange.
package dijkstra
