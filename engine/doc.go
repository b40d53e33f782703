// Package engine implements the incremental single-source shortest-path
// cache described by the pathops specification: pin a source vertex,
// answer repeated distance/path queries against a graph.Graph that keeps
// changing underneath it, and do so at a fraction of the cost of a
// from-scratch Dijkstra run after small mutations.
//
// The engine tracks a graph version counter and a "committed" version
// (plus committed threshold) that together decide, at query time,
// whether the cached shortest-path tree (SPT) is fresh. When it isn't,
// one of three recovery paths runs, in strict priority order:
//
//   - Case B, dirty recompute: an edge removal or weight increase can
//     only raise distances. Affected vertices are marked dirty (the
//     mutation's head plus, when a committed shortest-path tree exists,
//     its descendants in that tree) and reset to +Inf before a bounded
//     Dijkstra pass reconciles them from the source and from unaffected
//     boundary vertices.
//   - Case A, batched incremental heal: an edge insertion or weight
//     decrease can only lower distances. Pending relaxations are
//     pushed into the priority queue in one batch and a single
//     Dijkstra pass propagates the improvements.
//   - Full Dijkstra: no usable cache exists (no prior commit,
//     invalidate() was called, the threshold changed since the last
//     commit, or the last run stopped early at a target), so the SPT is
//     rebuilt from scratch.
//
// Both the dirty and pending-relaxation paths require a prior commit
// (committedVersion >= 0) made under the current threshold; without one
// there is no cached dist/parent state to repair incrementally, so
// ensureFresh falls back to a full run regardless of what dirty/pending
// bookkeeping has accumulated.
//
// Dirty work always takes priority over pending relaxations, because a
// tightening mutation can invalidate distances a pending relaxation
// assumes are still correct (see the package's ensureFresh). A dirty
// recompute seeds its own pass with the pending relaxations whose edge
// still exists with the recorded weight and discards the rest, since
// those refer to an edge a later mutation removed or re-weighted.
//
// Single-target queries (ShortestPath) may terminate the underlying
// Dijkstra pass early once the target is settled (target pruning); in
// that case the engine drops its committed state, since vertices beyond
// the target may hold stale distances, and the next query that finds
// the cache stale runs a full Dijkstra.
//
// Concurrency: like graph.Graph, Engine takes no lock and assumes a
// single logical actor issuing mutations and queries in a serialized
// stream (spec §5). Embedders needing concurrent access must serialize
// externally.
package engine
