// Package graph implements the mutable, weighted, directed graph that
// backs the pathops incremental shortest-path engine.
//
// Vertices are plain integers in the half-open range [0, N), where N is
// the capacity fixed at construction. There is no per-vertex allocation:
// every vertex slot exists from construction on, whether or not it has
// any incident edges. Edges are stored twice, once as an outgoing record
// at From and once as an incoming record at To, so that both forward
// traversal (IterOut, used by single-source Dijkstra) and backward
// traversal (IterIn, used by the bidirectional search's reverse half) are
// O(degree) rather than O(E).
//
// At most one edge is kept per ordered pair (from, to); SetWeight on an
// absent pair inserts rather than failing, matching a set-or-insert
// contract. Per-vertex adjacency is a plain slice scanned linearly on
// mutation — acceptable given the sparse degree the spec assumes, and
// it keeps the representation simple enough that the invariant "every
// outgoing record has exactly one mirrored incoming record" is easy to
// see by inspection of Add/Remove/SetWeight.
//
// Concurrency: unlike the teacher's core.Graph, this Graph takes no
// lock. The spec's scheduling model is single-threaded cooperative (one
// logical actor issues mutations and queries in a serialized stream);
// adding synchronization here would protect against a caller pattern
// the spec explicitly disclaims. Embedders that need concurrent access
// must serialize externally — one Graph per goroutine, or an external
// mutex around the whole mutation/query surface.
package graph
