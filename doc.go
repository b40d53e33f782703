// Package pathops is an incremental single-source shortest-path cache
// over a dynamic directed weighted graph.
//
// 🚀 What is pathops?
//
//	A pure-Go library that pins a source vertex, answers repeated
//	distance/path queries, and repairs its cache in place as the graph
//	changes underneath it — instead of rerunning Dijkstra from scratch
//	after every edit:
//		• graph — capacity-bounded directed weighted digraph, int-indexed
//		• dijkstra — from-scratch shortest-path oracle, no caching
//		• engine — the incremental cache: relaxing edits heal in one
//		  batched pass, tightening edits trigger a bounded dirty recompute
//		• bidirectional — stateless forward+backward query for one-off
//		  source/target pairs that never touches engine state
//
// ✨ Why choose pathops?
//
//   - Cheap after small edits — Case A (edge added / weight decreased)
//     and Case B (edge removed / weight increased) are handled
//     differently, and only the affected part of the tree is redone
//   - Pure Go — no cgo, no hidden deps
//   - Single-threaded by design — no lock overhead for the common case
//     of one logical actor issuing mutations and queries in sequence
//
// Quick ASCII example:
//
//	 0 --1--> 1 --2--> 2 --1--> 3
//
//	set_source(0); distance(3) -> 4; shortest_path(3) -> path [0,1,2,3].
//	add_edge(0,2,1); shortest_path(3) -> heals to distance 2, path [0,2,3],
//	without recomputing vertex 1's subtree.
//
// See SPEC_FULL.md and DESIGN.md in the module root for the full
// component design and the reasoning behind each package's shape.
package pathops
