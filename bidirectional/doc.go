// Package bidirectional answers one-off source-target shortest-path
// queries by running two independent Dijkstra searches at once — forward
// from source over outgoing edges, backward from target over incoming
// edges — and stopping as soon as their frontiers guarantee no shorter
// meeting point remains.
//
// Unlike package engine, Query never reads or writes any cache: it
// takes a *graph.Graph directly and is safe to call regardless of what
// source an Engine bound to the same graph currently has pinned.
//
// On each iteration the search with the smaller top-of-queue distance
// is advanced (ties favor forward). A vertex settled by one direction
// that has already been reached by the other updates the best known
// meeting cost. The searches terminate once minF + minB, the cheapest
// possible cost of any undiscovered path, reaches or exceeds that best
// cost — sound only because all weights are non-negative.
package bidirectional
