package engine

import (
	"container/heap"
	"math"
)

// ensureFresh brings the cache up to date for the given query, in the
// priority order documented in doc.go: dirty recompute first, then
// pending relaxations, then a full rebuild. target < 0 means "no target,
// do not prune" (used by Distance, which needs every vertex settled).
func (e *Engine) ensureFresh(target int) error {
	if e.source < 0 {
		return ErrNoSource
	}
	if e.committedVersion == e.graphVersion && e.committedThreshold == e.threshold {
		return nil
	}
	// Only a tree committed under the current threshold can be repaired.
	repairable := e.committedVersion >= 0 && e.committedThreshold == e.threshold
	if target >= 0 {
		// A target-pruned run leaves vertices beyond target stale, so
		// afterwards dist/parent no longer hold any committed tree.
		e.committedVersion = -1
	}
	if len(e.dirty) > 0 && repairable {
		return e.runDirtyRecompute()
	}
	if len(e.pendingRelax) > 0 && repairable {
		return e.runIncrementalDijkstra(target)
	}
	return e.runFullDijkstra(target)
}

// runFullDijkstra rebuilds dist/parent/children from scratch. Used when
// no usable cache exists: first query, after Invalidate, after a
// threshold change, or after a target-pruned run.
func (e *Engine) runFullDijkstra(target int) error {
	for v := 0; v < e.n; v++ {
		e.dist[v] = math.Inf(1)
		e.parent[v] = -1
	}
	e.children = make(map[int][]int)
	e.dist[e.source] = 0
	e.parent[e.source] = e.source

	e.pq = e.pq[:0]
	heap.Init(&e.pq)
	heap.Push(&e.pq, &heapItem{id: e.source, dist: 0})

	if err := e.runDijkstraLoop(target); err != nil {
		return err
	}

	e.pendingRelax = nil
	e.dirty = make(map[int]struct{})

	if target < 0 {
		e.committedVersion = e.graphVersion
		e.committedThreshold = e.threshold
	}
	return nil
}

// runIncrementalDijkstra handles Case A: pending relaxations from edge
// insertions or weight decreases are pushed into the (emptied) queue in
// one batch, then a single Dijkstra pass propagates the improvements.
func (e *Engine) runIncrementalDijkstra(target int) error {
	e.pq = e.pq[:0]
	heap.Init(&e.pq)

	for _, pe := range e.pendingRelax {
		if math.IsInf(e.dist[pe.from], 1) {
			continue // source side of the candidate edge isn't reachable
		}
		nd := e.dist[pe.from] + pe.weight
		if nd < e.dist[pe.to] && nd <= e.threshold {
			e.dist[pe.to] = nd
			e.setParent(pe.to, pe.from)
			heap.Push(&e.pq, &heapItem{id: pe.to, dist: nd})
		}
	}
	e.pendingRelax = nil

	if err := e.runDijkstraLoop(target); err != nil {
		return err
	}

	if target < 0 {
		e.committedVersion = e.graphVersion
		e.committedThreshold = e.threshold
	}
	return nil
}

// runDirtyRecompute handles Case B: vertices marked dirty by an edge
// removal or weight increase are reset to +Inf and the queue is reseeded
// from the source and from any still-valid boundary vertex holding an
// edge into the dirty set. This pass always runs to completion (no
// target pruning) and always commits, since a tightening mutation can
// worsen any descendant's distance and a partial run could leave the
// cache looking fresh while still wrong beyond the pruned frontier.
// Pending Case A relaxations whose edge still exists with the recorded
// weight are seeded into this same pass; the others are discarded, since
// they refer to an edge a later mutation removed or re-weighted, and
// replaying them could reintroduce a shortcut that no longer exists.
func (e *Engine) runDirtyRecompute() error {
	for v := range e.dirty {
		e.clearVertex(v)
		e.dist[v] = math.Inf(1)
	}

	e.dist[e.source] = 0
	e.parent[e.source] = e.source

	e.pq = e.pq[:0]
	heap.Init(&e.pq)
	heap.Push(&e.pq, &heapItem{id: e.source, dist: 0})

	for v := range e.dirty {
		in, err := e.g.IterIn(v)
		if err != nil {
			return err
		}
		for _, ed := range in {
			if _, stillDirty := e.dirty[ed.From]; stillDirty {
				continue
			}
			if ed.From == e.source {
				continue // already seeded above
			}
			if !math.IsInf(e.dist[ed.From], 1) {
				heap.Push(&e.pq, &heapItem{id: ed.From, dist: e.dist[ed.From]})
			}
		}
	}

	for _, pe := range e.pendingRelax {
		if w, ok, _ := e.g.GetWeight(pe.from, pe.to); !ok || w != pe.weight {
			continue // edge since removed or re-weighted
		}
		if math.IsInf(e.dist[pe.from], 1) {
			continue
		}
		if nd := e.dist[pe.from] + pe.weight; nd < e.dist[pe.to] && nd <= e.threshold {
			e.dist[pe.to] = nd
			e.setParent(pe.to, pe.from)
			heap.Push(&e.pq, &heapItem{id: pe.to, dist: nd})
		}
	}

	if err := e.runDijkstraLoop(-1); err != nil {
		return err
	}

	e.dirty = make(map[int]struct{})
	e.pendingRelax = nil
	e.committedVersion = e.graphVersion
	e.committedThreshold = e.threshold
	return nil
}

// runDijkstraLoop drains e.pq, relaxing out-edges against e.dist/e.parent
// under e.threshold, optionally stopping early once target is settled.
// Shared by all three recovery paths, matching the single reusable loop
// the cached engine is built around.
func (e *Engine) runDijkstraLoop(target int) error {
	for e.pq.Len() > 0 {
		item := heap.Pop(&e.pq).(*heapItem)
		u, d := item.id, item.dist

		if d > e.dist[u] {
			continue // stale lazy-deleted entry
		}
		if d > e.threshold {
			continue
		}
		if target >= 0 && u == target {
			break
		}

		out, err := e.g.IterOut(u)
		if err != nil {
			return err
		}
		for _, ed := range out {
			nd := d + ed.Weight
			if nd > e.threshold {
				continue
			}
			if nd >= e.dist[ed.To] {
				continue
			}
			e.dist[ed.To] = nd
			e.setParent(ed.To, u)
			heap.Push(&e.pq, &heapItem{id: ed.To, dist: nd})
		}
	}
	return nil
}

// setParent rewires v's parent link, keeping the children multimap in
// sync so addDirtyWithDescendants can walk a dirty vertex's subtree
// without an O(N) scan, per spec.md §9's children-multimap resolution.
func (e *Engine) setParent(v, newParent int) {
	if old := e.parent[v]; old >= 0 && old != v {
		e.removeChild(old, v)
	}
	e.parent[v] = newParent
	if newParent >= 0 && newParent != v {
		e.children[newParent] = append(e.children[newParent], v)
	}
}

func (e *Engine) removeChild(parent, child int) {
	kids := e.children[parent]
	for i, c := range kids {
		if c == child {
			kids[i] = kids[len(kids)-1]
			e.children[parent] = kids[:len(kids)-1]
			return
		}
	}
}

func (e *Engine) clearVertex(v int) {
	if old := e.parent[v]; old >= 0 && old != v {
		e.removeChild(old, v)
	}
	e.parent[v] = -1
	delete(e.children, v)
}

// addDirtyWithDescendants marks v dirty and, when sptAccurate is true,
// recurses into v's cached children. sptAccurate is true whenever a
// committed tree exists: dist/parent/children change only inside a run,
// and every run either commits or (when target-pruned) drops the
// commit, so while committedVersion >= 0 the children multimap is
// exactly the committed tree, however many mutations are queued since.
// Without a commit only v is marked, and ensureFresh does a full run.
func (e *Engine) addDirtyWithDescendants(v int, sptAccurate bool) {
	if _, ok := e.dirty[v]; ok {
		return
	}
	e.dirty[v] = struct{}{}
	if !sptAccurate {
		return
	}
	for _, c := range e.children[v] {
		e.addDirtyWithDescendants(c, sptAccurate)
	}
}

// notifyAdded records a Case A candidate for an inserted edge.
func (e *Engine) notifyAdded(u, v int, w float64) {
	e.graphVersion++
	e.pendingRelax = append(e.pendingRelax, pendingEdge{from: u, to: v, weight: w})
}

// notifyRemoved records a Case B mutation for a removed edge. v is
// marked dirty unconditionally: the removal can only be relevant if v's
// shortest path ran through it, but re-deriving that from the cache here
// would require walking the tree anyway, so the cheaper and always-safe
// move is to mark v (and its descendants, when the tree is known exact).
func (e *Engine) notifyRemoved(u, v int) {
	_ = u
	sptAccurate := e.committedVersion >= 0
	e.graphVersion++
	e.addDirtyWithDescendants(v, sptAccurate)
}

// notifyWeightChanged dispatches a weight change to Case A (decrease) or
// Case B (increase); an unchanged weight is a documented no-op.
func (e *Engine) notifyWeightChanged(u, v int, oldW, newW float64) {
	switch {
	case newW < oldW:
		e.notifyAdded(u, v, newW)
	case newW > oldW:
		sptAccurate := e.committedVersion >= 0
		e.graphVersion++
		e.addDirtyWithDescendants(v, sptAccurate)
	}
}
