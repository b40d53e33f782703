package engine

import (
	"math"

	"github.com/katalvlaran/pathops/graph"
)

// pendingEdge is a Case A candidate: an edge whose weight may have
// improved some dist[to], awaiting a batched flush.
type pendingEdge struct {
	from, to int
	weight   float64
}

// Engine caches a single-source shortest-path tree over a graph.Graph
// and incrementally repairs it across mutations. See the package doc
// comment for the freshness protocol.
type Engine struct {
	g *graph.Graph
	n int

	source int // -1 == unset

	dist     []float64
	parent   []int
	children map[int][]int // children[u] = {c : parent[c] == u}, co-maintained with parent

	graphVersion       int64
	committedVersion   int64 // -1 == no prior commit
	threshold          float64
	committedThreshold float64

	pendingRelax []pendingEdge
	dirty        map[int]struct{}

	pq nodePQ // storage reused across runs; every run starts with an empty queue
}

// New constructs an Engine bound to a freshly created graph.Graph of the
// given capacity. capacity must be in [1, graph.MaxCapacity].
func New(capacity int, opts ...Option) (*Engine, error) {
	g, err := graph.New(capacity)
	if err != nil {
		return nil, ErrCapacityRejected
	}

	e := &Engine{
		g:                  g,
		n:                  capacity,
		source:             -1,
		dist:               make([]float64, capacity),
		parent:             make([]int, capacity),
		children:           make(map[int][]int),
		committedVersion:   -1,
		threshold:          math.Inf(1),
		committedThreshold: math.Inf(1),
		dirty:              make(map[int]struct{}),
	}
	for v := 0; v < capacity; v++ {
		e.dist[v] = math.Inf(1)
		e.parent[v] = -1
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Graph exposes the underlying graph.Graph, e.g. for a bidirectional
// query against the exact same edges the engine is caching.
func (e *Engine) Graph() *graph.Graph { return e.g }

// SetSource pins the source vertex for subsequent queries. Changing the
// source clears all per-source state (dist, parent, pending, dirty,
// committed version) and leaves the Graph untouched; the next query
// triggers a full run.
func (e *Engine) SetSource(s int) error {
	if s < 0 || s >= e.n {
		return ErrOutOfRange
	}
	if e.source != s {
		e.source = s
		e.resetPerSourceState()
	}
	return nil
}

// SetThreshold stores max(t, 0); non-finite or negative values map to
// +Inf. A threshold change does not bump the graph version (it is not a
// graph mutation) but does force the next query to treat the cache as
// not fresh, per spec.md §9's resolution of the threshold/commit
// interaction open question.
func (e *Engine) SetThreshold(t float64) {
	nt := normalizeThreshold(t)
	if nt == e.threshold {
		return
	}
	e.threshold = nt
	if e.committedVersion >= 0 {
		// NaN never compares equal to anything, including itself, so
		// this permanently fails the freshness check in ensureFresh
		// until the next successful commit re-records a real threshold.
		e.committedThreshold = math.NaN()
	}
}

// AddEdge inserts (u, v, w) into the bound Graph and, if it was newly
// inserted, notifies the engine of a Case A (relaxing) mutation.
func (e *Engine) AddEdge(u, v int, w float64) (bool, error) {
	added, err := e.g.Add(u, v, w)
	if err != nil {
		return false, err
	}
	if added {
		e.notifyAdded(u, v, w)
	}
	return added, nil
}

// RemoveEdge deletes (u, v) from the bound Graph and, if it was present,
// notifies the engine of a Case B (tightening) mutation.
func (e *Engine) RemoveEdge(u, v int) (bool, error) {
	removed, err := e.g.Remove(u, v)
	if err != nil {
		return false, err
	}
	if removed {
		e.notifyRemoved(u, v)
	}
	return removed, nil
}

// SetEdge sets the weight of (u, v), inserting it if absent, and
// notifies the engine as Case A or Case B depending on whether the
// weight decreased or increased (an unchanged weight is a no-op, per
// spec.md §9).
func (e *Engine) SetEdge(u, v int, w float64) error {
	prior, err := e.g.SetWeight(u, v, w)
	if err != nil {
		return err
	}
	if prior == graph.NoPriorWeight {
		e.notifyAdded(u, v, w)
	} else {
		e.notifyWeightChanged(u, v, prior, w)
	}
	return nil
}

// Invalidate forces the next query to do a full recompute. Use this
// after mutating the bound Graph directly, bypassing AddEdge/RemoveEdge/
// SetEdge, since neither pending relaxations nor the dirty set can
// safely describe an externally-applied mutation.
func (e *Engine) Invalidate() {
	e.graphVersion++
	e.dirty = make(map[int]struct{})
	e.pendingRelax = nil
	e.committedVersion = -1
}

// Distance ensures the cache is fresh everywhere, then returns dist[target].
func (e *Engine) Distance(target int) (float64, error) {
	if target < 0 || target >= e.n {
		return 0, ErrOutOfRange
	}
	if err := e.ensureFresh(-1); err != nil {
		return 0, err
	}
	return e.dist[target], nil
}

// ShortestPath ensures the cache is fresh up to target (target pruning
// permitted) and returns the distance, path, and reachability.
func (e *Engine) ShortestPath(target int) (Result, error) {
	if target < 0 || target >= e.n {
		return Result{}, ErrOutOfRange
	}
	if err := e.ensureFresh(target); err != nil {
		return Result{}, err
	}
	if math.IsInf(e.dist[target], 1) {
		return Result{Distance: math.Inf(1), Reachable: false}, nil
	}
	return Result{
		Distance:  e.dist[target],
		Path:      e.reconstructPath(target),
		Reachable: true,
	}, nil
}

func (e *Engine) resetPerSourceState() {
	for v := 0; v < e.n; v++ {
		e.dist[v] = math.Inf(1)
		e.parent[v] = -1
	}
	e.children = make(map[int][]int)
	e.pendingRelax = nil
	e.dirty = make(map[int]struct{})
	e.committedVersion = -1
	e.pq = e.pq[:0]
}

// reconstructPath walks parent from target back to source and reverses,
// per spec.md §4.2.5.
func (e *Engine) reconstructPath(target int) []int {
	path := make([]int, 0, 8)
	v := target
	for {
		path = append(path, v)
		if v == e.source {
			break
		}
		if e.parent[v] < 0 {
			// Defensive: dist[target] finite should already guarantee a
			// connected parent chain to source.
			break
		}
		v = e.parent[v]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
