package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/pathops/graph"
)

// Run computes shortest distances from source over g. dist[v] is
// math.Inf(1) for unreachable v (or for v beyond a target-pruned run's
// settled frontier). parent[v] is the predecessor on the cached
// shortest path, or -1 if v has none; parent[source] == source is the
// root sentinel.
func Run(g *graph.Graph, source int, opts ...Option) (dist []float64, parent []int, err error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if source < 0 || source >= g.N() {
		return nil, nil, ErrVertexOutOfRange
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Target >= g.N() {
		return nil, nil, ErrVertexOutOfRange
	}

	n := g.N()
	dist = make([]float64, n)
	parent = make([]int, n)
	for v := 0; v < n; v++ {
		dist[v] = math.Inf(1)
		parent[v] = -1
	}
	dist[source] = 0
	parent[source] = source

	pq := &nodePQ{}
	heap.Init(pq)
	heap.Push(pq, &nodeItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*nodeItem)
		u, d := item.id, item.dist

		if d > dist[u] {
			continue // stale lazy-deleted entry
		}
		if d > cfg.Threshold {
			continue
		}
		if cfg.Target >= 0 && u == cfg.Target {
			break
		}

		out, ierr := g.IterOut(u)
		if ierr != nil {
			return nil, nil, ierr
		}
		for _, e := range out {
			nd := d + e.Weight
			if nd > cfg.Threshold {
				continue
			}
			if nd >= dist[e.To] {
				continue
			}
			dist[e.To] = nd
			parent[e.To] = u
			heap.Push(pq, &nodeItem{id: e.To, dist: nd})
		}
	}

	return dist, parent, nil
}

type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, using the
// lazy-decrease-key pattern: duplicate pushes are cheaper than
// maintaining heap positions for decrease-key.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
