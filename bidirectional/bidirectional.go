package bidirectional

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/pathops/graph"
)

// Query answers a one-off source-target shortest-path query over g,
// without reading or writing any Engine cache. See the package doc
// comment for the frontier-meeting algorithm and termination argument.
func Query(g *graph.Graph, source, target int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	n := g.N()
	if source < 0 || source >= n || target < 0 || target >= n {
		return Result{}, ErrVertexOutOfRange
	}
	if source == target {
		return Result{Distance: 0, Path: []int{source}, Reachable: true}, nil
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	distF := make([]float64, n)
	distB := make([]float64, n)
	parentF := make([]int, n)
	parentB := make([]int, n)
	for v := 0; v < n; v++ {
		distF[v] = math.Inf(1)
		distB[v] = math.Inf(1)
		parentF[v] = -1
		parentB[v] = -1
	}
	distF[source] = 0
	distB[target] = 0

	pqF := &nodePQ{}
	pqB := &nodePQ{}
	heap.Init(pqF)
	heap.Init(pqB)
	heap.Push(pqF, &heapItem{id: source, dist: 0})
	heap.Push(pqB, &heapItem{id: target, dist: 0})

	best := math.Inf(1)
	meet := -1

	for pqF.Len() > 0 || pqB.Len() > 0 {
		minF := pqF.top()
		minB := pqB.top()
		if minF+minB >= best {
			break
		}

		if pqB.Len() == 0 || (pqF.Len() > 0 && minF <= minB) {
			item := heap.Pop(pqF).(*heapItem)
			u, d := item.id, item.dist
			if d > distF[u] {
				continue // stale lazy-deleted entry
			}
			if !math.IsInf(distB[u], 1) {
				if cand := d + distB[u]; cand < best {
					best = cand
					meet = u
				}
			}
			out, err := g.IterOut(u)
			if err != nil {
				return Result{}, err
			}
			for _, e := range out {
				nd := d + e.Weight
				if nd > cfg.Threshold || nd >= distF[e.To] {
					continue
				}
				distF[e.To] = nd
				parentF[e.To] = u
				heap.Push(pqF, &heapItem{id: e.To, dist: nd})
			}
		} else {
			item := heap.Pop(pqB).(*heapItem)
			u, d := item.id, item.dist
			if d > distB[u] {
				continue
			}
			if !math.IsInf(distF[u], 1) {
				if cand := d + distF[u]; cand < best {
					best = cand
					meet = u
				}
			}
			in, err := g.IterIn(u)
			if err != nil {
				return Result{}, err
			}
			for _, e := range in {
				nd := d + e.Weight
				if nd > cfg.Threshold || nd >= distB[e.From] {
					continue
				}
				distB[e.From] = nd
				parentB[e.From] = u
				heap.Push(pqB, &heapItem{id: e.From, dist: nd})
			}
		}
	}

	if meet < 0 || math.IsInf(best, 1) {
		return Result{Distance: math.Inf(1), Reachable: false}, nil
	}

	return Result{
		Distance:  best,
		Path:      assemblePath(parentF, parentB, source, target, meet),
		Reachable: true,
	}, nil
}

// assemblePath walks parentF from the meeting vertex back to source,
// reverses it, then walks parentB from the meeting vertex forward to
// target and appends. meet itself appears exactly once, at the join.
func assemblePath(parentF, parentB []int, source, target, meet int) []int {
	fwd := []int{meet}
	for v := meet; v != source; {
		v = parentF[v]
		fwd = append(fwd, v)
	}
	for i, j := 0, len(fwd)-1; i < j; i, j = i+1, j-1 {
		fwd[i], fwd[j] = fwd[j], fwd[i]
	}

	bwd := make([]int, 0, 4)
	for v := parentB[meet]; v >= 0; {
		bwd = append(bwd, v)
		if v == target {
			break
		}
		v = parentB[v]
	}

	return append(fwd, bwd...)
}
