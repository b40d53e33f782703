package engine

import "container/heap"

// heapItem is one entry in the engine's reused priority queue. Like
// dijkstra.nodeItem, stale entries are discarded lazily on pop rather
// than tracked via decrease-key.
type heapItem struct {
	id   int
	dist float64
}

type nodePQ []*heapItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*heapItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

var _ heap.Interface = (*nodePQ)(nil)
