package bidirectional

import "math"

// heapItem is one entry in a direction's priority queue. Same lazy
// deletion discipline as dijkstra.nodeItem and engine.heapItem.
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

// top returns the smallest distance currently queued, or +Inf if empty.
func (pq nodePQ) top() float64 {
	if len(pq) == 0 {
		return math.Inf(1)
	}
	return pq[0].dist
}
