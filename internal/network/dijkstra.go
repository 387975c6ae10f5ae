package network

import (
	"container/heap"
	"math"
)

type distItem struct {
	node int
	dist float64
}

// distQueue is a min-heap of tentative distances. Stale entries are left in
// place and skipped when popped (lazy decrease-key).
type distQueue []distItem

func (q distQueue) Len() int { return len(q) }
func (q distQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].node < q[j].node
}
func (q distQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *distQueue) Push(x any) { *q = append(*q, x.(distItem)) }

func (q *distQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// shortestFrom runs Dijkstra from the location at index src and returns a
// dense row; unreachable entries hold +Inf.
func (n *Network) shortestFrom(src int) []float64 {
	dist := make([]float64, len(n.locations))
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src] = 0

	visited := make([]bool, len(n.locations))
	pq := distQueue{{node: src, dist: 0}}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(distItem)
		u := item.node
		if visited[u] {
			continue
		}
		visited[u] = true

		for v, w := range n.direct[n.locations[u]] {
			j := n.index[v]
			if visited[j] {
				continue
			}
			if nd := item.dist + w; nd < dist[j] {
				dist[j] = nd
				heap.Push(&pq, distItem{node: j, dist: nd})
			}
		}
	}

	return dist
}
