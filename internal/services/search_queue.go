package services

import "container/heap"

type queued[S any] struct {
	state S
	seq   uint64
}

// searchQueue is a min-priority queue over search states. Ordering is given
// by less; states that compare equal pop in insertion order, so the search is
// deterministic without ever comparing paths.
type searchQueue[S any] struct {
	items []queued[S]
	less  func(a, b S) bool
	next  uint64
}

func newSearchQueue[S any](less func(a, b S) bool) *searchQueue[S] {
	return &searchQueue[S]{less: less}
}

func (q *searchQueue[S]) push(s S) {
	heap.Push(q, queued[S]{state: s, seq: q.next})
	q.next++
}

func (q *searchQueue[S]) pop() S {
	return heap.Pop(q).(queued[S]).state
}

func (q *searchQueue[S]) Len() int { return len(q.items) }

func (q *searchQueue[S]) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if q.less(a.state, b.state) {
		return true
	}
	if q.less(b.state, a.state) {
		return false
	}
	return a.seq < b.seq
}

func (q *searchQueue[S]) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *searchQueue[S]) Push(x any) { q.items = append(q.items, x.(queued[S])) }

func (q *searchQueue[S]) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}
