package event

import "container/heap"

// Queue is a binary min-heap of Events keyed on Time. Stale entries
// are left in place rather than scanned out; the scheduler discards them
// lazily on pop. No third-party priority-queue library appears anywhere
// in the retrieved pack, and container/heap is the idiomatic Go
// mechanism for exactly this shape — see DESIGN.md.
type Queue struct {
	items ordered
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	q := &Queue{}
	heap.Init(&q.items)
	return q
}

// Push inserts ev, maintaining the heap invariant.
func (q *Queue) Push(ev Event) {
	heap.Push(&q.items, ev)
}

// Pop removes and returns the earliest Event. It panics if the queue is
// empty; callers must check Len first.
func (q *Queue) Pop() Event {
	return heap.Pop(&q.items).(Event)
}

// Len returns the number of entries still queued, including any stale
// ones not yet discarded.
func (q *Queue) Len() int {
	return len(q.items)
}

// ordered implements heap.Interface. Ties break lexicographically by
// (Subject, Target) — an arbitrary but deterministic ordering.
type ordered []Event

func (o ordered) Len() int { return len(o) }

func (o ordered) Less(i, j int) bool {
	if o[i].Time != o[j].Time {
		return o[i].Time < o[j].Time
	}
	if o[i].Subject != o[j].Subject {
		return o[i].Subject < o[j].Subject
	}
	return o[i].Target < o[j].Target
}

func (o ordered) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

func (o *ordered) Push(x any) {
	*o = append(*o, x.(Event))
}

func (o *ordered) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	*o = old[:n-1]
	return item
}
