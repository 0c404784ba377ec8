package search

import "container/heap"

// frontier is the engine's pending-work collection. Push priorities are
// ignored by the unordered implementations.
type frontier interface {
	push(id string, priority float64)
	pop() (string, bool)
	size() int
}

// newFrontier selects the frontier implementation for a variant:
// FIFO for BFS, LIFO for DFS, a min-heap for the priority variants.
func newFrontier(v Variant) frontier {
	switch v {
	case BFS:
		return &fifoFrontier{}
	case DFS:
		return &lifoFrontier{}
	default:
		return newHeapFrontier()
	}
}

// fifoFrontier is a plain queue: dequeue from the head.
type fifoFrontier struct {
	items []string
}

func (f *fifoFrontier) push(id string, _ float64) { f.items = append(f.items, id) }

func (f *fifoFrontier) pop() (string, bool) {
	if len(f.items) == 0 {
		return "", false
	}
	id := f.items[0]
	f.items = f.items[1:]

	return id, true
}

func (f *fifoFrontier) size() int { return len(f.items) }

// lifoFrontier is a stack: pop from the top.
type lifoFrontier struct {
	items []string
}

func (f *lifoFrontier) push(id string, _ float64) { f.items = append(f.items, id) }

func (f *lifoFrontier) pop() (string, bool) {
	n := len(f.items)
	if n == 0 {
		return "", false
	}
	id := f.items[n-1]
	f.items = f.items[:n-1]

	return id, true
}

func (f *lifoFrontier) size() int { return len(f.items) }

// heapFrontier is a min-heap ordered by priority. A monotonically
// increasing insertion counter breaks ties so equal-priority entries pop
// in FIFO order; the tie-break keeps animation traces deterministic.
type heapFrontier struct {
	pq  itemPQ
	seq uint64
}

func newHeapFrontier() *heapFrontier {
	f := &heapFrontier{pq: make(itemPQ, 0)}
	heap.Init(&f.pq)

	return f
}

func (f *heapFrontier) push(id string, priority float64) {
	heap.Push(&f.pq, &pqItem{id: id, priority: priority, seq: f.seq})
	f.seq++
}

func (f *heapFrontier) pop() (string, bool) {
	if f.pq.Len() == 0 {
		return "", false
	}
	item := heap.Pop(&f.pq).(*pqItem)

	return item.id, true
}

func (f *heapFrontier) size() int { return f.pq.Len() }

// pqItem pairs a node ID with its priority key and insertion sequence.
type pqItem struct {
	id       string
	priority float64
	seq      uint64
}

// itemPQ implements heap.Interface as a min-heap of *pqItem ordered by
// priority, then insertion sequence. We use the lazy-decrease-key pattern:
// improved priorities push fresh entries rather than adjusting old ones.
type itemPQ []*pqItem

// Len returns the number of items in the heap.
func (pq itemPQ) Len() int { return len(pq) }

// Less orders by priority ascending, breaking ties by insertion order.
func (pq itemPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq itemPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new element; called by heap.Push.
func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }

// Pop removes and returns the minimal element; called by heap.Pop.
func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
