package queue

// none marks an absent link inside a List arena.
const none = -1

// lnode is one slot of a List arena. Links are arena indices rather than
// pointers, so every node a List ever allocates stays inside one slice.
type lnode[T any] struct {
	item T
	next int // toward the rear, or none
	prev int // toward the front, or none
}

// List is a FIFO queue backed by a doubly linked chain of arena slots.
//
// Slots vacated by Dequeue are recycled through a free list before the arena
// grows, so a bounded List allocates at most capacity slots over its whole
// lifetime. The zero value is not usable; construct with NewList or
// NewBoundedList.
type List[T any] struct {
	nodes   []lnode[T]
	free    []int
	head    int
	tail    int
	size    int
	bound   int
	bounded bool
}

// NewList creates an empty unbounded List.
func NewList[T any]() *List[T] {
	return &List[T]{head: none, tail: none}
}

// NewBoundedList creates an empty List holding at most capacity items.
// Capacities below 1 are raised to 1.
func NewBoundedList[T any](capacity int) *List[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &List[T]{
		nodes:   make([]lnode[T], 0, capacity),
		head:    none,
		tail:    none,
		bound:   capacity,
		bounded: true,
	}
}

// Enqueue adds an item at the rear of the queue.
// Returns true if successful, false if the queue is full.
func (l *List[T]) Enqueue(item T) bool {
	if l.bounded && l.size >= l.bound {
		return false
	}
	idx := l.alloc(item)
	if l.tail == none {
		l.head = idx
	} else {
		l.nodes[l.tail].next = idx
		l.nodes[idx].prev = l.tail
	}
	l.tail = idx
	l.size++
	return true
}

// Dequeue removes and returns the frontmost item.
// Returns (item, true) if successful, (zero, false) if the queue is empty.
func (l *List[T]) Dequeue() (T, bool) {
	var zero T
	if l.head == none {
		return zero, false
	}
	idx := l.head
	item := l.nodes[idx].item
	l.head = l.nodes[idx].next
	if l.head == none {
		l.tail = none
	} else {
		l.nodes[l.head].prev = none
	}
	l.release(idx)
	l.size--
	return item, true
}

// PeekFront returns the frontmost item without removing it.
func (l *List[T]) PeekFront() (T, bool) {
	if l.head == none {
		var zero T
		return zero, false
	}
	return l.nodes[l.head].item, true
}

// PeekBack returns the rearmost item without removing it.
func (l *List[T]) PeekBack() (T, bool) {
	if l.tail == none {
		var zero T
		return zero, false
	}
	return l.nodes[l.tail].item, true
}

// Len returns the number of queued items.
func (l *List[T]) Len() int {
	return l.size
}

// Capacity returns the maximum number of items the queue may hold.
// Returns (0, false) if the queue is unbounded.
func (l *List[T]) Capacity() (int, bool) {
	if !l.bounded {
		return 0, false
	}
	return l.bound, true
}

// IsEmpty returns true if the queue holds no items.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// IsFull returns true if the queue is bounded and at capacity.
func (l *List[T]) IsFull() bool {
	return l.bounded && l.size >= l.bound
}

// Snapshot returns a front-to-rear copy of the queued items, walking the
// chain along next links.
func (l *List[T]) Snapshot() []T {
	if l.size == 0 {
		return nil
	}
	out := make([]T, 0, l.size)
	for idx := l.head; idx != none; idx = l.nodes[idx].next {
		out = append(out, l.nodes[idx].item)
	}
	return out
}

// SnapshotReverse returns a rear-to-front copy of the queued items, walking
// the chain along prev links.
func (l *List[T]) SnapshotReverse() []T {
	if l.size == 0 {
		return nil
	}
	out := make([]T, 0, l.size)
	for idx := l.tail; idx != none; idx = l.nodes[idx].prev {
		out = append(out, l.nodes[idx].item)
	}
	return out
}

// alloc claims a slot for a new unlinked node, reusing a freed slot when one
// is available and appending to the arena otherwise.
func (l *List[T]) alloc(item T) int {
	n := lnode[T]{item: item, next: none, prev: none}
	if k := len(l.free); k > 0 {
		idx := l.free[k-1]
		l.free = l.free[:k-1]
		l.nodes[idx] = n
		return idx
	}
	l.nodes = append(l.nodes, n)
	return len(l.nodes) - 1
}

// release clears a slot and returns it to the free list.
func (l *List[T]) release(idx int) {
	l.nodes[idx] = lnode[T]{next: none, prev: none}
	l.free = append(l.free, idx)
}
