package queue

// Ring is a FIFO queue backed by a contiguous circular buffer.
//
// A bounded Ring allocates its full capacity up front and never reallocates.
// An unbounded Ring doubles its buffer whenever it runs out of room, rotating
// the queued items back to the start of the new buffer.
type Ring[T any] struct {
	buf     []T
	head    int // buffer index of the frontmost item while size > 0
	size    int
	bound   int // maximum size; meaningful only while bounded is true
	bounded bool
}

// NewRing creates an empty unbounded Ring.
func NewRing[T any]() *Ring[T] {
	return &Ring[T]{}
}

// NewBoundedRing creates an empty Ring holding at most capacity items.
// Capacities below 1 are raised to 1.
func NewBoundedRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{
		buf:     make([]T, capacity),
		bound:   capacity,
		bounded: true,
	}
}

// Enqueue adds an item at the rear of the queue.
// Returns true if successful, false if the queue is full.
func (r *Ring[T]) Enqueue(item T) bool {
	if r.bounded && r.size >= r.bound {
		return false
	}
	if r.size == len(r.buf) {
		r.grow()
	}
	r.buf[r.wrap(r.head+r.size)] = item
	r.size++
	return true
}

// Dequeue removes and returns the frontmost item.
// Returns (item, true) if successful, (zero, false) if the queue is empty.
func (r *Ring[T]) Dequeue() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	item := r.buf[r.head]
	r.buf[r.head] = zero // drop the reference so it can be collected
	r.head = r.wrap(r.head + 1)
	r.size--
	return item, true
}

// PeekFront returns the frontmost item without removing it.
func (r *Ring[T]) PeekFront() (T, bool) {
	if r.size == 0 {
		var zero T
		return zero, false
	}
	return r.buf[r.head], true
}

// PeekBack returns the rearmost item without removing it.
func (r *Ring[T]) PeekBack() (T, bool) {
	if r.size == 0 {
		var zero T
		return zero, false
	}
	return r.buf[r.wrap(r.head+r.size-1)], true
}

// Len returns the number of queued items.
func (r *Ring[T]) Len() int {
	return r.size
}

// Capacity returns the maximum number of items the queue may hold.
// Returns (0, false) if the queue is unbounded.
func (r *Ring[T]) Capacity() (int, bool) {
	if !r.bounded {
		return 0, false
	}
	return r.bound, true
}

// IsEmpty returns true if the queue holds no items.
func (r *Ring[T]) IsEmpty() bool {
	return r.size == 0
}

// IsFull returns true if the queue is bounded and at capacity.
func (r *Ring[T]) IsFull() bool {
	return r.bounded && r.size >= r.bound
}

// Snapshot returns a front-to-rear copy of the queued items.
func (r *Ring[T]) Snapshot() []T {
	if r.size == 0 {
		return nil
	}
	out := make([]T, r.size)
	for i := range out {
		out[i] = r.buf[r.wrap(r.head+i)]
	}
	return out
}

// SnapshotReverse returns a rear-to-front copy of the queued items.
func (r *Ring[T]) SnapshotReverse() []T {
	if r.size == 0 {
		return nil
	}
	out := make([]T, r.size)
	for i := range out {
		out[i] = r.buf[r.wrap(r.head+r.size-1-i)]
	}
	return out
}

// wrap maps a logical offset from head onto a buffer index.
func (r *Ring[T]) wrap(i int) int {
	return i % len(r.buf)
}

// grow doubles the buffer and rotates the queued items to the front, so the
// occupied region is contiguous again. Only called when the buffer is
// completely full, which keeps amortized Enqueue O(1).
func (r *Ring[T]) grow() {
	next := 2 * len(r.buf)
	if next == 0 {
		next = 1
	}
	buf := make([]T, next)
	copy(buf, r.buf[r.head:])
	copy(buf[len(r.buf)-r.head:], r.buf[:r.head])
	r.buf = buf
	r.head = 0
}
