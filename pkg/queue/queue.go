// Package queue provides in-memory FIFO containers with an optional fixed
// capacity and bidirectional snapshot traversal.
//
// Implementations are not safe for concurrent use. The admission line is
// driven by a single synchronous session, so a queue shared across
// goroutines must have every call serialized by the caller.
package queue

// Queue is a generic interface for FIFO queues.
type Queue[T any] interface {
	// Enqueue adds an item at the rear of the queue.
	// Returns true if successful, false if the queue is full.
	Enqueue(item T) bool

	// Dequeue removes and returns the frontmost item.
	// Returns (item, true) if successful, (zero, false) if the queue is empty.
	Dequeue() (T, bool)

	// PeekFront returns the frontmost item without removing it.
	// Returns (zero, false) if the queue is empty.
	PeekFront() (T, bool)

	// PeekBack returns the rearmost item without removing it.
	// Returns (zero, false) if the queue is empty.
	PeekBack() (T, bool)

	// Len returns the number of queued items.
	Len() int

	// Capacity returns the maximum number of items the queue may hold.
	// Returns (0, false) if the queue is unbounded.
	Capacity() (int, bool)

	// IsEmpty returns true if the queue holds no items.
	IsEmpty() bool

	// IsFull returns true if the queue is bounded and at capacity.
	IsFull() bool

	// Snapshot returns a front-to-rear copy of the queued items, or nil when
	// the queue is empty. The copy does not reflect later mutations.
	Snapshot() []T

	// SnapshotReverse returns a rear-to-front copy of the queued items. For
	// every queue state it is exactly the reverse of Snapshot.
	SnapshotReverse() []T
}
