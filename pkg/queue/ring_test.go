package queue

import "testing"

// =============================================================================
// Constructor Boundary Tests
// =============================================================================

func TestNewBoundedRing_BoundaryCapacity(t *testing.T) {
	tests := []struct {
		name         string
		capacity     int
		wantCapacity int
	}{
		{"zero_uses_minimum", 0, 1},
		{"one_exact", 1, 1},
		{"negative_uses_minimum", -5, 1},
		{"negative_large_uses_minimum", -1000, 1},
		{"two_exact", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewBoundedRing[int](tt.capacity)
			got, bounded := q.Capacity()
			if !bounded {
				t.Fatal("Capacity() bounded = false, want true")
			}
			if got != tt.wantCapacity {
				t.Errorf("Capacity() = %d, want %d", got, tt.wantCapacity)
			}
		})
	}
}

func TestRing_ZeroValueIsEmptyUnbounded(t *testing.T) {
	var q Ring[int]

	if !q.IsEmpty() {
		t.Error("zero Ring should be empty")
	}
	if _, bounded := q.Capacity(); bounded {
		t.Error("zero Ring should be unbounded")
	}
	if !q.Enqueue(1) {
		t.Fatal("Enqueue on zero Ring should succeed")
	}
	v, ok := q.Dequeue()
	if !ok || v != 1 {
		t.Errorf("Dequeue() = (%d, %v), want (1, true)", v, ok)
	}
}

// =============================================================================
// Buffer Management Tests
// =============================================================================

func TestRing_GrowPreservesOrder(t *testing.T) {
	q := NewRing[int]()

	// Advance head past the buffer start, then push enough items to force
	// several growths while the occupied region wraps around.
	for i := 0; i < 3; i++ {
		q.Enqueue(i)
	}
	for i := 0; i < 2; i++ {
		q.Dequeue()
	}
	for i := 100; i < 164; i++ {
		q.Enqueue(i)
	}

	want := 2
	if v, ok := q.Dequeue(); !ok || v != want {
		t.Fatalf("Dequeue() = (%d, %v), want (%d, true)", v, ok, want)
	}
	for want = 100; want < 164; want++ {
		v, ok := q.Dequeue()
		if !ok || v != want {
			t.Fatalf("Dequeue() = (%d, %v), want (%d, true)", v, ok, want)
		}
	}
	if !q.IsEmpty() {
		t.Errorf("queue should be empty, Len() = %d", q.Len())
	}
}

func TestRing_BoundedNeverReallocates(t *testing.T) {
	const capacity = 4
	q := NewBoundedRing[int](capacity)

	// Churn well past capacity so writes wrap repeatedly.
	for i := 0; i < 10*capacity; i++ {
		if !q.Enqueue(i) {
			t.Fatalf("Enqueue(%d) failed on non-full queue", i)
		}
		if _, ok := q.Dequeue(); !ok {
			t.Fatalf("Dequeue %d failed", i)
		}
	}

	if len(q.buf) != capacity {
		t.Errorf("len(buf) = %d after churn, want %d", len(q.buf), capacity)
	}
}

func TestRing_SnapshotAfterWrap(t *testing.T) {
	q := NewBoundedRing[int](4)

	// Fill, drain half, refill so the occupied region straddles the
	// buffer end.
	for i := 1; i <= 4; i++ {
		q.Enqueue(i)
	}
	q.Dequeue()
	q.Dequeue()
	q.Enqueue(5)
	q.Enqueue(6)

	want := []int{3, 4, 5, 6}
	got := q.Snapshot()
	if len(got) != len(want) {
		t.Fatalf("len(Snapshot()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Snapshot()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	back, ok := q.PeekBack()
	if !ok || back != 6 {
		t.Errorf("PeekBack() = (%d, %v), want (6, true)", back, ok)
	}
}

func TestRing_DequeueReleasesSlot(t *testing.T) {
	q := NewBoundedRing[*int](2)

	v := 42
	q.Enqueue(&v)
	q.Dequeue()

	// The vacated slot must not retain the pointer.
	if q.buf[0] != nil {
		t.Error("dequeued slot should be zeroed")
	}
}
