package triage

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/huynhanx03/triage-queue/pkg/queue"
)

// newDesk builds a desk over a ring line. Capacity 0 means unbounded.
func newDesk(capacity int) *Desk {
	if capacity == 0 {
		return NewDesk(queue.NewRing[Patient](), nil)
	}
	return NewDesk(queue.NewBoundedRing[Patient](capacity), nil)
}

// =============================================================================
// Admission Tests
// =============================================================================

func TestAdmit(t *testing.T) {
	tests := []struct {
		name         string
		capacity     int
		admissions   int
		wantOk       []bool
		wantAdmitted int
	}{
		{
			name:         "single_admission",
			capacity:     4,
			admissions:   1,
			wantOk:       []bool{true},
			wantAdmitted: 1,
		},
		{
			name:         "fill_to_capacity",
			capacity:     2,
			admissions:   2,
			wantOk:       []bool{true, true},
			wantAdmitted: 2,
		},
		{
			name:         "reject_when_full",
			capacity:     2,
			admissions:   4,
			wantOk:       []bool{true, true, false, false},
			wantAdmitted: 4,
		},
		{
			name:         "unbounded_never_rejects",
			capacity:     0,
			admissions:   10,
			wantOk:       []bool{true, true, true, true, true, true, true, true, true, true},
			wantAdmitted: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDesk(tt.capacity)
			for i := 0; i < tt.admissions; i++ {
				_, ok := d.Admit(100+i, "patient", 3)
				if ok != tt.wantOk[i] {
					t.Errorf("Admit #%d = %v, want %v", i+1, ok, tt.wantOk[i])
				}
			}
			if got := d.Admitted(); got != tt.wantAdmitted {
				t.Errorf("Admitted() = %d, want %d", got, tt.wantAdmitted)
			}
		})
	}
}

func TestAdmit_StampsArrivalSequence(t *testing.T) {
	d := newDesk(4)

	for want := 1; want <= 3; want++ {
		p, ok := d.Admit(want, "patient", 3)
		if !ok {
			t.Fatalf("Admit #%d failed", want)
		}
		if p.Arrival != want {
			t.Errorf("Arrival = %d, want %d", p.Arrival, want)
		}
	}
}

func TestAdmit_RejectionBurnsArrivalStamp(t *testing.T) {
	d := newDesk(1)

	p1, ok := d.Admit(101, "first", 3)
	if !ok || p1.Arrival != 1 {
		t.Fatalf("Admit(first) = (%+v, %v), want Arrival 1", p1, ok)
	}

	// Rejected admission still consumes stamp 2.
	if _, ok := d.Admit(102, "second", 3); ok {
		t.Fatal("Admit on full line should fail")
	}

	if _, ok := d.ServeNext(); !ok {
		t.Fatal("ServeNext should succeed")
	}

	p3, ok := d.Admit(103, "third", 3)
	if !ok {
		t.Fatal("Admit after ServeNext should succeed")
	}
	if p3.Arrival != 3 {
		t.Errorf("Arrival after burnt stamp = %d, want 3", p3.Arrival)
	}
	if got := d.Admitted(); got != 3 {
		t.Errorf("Admitted() = %d, want 3", got)
	}
}

func TestAdmit_DuplicateIDsAllowed(t *testing.T) {
	d := newDesk(4)

	d.Admit(7, "first", 2)
	p, ok := d.Admit(7, "second", 4)
	if !ok {
		t.Fatal("Admit with duplicate ID should succeed")
	}
	if p.ID != 7 || p.Arrival != 2 {
		t.Errorf("Admit = %+v, want ID 7 Arrival 2", p)
	}
}

// =============================================================================
// Serving Tests
// =============================================================================

func TestServeNext(t *testing.T) {
	t.Run("empty_line", func(t *testing.T) {
		d := newDesk(4)
		if _, ok := d.ServeNext(); ok {
			t.Error("ServeNext on empty line should return false")
		}
	})

	t.Run("first_come_first_served", func(t *testing.T) {
		d := newDesk(4)
		names := []string{"alice", "bob", "carol"}
		for i, name := range names {
			d.Admit(100+i, name, 3)
		}

		for _, want := range names {
			p, ok := d.ServeNext()
			if !ok {
				t.Fatalf("ServeNext failed, want %q", want)
			}
			if p.Name != want {
				t.Errorf("ServeNext().Name = %q, want %q", p.Name, want)
			}
		}
	})

	t.Run("severity_never_reorders", func(t *testing.T) {
		d := newDesk(4)
		d.Admit(1, "mild", 1)
		d.Admit(2, "critical", 5)

		p, _ := d.ServeNext()
		if p.Name != "mild" {
			t.Errorf("ServeNext().Name = %q, want %q (arrival order, not severity)", p.Name, "mild")
		}
	})
}

func TestDesk_RejectThenReadmit(t *testing.T) {
	d := newDesk(2)

	if _, ok := d.Admit(1, "a", 3); !ok {
		t.Fatal("Admit(a) should succeed")
	}
	if _, ok := d.Admit(2, "b", 3); !ok {
		t.Fatal("Admit(b) should succeed")
	}
	if _, ok := d.Admit(3, "c", 3); ok {
		t.Fatal("Admit(c) on full line should fail")
	}
	if got := d.Size(); got != 2 {
		t.Fatalf("Size() after rejection = %d, want 2", got)
	}

	served, ok := d.ServeNext()
	if !ok || served.Name != "a" {
		t.Fatalf("ServeNext() = (%+v, %v), want a", served, ok)
	}

	if _, ok := d.Admit(3, "c", 3); !ok {
		t.Fatal("Admit(c) after serving should succeed")
	}

	waiting := d.Waiting()
	if len(waiting) != 2 || waiting[0].Name != "b" || waiting[1].Name != "c" {
		t.Errorf("Waiting() = %+v, want [b c]", waiting)
	}
}

// =============================================================================
// Peek and Snapshot Tests
// =============================================================================

func TestFrontAndRear(t *testing.T) {
	d := newDesk(4)

	if _, ok := d.Front(); ok {
		t.Error("Front() on empty line should return false")
	}
	if _, ok := d.Rear(); ok {
		t.Error("Rear() on empty line should return false")
	}

	d.Admit(1, "first", 2)
	d.Admit(2, "last", 4)

	front, ok := d.Front()
	if !ok || front.Name != "first" {
		t.Errorf("Front() = (%+v, %v), want first", front, ok)
	}
	rear, ok := d.Rear()
	if !ok || rear.Name != "last" {
		t.Errorf("Rear() = (%+v, %v), want last", rear, ok)
	}

	// Peeks must not consume.
	if got := d.Size(); got != 2 {
		t.Errorf("Size() after peeks = %d, want 2", got)
	}
}

func TestWaiting_Directions(t *testing.T) {
	d := newDesk(8)
	for i := 1; i <= 4; i++ {
		d.Admit(i, "patient", 3)
	}

	forward := d.Waiting()
	backward := d.WaitingReverse()

	if len(forward) != 4 || len(backward) != 4 {
		t.Fatalf("len(Waiting()) = %d, len(WaitingReverse()) = %d, want 4 and 4", len(forward), len(backward))
	}
	for i := range forward {
		if forward[i].ID != backward[len(backward)-1-i].ID {
			t.Errorf("Waiting()[%d].ID = %d, WaitingReverse()[%d].ID = %d, want mirror",
				i, forward[i].ID, len(backward)-1-i, backward[len(backward)-1-i].ID)
		}
	}
}

// =============================================================================
// Logging Tests
// =============================================================================

func TestDesk_LogsAdmissionOutcomes(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	d := NewDesk(queue.NewBoundedRing[Patient](1), zap.New(core))

	d.Admit(101, "alice", 3)
	d.Admit(102, "bob", 4) // rejected
	d.ServeNext()

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("logged %d entries, want 3", len(entries))
	}

	if entries[0].Level != zapcore.InfoLevel || entries[0].Message != "Patient admitted" {
		t.Errorf("entry 0 = %s %q, want INFO \"Patient admitted\"", entries[0].Level, entries[0].Message)
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("rejected admission logged at %s, want WARN", entries[1].Level)
	}
	if entries[2].Message != "Patient served" {
		t.Errorf("entry 2 message = %q, want \"Patient served\"", entries[2].Message)
	}

	fields := entries[0].ContextMap()
	if got, ok := fields["patient_id"]; !ok || got != int64(101) {
		t.Errorf("admitted entry patient_id = %v, want 101", got)
	}
}
