package triage

import (
	"go.uber.org/zap"

	"github.com/huynhanx03/triage-queue/pkg/queue"
)

// Desk is one admission session: a FIFO line of patients plus the arrival
// counter that stamps every admission attempt. Like the line it wraps, a
// Desk is not safe for concurrent use.
type Desk struct {
	line     queue.Queue[Patient]
	admitted int
	log      *zap.Logger
}

// NewDesk opens a session over the given line. A nil logger disables
// logging.
func NewDesk(line queue.Queue[Patient], log *zap.Logger) *Desk {
	if log == nil {
		log = zap.NewNop()
	}
	return &Desk{line: line, log: log}
}

// Admit stamps the next arrival number on a new record and appends it to
// the line. Returns (zero, false) when the line is full; the arrival stamp
// is consumed either way, so rejected attempts leave a gap in the sequence.
func (d *Desk) Admit(id int, name string, severity int) (Patient, bool) {
	d.admitted++
	p := Patient{ID: id, Name: name, Severity: severity, Arrival: d.admitted}

	if !d.line.Enqueue(p) {
		d.log.Warn("Admission rejected, line full",
			zap.Int("patient_id", id),
			zap.Int("arrival", p.Arrival),
			zap.Int("waiting", d.line.Len()),
		)
		return Patient{}, false
	}

	d.log.Info("Patient admitted",
		zap.Int("patient_id", id),
		zap.String("name", name),
		zap.Int("severity", severity),
		zap.Int("arrival", p.Arrival),
		zap.Int("waiting", d.line.Len()),
	)
	return p, true
}

// ServeNext removes and returns the patient who has waited longest.
// Returns (zero, false) when the line is empty.
func (d *Desk) ServeNext() (Patient, bool) {
	p, ok := d.line.Dequeue()
	if !ok {
		d.log.Warn("Serve requested on empty line")
		return Patient{}, false
	}

	d.log.Info("Patient served",
		zap.Int("patient_id", p.ID),
		zap.String("name", p.Name),
		zap.Int("arrival", p.Arrival),
		zap.Int("waiting", d.line.Len()),
	)
	return p, true
}

// Front returns the next patient to be served without removing them.
func (d *Desk) Front() (Patient, bool) {
	return d.line.PeekFront()
}

// Rear returns the most recently admitted waiting patient.
func (d *Desk) Rear() (Patient, bool) {
	return d.line.PeekBack()
}

// Waiting returns the line from next-served to last-admitted.
func (d *Desk) Waiting() []Patient {
	return d.line.Snapshot()
}

// WaitingReverse returns the line from last-admitted to next-served.
func (d *Desk) WaitingReverse() []Patient {
	return d.line.SnapshotReverse()
}

// Size returns the number of waiting patients.
func (d *Desk) Size() int {
	return d.line.Len()
}

// Capacity returns the line's maximum size.
// Returns (0, false) when the line is unbounded.
func (d *Desk) Capacity() (int, bool) {
	return d.line.Capacity()
}

// IsEmpty returns true when nobody is waiting.
func (d *Desk) IsEmpty() bool {
	return d.line.IsEmpty()
}

// IsFull returns true when the line is bounded and at capacity.
func (d *Desk) IsFull() bool {
	return d.line.IsFull()
}

// Admitted returns the number of arrival stamps issued so far, including
// stamps consumed by rejected admissions.
func (d *Desk) Admitted() int {
	return d.admitted
}
