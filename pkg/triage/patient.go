// Package triage implements the admission desk of a first-come first-served
// patient line: the record type, session bookkeeping and waiting-line
// statistics. Queue mechanics live in pkg/queue; nothing here reorders
// patients.
package triage

// Severity bounds for the urgency label carried on each record.
const (
	SeverityMin = 1
	SeverityMax = 5
)

// Patient is one admission record. All fields are caller-supplied except
// Arrival, which the desk stamps when the record enters the line. Severity
// is informational only and never affects serving order. ID uniqueness is
// not enforced; duplicate IDs flow through untouched.
type Patient struct {
	ID       int
	Name     string
	Severity int
	Arrival  int
}
