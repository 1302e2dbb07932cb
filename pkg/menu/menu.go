// Package menu implements the interactive admission session: a numbered
// text menu driving one triage desk. All queue semantics live in pkg/queue
// and pkg/triage; this package only reads input and renders results, so a
// scripted stdin exercises exactly the same paths as a person at the
// terminal.
package menu

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/huynhanx03/triage-queue/pkg/triage"
)

// BuildDesk constructs the desk once the capacity is known.
type BuildDesk func(capacity int) *triage.Desk

// Session drives one admission session from an input stream to an output
// stream.
type Session struct {
	// Label, when set, is shown in the banner next to the system name.
	Label string

	in    *bufio.Scanner
	out   io.Writer
	desk  *triage.Desk
	build BuildDesk
}

// New creates a session that asks for the line capacity at startup and
// then builds its desk through build.
func New(in io.Reader, out io.Writer, build BuildDesk) *Session {
	return &Session{in: bufio.NewScanner(in), out: out, build: build}
}

// NewWithDesk creates a session over an already configured desk; the
// capacity prompt is skipped.
func NewWithDesk(in io.Reader, out io.Writer, desk *triage.Desk) *Session {
	return &Session{in: bufio.NewScanner(in), out: out, desk: desk}
}

// Run executes the session until the exit option is chosen or the input
// stream ends. End of input is a clean termination, not an error; scripted
// runs pipe a finite stdin.
func (s *Session) Run() error {
	s.clearScreen()
	s.banner()

	if s.desk == nil {
		capacity, ok := s.readIntAtLeast("Enter queue max capacity (e.g. 5 or 10): ", 1)
		if !ok {
			return errors.Wrap(s.in.Err(), "read input")
		}
		s.desk = s.build(capacity)
		s.success(fmt.Sprintf("System initialized with capacity: %d\n", capacity))
	}

	for {
		s.mainMenu()
		option, ok := s.readIntRange("Enter your choice (1-9): ", 1, 9)
		if !ok {
			return errors.Wrap(s.in.Err(), "read input")
		}

		switch option {
		case 1:
			s.addPatient()
		case 2:
			s.serveNext()
		case 3:
			s.viewFront()
		case 4:
			s.viewRear()
		case 5:
			s.capacityStatus()
		case 6:
			s.emptyCheck()
		case 7:
			s.displayAll()
		case 8:
			s.statistics()
		case 9:
			s.section("EXITING FCFS TRIAGE SYSTEM")
			fmt.Fprintln(s.out, "  Thank you for using the system!")
			fmt.Fprintln(s.out, "  Goodbye.")
			return nil
		}
	}
}

func (s *Session) addPatient() {
	s.section("ADD NEW PATIENT")

	name, ok := s.readNonEmpty("Patient name: ")
	if !ok {
		return
	}
	id, ok := s.readInt("Patient ID: ")
	if !ok {
		return
	}
	severity, ok := s.readIntRange("Severity level (1=Low to 5=Critical): ", 1, 5)
	if !ok {
		return
	}

	form := triage.AdmissionForm{Name: name, ID: id, Severity: severity}
	p, admitted, err := form.Admit(s.desk)
	if err != nil {
		s.failure(err.Error())
		return
	}
	if !admitted {
		s.failure("Failed to add patient - queue is at full capacity!")
		return
	}
	s.success(fmt.Sprintf("Patient '%s' (ID: %d) added to queue successfully!", p.Name, p.ID))
}

func (s *Session) serveNext() {
	s.section("SERVE NEXT PATIENT")

	p, ok := s.desk.ServeNext()
	if !ok {
		s.failure("Cannot serve - queue is empty!")
		return
	}
	s.success(fmt.Sprintf("Now serving: %s", p.Name))
	fmt.Fprintf(s.out, "  Patient ID:    %d\n", p.ID)
	fmt.Fprintf(s.out, "  Severity:      %d/5\n", p.Severity)
	fmt.Fprintf(s.out, "  Arrival Order: Patient #%d\n", p.Arrival)
}

func (s *Session) viewFront() {
	s.section("FRONT PATIENT (Next to be served)")

	p, ok := s.desk.Front()
	if !ok {
		s.failure("Queue is empty!")
		return
	}
	s.patientDetails(p)
}

func (s *Session) viewRear() {
	s.section("REAR PATIENT (Last in queue)")

	p, ok := s.desk.Rear()
	if !ok {
		s.failure("Queue is empty!")
		return
	}
	s.patientDetails(p)
}

func (s *Session) capacityStatus() {
	s.section("QUEUE CAPACITY STATUS")

	size := s.desk.Size()
	limit, bounded := s.desk.Capacity()
	limitStr := "Unlimited"
	if bounded {
		limitStr = fmt.Sprintf("%d", limit)
	}

	if s.desk.IsFull() {
		s.failure(fmt.Sprintf("Queue is FULL! %d/%s patients", size, limitStr))
	} else {
		s.success(fmt.Sprintf("Queue is NOT full. %d/%s patients", size, limitStr))
	}

	fmt.Fprintf(s.out, "  Current size:   %d\n", size)
	fmt.Fprintf(s.out, "  Max capacity:   %s\n", limitStr)
	if bounded {
		usage := float64(size) / float64(limit) * 100
		fmt.Fprintf(s.out, "  Usage percent:  %.1f%%\n", usage)
	}
}

func (s *Session) emptyCheck() {
	s.section("QUEUE EMPTY CHECK")

	size := s.desk.Size()
	if s.desk.IsEmpty() {
		s.failure("Queue is EMPTY! No patients waiting.")
	} else {
		s.success(fmt.Sprintf("Queue is NOT empty. %d patient(s) waiting.", size))
	}
	fmt.Fprintf(s.out, "  Total patients: %d\n", size)
}

func (s *Session) displayAll() {
	s.section("DISPLAY ALL PATIENTS (Front to Rear)")

	patients := s.desk.Waiting()
	if len(patients) == 0 {
		s.failure("Queue is empty! No patients to display.")
		return
	}

	fmt.Fprintln(s.out)
	s.renderTable(patients)
	fmt.Fprintf(s.out, "\n  Total patients in queue: %d\n", len(patients))
}

func (s *Session) statistics() {
	s.section("QUEUE STATISTICS")

	size := s.desk.Size()
	limit, bounded := s.desk.Capacity()
	limitStr := "Unlimited"
	if bounded {
		limitStr = fmt.Sprintf("%d", limit)
	}

	fmt.Fprintln(s.out, "\n  CAPACITY INFORMATION:")
	fmt.Fprintf(s.out, "    Total patients:  %d\n", size)
	fmt.Fprintf(s.out, "    Max capacity:    %s\n", limitStr)

	stats, ok := triage.Summarize(s.desk.Waiting())
	if !ok {
		s.failure("No patients in queue for statistics.")
		return
	}
	fmt.Fprintln(s.out, "\n  SEVERITY STATISTICS:")
	fmt.Fprintf(s.out, "    Average severity: %.1f/5\n", stats.AvgSeverity)
	fmt.Fprintf(s.out, "    Max severity:     %d/5\n", stats.MaxSeverity)
	fmt.Fprintf(s.out, "    Min severity:     %d/5\n", stats.MinSeverity)
}
