package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/huynhanx03/triage-queue/pkg/triage"
)

const ruleWidth = 60

// clearScreen resets the terminal before the banner.
func (s *Session) clearScreen() {
	fmt.Fprint(s.out, "\x1b[2J\x1b[H")
}

func (s *Session) banner() {
	rule := strings.Repeat("=", ruleWidth)
	title := "FCFS TRIAGE SYSTEM"
	if s.Label != "" {
		title = fmt.Sprintf("%s (%s)", title, strings.ToUpper(s.Label))
	}

	fmt.Fprintln(s.out, "\n"+rule)
	fmt.Fprintf(s.out, "  %s\n", title)
	fmt.Fprintln(s.out, "  First-Come-First-Serve Queue Implementation")
	fmt.Fprintln(s.out, rule+"\n")
}

func (s *Session) mainMenu() {
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintln(s.out, "\n"+rule)
	fmt.Fprintln(s.out, "  MAIN MENU - What would you like to do?")
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, " 1. Add patient to queue")
	fmt.Fprintln(s.out, " 2. Serve next patient (FIFO order)")
	fmt.Fprintln(s.out, " 3. View front patient in queue")
	fmt.Fprintln(s.out, " 4. View rear patient in queue")
	fmt.Fprintln(s.out, " 5. Check if queue is FULL")
	fmt.Fprintln(s.out, " 6. Check if queue is EMPTY")
	fmt.Fprintln(s.out, " 7. Display entire queue")
	fmt.Fprintln(s.out, " 8. View queue statistics")
	fmt.Fprintln(s.out, " 9. Exit program")
	fmt.Fprintln(s.out, rule)
}

func (s *Session) section(title string) {
	rule := strings.Repeat("-", ruleWidth)

	fmt.Fprintln(s.out, "\n"+rule)
	fmt.Fprintf(s.out, "  %s\n", title)
	fmt.Fprintln(s.out, rule)
}

func (s *Session) success(msg string) {
	fmt.Fprintf(s.out, "[OK] %s\n", msg)
}

func (s *Session) failure(msg string) {
	fmt.Fprintf(s.out, "[ERROR] %s\n", msg)
}

// patientDetails prints the option 3/4 detail block.
func (s *Session) patientDetails(p triage.Patient) {
	fmt.Fprintf(s.out, "  Name:           %s\n", p.Name)
	fmt.Fprintf(s.out, "  ID:             %d\n", p.ID)
	fmt.Fprintf(s.out, "  Severity:       %d/5\n", p.Severity)
	fmt.Fprintf(s.out, "  Arrival Order:  Patient #%d\n", p.Arrival)
}

// renderTable prints the waiting line front-to-rear as a table.
func (s *Session) renderTable(patients []triage.Patient) {
	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"#", "Name", "ID", "Severity", "Arrival"})
	table.SetAutoWrapText(false)

	for i, p := range patients {
		table.Append([]string{
			strconv.Itoa(i + 1),
			p.Name,
			strconv.Itoa(p.ID),
			severityBar(p.Severity),
			fmt.Sprintf("Patient #%d", p.Arrival),
		})
	}
	table.Render()
}

// severityBar renders the 1..5 urgency label as a fixed-width gauge,
// e.g. [***  ]. Out-of-range labels are clamped for display only.
func severityBar(severity int) string {
	stars := severity
	if stars < 0 {
		stars = 0
	}
	if stars > triage.SeverityMax {
		stars = triage.SeverityMax
	}
	return "[" + strings.Repeat("*", stars) + strings.Repeat(" ", triage.SeverityMax-stars) + "]"
}
