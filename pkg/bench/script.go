// Package bench times complete scripted sessions of the triage binary.
// A script is the exact stdin a person would type; the child process runs
// the same code path as an interactive session, so the measurement covers
// parsing, rendering and queue work together.
package bench

import (
	"fmt"
	"strings"
)

// DemoScript returns the standard demonstration session: capacity 5, three
// admissions, one serve, a full display, exit.
func DemoScript() string {
	return "5\n" +
		"1\nJohn\n101\n3\n" +
		"1\nSarah\n102\n4\n" +
		"1\nMike\n103\n2\n" +
		"2\n" +
		"7\n" +
		"9\n"
}

// LoadScript returns a heavier session: admit n patients into a line sized
// to hold them all, serve half, then display and summarize before exiting.
// Severities cycle 1..5 so the statistics block has real spread.
func LoadScript(n int) string {
	if n < 1 {
		n = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", n)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "1\nPatient%d\n%d\n%d\n", i, 1000+i, 1+(i-1)%5)
	}
	for i := 0; i < n/2; i++ {
		b.WriteString("2\n")
	}
	b.WriteString("7\n")
	b.WriteString("8\n")
	b.WriteString("9\n")
	return b.String()
}
