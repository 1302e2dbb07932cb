package bench

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport renders run results as the execution-time report: wall time
// in seconds and milliseconds per engine, return codes, captured stderr,
// and a fastest-engine line when engines were compared. Child stdout is
// included only when showOutput is set; it is long.
func WriteReport(w io.Writer, results []Result, showOutput bool) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "  SCRIPTED SESSION TIME BENCHMARK")
	fmt.Fprintln(w, rule+"\n")

	for _, res := range results {
		fmt.Fprintf(w, "Engine: %s\n", res.Engine)
		fmt.Fprintf(w, "Execution Time: %.4f seconds\n", res.Elapsed.Seconds())
		fmt.Fprintf(w, "Execution Time: %.2f milliseconds\n", res.Elapsed.Seconds()*1000)
		fmt.Fprintf(w, "Return code: %d\n", res.ExitCode)

		if showOutput && res.Output != "" {
			fmt.Fprintf(w, "\n--- PROGRAM OUTPUT ---\n%s\n", res.Output)
		}
		if res.Stderr != "" {
			fmt.Fprintf(w, "\n--- ERRORS ---\n%s\n", res.Stderr)
		}
		fmt.Fprintln(w)
	}

	if len(results) > 1 {
		fastest := results[0]
		for _, res := range results[1:] {
			if res.Elapsed < fastest.Elapsed {
				fastest = res
			}
		}
		fmt.Fprintf(w, "Fastest engine: %s (%.4f seconds)\n", fastest.Engine, fastest.Elapsed.Seconds())
	}
}
