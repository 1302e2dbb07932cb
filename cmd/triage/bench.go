package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/huynhanx03/triage-queue/pkg/bench"
	"github.com/huynhanx03/triage-queue/pkg/settings"
)

var (
	benchEngines  []string
	benchPatients int
	benchShowOut  bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time scripted sessions once per queue engine",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().StringSliceVar(&benchEngines, "engines", []string{"ring", "list"}, "engines to compare")
	benchCmd.Flags().IntVar(&benchPatients, "patients", 0, "admissions in the generated script, 0 uses the demo script")
	benchCmd.Flags().BoolVar(&benchShowOut, "show-output", false, "include each session's output in the report")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := settings.Load(cfgFile)
	if err != nil {
		return err
	}

	binary := cfg.Bench.Binary
	if binary == "" {
		binary, err = os.Executable()
		if err != nil {
			return errors.Wrap(err, "failed to locate own binary")
		}
	}

	script := bench.DemoScript()
	if benchPatients > 0 {
		script = bench.LoadScript(benchPatients)
	}

	r := &bench.Runner{
		Binary:  binary,
		Timeout: time.Duration(cfg.Bench.Timeout) * time.Second,
	}
	results, err := r.Compare(cmd.Context(), benchEngines, script)
	if err != nil {
		return err
	}

	bench.WriteReport(cmd.OutOrStdout(), results, benchShowOut)
	return nil
}
