package main

import "github.com/spf13/cobra"

var cfgFile string

// rootCmd carries no run function of its own: the help output is the
// launcher, listing the session and benchmark entry points.
var rootCmd = &cobra.Command{
	Use:   "triage",
	Short: "First-come first-served hospital admission queue",
	Long: `First-come first-served hospital admission queue.

session runs the interactive triage desk; bench times scripted sessions
once per queue engine and reports the comparison.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default triage.yaml)")
}
