package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time through -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "triage "+version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
