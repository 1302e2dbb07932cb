package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/huynhanx03/triage-queue/pkg/logger"
	"github.com/huynhanx03/triage-queue/pkg/menu"
	"github.com/huynhanx03/triage-queue/pkg/queue"
	"github.com/huynhanx03/triage-queue/pkg/settings"
	"github.com/huynhanx03/triage-queue/pkg/triage"
)

var (
	sessionEngine   string
	sessionCapacity int
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run an interactive admission session",
	RunE:  runSession,
}

func init() {
	sessionCmd.Flags().StringVar(&sessionEngine, "engine", "", "queue engine, ring or list (overrides config)")
	sessionCmd.Flags().IntVar(&sessionCapacity, "capacity", 0, "line capacity, 0 means unbounded (overrides config and skips the prompt)")
	rootCmd.AddCommand(sessionCmd)
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := settings.Load(cfgFile)
	if err != nil {
		return err
	}
	if sessionEngine != "" {
		cfg.Desk.Engine = sessionEngine
	}
	if cmd.Flags().Changed("capacity") {
		if sessionCapacity < 0 {
			return errors.New("capacity must be at least 0")
		}
		cfg.Desk.Capacity = sessionCapacity
		cfg.Desk.PromptCapacity = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	build := func(capacity int) *triage.Desk {
		return triage.NewDesk(newLine(cfg.Desk.Engine, capacity), log)
	}

	var sess *menu.Session
	if cfg.Desk.PromptCapacity {
		sess = menu.New(cmd.InOrStdin(), cmd.OutOrStdout(), build)
	} else {
		sess = menu.NewWithDesk(cmd.InOrStdin(), cmd.OutOrStdout(), build(cfg.Desk.Capacity))
	}
	sess.Label = cfg.Desk.Engine
	return sess.Run()
}

// newLine builds the configured engine. Capacity 0 means unbounded.
func newLine(engine string, capacity int) queue.Queue[triage.Patient] {
	switch engine {
	case "list":
		if capacity == 0 {
			return queue.NewList[triage.Patient]()
		}
		return queue.NewBoundedList[triage.Patient](capacity)
	default:
		if capacity == 0 {
			return queue.NewRing[triage.Patient]()
		}
		return queue.NewBoundedRing[triage.Patient](capacity)
	}
}
