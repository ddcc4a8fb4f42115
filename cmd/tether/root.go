package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// newLogger creates a JSON logger for CLI use. Panel output goes to stdout;
// diagnostics stay on stderr.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

var rootCmd = &cobra.Command{
	Use:   "tether",
	Short: "Showcase runner for the tether observable-store library",
	Long: `tether runs small self-contained demo panels, each built on one
concept of the tether library: stores, bindings, effects, memos,
contexts, batches and owners.

Use "tether list" to see the panels and "tether run" to execute them.`,
	SilenceUsage: true,
}
